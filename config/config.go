package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Errorf("Error initializing: %s", err.Error())
		return nil, err
	}
	if err := Config.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Gateway
	Polling
	Telemetry
}

// Validate rejects settings the confirmation engine cannot run with.
func (c *Config) Validate() error {
	if c.Gateway.Endpoint == "" {
		return errors.New("GATEWAY_ENDPOINT is required")
	}
	if c.Polling.Interval <= 0 {
		return errors.New("POLL_INTERVAL must be greater than zero")
	}
	if c.Polling.MaxAttempts <= 0 {
		return errors.New("POLL_MAX_ATTEMPTS must be greater than zero")
	}
	return nil
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentConsumerGroup string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"mpesa-payment-service"`
	PublishTopics        string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.attempt.updated,payments.dlq"`
	SubscriberTopics     string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payments.pay.requested,payments.cancel.requested"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Gateway points at the backend that fronts the M-Pesa STK push API and
// persists its callbacks.
type Gateway struct {
	Endpoint         string        `env:"GATEWAY_ENDPOINT" envDefault:"http://localhost:5000"`
	Timeout          time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"15s"`
	AccountReference string        `env:"GATEWAY_ACCOUNT_REFERENCE" envDefault:"HakiYetu"`
	TransactionDesc  string        `env:"GATEWAY_TRANSACTION_DESC" envDefault:"Consultation Payment"`
}

type Polling struct {
	Interval    time.Duration `env:"POLL_INTERVAL" envDefault:"2s"`
	MaxAttempts int           `env:"POLL_MAX_ATTEMPTS" envDefault:"30"`
}

type Telemetry struct {
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"mpesa-payment-service"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
