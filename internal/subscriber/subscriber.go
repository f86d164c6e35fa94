package subscriber

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// DLQPublisher receives messages the handler could not process.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Readers      []messageReader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]messageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	if retryConfig.MaxAttempts <= 0 {
		retryConfig.MaxAttempts = 1
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per topic and returns. Readers stop once ctx
// is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(ctx context.Context, topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go func(r messageReader) {
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.Errorf("Kafka read error: %s", err.Error())
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler func(ctx context.Context, topic string, value []byte) error) {
	log := logrus.WithFields(logrus.Fields{"topic": msg.Topic, "key": string(msg.Key)})

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}
		backoff := c.calculateBackoff(attempt)
		log.Warnf("Handler error, attempt %d/%d: %s. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err.Error(), backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	log.Errorf("Message failed after %d attempts", c.RetryConfig.MaxAttempts)
	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		if err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, dlqMessage); err != nil {
			log.Errorf("Failed to send message to DLQ: %s", err.Error())
		} else {
			log.Info("Message sent to DLQ")
		}
	}
}

func (c *KafkaConsumer) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.RetryConfig.BaseDelay

	if delay > c.RetryConfig.MaxDelay {
		delay = c.RetryConfig.MaxDelay
	}

	if c.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// Close closes every reader, committing nothing further.
func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
