package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/gateway"
	handlers "github.com/jeffleon2/draftea-mpesa-service/internal/handlers"
	"github.com/jeffleon2/draftea-mpesa-service/internal/metrics"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/jeffleon2/draftea-mpesa-service/internal/publisher"
	"github.com/jeffleon2/draftea-mpesa-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-mpesa-service/internal/service"
	"github.com/jeffleon2/draftea-mpesa-service/internal/subscriber"
	"github.com/jeffleon2/draftea-mpesa-service/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	shutdown  func(context.Context) error
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	a.shutdown = shutdown

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.PaymentAttempt{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	attemptRepo := posgrest.New[models.PaymentAttempt](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	paymentService := service.NewPaymentService(
		gateway.NewMpesaClient(cfg.Gateway),
		attemptRepo,
		a.publisher,
		service.PollConfig{Interval: cfg.Polling.Interval, MaxAttempts: cfg.Polling.MaxAttempts},
	)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.initSubscribers(ctx, paymentHandler)
	return nil
}

// Run serves HTTP until ctx is done, then drains in-flight requests and
// closes the Kafka clients.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if a.consumer != nil {
		errs = append(errs, a.consumer.Close())
	}
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(shutdownCtx))
	}
	return errors.Join(errs...)
}

func (a *App) initSubscribers(ctx context.Context, paymentHandler *handlers.PaymentHandler) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.PaymentConsumerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.publisher, a.config.GetRetryConfig())

	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.WithField("topic", topic).Debugf("Received message %s", string(value))
		return paymentHandler.HandleEvents(ctx, topic, value)
	})
}
