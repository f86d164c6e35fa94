package service

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-mpesa-service/internal/metrics"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/sirupsen/logrus"
)

// initiator issues the push-payment request for an attempt. It performs
// exactly one gateway call and never retries.
type initiator struct {
	gateway GatewayClient
}

// initiate moves the attempt from IDLE to AWAITING_CONFIRMATION on gateway
// acknowledgment. On failure the attempt stays IDLE and the returned error
// wraps ErrInitiationFailed together with the cause.
func (i *initiator) initiate(ctx context.Context, m *stateMachine) (string, error) {
	attempt := m.attempt
	log := logrus.WithFields(logrus.Fields{
		"booking_id": attempt.BookingID,
		"attempt_id": attempt.ID,
		"amount":     attempt.Amount,
	})

	resp, err := i.gateway.Initiate(ctx, models.InitiateRequest{
		BookingID: attempt.BookingID,
		Phone:     attempt.Phone,
		Amount:    attempt.Amount,
	})
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = fmt.Errorf("%w (%w)", err, cause)
		}
		metrics.InitiationsTotal.WithLabelValues("failed").Inc()
		attempt.FailureReason = err.Error()
		log.Errorf("STK push initiation failed: %s", err.Error())
		return "", fmt.Errorf("%w: %w", models.ErrInitiationFailed, err)
	}

	attempt.CorrelationID = resp.CorrelationID
	attempt.MerchantRequestID = resp.MerchantRequestID
	attempt.StartedAt = m.clock.Now()
	if err := m.transition(models.StateAwaitingConfirmation, ""); err != nil {
		return "", err
	}

	metrics.InitiationsTotal.WithLabelValues("ok").Inc()
	log.WithField("correlation_id", resp.CorrelationID).Info("STK push accepted, awaiting confirmation")
	return resp.CorrelationID, nil
}
