package service

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-mpesa-service/internal/metrics"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PollConfig bounds the confirmation window: the attempt times out after
// MaxAttempts queries or Interval*MaxAttempts of wall-clock time.
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

func (c PollConfig) Validate() error {
	if c.Interval <= 0 {
		return errors.New("poll interval must be greater than zero")
	}
	if c.MaxAttempts <= 0 {
		return errors.New("poll max attempts must be greater than zero")
	}
	return nil
}

var errEmptyStatus = errors.New("gateway returned no status")

type poller struct {
	gateway GatewayClient
	clock   Clock
	config  PollConfig
}

// poll queries the attempt's status until a terminal state is reached. Two
// queries for the same attempt are never in flight at once.
func (p *poller) poll(ctx context.Context, m *stateMachine) models.AttemptState {
	attempt := m.attempt
	deadline := attempt.StartedAt.Add(p.config.Interval * time.Duration(p.config.MaxAttempts))
	log := logrus.WithFields(logrus.Fields{
		"booking_id":     attempt.BookingID,
		"correlation_id": attempt.CorrelationID,
	})

	for {
		if ctx.Err() != nil {
			return p.cancel(ctx, m)
		}

		resp, err := p.gateway.QueryStatus(ctx, attempt.CorrelationID)
		if err == nil && resp == nil {
			err = errEmptyStatus
		}
		now := p.clock.Now()
		attempt.AttemptsMade++
		attempt.LastPolledAt = &now

		if err != nil {
			if ctx.Err() != nil {
				return p.cancel(ctx, m)
			}
			// Unknown result: keep polling, the ceiling still applies.
			pollErr := &models.PollingError{CorrelationID: attempt.CorrelationID, Attempt: attempt.AttemptsMade, Err: err}
			metrics.PollTicksTotal.WithLabelValues("error").Inc()
			log.WithField("attempts_made", attempt.AttemptsMade).Warn(pollErr.Error())
		} else {
			applyStatusDetails(attempt, *resp)
			resolution := ResolveStatus(*resp)
			if resolution.Terminal {
				metrics.PollTicksTotal.WithLabelValues("terminal").Inc()
				p.finish(m, resolution.State, resolution.Warning, *resp)
				return m.state()
			}
			metrics.PollTicksTotal.WithLabelValues("pending").Inc()
		}
		m.record()

		if ctx.Err() != nil {
			return p.cancel(ctx, m)
		}
		if attempt.AttemptsMade >= p.config.MaxAttempts || !now.Before(deadline) {
			attempt.FailureReason = "no terminal status before the confirmation deadline"
			p.finish(m, models.StateTimedOut, "", models.StatusResponse{})
			return m.state()
		}

		select {
		case <-ctx.Done():
			return p.cancel(ctx, m)
		case <-p.clock.After(p.config.Interval):
		}
	}
}

func (p *poller) cancel(ctx context.Context, m *stateMachine) models.AttemptState {
	reason := models.ErrCancelledByCaller
	if cause := context.Cause(ctx); cause != nil {
		reason = cause
	}
	m.attempt.FailureReason = reason.Error()
	p.finish(m, models.StateCancelled, "", models.StatusResponse{})
	return m.state()
}

func (p *poller) finish(m *stateMachine, state models.AttemptState, warning string, resp models.StatusResponse) {
	switch state {
	case models.StateFailed:
		m.attempt.FailureReason = firstNonEmpty(resp.ResultDesc, resp.Details, "payment declined by gateway")
	case models.StateConflict:
		m.attempt.FailureReason = firstNonEmpty(resp.Details, "booking slot already claimed")
	}

	if err := m.transition(state, warning); err != nil {
		logrus.WithField("booking_id", m.attempt.BookingID).Errorf("Error finishing attempt: %s", err.Error())
	}
}

func applyStatusDetails(attempt *models.PaymentAttempt, resp models.StatusResponse) {
	if resp.ResultCode != "" {
		attempt.ResultCode = resp.ResultCode
	}
	if resp.ResultDesc != "" {
		attempt.ResultDesc = resp.ResultDesc
	}
	if resp.ReceiptNumber != "" {
		attempt.ReceiptNumber = resp.ReceiptNumber
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
