package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-mpesa-service/internal/metrics"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models/dto"
	"github.com/jeffleon2/draftea-mpesa-service/internal/phone"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jeffleon2/draftea-mpesa-service/internal/service"

// GatewayClient is the payment gateway/backend. Initiate pushes the payment
// prompt; QueryStatus reads the status the backend persisted from the
// gateway callback.
type GatewayClient interface {
	Initiate(ctx context.Context, req models.InitiateRequest) (*models.InitiateResponse, error)
	QueryStatus(ctx context.Context, correlationID string) (*models.StatusResponse, error)
}

// AttemptRepo defines the interface for payment attempt persistence.
type AttemptRepo interface {
	Create(ctx context.Context, attempt *models.PaymentAttempt) error
	Save(ctx context.Context, attempt *models.PaymentAttempt) error
	FindLatest(ctx context.Context, query string, value interface{}) (*models.PaymentAttempt, error)
	GetBy(ctx context.Context, query string, value interface{}) ([]models.PaymentAttempt, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PaymentService reconciles a payer's request with the gateway's out-of-band
// confirmation. It normalizes the phone number, initiates the push payment,
// polls for the persisted status and drives the attempt's state machine.
//
// Repo and Publisher are optional; when set, every transition is persisted
// and published as a payments.attempt.updated event.
type PaymentService struct {
	Gateway   GatewayClient
	Repo      AttemptRepo
	Publisher Publisher
	Poll      PollConfig
	Clock     Clock

	guard *bookingGuard
}

// NewPaymentService creates a PaymentService. Poll settings come from the
// caller's configuration.
func NewPaymentService(gateway GatewayClient, repo AttemptRepo, publisher Publisher, poll PollConfig) *PaymentService {
	return &PaymentService{
		Gateway:   gateway,
		Repo:      repo,
		Publisher: publisher,
		Poll:      poll,
		Clock:     realClock{},
		guard:     newBookingGuard(),
	}
}

// Handle tracks an attempt running in the background.
type Handle struct {
	active *activeAttempt
}

// Done is closed once the attempt reaches a terminal state.
func (h *Handle) Done() <-chan struct{} {
	return h.active.done
}

// Snapshot returns a copy of the attempt as last recorded.
func (h *Handle) Snapshot() models.PaymentAttempt {
	return h.active.get()
}

// Wait blocks until the attempt is terminal or ctx is done. Giving up the
// wait does not cancel the attempt.
func (h *Handle) Wait(ctx context.Context) (*models.PaymentAttempt, error) {
	select {
	case <-h.active.done:
		attempt := h.active.get()
		return &attempt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel asks the attempt to stop. The poller observes it on its next wake-up.
func (h *Handle) Cancel() {
	h.active.cancel(models.ErrCancelledByCaller)
}

// PayForBooking runs a payment attempt to a terminal state. onUpdate is called
// once per state transition, in order. Validation and concurrency errors are
// returned without any gateway call; an initiation failure returns the IDLE
// attempt along with the error. Cancelling ctx cancels the attempt.
func (s *PaymentService) PayForBooking(ctx context.Context, req dto.Payment, onUpdate UpdateFunc) (*models.PaymentAttempt, error) {
	handle, err := s.Start(ctx, req, onUpdate)
	if err != nil {
		if handle != nil {
			attempt := handle.Snapshot()
			return &attempt, err
		}
		return nil, err
	}

	<-handle.Done()
	attempt := handle.Snapshot()
	return &attempt, nil
}

// Submit starts an attempt and returns its snapshot as soon as the gateway
// has acknowledged it, leaving the confirmation to run in the background.
func (s *PaymentService) Submit(ctx context.Context, req dto.Payment) (*models.PaymentAttempt, error) {
	handle, err := s.Start(ctx, req, nil)
	if handle == nil {
		return nil, err
	}
	attempt := handle.Snapshot()
	return &attempt, err
}

// Start initiates the payment synchronously and polls in the background.
// The returned Handle lets the caller detach and observe onUpdate
// asynchronously. When initiation fails, the Handle is already done and holds
// the IDLE attempt.
func (s *PaymentService) Start(ctx context.Context, req dto.Payment, onUpdate UpdateFunc) (*Handle, error) {
	if err := s.Poll.Validate(); err != nil {
		return nil, err
	}

	req.Sanitize()
	normalized, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, err
	}
	attempt := models.NewPaymentAttempt(req.BookingID, normalized, req.Amount)
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	active, err := s.guard.reserve(attempt.BookingID, initiatingView(*attempt), cancel)
	if err != nil {
		cancel(err)
		metrics.InitiationsTotal.WithLabelValues("rejected").Inc()
		logrus.WithField("booking_id", attempt.BookingID).Warn("Payment already in progress, rejecting new attempt")
		return nil, err
	}

	runCtx, span := otel.Tracer(tracerName).Start(runCtx, "mpesa.pay_for_booking",
		trace.WithAttributes(
			attribute.String("booking.id", attempt.BookingID),
			attribute.String("attempt.id", attempt.ID),
			attribute.Int64("payment.amount", attempt.Amount),
		))

	m := newStateMachine(attempt, s.Clock, s.observers(runCtx, span, onUpdate)...)
	m.onRecord = active.set

	s.persist(context.WithoutCancel(runCtx), attempt, true)

	in := &initiator{gateway: s.Gateway}
	if _, err := in.initiate(runCtx, m); err != nil {
		active.set(*attempt)
		s.persist(context.WithoutCancel(runCtx), attempt, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "initiation failed")
		span.End()
		s.guard.release(attempt.BookingID, active)
		cancel(err)
		close(active.done)
		return &Handle{active: active}, err
	}

	p := &poller{gateway: s.Gateway, clock: s.Clock, config: s.Poll}
	go func() {
		defer close(active.done)
		defer cancel(nil)
		defer s.guard.release(attempt.BookingID, active)
		defer span.End()

		final := p.poll(runCtx, m)
		if final != models.StateCompleted {
			span.SetStatus(codes.Error, string(final))
		}
	}()

	return &Handle{active: active}, nil
}

// Cancel requests cooperative cancellation of the in-flight attempt for a
// booking.
func (s *PaymentService) Cancel(bookingID string) error {
	active, ok := s.guard.get(bookingID)
	if !ok {
		return models.ErrNoActiveAttempt
	}
	active.cancel(models.ErrCancelledByCaller)
	logrus.WithField("booking_id", bookingID).Info("Cancellation requested")
	return nil
}

// Active returns the in-flight attempt for a booking, if any.
func (s *PaymentService) Active(bookingID string) (models.PaymentAttempt, bool) {
	active, ok := s.guard.get(bookingID)
	if !ok {
		return models.PaymentAttempt{}, false
	}
	return active.get(), true
}

// Latest returns the in-flight attempt for a booking, falling back to the
// most recent stored one.
func (s *PaymentService) Latest(ctx context.Context, bookingID string) (*models.PaymentAttempt, error) {
	if attempt, ok := s.Active(bookingID); ok {
		return &attempt, nil
	}
	if s.Repo == nil {
		return nil, models.ErrAttemptNotFound
	}
	attempt, err := s.Repo.FindLatest(ctx, "booking_id = ?", bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrAttemptNotFound, err)
	}
	return attempt, nil
}

// History returns every stored attempt for a booking, newest first.
func (s *PaymentService) History(ctx context.Context, bookingID string) ([]models.PaymentAttempt, error) {
	if s.Repo == nil {
		return nil, nil
	}
	attempts, err := s.Repo.GetBy(ctx, "booking_id = ?", bookingID)
	if err != nil {
		return nil, fmt.Errorf("error listing attempts for booking %s: %w", bookingID, err)
	}
	return attempts, nil
}

// observers returns the fan-out run on every transition: bookkeeping first,
// then the caller, then the event stream.
func (s *PaymentService) observers(ctx context.Context, span trace.Span, onUpdate UpdateFunc) []UpdateFunc {
	detached := context.WithoutCancel(ctx)
	observers := []UpdateFunc{
		func(u Update) {
			logrus.WithFields(logrus.Fields{
				"booking_id":     u.Attempt.BookingID,
				"correlation_id": u.Attempt.CorrelationID,
				"state":          u.State,
				"attempts_made":  u.Attempt.AttemptsMade,
				"reason":         u.Attempt.FailureReason,
			}).Info("Payment attempt transitioned")
			span.AddEvent("transition", trace.WithAttributes(attribute.String("state", string(u.State))))
		},
		func(u Update) { s.record(u) },
		func(u Update) {
			attempt := u.Attempt
			s.persist(detached, &attempt, false)
		},
	}
	if onUpdate != nil {
		observers = append(observers, onUpdate)
	}
	observers = append(observers, func(u Update) { s.publish(detached, u) })
	return observers
}

func (s *PaymentService) record(u Update) {
	metrics.TransitionsTotal.WithLabelValues(string(u.State)).Inc()
	if u.Warning != "" {
		metrics.ConflictWarningsTotal.Inc()
		logrus.WithField("booking_id", u.Attempt.BookingID).Warn(u.Warning)
	}
	if u.State.IsTerminal() {
		metrics.TimeToTerminal.WithLabelValues(string(u.State)).Observe(s.Clock.Now().Sub(u.Attempt.StartedAt).Seconds())
		metrics.PaymentAmounts.WithLabelValues(string(u.State)).Observe(float64(u.Attempt.Amount))
	}
}

func (s *PaymentService) persist(ctx context.Context, attempt *models.PaymentAttempt, create bool) {
	if s.Repo == nil {
		return
	}
	var err error
	if create {
		err = s.Repo.Create(ctx, attempt)
	} else {
		err = s.Repo.Save(ctx, attempt)
	}
	if err != nil {
		logrus.WithField("booking_id", attempt.BookingID).Errorf("Error persisting payment attempt: %s", err.Error())
	}
}

func (s *PaymentService) publish(ctx context.Context, u Update) {
	if s.Publisher == nil {
		return
	}
	event := models.NewAttemptUpdatedEvent(u.Attempt, s.Clock.Now())
	if err := s.Publisher.Publish(ctx, models.AttemptUpdatedEventTopic, event); err != nil {
		logrus.WithField("booking_id", u.Attempt.BookingID).Errorf("Error publishing attempt update: %s", err.Error())
	}
}

func initiatingView(a models.PaymentAttempt) models.PaymentAttempt {
	a.State = models.StateInitiating
	return a
}

// IsRetryable reports whether the caller may deliberately retry after err.
func IsRetryable(err error) bool {
	return errors.Is(err, models.ErrInitiationFailed)
}
