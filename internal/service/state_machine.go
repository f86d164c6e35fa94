package service

import (
	"fmt"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Update is delivered to observers once per state transition.
type Update struct {
	State   models.AttemptState
	Attempt models.PaymentAttempt
	// Warning is set when a completed payment also lost its booking slot.
	Warning string
}

// UpdateFunc observes attempt transitions. It must not block for long; it
// runs on the goroutine that owns the attempt.
type UpdateFunc func(Update)

// stateMachine owns the lifecycle of one attempt. Every mutation goes
// through it, from a single goroutine at a time.
type stateMachine struct {
	attempt   *models.PaymentAttempt
	clock     Clock
	observers []UpdateFunc
	onRecord  func(models.PaymentAttempt)
}

func newStateMachine(attempt *models.PaymentAttempt, clock Clock, observers ...UpdateFunc) *stateMachine {
	return &stateMachine{
		attempt:   attempt,
		clock:     clock,
		observers: observers,
	}
}

func (m *stateMachine) state() models.AttemptState {
	return m.attempt.State
}

// record publishes the current attempt to readers without notifying
// observers. Used for per-tick bookkeeping.
func (m *stateMachine) record() {
	if m.onRecord != nil {
		m.onRecord(*m.attempt)
	}
}

func (m *stateMachine) transition(to models.AttemptState, warning string) error {
	if err := m.attempt.CanTransitionTo(to); err != nil {
		return err
	}

	m.attempt.State = to
	m.attempt.UpdatedAt = m.clock.Now()
	if warning != "" {
		m.attempt.ConflictWarning = true
	}
	m.record()

	update := Update{State: to, Attempt: *m.attempt, Warning: warning}
	for _, observer := range m.observers {
		m.notify(observer, update)
	}
	return nil
}

func (m *stateMachine) notify(observer UpdateFunc, update Update) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"booking_id": update.Attempt.BookingID,
				"state":      update.State,
			}).Error(fmt.Sprintf("update observer panicked: %v", r))
		}
	}()
	observer(update)
}
