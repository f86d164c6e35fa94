package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptState string
type Outcome string

const (
	StateIdle                 AttemptState = "IDLE"
	StateInitiating           AttemptState = "INITIATING"
	StateAwaitingConfirmation AttemptState = "AWAITING_CONFIRMATION"
	StateCompleted            AttemptState = "COMPLETED"
	StateFailed               AttemptState = "FAILED"
	StateTimedOut             AttemptState = "TIMED_OUT"
	StateCancelled            AttemptState = "CANCELLED"
	StateConflict             AttemptState = "CONFLICT"

	OutcomeSuccess           Outcome = "success"
	OutcomeChooseAnotherSlot Outcome = "choose_another_slot"
	OutcomeTryAgain          Outcome = "try_again"
)

// transitions lists every edge of the confirmation lifecycle. INITIATING is
// only held while the gateway call is in flight and is never entered through
// this table.
var transitions = map[AttemptState][]AttemptState{
	StateIdle: {StateAwaitingConfirmation},
	StateAwaitingConfirmation: {
		StateCompleted,
		StateFailed,
		StateConflict,
		StateTimedOut,
		StateCancelled,
	},
}

// PaymentAttempt is one push-payment attempt for a booking. Once State is
// terminal the record is never written again.
type PaymentAttempt struct {
	ID                string       `json:"id" gorm:"primaryKey"`
	BookingID         string       `json:"booking_id" gorm:"index"`
	CorrelationID     string       `json:"correlation_id,omitempty" gorm:"index"`
	MerchantRequestID string       `json:"merchant_request_id,omitempty"`
	Phone             string       `json:"phone"`
	Amount            int64        `json:"amount"`
	State             AttemptState `json:"state" gorm:"index"`
	AttemptsMade      int          `json:"attempts_made"`
	ResultCode        string       `json:"result_code,omitempty"`
	ResultDesc        string       `json:"result_desc,omitempty"`
	ReceiptNumber     string       `json:"receipt_number,omitempty"`
	FailureReason     string       `json:"failure_reason,omitempty"`
	ConflictWarning   bool         `json:"conflict_warning"`
	StartedAt         time.Time    `json:"started_at"`
	LastPolledAt      *time.Time   `json:"last_polled_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func NewPaymentAttempt(bookingID, phone string, amount int64) *PaymentAttempt {
	return &PaymentAttempt{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Phone:     phone,
		Amount:    amount,
		State:     StateIdle,
	}
}

func (p *PaymentAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (p *PaymentAttempt) Validate() error {
	if p.BookingID == "" {
		return NewValidationError("booking_id", "booking id is required")
	}
	if p.Amount <= 0 {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if p.Phone == "" {
		return NewValidationError("phone", "phone number is required")
	}

	return nil
}

// CanTransitionTo returns nil when the lifecycle allows moving from the
// current state to target.
func (p *PaymentAttempt) CanTransitionTo(target AttemptState) error {
	for _, allowed := range transitions[p.State] {
		if allowed == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.State, target)
}

func (p *PaymentAttempt) IsTerminal() bool {
	return p.State.IsTerminal()
}

func (s AttemptState) IsTerminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateTimedOut, StateCancelled, StateConflict:
		return true
	default:
		return false
	}
}

func (s AttemptState) IsValid() bool {
	switch s {
	case StateIdle, StateInitiating, StateAwaitingConfirmation,
		StateCompleted, StateFailed, StateTimedOut, StateCancelled, StateConflict:
		return true
	default:
		return false
	}
}

// Outcome is the advice shown to the payer for a terminal state. Non-terminal
// states have no outcome.
func (s AttemptState) Outcome() Outcome {
	switch s {
	case StateCompleted:
		return OutcomeSuccess
	case StateConflict:
		return OutcomeChooseAnotherSlot
	case StateFailed, StateTimedOut, StateCancelled:
		return OutcomeTryAgain
	default:
		return ""
	}
}
