package models

import "time"

const (
	AttemptUpdatedEventTopic = "payments.attempt.updated"
	PaymentsDLQTopic         = "payments.dlq"
)

// AttemptUpdatedEvent is published once per state transition of an attempt.
type AttemptUpdatedEvent struct {
	ID              string    `json:"id"`
	BookingID       string    `json:"booking_id"`
	CorrelationID   string    `json:"correlation_id,omitempty"`
	State           string    `json:"state"`
	Outcome         string    `json:"outcome,omitempty"`
	Amount          int64     `json:"amount"`
	Phone           string    `json:"phone"`
	AttemptsMade    int       `json:"attempts_made"`
	ConflictWarning bool      `json:"conflict_warning"`
	ReceiptNumber   string    `json:"receipt_number,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewAttemptUpdatedEvent(a PaymentAttempt, at time.Time) AttemptUpdatedEvent {
	return AttemptUpdatedEvent{
		ID:              a.ID,
		BookingID:       a.BookingID,
		CorrelationID:   a.CorrelationID,
		State:           string(a.State),
		Outcome:         string(a.State.Outcome()),
		Amount:          a.Amount,
		Phone:           a.Phone,
		AttemptsMade:    a.AttemptsMade,
		ConflictWarning: a.ConflictWarning,
		ReceiptNumber:   a.ReceiptNumber,
		Reason:          a.FailureReason,
		OccurredAt:      at,
	}
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (e AttemptUpdatedEvent) PartitionKey() string {
	return e.BookingID
}

func (m DLQMessage) PartitionKey() string {
	return m.Key
}
