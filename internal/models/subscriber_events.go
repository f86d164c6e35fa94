package models

const (
	PayRequestedTopic    string = "payments.pay.requested"
	CancelRequestedTopic string = "payments.cancel.requested"
)

// PayRequestedEvent is a command from the booking flow to collect payment
// for a slot.
type PayRequestedEvent struct {
	BookingID string `json:"booking_id"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
	TraceID   string `json:"trace_id,omitempty"`
}

type CancelRequestedEvent struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason,omitempty"`
}
