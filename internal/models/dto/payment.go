package dto

import (
	"strings"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
)

// Payment is the request body for paying a booking.
type Payment struct {
	BookingID string `json:"booking_id"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
}

func (p *Payment) Sanitize() {
	p.BookingID = strings.TrimSpace(p.BookingID)
	p.Phone = strings.TrimSpace(p.Phone)
}

func (p *Payment) FromEvent(event models.PayRequestedEvent) {
	p.BookingID = event.BookingID
	p.Phone = event.Phone
	p.Amount = event.Amount
}

// Attempt is the API view of a payment attempt.
type Attempt struct {
	models.PaymentAttempt
	Outcome  models.Outcome `json:"outcome,omitempty"`
	Terminal bool           `json:"terminal"`
}

func FromEntity(a models.PaymentAttempt) Attempt {
	return Attempt{
		PaymentAttempt: a,
		Outcome:        a.State.Outcome(),
		Terminal:       a.IsTerminal(),
	}
}
