package service

import (
	"context"
	"sync"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
)

// activeAttempt is the in-flight record for a booking. snapshot is written
// only by the goroutine running the attempt; readers get copies.
type activeAttempt struct {
	mu       sync.RWMutex
	snapshot models.PaymentAttempt
	cancel   context.CancelCauseFunc
	done     chan struct{}
}

func (a *activeAttempt) set(attempt models.PaymentAttempt) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshot = attempt
}

func (a *activeAttempt) get() models.PaymentAttempt {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// bookingGuard admits at most one non-terminal attempt per booking id. The
// map lock is only held for the reserve/release bookkeeping itself.
type bookingGuard struct {
	mu     sync.Mutex
	active map[string]*activeAttempt
}

func newBookingGuard() *bookingGuard {
	return &bookingGuard{active: make(map[string]*activeAttempt)}
}

func (g *bookingGuard) reserve(bookingID string, attempt models.PaymentAttempt, cancel context.CancelCauseFunc) (*activeAttempt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.active[bookingID]; ok {
		return nil, models.ErrAlreadyInProgress
	}
	a := &activeAttempt{
		snapshot: attempt,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	g.active[bookingID] = a
	return a, nil
}

func (g *bookingGuard) release(bookingID string, a *activeAttempt) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[bookingID] == a {
		delete(g.active, bookingID)
	}
}

func (g *bookingGuard) get(bookingID string) (*activeAttempt, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	a, ok := g.active[bookingID]
	return a, ok
}
