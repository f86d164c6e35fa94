package service

import "github.com/jeffleon2/draftea-mpesa-service/internal/models"

const slotConflictWarning = "payment completed but the booking slot was claimed by another attempt"

// Resolution is what a single status response means for an attempt.
type Resolution struct {
	State    models.AttemptState
	Terminal bool
	Warning  string
}

// ResolveStatus interprets a status response, giving the booking service's
// conflict signal precedence over a plain failure but never over a completed
// payment. A conflict flag on a still-pending payment is not terminal.
func ResolveStatus(resp models.StatusResponse) Resolution {
	switch resp.Status {
	case models.GatewayStatusCompleted:
		r := Resolution{State: models.StateCompleted, Terminal: true}
		if resp.Conflict {
			r.Warning = slotConflictWarning
		}
		return r
	case models.GatewayStatusConflict:
		return Resolution{State: models.StateConflict, Terminal: true}
	case models.GatewayStatusFailed:
		if resp.Conflict {
			return Resolution{State: models.StateConflict, Terminal: true}
		}
		return Resolution{State: models.StateFailed, Terminal: true}
	default:
		return Resolution{State: models.StateAwaitingConfirmation}
	}
}
