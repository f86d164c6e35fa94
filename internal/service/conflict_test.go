package service

import (
	"testing"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name     string
		resp     models.StatusResponse
		expected Resolution
	}{
		{
			name:     "pending",
			resp:     models.StatusResponse{Status: models.GatewayStatusPending},
			expected: Resolution{State: models.StateAwaitingConfirmation},
		},
		{
			name:     "pending with conflict flag stays open",
			resp:     models.StatusResponse{Status: models.GatewayStatusPending, Conflict: true},
			expected: Resolution{State: models.StateAwaitingConfirmation},
		},
		{
			name:     "unknown status",
			resp:     models.StatusResponse{Status: "processing"},
			expected: Resolution{State: models.StateAwaitingConfirmation},
		},
		{
			name:     "completed",
			resp:     models.StatusResponse{Status: models.GatewayStatusCompleted},
			expected: Resolution{State: models.StateCompleted, Terminal: true},
		},
		{
			name:     "completed with conflict flag",
			resp:     models.StatusResponse{Status: models.GatewayStatusCompleted, Conflict: true},
			expected: Resolution{State: models.StateCompleted, Terminal: true, Warning: slotConflictWarning},
		},
		{
			name:     "conflict",
			resp:     models.StatusResponse{Status: models.GatewayStatusConflict},
			expected: Resolution{State: models.StateConflict, Terminal: true},
		},
		{
			name:     "failed with conflict flag",
			resp:     models.StatusResponse{Status: models.GatewayStatusFailed, Conflict: true},
			expected: Resolution{State: models.StateConflict, Terminal: true},
		},
		{
			name:     "failed",
			resp:     models.StatusResponse{Status: models.GatewayStatusFailed},
			expected: Resolution{State: models.StateFailed, Terminal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveStatus(tt.resp))
		})
	}
}
