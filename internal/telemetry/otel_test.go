package telemetry_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/draftea-mpesa-service/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "mpesa-test", "")

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := telemetry.Setup(context.Background(), "mpesa-test", "http://192.0.2.1:4318")

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
