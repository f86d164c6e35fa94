package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

var fastRetry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func TestPublish_KeysAttemptUpdatesByBooking(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(map[string]messageWriter{models.AttemptUpdatedEventTopic: w}, fastRetry)

	event := models.AttemptUpdatedEvent{ID: "a-1", BookingID: "BK-1", State: string(models.StateCompleted)}
	err := p.Publish(context.Background(), models.AttemptUpdatedEventTopic, event)

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, "BK-1", string(w.written[0].Key))

	var decoded models.AttemptUpdatedEvent
	require.NoError(t, json.Unmarshal(w.written[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := newKafkaPublisher(map[string]messageWriter{}, fastRetry)

	err := p.Publish(context.Background(), "payments.unknown", map[string]string{})

	assert.Error(t, err)
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := newKafkaPublisher(map[string]messageWriter{models.PaymentsDLQTopic: w}, fastRetry)

	err := p.Publish(context.Background(), models.PaymentsDLQTopic, models.DLQMessage{Key: "k"})

	require.NoError(t, err)
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.written, 1)
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := newKafkaPublisher(map[string]messageWriter{models.PaymentsDLQTopic: w}, fastRetry)

	err := p.Publish(context.Background(), models.PaymentsDLQTopic, models.DLQMessage{})

	assert.Error(t, err)
	assert.Equal(t, 3, w.calls)
}

func TestCalculateBackoff(t *testing.T) {
	p := newKafkaPublisher(nil, config.RetryConfig{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second})

	assert.Equal(t, 100*time.Millisecond, p.calculateBackoff(0))
	assert.Equal(t, 200*time.Millisecond, p.calculateBackoff(1))
	assert.Equal(t, 800*time.Millisecond, p.calculateBackoff(3))
	assert.Equal(t, time.Second, p.calculateBackoff(6))

	p.RetryConfig.Jitter = true
	for i := 0; i < 20; i++ {
		d := p.calculateBackoff(1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

func TestClose(t *testing.T) {
	a, b := &fakeWriter{}, &fakeWriter{}
	p := newKafkaPublisher(map[string]messageWriter{"a": a, "b": b}, fastRetry)

	require.NoError(t, p.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
