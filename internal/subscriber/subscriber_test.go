package subscriber

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingDLQ struct {
	topic    string
	messages []models.DLQMessage
	err      error
}

func (d *capturingDLQ) Publish(ctx context.Context, topic string, message interface{}) error {
	d.topic = topic
	d.messages = append(d.messages, message.(models.DLQMessage))
	return d.err
}

var retry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func TestProcessMessage_SucceedsFirstTime(t *testing.T) {
	dlq := &capturingDLQ{}
	c := &KafkaConsumer{DLQPublisher: dlq, RetryConfig: retry}

	calls := 0
	c.processMessage(context.Background(), kafka.Message{Topic: models.PayRequestedTopic, Value: []byte(`{}`)},
		func(ctx context.Context, topic string, value []byte) error {
			calls++
			assert.Equal(t, models.PayRequestedTopic, topic)
			return nil
		})

	assert.Equal(t, 1, calls)
	assert.Empty(t, dlq.messages)
}

func TestProcessMessage_RetriesThenRoutesToDLQ(t *testing.T) {
	dlq := &capturingDLQ{}
	c := &KafkaConsumer{DLQPublisher: dlq, RetryConfig: retry}

	calls := 0
	msg := kafka.Message{Topic: models.PayRequestedTopic, Key: []byte("BK-1"), Value: []byte(`{"booking_id":"BK-1"}`)}
	c.processMessage(context.Background(), msg, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return errors.New("gateway unavailable")
	})

	assert.Equal(t, 3, calls)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, models.PaymentsDLQTopic, dlq.topic)
	assert.Equal(t, models.PayRequestedTopic, dlq.messages[0].OriginalTopic)
	assert.Equal(t, "BK-1", dlq.messages[0].Key)
	assert.Equal(t, 3, dlq.messages[0].Attempts)
}

func TestProcessMessage_RecoversOnRetry(t *testing.T) {
	dlq := &capturingDLQ{}
	c := &KafkaConsumer{DLQPublisher: dlq, RetryConfig: retry}

	calls := 0
	c.processMessage(context.Background(), kafka.Message{Topic: models.CancelRequestedTopic}, func(ctx context.Context, topic string, value []byte) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	assert.Equal(t, 2, calls)
	assert.Empty(t, dlq.messages)
}

type stubReader struct {
	msgs   chan kafka.Message
	closed bool
}

func (r *stubReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *stubReader) Close() error {
	r.closed = true
	return nil
}

func TestListen_DeliversMessagesUntilCancelled(t *testing.T) {
	reader := &stubReader{msgs: make(chan kafka.Message, 1)}
	c := &KafkaConsumer{Readers: []messageReader{reader}, RetryConfig: retry}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)
	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		received <- string(value)
		return nil
	})

	reader.msgs <- kafka.Message{Topic: models.PayRequestedTopic, Value: []byte("hello")}

	select {
	case v := <-received:
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}

	cancel()
	require.NoError(t, c.Close())
	assert.True(t, reader.closed)
}
