package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_PublishJSON(t *testing.T) {
	ch := &fakeChannel{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	p := &Publisher{ch: ch, exchange: "booking.events", now: func() time.Time { return now }}

	err := p.PublishJSON(context.Background(), "booking_confirmed", map[string]string{"booking_id": "bk-1"})
	require.NoError(t, err)

	assert.Equal(t, "booking.events", ch.exchange)
	assert.Equal(t, "booking_confirmed", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, now, ch.msg.Timestamp)

	var body map[string]string
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "bk-1", body["booking_id"])

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_UnencodableValue(t *testing.T) {
	p := &Publisher{ch: &fakeChannel{}, exchange: "x", now: time.Now}
	assert.Error(t, p.PublishJSON(context.Background(), "k", make(chan int)))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishJSON(context.Background(), "k", nil))
}
