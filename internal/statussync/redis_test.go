package statussync

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/sellora/sellerwallet/internal/domain"
)

func newRedisChannel(t *testing.T) *RedisChannel {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisChannel(client)
}

// Subscriptions are established asynchronously; publish until the
// subscriber sees an event or the deadline passes.
func publishUntilDelivered(t *testing.T, channel *RedisChannel, event domain.StatusEvent, events <-chan domain.StatusEvent) domain.StatusEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		err := channel.Publish(context.Background(), event)
		assert.NoError(t, err)

		select {
		case got := <-events:
			return got
		case <-deadline:
			t.Fatal("timed out waiting for status event from redis")
			return domain.StatusEvent{}
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestRedisChannelPublishSubscribe(t *testing.T) {
	channel := newRedisChannel(t)

	events := make(chan domain.StatusEvent, 4)
	token := channel.Subscribe(func(event domain.StatusEvent) { events <- event })
	assert.NotEmpty(t, token)

	got := publishUntilDelivered(t, channel, domain.StatusEvent{
		SellerID: "seller-1",
		Status:   domain.SellerActive,
		Comment:  "documents verified",
	}, events)

	assert.Equal(t, "seller-1", got.SellerID)
	assert.Equal(t, domain.SellerActive, got.Status)
	assert.Equal(t, "documents verified", got.Comment)
}

func TestRedisChannelUnsubscribe(t *testing.T) {
	channel := newRedisChannel(t)

	events := make(chan domain.StatusEvent, 4)
	token := channel.Subscribe(func(event domain.StatusEvent) { events <- event })

	// Make sure the subscription is live before tearing it down.
	publishUntilDelivered(t, channel, domain.StatusEvent{SellerID: "seller-1"}, events)

	channel.Unsubscribe(token)

	err := channel.Publish(context.Background(), domain.StatusEvent{SellerID: "seller-2"})
	assert.NoError(t, err)

	select {
	case event := <-events:
		assert.NotEqual(t, "seller-2", event.SellerID, "unsubscribed handler must not receive new events")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRedisChannelPublishWithoutSubscribers(t *testing.T) {
	channel := newRedisChannel(t)

	err := channel.Publish(context.Background(), domain.StatusEvent{SellerID: "seller-1"})
	assert.NoError(t, err)
}
