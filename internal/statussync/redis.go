package statussync

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
)

const redisChannelName = "seller-status"

// RedisChannel propagates status events across processes via Redis
// pub/sub. Redis delivery is fire-and-forget: a subscriber that connects
// after an event fired never sees it, which matches the channel contract.
type RedisChannel struct {
	client redis.UniversalClient

	mu   sync.Mutex
	subs map[string]*redis.PubSub
}

func NewRedisChannel(client redis.UniversalClient) *RedisChannel {
	return &RedisChannel{
		client: client,
		subs:   make(map[string]*redis.PubSub),
	}
}

func (c *RedisChannel) Publish(ctx context.Context, event domain.StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, redisChannelName, payload).Err()
}

func (c *RedisChannel) Subscribe(handler Handler) string {
	token := uuid.NewString()
	ps := c.client.Subscribe(context.Background(), redisChannelName)

	c.mu.Lock()
	c.subs[token] = ps
	c.mu.Unlock()

	go func() {
		for msg := range ps.Channel() {
			var event domain.StatusEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.L().Error("malformed status event", zap.Error(err))
				continue
			}
			handler(event)
		}
	}()

	return token
}

func (c *RedisChannel) Unsubscribe(token string) {
	c.mu.Lock()
	ps, ok := c.subs[token]
	delete(c.subs, token)
	c.mu.Unlock()

	if ok {
		if err := ps.Close(); err != nil {
			zap.L().Warn("failed to close subscription", zap.Error(err))
		}
	}
}
