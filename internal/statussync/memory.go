package statussync

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
)

// MemoryChannel fans events out to subscribers within one process.
// Publishing with no subscribers is a no-op, not an error.
type MemoryChannel struct {
	mu         sync.RWMutex
	handlers   map[string]Handler
	dispatcher DispatcherI
}

func NewMemoryChannel(dispatcher DispatcherI) *MemoryChannel {
	return &MemoryChannel{
		handlers:   make(map[string]Handler),
		dispatcher: dispatcher,
	}
}

func (c *MemoryChannel) Publish(ctx context.Context, event domain.StatusEvent) error {
	c.mu.RLock()
	handlers := make([]Handler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.RUnlock()

	for _, h := range handlers {
		h := h
		err := c.dispatcher.AddTask(ctx, func() error {
			h(event)
			return nil
		})
		if err != nil {
			zap.L().Warn("status event dropped", zap.String("seller_id", event.SellerID), zap.Error(err))
		}
	}
	return nil
}

func (c *MemoryChannel) Subscribe(handler Handler) string {
	token := uuid.NewString()
	c.mu.Lock()
	c.handlers[token] = handler
	c.mu.Unlock()
	return token
}

func (c *MemoryChannel) Unsubscribe(token string) {
	c.mu.Lock()
	delete(c.handlers, token)
	c.mu.Unlock()
}
