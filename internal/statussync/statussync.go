package statussync

import (
	"context"

	"github.com/sellora/sellerwallet/internal/domain"
)

// Handler receives status events. Delivery is at-most-once per subscriber
// registered at publish time and may replay the same status; handlers
// must be idempotent. A handler registered after an event fired does not
// receive it; late subscribers read the durable status separately.
type Handler func(event domain.StatusEvent)

// Channel fans seller moderation-status changes out to open sessions.
// It is an explicitly constructed dependency, not ambient state, and is
// never the source of truth: the ledger always re-reads the durable
// status before mutating.
type Channel interface {
	Publish(ctx context.Context, event domain.StatusEvent) error
	Subscribe(handler Handler) (token string)
	Unsubscribe(token string)
}
