package statussync

import (
	"context"

	"go.uber.org/zap"
)

type DispatcherI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// Dispatcher is a bounded worker pool that runs handler invocations off
// the publisher's goroutine, keeping Publish non-blocking even when a
// subscriber is slow.
type Dispatcher struct {
	pool chan Task
}

func NewDispatcher(size int) *Dispatcher {
	pool := make(chan Task, size)
	d := &Dispatcher{pool: pool}

	for i := 0; i < size; i++ {
		go d.worker()
	}
	return d
}

func (d *Dispatcher) worker() {
	for task := range d.pool {
		if err := task(); err != nil {
			zap.L().Error("status handler failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case d.pool <- task:
		return nil
	}
}

func (d *Dispatcher) Close() {
	select {
	case <-d.pool:
	default:
		close(d.pool)
	}
}
