package event

import (
	"context"
	"errors"
	"sync"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

var ErrBusClosed = errors.New("event bus is closed")

// Bus is a buffered in-process channel for review events. Publish blocks when
// the buffer is full until a consumer drains it or the context ends.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan entity.ReviewEvent
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan entity.ReviewEvent, buffer),
	}
}

func (b *Bus) Publish(ctx context.Context, event entity.ReviewEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) Subscribe() <-chan entity.ReviewEvent {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
