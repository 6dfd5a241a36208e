package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

// Handler processes one review event. Returning an error triggers a retry.
type Handler interface {
	Handle(ctx context.Context, event entity.ReviewEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// ReviewConsumer drains the bus with a worker pool, deduplicates by event id
// and retries failed handlers with doubling backoff.
type ReviewConsumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewReviewConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *ReviewConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &ReviewConsumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (c *ReviewConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for in-flight events to finish, or returns
// the context error when the deadline passes first.
func (c *ReviewConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *ReviewConsumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *ReviewConsumer) processEvent(event entity.ReviewEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != 0 {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate review event", "event_id", event.EventID, "internal_id", event.InternalID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("review event dropped after retries", "event_id", event.EventID, "internal_id", event.InternalID, "error", err)
			return
		}

		if !sleepBackoff(backoff) {
			return
		}
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
	return true
}

// LogReviewer surfaces unclassified messages in the logs so an operator can
// inspect them. It rejects events without an id.
type LogReviewer struct{}

func (LogReviewer) Handle(ctx context.Context, event entity.ReviewEvent) error {
	if event.EventID == 0 {
		return errors.New("missing event id")
	}

	slog.InfoContext(ctx, "transaction flagged for review", "event_id", event.EventID, "internal_id", event.InternalID, "type", event.Type)
	return nil
}
