package pkgroutine

import (
	"context"
	"errors"
	"testing"
)

func TestNewManagerDefaultLimit(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("NewManager(0) sema cap = %d, want %d", got, DefaultMaxGoroutine)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), func(ctx context.Context) error { return errOne })
	mgr.Go(context.Background(), func(ctx context.Context) error { return errTwo })

	joined := mgr.Wait()
	if !errors.Is(joined, errOne) || !errors.Is(joined, errTwo) {
		t.Fatalf("Wait() = %v, want both task errors", joined)
	}
}

func TestManagerRecoversPanics(t *testing.T) {
	mgr := NewManager(1)
	mgr.Go(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})

	if err := mgr.Wait(); err != nil {
		t.Fatalf("Wait() = %v, want nil after recovered panic", err)
	}
}

func TestManagerCanceledContextSkipsTask(t *testing.T) {
	mgr := NewManager(1)

	// Fill the only slot with a blocking task, then schedule with a canceled
	// context so acquisition fails immediately.
	release := make(chan struct{})
	mgr.Go(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := make(chan struct{}, 1)
	mgr.Go(ctx, func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})

	close(release)
	if err := mgr.Wait(); err != nil {
		t.Fatalf("Wait() err = %v", err)
	}

	select {
	case <-ran:
		t.Fatal("task ran despite canceled context")
	default:
	}
}
