package inference

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewPool_FileNotFound(t *testing.T) {
	_, err := NewPool("../testdata/nonexistent.onnx", 2)
	if err == nil {
		t.Error("expected error for non-existent model")
	}
}

func TestPool_AcquireAfterClose(t *testing.T) {
	// Build the pool by hand; session creation requires a model file.
	pool := &Pool{
		sessions: make(chan *Session, 1),
		size:     1,
	}
	pool.sessions <- &Session{}

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	_, err := pool.Acquire(context.Background())
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got: %v", err)
	}
}

func TestPool_AcquireRespectsContext(t *testing.T) {
	pool := &Pool{
		sessions: make(chan *Session, 1),
		size:     1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := pool.Acquire(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got: %v", err)
	}
}

func TestPool_ReleaseNil(t *testing.T) {
	pool := &Pool{
		sessions: make(chan *Session, 1),
		size:     1,
	}
	// Must not panic.
	pool.Release(nil)
}

func TestPool_Size(t *testing.T) {
	pool := &Pool{size: 3}
	if pool.Size() != 3 {
		t.Errorf("Size() = %d, want 3", pool.Size())
	}
}
