package dialog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pennaedit/penna/internal/fileio"
)

func TestPickRoundTrip(t *testing.T) {
	b := NewBridge()
	type pick struct {
		path string
		err  error
	}
	done := make(chan pick, 1)
	go func() {
		path, err := b.PickOpen(context.Background())
		done <- pick{path, err}
	}()

	var req *Request
	select {
	case req = <-b.Requests():
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for dialog request")
	}
	if req.Kind != KindOpen {
		t.Fatalf("expected open request, got %v", req.Kind)
	}
	req.Resolve("/tmp/a.txt")

	res := <-done
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.path != "/tmp/a.txt" {
		t.Fatalf("expected resolved path, got %q", res.path)
	}
}

func TestCancelSurfacesDialogClosed(t *testing.T) {
	b := NewBridge()
	done := make(chan error, 1)
	go func() {
		_, err := b.PickSave(context.Background())
		done <- err
	}()

	req := <-b.Requests()
	if req.Kind != KindSave {
		t.Fatalf("expected save request, got %v", req.Kind)
	}
	req.Cancel()

	if err := <-done; !errors.Is(err, fileio.ErrDialogClosed) {
		t.Fatalf("expected ErrDialogClosed, got %v", err)
	}
}

func TestContextCancellationUnparksPick(t *testing.T) {
	b := NewBridge()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := b.PickOpen(ctx)
		done <- err
	}()

	<-b.Requests()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("pick did not unpark on context cancellation")
	}
}

func TestConcurrentRequestsQueue(t *testing.T) {
	b := NewBridge()
	for i := 0; i < 2; i++ {
		go func() {
			_, _ = b.PickSave(context.Background())
		}()
	}
	first := <-b.Requests()
	second := <-b.Requests()
	first.Cancel()
	second.Cancel()
}
