package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gen3ops/dictops/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		wg.Wait()
		gt.True(t, executed)
	})

	t.Run("handler error does not crash the process", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return errors.New("notify failed")
		})

		wg.Wait()
	})

	t.Run("recovers from panic and logs the stack", func(t *testing.T) {
		logBuf := &safeBuffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelError}))
		ctx := ctxlog.With(context.Background(), logger)

		done := make(chan struct{}, 1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer func() { done <- struct{}{} }()
			panic("boom")
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler did not complete within timeout")
		}

		// The recover runs after the handler's own defer; poll briefly for
		// the log line.
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			if strings.Contains(logBuf.String(), "panic in async handler") {
				break
			}
			time.Sleep(10 * time.Millisecond)
		}
		gt.True(t, strings.Contains(logBuf.String(), "panic in async handler"))
		gt.True(t, strings.Contains(logBuf.String(), "boom"))
	})

	t.Run("detaches from caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var wg sync.WaitGroup
		wg.Add(1)
		async.Dispatch(ctx, func(newCtx context.Context) error {
			defer wg.Done()
			cancel()
			select {
			case <-newCtx.Done():
				t.Error("dispatched context was cancelled")
			default:
			}
			return nil
		})

		wg.Wait()
	})
}
