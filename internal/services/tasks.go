package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// TaskRunner runs fire-and-forget side effects (review refreshes after a
// write, broadcasts) off the request path. Failures are logged and swallowed:
// derived data must never fail the mutation that triggered it.
type TaskRunner struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewTaskRunner(timeout time.Duration) *TaskRunner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TaskRunner{timeout: timeout}
}

func (t *TaskRunner) Go(name string, fn func(ctx context.Context) error) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ background task %q panicked: %v", name, rec)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Printf("❌ background task %q failed: %v", name, err)
		}
	}()
}

// Drain waits for in-flight tasks; called on shutdown.
func (t *TaskRunner) Drain() {
	t.wg.Wait()
}
