package utils

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(8)

	var done int64
	for i := 0; i < 200; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&done, 1)
		})
	}
	pool.Wait()

	if done != 200 {
		t.Errorf("completed jobs: got %d, want 200", done)
	}
}

func TestWorkerPoolBoundsConcurrency(t *testing.T) {
	const maxWorkers = 4
	pool := NewWorkerPool(maxWorkers)

	var running, peak int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			n := atomic.AddInt64(&running, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			atomic.AddInt64(&running, -1)
		})
	}
	pool.Wait()

	if peak > maxWorkers {
		t.Errorf("peak concurrency: got %d, want <= %d", peak, maxWorkers)
	}
}

func TestWorkerPoolMinimumOneWorker(t *testing.T) {
	pool := NewWorkerPool(0)

	ran := false
	pool.Submit(func() { ran = true })
	pool.Wait()

	if !ran {
		t.Error("job did not run with clamped worker count")
	}
}
