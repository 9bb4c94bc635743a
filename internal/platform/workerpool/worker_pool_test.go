// internal/platform/workerpool/worker_pool_test.go
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"owaspkit/internal/platform/logx"
	"owaspkit/internal/testutil"
)

type funcTask struct {
	name   string
	weight int
	fn     func(ctx context.Context) error
	ran    atomic.Bool
}

func (t *funcTask) Execute(ctx context.Context) error {
	t.ran.Store(true)
	if t.fn == nil {
		return nil
	}
	return t.fn(ctx)
}
func (t *funcTask) Weight() int  { return t.weight }
func (t *funcTask) Name() string { return t.name }

func newPool(workers int) *WorkerPool {
	return NewWorkerPool(WorkerPoolConfig{Workers: workers, Logger: logx.NewSilent()})
}

func TestWorkerPool_SubmitRunsEveryTask(t *testing.T) {
	pool := newPool(3)
	pool.Start()
	defer pool.Stop()

	tasks := make([]Task, 10)
	for i := range tasks {
		tasks[i] = &funcTask{name: fmt.Sprintf("t%d", i)}
	}

	results := pool.Submit(tasks)

	testutil.AssertEqual(t, len(results), 10, "results")
	for _, task := range tasks {
		testutil.AssertTrue(t, task.(*funcTask).ran.Load(), task.Name()+" should run")
	}
}

func TestWorkerPool_PropagatesErrors(t *testing.T) {
	pool := newPool(2)
	pool.Start()
	defer pool.Stop()

	boom := errors.New("boom")
	results := pool.Submit([]Task{
		&funcTask{name: "ok"},
		&funcTask{name: "fail", fn: func(context.Context) error { return boom }},
	})

	failures := 0
	for _, r := range results {
		if errors.Is(r.Error, boom) {
			failures++
		}
	}
	testutil.AssertEqual(t, failures, 1, "one failing task")
}

func TestWorkerPool_SubmitUntilSkipsQueuedTasks(t *testing.T) {
	pool := newPool(1)
	pool.Start()

	release := make(chan struct{})
	first := &funcTask{name: "first", fn: func(context.Context) error { <-release; return nil }}
	tasks := []Task{first}
	for i := 0; i < 5; i++ {
		tasks = append(tasks, &funcTask{name: fmt.Sprintf("queued-%d", i)})
	}

	close(release)
	results := pool.SubmitUntil(tasks, func(r TaskResult) bool { return r.Task.Name() == "first" })
	pool.Stop()

	testutil.AssertEqual(t, len(results), 1, "collection stops at the first accepted result")
	for _, task := range tasks[1:] {
		testutil.AssertFalse(t, task.(*funcTask).ran.Load(), task.Name()+" must not start after cancel")
	}
}

func TestWorkerPool_RunningTaskFinishesAfterCancel(t *testing.T) {
	pool := newPool(2)
	pool.Start()

	started := make(chan struct{})
	var finished atomic.Bool
	slow := &funcTask{name: "slow", fn: func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
		return nil
	}}
	fast := &funcTask{name: "fast", fn: func(context.Context) error { <-started; return nil }}

	pool.SubmitUntil([]Task{slow, fast}, func(r TaskResult) bool { return r.Task.Name() == "fast" })
	pool.Stop()

	testutil.AssertTrue(t, finished.Load(), "Stop waits for in-flight tasks")
}

func TestWorkerPool_ParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(WorkerPoolConfig{Workers: 1, Logger: logx.NewSilent(), Context: ctx})
	pool.Start()
	defer pool.Stop()

	block := &funcTask{name: "block", fn: func(ctx context.Context) error { <-ctx.Done(); return ctx.Err() }}
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	results := pool.Submit([]Task{block, &funcTask{name: "never"}})
	testutil.AssertTrue(t, len(results) < 2, "submit returns early on parent cancel")
}

func TestWorkerPool_StopIsIdempotent(t *testing.T) {
	pool := newPool(2)
	pool.Start()
	pool.Stop()
	pool.Stop()
}

func TestWorkerPool_ConcurrencyIsBounded(t *testing.T) {
	pool := newPool(3)
	pool.Start()
	defer pool.Stop()

	var mu sync.Mutex
	running, peak := 0, 0
	tasks := make([]Task, 12)
	for i := range tasks {
		tasks[i] = &funcTask{name: fmt.Sprintf("t%d", i), fn: func(context.Context) error {
			mu.Lock()
			running++
			peak = max(peak, running)
			mu.Unlock()
			time.Sleep(2 * time.Millisecond)
			mu.Lock()
			running--
			mu.Unlock()
			return nil
		}}
	}

	pool.Submit(tasks)
	testutil.AssertTrue(t, peak <= 3, fmt.Sprintf("peak concurrency %d should not exceed workers", peak))
}

func TestSchedulers(t *testing.T) {
	tasks := []Task{
		&funcTask{name: "a", weight: 10},
		&funcTask{name: "b", weight: 90},
		&funcTask{name: "c", weight: 10},
		&funcTask{name: "d", weight: 50},
	}

	names := func(ts []Task) []string {
		out := make([]string, len(ts))
		for i, t := range ts {
			out[i] = t.Name()
		}
		return out
	}

	testutil.AssertStrings(t, names(NewFIFOScheduler().Schedule(tasks)), []string{"a", "b", "c", "d"}, "fifo")
	testutil.AssertEqual(t, tasks[0].Name(), "a", "input not reordered")
}
