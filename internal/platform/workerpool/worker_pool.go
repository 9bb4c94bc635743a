// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"owaspkit/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task interface {
	// Execute ejecuta la tarea
	Execute(ctx context.Context) error

	// Weight retorna el peso/costo estimado de la tarea (0-100)
	Weight() int

	// Name retorna el nombre de la tarea
	Name() string
}

// Scheduler define la estrategia de scheduling.
type Scheduler interface {
	// Schedule ordena las tareas según la estrategia
	Schedule(tasks []Task) []Task

	// Name retorna el nombre del scheduler
	Name() string
}

// WorkerPool ejecuta tareas con un número fijo de goroutines. Una vez
// cancelado, las tareas que siguen en cola no se ejecutan; las que ya están
// corriendo terminan por su cuenta (cancelación cooperativa).
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger

	// Channels
	taskQueue chan Task
	results   chan TaskResult

	// Control
	wg       sync.WaitGroup // workers
	feeders  sync.WaitGroup // goroutines que alimentan taskQueue
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// TaskResult representa el resultado de una tarea.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
	WorkerID int
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger

	// Context padre; su cancelación detiene el pool. Default: context.Background()
	Context context.Context
}

// NewWorkerPool crea un nuevo worker pool.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	ctx, cancel := context.WithCancel(cfg.Context)

	return &WorkerPool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
		taskQueue: make(chan Task, cfg.Workers*2), // Buffer 2x workers
		results:   make(chan TaskResult, cfg.Workers*2),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start inicia el worker pool.
func (wp *WorkerPool) Start() {
	wp.logger.Debug("starting worker pool", "workers", wp.workers, "scheduler", wp.scheduler.Name())

	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// worker es el goroutine que procesa tareas.
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return

		case task, ok := <-wp.taskQueue:
			if !ok {
				return
			}
			// select elige al azar entre casos listos: una tarea recibida
			// después de Cancel no debe empezar.
			if wp.ctx.Err() != nil {
				wp.logger.Debug("task skipped, pool canceled", "worker_id", id, "task", task.Name())
				return
			}

			wp.executeTask(id, task)
		}
	}
}

// executeTask ejecuta una tarea individual.
func (wp *WorkerPool) executeTask(workerID int, task Task) {
	start := time.Now()

	wp.logger.Debug("executing task", "worker_id", workerID, "task", task.Name(), "weight", task.Weight())

	err := task.Execute(wp.ctx)
	duration := time.Since(start)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", task.Name(),
		"duration_ms", duration.Milliseconds(),
		"error", err != nil,
	)

	select {
	case wp.results <- TaskResult{Task: task, Error: err, Duration: duration, WorkerID: workerID}:
	case <-wp.ctx.Done():
		// Pool cancelado, nadie recolecta ya
	}
}

// Submit envía tareas al pool y espera todos sus resultados.
func (wp *WorkerPool) Submit(tasks []Task) []TaskResult {
	return wp.SubmitUntil(tasks, nil)
}

// SubmitUntil envía tareas al pool y recolecta resultados en orden de
// finalización. Si done retorna true para un resultado, el pool se cancela:
// las tareas aún en cola no se ejecutan y SubmitUntil retorna de inmediato.
func (wp *WorkerPool) SubmitUntil(tasks []Task, done func(TaskResult) bool) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	scheduled := wp.scheduler.Schedule(tasks)

	wp.logger.Debug("submitting tasks", "total", len(scheduled), "scheduler", wp.scheduler.Name())

	wp.feeders.Add(1)
	go func() {
		defer wp.feeders.Done()
		for _, task := range scheduled {
			select {
			case wp.taskQueue <- task:
			case <-wp.ctx.Done():
				return
			}
		}
	}()

	results := make([]TaskResult, 0, len(tasks))
	for len(results) < len(tasks) {
		select {
		case result := <-wp.results:
			results = append(results, result)
			if done != nil && done(result) {
				wp.cancel()
				return results
			}
		case <-wp.ctx.Done():
			wp.logger.Debug("pool canceled while waiting for results", "collected", len(results), "total", len(tasks))
			return results
		}
	}

	return results
}

// Stop detiene el worker pool y espera a que todos los workers terminen.
// Es seguro llamarlo más de una vez.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		wp.cancel()
		wp.feeders.Wait() // nadie más escribe en taskQueue
		close(wp.taskQueue)
		wp.wg.Wait()
		close(wp.results)
		wp.logger.Debug("worker pool stopped")
	})
}
