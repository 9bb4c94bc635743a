// internal/core/usecases/coordinator.go
package usecases

import (
	"context"
	"time"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/workerpool"
)

// Coordinator ejecuta los chunks de una búsqueda en un worker pool de tamaño
// fijo y se queda con el primer match que reporte cualquier worker.
type Coordinator struct {
	workers int
	base    logx.Logger
	logger  logx.Logger
	events  *eventBus
}

// CoordinatorOptions configura el coordinator.
type CoordinatorOptions struct {
	Workers   int
	Logger    logx.Logger
	Observers []ports.Notifier
}

// SearchOutcome resume una búsqueda concurrente.
type SearchOutcome struct {
	Found       bool
	Plaintext   string
	WinnerChunk string

	// Stats informativas
	Candidates int64
	Chunks     int
	Executed   int
	Skipped    int // chunks cancelados antes de empezar
}

// NewCoordinator crea un Coordinator.
func NewCoordinator(opts CoordinatorOptions) *Coordinator {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	logger := opts.Logger.With("component", "coordinator")
	return &Coordinator{
		workers: opts.Workers,
		base:    opts.Logger,
		logger:  logger,
		events:  newEventBus(opts.Observers, logger),
	}
}

// Run busca en chunks hasta agotarlos o hasta el primer match. El primer
// plaintext registrado es el resultado aunque otros workers encuentren
// colisiones después. Si ctx se cancela sin match, Run retorna ctx.Err().
// Run no retorna hasta que todos los workers terminaron.
func (c *Coordinator) Run(ctx context.Context, newMatcher MatcherFactory, chunks []ports.Chunk) (SearchOutcome, error) {
	outcome := SearchOutcome{Chunks: len(chunks)}

	// Falla antes de lanzar workers si el target no es utilizable.
	if _, err := newMatcher(); err != nil {
		return outcome, err
	}
	if len(chunks) == 0 {
		c.logger.Debug("nothing to search")
		return outcome, ctx.Err()
	}

	stop := &domain.StopSignal{}
	cell := &domain.ResultCell{}

	// Un timeout o SIGINT detiene a los workers igual que un match.
	stopOnCancel := context.AfterFunc(ctx, func() { stop.Set() })
	defer stopOnCancel()

	onWin := func(task *ChunkTask, plaintext string) {
		c.logger.Debug("match found", "chunk", task.Name(), "candidates", task.Candidates())
		c.events.notify(ctx, ports.NewEvent(
			ports.EventTypeMatchFound,
			task.Name(),
			ports.MatchFoundEvent{Chunk: task.Name(), Plaintext: plaintext},
		))
	}

	tasks := make([]*ChunkTask, len(chunks))
	poolTasks := make([]workerpool.Task, len(chunks))
	for i, chunk := range chunks {
		tasks[i] = NewChunkTask(chunk, newMatcher, stop, cell, onWin)
		poolTasks[i] = tasks[i]
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers: c.workers,
		Logger:  c.base,
		Context: ctx,
	})

	c.logger.Debug("search started", "chunks", len(chunks), "workers", c.workers)
	start := time.Now()

	// Chunks ya reportados; lo escribe solo la goroutine que recolecta.
	reported := make(map[*ChunkTask]bool, len(tasks))

	pool.Start()
	results := pool.SubmitUntil(poolTasks, func(r workerpool.TaskResult) bool {
		task := r.Task.(*ChunkTask)
		if r.Error != nil {
			c.logger.Warn("chunk failed", "chunk", task.Name(), "error", r.Error.Error())
		}
		c.chunkCompleted(ctx, task)
		reported[task] = true
		return task.Won()
	})
	pool.Stop()

	var firstErr error
	for _, r := range results {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
		}
	}

	for _, task := range tasks {
		outcome.Candidates += task.Candidates()
		if task.Executed() {
			outcome.Executed++
		} else {
			outcome.Skipped++
		}
		if task.Won() {
			outcome.WinnerChunk = task.Name()
		}
		// Chunks saltados, o que terminaron después del match
		if !reported[task] {
			c.chunkCompleted(ctx, task)
		}
	}
	c.events.wait()

	outcome.Plaintext, outcome.Found = cell.Get()

	c.logger.Debug("search finished",
		"found", outcome.Found,
		"candidates", outcome.Candidates,
		"executed", outcome.Executed,
		"skipped", outcome.Skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if outcome.Found {
		return outcome, nil
	}
	if err := ctx.Err(); err != nil {
		return outcome, err
	}
	return outcome, firstErr
}

// chunkCompleted emite el evento de fin de un chunk.
func (c *Coordinator) chunkCompleted(ctx context.Context, task *ChunkTask) {
	c.events.notify(ctx, ports.NewEvent(
		ports.EventTypeChunkCompleted,
		task.Name(),
		ports.ChunkCompletedEvent{
			Chunk:      task.Name(),
			Candidates: task.Candidates(),
			Matched:    task.Matched(),
			Skipped:    !task.Executed(),
			Duration:   task.Duration(),
		},
	))
}
