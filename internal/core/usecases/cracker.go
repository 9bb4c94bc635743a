// internal/core/usecases/cracker.go
package usecases

import (
	"context"
	"fmt"
	"time"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/hashing"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/registry"
)

// Cracker resuelve un Job: construye la source del modo, la carga y elige
// entre el escaneo secuencial (tabla) o la búsqueda concurrente.
type Cracker struct {
	registry  *registry.SourceRegistry
	logger    logx.Logger
	base      logx.Logger
	observers []ports.Notifier
	now       func() time.Time
}

// CrackerOptions configura el cracker.
type CrackerOptions struct {
	// Registry de sources; default registry.Global()
	Registry  *registry.SourceRegistry
	Logger    logx.Logger
	Observers []ports.Notifier

	// Now permite fijar el reloj en tests
	Now func() time.Time
}

// NewCracker crea un Cracker.
func NewCracker(opts CrackerOptions) *Cracker {
	if opts.Registry == nil {
		opts.Registry = registry.Global()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Cracker{
		registry:  opts.Registry,
		logger:    opts.Logger.With("component", "cracker"),
		base:      opts.Logger,
		observers: opts.Observers,
		now:       opts.Now,
	}
}

// Crack ejecuta job. Retorna un Result con Outcome found o no_match; los
// errores son de configuración, de recursos o de cancelación.
func (c *Cracker) Crack(ctx context.Context, job domain.Job) (*domain.Result, error) {
	events := newEventBus(c.observers, c.logger)
	defer events.wait()

	result, err := c.crack(ctx, job, events)
	if err != nil {
		c.logger.Debug("crack failed", "mode", job.Mode, "error", err.Error())
		events.notify(ctx, ports.NewEvent(ports.EventTypeCrackFailed, "cracker", err))
		return nil, err
	}

	c.logger.Info("crack completed",
		"outcome", result.Outcome,
		"mode", result.Mode,
		"candidates", result.Candidates,
		"duration_ms", result.Duration.Milliseconds(),
	)
	events.notify(ctx, ports.NewEvent(ports.EventTypeCrackCompleted, "cracker",
		ports.CrackCompletedEvent{Result: result}))

	return result, nil
}

func (c *Cracker) crack(ctx context.Context, job domain.Job, events *eventBus) (*domain.Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	oracle, err := hashing.New(job.Algorithm, job.Salt)
	if err != nil {
		return nil, err
	}

	source, err := c.registry.Build(job.Mode, job.Source, c.base)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := source.Close(); cerr != nil {
			c.logger.Warn("failed to close source", "source", source.Name(), "error", cerr.Error())
		}
	}()

	startedAt := c.now()

	if err := source.Load(ctx); err != nil {
		return nil, err
	}

	var result *domain.Result
	switch s := source.(type) {
	case ports.LookupSource:
		events.notify(ctx, ports.NewEvent(ports.EventTypeCrackStarted, "cracker",
			ports.CrackStartedEvent{Job: job, Chunks: 1}))

		result, err = c.lookup(ctx, job, s)

	case ports.PartitionedSource:
		result, err = c.search(ctx, job, oracle, s, events)

	default:
		return nil, fmt.Errorf("source %s supports neither lookup nor partitioning", source.Name())
	}
	if err != nil {
		return nil, err
	}

	if counter, ok := source.(ports.SkipCounter); ok {
		result.Skipped = counter.Skipped()
	}
	result.StartedAt = startedAt
	result.Finalize(c.now())

	return result, nil
}

// lookup recorre la tabla en orden; no hay concurrencia.
func (c *Cracker) lookup(ctx context.Context, job domain.Job, source ports.LookupSource) (*domain.Result, error) {
	c.logger.Info("table lookup started", "source", source.Name(), "target", job.Target)

	plaintext, found, err := source.Lookup(ctx, job.Target)
	if err != nil {
		return nil, err
	}

	var result *domain.Result
	if found {
		result = domain.Found(job, plaintext)
	} else {
		result = domain.NoMatch(job)
	}
	result.Chunks = 1
	return result, nil
}

// search reparte los chunks de la source entre los workers.
func (c *Cracker) search(
	ctx context.Context,
	job domain.Job,
	oracle *hashing.Oracle,
	source ports.PartitionedSource,
	events *eventBus,
) (*domain.Result, error) {
	chunks, err := source.Partition(job.Workers)
	if err != nil {
		return nil, err
	}

	c.logger.Info("search started",
		"source", source.Name(),
		"algorithm", job.Algorithm,
		"salted", job.SaltApplied(),
		"chunks", len(chunks),
		"workers", job.Workers,
	)
	events.notify(ctx, ports.NewEvent(ports.EventTypeCrackStarted, "cracker",
		ports.CrackStartedEvent{Job: job, Chunks: len(chunks)}))

	target := job.Target.String()
	newMatcher := func() (CandidateMatcher, error) {
		return oracle.Matcher(target)
	}

	coordinator := NewCoordinator(CoordinatorOptions{
		Workers:   job.Workers,
		Logger:    c.base,
		Observers: c.observers,
	})

	outcome, err := coordinator.Run(ctx, newMatcher, chunks)
	if err != nil {
		return nil, err
	}

	var result *domain.Result
	if outcome.Found {
		result = domain.Found(job, outcome.Plaintext)
	} else {
		result = domain.NoMatch(job)
	}
	result.Candidates = outcome.Candidates
	result.Chunks = outcome.Chunks
	return result, nil
}
