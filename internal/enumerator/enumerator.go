// internal/enumerator/enumerator.go
package enumerator

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/httpclient"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/resilience"
	"owaspkit/internal/platform/validator"
	"owaspkit/internal/platform/workerpool"
)

// Enumerator envía un probe por payload contra un endpoint con marcador {}
// y registra el status de cada respuesta.
type Enumerator struct {
	prober  *prober
	workers int
	logger  logx.Logger
	base    logx.Logger

	onRecord func(Record)
	now      func() time.Time
}

// Options configura el enumerator.
type Options struct {
	Request RequestSpec

	// Workers concurrentes (default 10)
	Workers int

	// Client HTTP; default httpclient.DefaultConfig()
	Client *httpclient.Client

	// Breaker corta el resto de probes tras fallos de conexión seguidos.
	// Si es nil se crea uno con BreakerThreshold.
	Breaker          *resilience.CircuitBreaker
	BreakerThreshold int

	// SaveBody guarda el cuerpo de cada respuesta en el Record
	SaveBody bool

	Logger logx.Logger

	// OnRecord se llama desde los workers por cada probe terminado
	OnRecord func(Record)

	Now func() time.Time
}

// New valida la petición y crea un Enumerator.
func New(opts Options) (*Enumerator, error) {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Workers <= 0 {
		opts.Workers = 10
	}

	spec := opts.Request
	spec.Method = validator.NormalizeMethod(spec.Method)
	if !validator.IsTemplateURL(spec.URL) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "url %q", spec.URL)
	}
	if !validator.HasPlaceholder(spec.URL) && !validator.HasPlaceholder(spec.Body) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "no %s placeholder in url or body", validator.Placeholder)
	}
	if !validator.IsHTTPMethod(spec.Method) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "method %q", spec.Method)
	}

	if opts.Client == nil {
		client, err := httpclient.New(httpclient.DefaultConfig(), opts.Logger)
		if err != nil {
			return nil, err
		}
		opts.Client = client
	}
	if opts.Breaker == nil {
		opts.Breaker = resilience.NewCircuitBreaker(resilience.Config{
			FailureThreshold: opts.BreakerThreshold,
		})
	}

	return &Enumerator{
		prober: &prober{
			client:   opts.Client,
			breaker:  opts.Breaker,
			spec:     spec,
			saveBody: opts.SaveBody,
			now:      opts.Now,
		},
		workers:  opts.Workers,
		logger:   opts.Logger.With("component", "enumerator"),
		base:     opts.Logger,
		onRecord: opts.OnRecord,
		now:      opts.Now,
	}, nil
}

// Run envía un probe por payload. El Report conserva el orden de entrada.
// Si ctx termina antes, retorna el Report parcial junto con ctx.Err().
func (e *Enumerator) Run(ctx context.Context, payloads []string) (*Report, error) {
	start := e.now()
	report := newReport(len(payloads))

	e.logger.Info("enumeration started",
		"url", e.prober.spec.URL,
		"method", e.prober.spec.Method,
		"payloads", len(payloads),
		"workers", e.workers,
	)

	if len(payloads) > 0 {
		e.dispatch(ctx, payloads, report)
	}
	report.Duration = e.now().Sub(start)

	if report.Aborted {
		stats := e.prober.breaker.Stats()
		e.logger.Warn("enumeration aborted, circuit breaker open",
			"sent", len(report.Records),
			"skipped", report.Skipped(),
			"consecutive_failures", stats.Failures,
			"opened_at", stats.OpenedAt.Format(time.RFC3339),
		)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	e.logger.Info("enumeration completed",
		"sent", len(report.Records),
		"failed", report.Failed,
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report, nil
}

func (e *Enumerator) dispatch(ctx context.Context, payloads []string, report *Report) {
	var rejected atomic.Bool

	probes := make([]*probeTask, len(payloads))
	tasks := make([]workerpool.Task, len(payloads))
	for i, payload := range payloads {
		probes[i] = &probeTask{enum: e, index: i, payload: payload, rejected: &rejected}
		tasks[i] = probes[i]
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers: min(e.workers, len(payloads)),
		Logger:  e.base,
		Context: ctx,
	})
	pool.Start()
	pool.SubmitUntil(tasks, func(r workerpool.TaskResult) bool {
		return errors.Is(r.Error, resilience.ErrCircuitOpen)
	})
	pool.Stop()

	// Stop espera a los workers: los campos de cada probeTask ya son visibles
	for _, p := range probes {
		if p.sent {
			report.add(p.record)
		}
	}
	report.Aborted = rejected.Load()
}

// probeTask adapta un payload a workerpool.Task.
type probeTask struct {
	enum     *Enumerator
	index    int
	payload  string
	rejected *atomic.Bool

	record Record
	sent   bool
}

func (t *probeTask) Name() string { return "probe-" + strconv.Itoa(t.index) }
func (t *probeTask) Weight() int  { return 1 }

func (t *probeTask) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec, err := t.enum.prober.probe(ctx, t.index, t.payload)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			t.rejected.Store(true)
		}
		return err
	}

	t.record = rec
	t.sent = true

	if rec.Failed() {
		t.enum.logger.Debug("probe failed", "payload", rec.Payload, "url", rec.URL, "error", rec.Error)
	} else {
		t.enum.logger.Debug("probe", "payload", rec.Payload, "status", rec.Status, "url", rec.URL)
	}
	if t.enum.onRecord != nil {
		t.enum.onRecord(rec)
	}
	return nil
}
