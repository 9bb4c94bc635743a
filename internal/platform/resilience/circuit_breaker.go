// internal/platform/resilience/circuit_breaker.go
package resilience

import (
	"sync"
	"time"

	"owaspkit/internal/platform/errors"
)

// ErrCircuitOpen se retorna cuando el breaker rechaza una operación.
var ErrCircuitOpen = errors.Wrap(errors.ErrServiceUnavailable, "circuit breaker is open")

// State representa el estado del circuit breaker.
type State int

const (
	StateClosed   State = iota // operación normal
	StateOpen                  // rechazando operaciones
	StateHalfOpen              // probando si el endpoint se recuperó
)

// String retorna una representación legible del estado.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker corta las operaciones contra un endpoint que falla de forma
// consecutiva. Solo cuentan los fallos de transporte; una respuesta HTTP,
// sea cual sea su status, es un éxito.
type CircuitBreaker struct {
	mu           sync.Mutex
	state        State
	failures     int // fallos consecutivos (closed) o en la prueba (half-open)
	trials       int // operaciones admitidas en half-open
	successes    int
	openedAt     time.Time
	rejected     int64
	now          func() time.Time

	failureThreshold int
	cooldown         time.Duration
	halfOpenMax      int
}

// Config configura el breaker. Los ceros toman valores por defecto.
type Config struct {
	// FailureThreshold fallos consecutivos que abren el circuito (default 5)
	FailureThreshold int

	// Cooldown tiempo abierto antes de probar de nuevo (default 60s)
	Cooldown time.Duration

	// HalfOpenMax operaciones de prueba en half-open (default 1)
	HalfOpenMax int
}

// NewCircuitBreaker crea un breaker cerrado.
func NewCircuitBreaker(cfg Config) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 60 * time.Second
	}
	if cfg.HalfOpenMax <= 0 {
		cfg.HalfOpenMax = 1
	}

	return &CircuitBreaker{
		state:            StateClosed,
		now:              time.Now,
		failureThreshold: cfg.FailureThreshold,
		cooldown:         cfg.Cooldown,
		halfOpenMax:      cfg.HalfOpenMax,
	}
}

// Allow reporta si una operación puede pasar. En half-open admite como
// máximo HalfOpenMax operaciones de prueba.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.cooldown {
			cb.rejected++
			return false
		}
		cb.state = StateHalfOpen
		cb.trials, cb.successes, cb.failures = 1, 0, 0
		return true

	case StateHalfOpen:
		if cb.trials < cb.halfOpenMax {
			cb.trials++
			return true
		}
		cb.rejected++
		return false
	}
	return false
}

// RecordSuccess registra una operación exitosa.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.halfOpenMax {
			cb.state = StateClosed
			cb.failures, cb.successes, cb.trials = 0, 0, 0
		}
	}
}

// RecordFailure registra un fallo. En half-open reabre el circuito de inmediato.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.failureThreshold {
			cb.open()
		}
	case StateHalfOpen:
		cb.open()
	}
}

// open requiere cb.mu.
func (cb *CircuitBreaker) open() {
	cb.state = StateOpen
	cb.openedAt = cb.now()
	cb.failures, cb.successes, cb.trials = 0, 0, 0
}

// Execute corre fn si el breaker lo permite y registra el resultado. isFailure
// decide qué errores cuentan como fallo; nil cuenta cualquier error.
func (cb *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !cb.Allow() {
		return ErrCircuitOpen
	}

	err := fn()
	if err != nil && (isFailure == nil || isFailure(err)) {
		cb.RecordFailure()
	} else {
		cb.RecordSuccess()
	}
	return err
}

// State retorna el estado actual del circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Stats retorna estadísticas del circuit breaker.
func (cb *CircuitBreaker) Stats() CircuitBreakerStats {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return CircuitBreakerStats{
		State:    cb.state,
		Failures: cb.failures,
		Rejected: cb.rejected,
		OpenedAt: cb.openedAt,
	}
}

// CircuitBreakerStats contiene estadísticas del circuit breaker.
type CircuitBreakerStats struct {
	State    State
	Failures int
	Rejected int64
	OpenedAt time.Time
}
