// internal/core/ports/notifier.go
package ports

import (
	"context"
	"time"

	"owaspkit/internal/core/domain"
)

// Notifier es el port para notificaciones de eventos del sistema.
// Implementa el patrón Observer para desacoplar la lógica de búsqueda
// de la presentación (spinner, progreso, logs).
type Notifier interface {
	// Notify envía una notificación para un evento
	Notify(ctx context.Context, event Event) error

	// Close cierra el notifier y libera recursos
	Close() error
}

// Event representa un evento del sistema.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Source fuente o chunk que generó el evento
	Source string

	// Data datos específicos del evento
	Data interface{}
}

// EventType define los tipos de eventos del sistema.
type EventType string

const (
	// Crack events
	EventTypeCrackStarted   EventType = "crack.started"
	EventTypeCrackCompleted EventType = "crack.completed"
	EventTypeCrackFailed    EventType = "crack.failed"

	// Search events
	EventTypeChunkCompleted EventType = "chunk.completed"
	EventTypeMatchFound     EventType = "match.found"
)

// NewEvent crea un nuevo evento.
func NewEvent(eventType EventType, source string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// CrackStartedEvent datos para el inicio de una ejecución.
type CrackStartedEvent struct {
	Job    domain.Job
	Chunks int
}

// ChunkCompletedEvent datos emitidos cuando un worker termina su chunk.
type ChunkCompletedEvent struct {
	Chunk      string
	Candidates int64
	Matched    bool
	Skipped    bool // cancelado antes de empezar
	Duration   time.Duration
}

// MatchFoundEvent datos del primer match. Solo se emite una vez por ejecución.
type MatchFoundEvent struct {
	Chunk     string
	Plaintext string
}

// CrackCompletedEvent datos del final de una ejecución.
type CrackCompletedEvent struct {
	Result *domain.Result
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(ctx context.Context, event Event) error

// Notify implementa Notifier.
func (f NotifierFunc) Notify(ctx context.Context, event Event) error { return f(ctx, event) }

// Close implementa Notifier.
func (f NotifierFunc) Close() error { return nil }
