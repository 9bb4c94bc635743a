// internal/platform/ui/notifier.go
package ui

import (
	"context"
	"fmt"
	"sync"

	"owaspkit/internal/core/ports"
)

// SearchNotifier traduce los eventos de la búsqueda en actualizaciones de
// la tarea activa del presenter. Los eventos llegan de forma asíncrona y sin
// orden garantizado, así que solo actualiza texto; abrir y cerrar la tarea
// es cosa del llamador.
type SearchNotifier struct {
	presenter Presenter

	mu         sync.Mutex
	chunks     int
	completed  int
	candidates int64
}

// NewSearchNotifier crea el observer para p.
func NewSearchNotifier(p Presenter) *SearchNotifier {
	return &SearchNotifier{presenter: p}
}

// Notify implementa ports.Notifier.
func (n *SearchNotifier) Notify(_ context.Context, event ports.Event) error {
	switch data := event.Data.(type) {
	case ports.CrackStartedEvent:
		n.mu.Lock()
		n.chunks = data.Chunks
		n.mu.Unlock()
		n.presenter.UpdateTask(fmt.Sprintf("%s: %d chunks across %d workers", data.Job.Mode, data.Chunks, data.Job.Workers))

	case ports.ChunkCompletedEvent:
		n.mu.Lock()
		n.completed++
		n.candidates += data.Candidates
		text := fmt.Sprintf("%d/%d chunks done, %d candidates tried", n.completed, n.chunks, n.candidates)
		n.mu.Unlock()
		n.presenter.UpdateTask(text)

	case ports.MatchFoundEvent:
		n.presenter.UpdateTask("match found in " + data.Chunk)
	}
	return nil
}

// Close implementa ports.Notifier.
func (n *SearchNotifier) Close() error {
	return nil
}

var _ ports.Notifier = (*SearchNotifier)(nil)
