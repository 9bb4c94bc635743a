// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
)

// sliceChunk es un ports.Chunk fijo para tests del coordinator.
type sliceChunk struct {
	name       string
	candidates []string
}

func (c *sliceChunk) Name() string { return c.name }
func (c *sliceChunk) Size() int64  { return int64(len(c.candidates)) }
func (c *sliceChunk) Each(visit func(string) bool) {
	for _, s := range c.candidates {
		if !visit(s) {
			return
		}
	}
}

// matcherFunc adapta una función a CandidateMatcher.
type matcherFunc func(candidate string) bool

func (f matcherFunc) Match(candidate string) bool { return f(candidate) }

func factoryOf(f func(string) bool) MatcherFactory {
	return func() (CandidateMatcher, error) { return matcherFunc(f), nil }
}

// mockNotifier es un mock de ports.Notifier para tests
type mockNotifier struct {
	mu         sync.Mutex
	notifyFunc func(ctx context.Context, event ports.Event) error
	events     []ports.Event
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{events: []ports.Event{}}
}

func (m *mockNotifier) Notify(ctx context.Context, event ports.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, event)
	}
	return nil
}

func (m *mockNotifier) Close() error { return nil }

// getEventsByType returns events filtered by type
func (m *mockNotifier) getEventsByType(eventType ports.EventType) []ports.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var filtered []ports.Event
	for _, e := range m.events {
		if e.Type == eventType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// mockLookupSource es un ports.LookupSource en memoria.
type mockLookupSource struct {
	records map[domain.Digest]string
	loadErr error
	skipped int64
	closed  bool
}

func (m *mockLookupSource) Name() string                   { return "mock-table" }
func (m *mockLookupSource) Mode() domain.Mode              { return domain.ModeTable }
func (m *mockLookupSource) Load(ctx context.Context) error { return m.loadErr }
func (m *mockLookupSource) Close() error                   { m.closed = true; return nil }
func (m *mockLookupSource) Skipped() int64                 { return m.skipped }

func (m *mockLookupSource) Lookup(ctx context.Context, target domain.Digest) (string, bool, error) {
	p, ok := m.records[target]
	return p, ok, nil
}
