// internal/platform/registry/source_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
)

// SourceRegistry gestiona el registro y construcción de candidate sources.
// Implementa el patrón Registry + Factory: cada paquete de sources se
// registra en init() bajo el modo que sirve y el cracker lo construye por
// nombre de modo, sin conocer el paquete concreto.
type SourceRegistry struct {
	mu        sync.RWMutex
	factories map[domain.Mode]SourceFactory
	metadata  map[domain.Mode]ports.SourceMetadata
	logger    logx.Logger
}

// SourceFactory es una función que crea una instancia de CandidateSource.
type SourceFactory func(params domain.SourceParams, logger logx.Logger) (ports.CandidateSource, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *SourceRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *SourceRegistry {
	once.Do(func() {
		globalRegistry = NewSourceRegistry(logx.New())
	})
	return globalRegistry
}

// NewSourceRegistry crea un nuevo registry de sources.
func NewSourceRegistry(logger logx.Logger) *SourceRegistry {
	return &SourceRegistry{
		factories: make(map[domain.Mode]SourceFactory),
		metadata:  make(map[domain.Mode]ports.SourceMetadata),
		logger:    logger.With("component", "source-registry"),
	}
}

// Register registra una source factory para un modo.
// Típicamente llamado desde init() de cada source package.
func (r *SourceRegistry) Register(mode domain.Mode, factory SourceFactory, meta ports.SourceMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !mode.IsValid() {
		return fmt.Errorf("cannot register source for mode %q: %w", mode, domain.ErrUnknownMode)
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for mode %s", mode)
	}

	if _, exists := r.factories[mode]; exists {
		return fmt.Errorf("a source for mode %s is already registered", mode)
	}

	meta.Mode = mode
	r.factories[mode] = factory
	r.metadata[mode] = meta
	r.logger.Debug("source registered", "mode", mode, "name", meta.Name)

	return nil
}

// MustRegister es Register para init(); un fallo es un error de programación.
func (r *SourceRegistry) MustRegister(mode domain.Mode, factory SourceFactory, meta ports.SourceMetadata) {
	if err := r.Register(mode, factory, meta); err != nil {
		panic(err)
	}
}

// Build construye la source del modo pedido.
func (r *SourceRegistry) Build(mode domain.Mode, params domain.SourceParams, logger logx.Logger) (ports.CandidateSource, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	r.mu.RLock()
	factory, exists := r.factories[mode]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("no source registered for mode %q: %w", mode, domain.ErrUnknownMode)
	}

	source, err := factory(params, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s source: %w", mode, err)
	}

	r.logger.Debug("source built", "mode", mode, "name", source.Name())
	return source, nil
}

// List retorna los modos registrados, ordenados.
func (r *SourceRegistry) List() []domain.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]domain.Mode, 0, len(r.factories))
	for mode := range r.factories {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// GetMetadata retorna el metadata de la source de un modo.
func (r *SourceRegistry) GetMetadata(mode domain.Mode) (ports.SourceMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[mode]
	return meta, exists
}

// IsRegistered verifica si hay una source para el modo.
func (r *SourceRegistry) IsRegistered(mode domain.Mode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[mode]
	return exists
}

// Clear elimina todas las sources registradas (útil para testing).
func (r *SourceRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[domain.Mode]SourceFactory)
	r.metadata = make(map[domain.Mode]ports.SourceMetadata)
}
