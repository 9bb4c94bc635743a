// Package table implements the precomputed-table lookup mode. Records are
// "plaintext:hash" lines read from a text file or zip archive, or rows of a
// SQLite "rainbow" table.
package table

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/sources/common"
)

const sourceName = "table"

// record es una entrada plaintext:hash. El plaintext puede ser vacío.
type record struct {
	plaintext string
	hash      string
}

// ParseRecord separa una línea en el primer ':'. Las líneas sin ':' son
// ErrMalformedRecord.
func ParseRecord(line string) (plaintext, hash string, err error) {
	line = strings.TrimSpace(line)
	plaintext, hash, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("%q: %w", line, domain.ErrMalformedRecord)
	}
	return plaintext, strings.TrimSpace(hash), nil
}

// backend abstrae el almacenamiento de la tabla.
type backend interface {
	load(ctx context.Context) error
	lookup(ctx context.Context, target domain.Digest) (string, bool, error)
	size() int64
	close() error
}

// TableSource es un ports.LookupSource. El escaneo es secuencial.
type TableSource struct {
	logger logx.Logger
	path   string
	kind   common.ResourceKind

	mu      sync.Mutex
	backend backend
	loaded  bool
}

// New crea una TableSource para path. El formato se elige por extensión.
func New(logger logx.Logger, path, archivePassword string) *TableSource {
	kind := common.DetectKind(path)
	logger = logger.With("source", sourceName, "backend", kind.String())

	var b backend
	if kind == common.KindSQLite {
		b = &sqliteBackend{path: path, logger: logger}
	} else {
		b = &fileBackend{path: path, password: archivePassword, logger: logger}
	}

	return &TableSource{logger: logger, path: path, kind: kind, backend: b}
}

// Name implementa ports.CandidateSource.
func (s *TableSource) Name() string { return sourceName }

// Mode implementa ports.CandidateSource.
func (s *TableSource) Mode() domain.Mode { return domain.ModeTable }

// Load lee la tabla completa (texto o zip) o abre la base SQLite.
func (s *TableSource) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}
	if err := common.Stat(s.path); err != nil {
		return err
	}
	if err := s.backend.load(ctx); err != nil {
		return err
	}
	s.loaded = true

	s.logger.Debug("table loaded", "path", s.path, "records", s.backend.size(), "skipped", s.Skipped())
	return nil
}

// Lookup retorna el plaintext del primer registro cuyo hash coincide con
// target, sin distinguir mayúsculas.
func (s *TableSource) Lookup(ctx context.Context, target domain.Digest) (string, bool, error) {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		if err := s.Load(ctx); err != nil {
			return "", false, err
		}
	}
	return s.backend.lookup(ctx, target)
}

// Size retorna el número de registros válidos cargados.
func (s *TableSource) Size() int64 { return s.backend.size() }

// Skipped implementa ports.SkipCounter.
func (s *TableSource) Skipped() int64 {
	if fb, ok := s.backend.(*fileBackend); ok {
		return fb.skipped
	}
	return 0
}

// Close libera la conexión a la base, si la hay.
func (s *TableSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	return s.backend.close()
}

var (
	_ ports.LookupSource = (*TableSource)(nil)
	_ ports.SkipCounter  = (*TableSource)(nil)
)
