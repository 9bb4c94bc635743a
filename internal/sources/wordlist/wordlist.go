// Package wordlist implements dictionary mode: candidates are the filtered
// lines of a wordlist, split into contiguous chunks for the workers.
package wordlist

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/partition"
	"owaspkit/internal/sources/common"
)

const sourceName = "wordlist"

// WordlistSource es un ports.PartitionedSource respaldado por un archivo de
// texto o zip. Las palabras se cargan una vez, en orden.
type WordlistSource struct {
	logger   logx.Logger
	path     string
	password string

	mu     sync.Mutex
	words  []string
	loaded bool
}

// New crea una WordlistSource para path.
func New(logger logx.Logger, path, archivePassword string) *WordlistSource {
	return &WordlistSource{
		logger:   logger.With("source", sourceName),
		path:     path,
		password: archivePassword,
	}
}

// FromWords construye una fuente ya cargada (usado por tests y por el enumerator).
func FromWords(logger logx.Logger, words []string) *WordlistSource {
	s := New(logger, "", "")
	s.words = append([]string(nil), words...)
	s.loaded = true
	return s
}

// Name implementa ports.CandidateSource.
func (s *WordlistSource) Name() string { return sourceName }

// Mode implementa ports.CandidateSource.
func (s *WordlistSource) Mode() domain.Mode { return domain.ModeDictionary }

// Load lee y filtra el wordlist: recorta espacios, descarta líneas vacías y
// comentarios.
func (s *WordlistSource) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	words, err := LoadWords(ctx, s.path, s.password)
	if err != nil {
		return err
	}

	s.words, s.loaded = words, true
	s.logger.Debug("wordlist loaded", "path", s.path, "words", len(words))
	return nil
}

// LoadWords lee path aplicando las reglas de filtrado de wordlist.
func LoadWords(ctx context.Context, path, password string) ([]string, error) {
	words := make([]string, 0, 1024)
	// Las líneas demasiado largas se descartan como las vacías
	_, err := common.ReadLines(ctx, path, password, func(line string) bool {
		if word, ok := common.CleanWord(line); ok {
			words = append(words, word)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Words retorna las palabras cargadas. El slice no debe modificarse.
func (s *WordlistSource) Words() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words
}

// Partition divide el wordlist en min(n, len) chunks contiguos. Un wordlist
// vacío produce cero chunks.
func (s *WordlistSource) Partition(n int) ([]ports.Chunk, error) {
	if n <= 0 {
		return nil, fmt.Errorf("partition into %d chunks: %w", n, domain.ErrInvalidWorkers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, fmt.Errorf("wordlist %s not loaded", s.path)
	}

	parts := partition.Split(s.words, n)
	chunks := make([]ports.Chunk, len(parts))
	for i, part := range parts {
		chunks[i] = &chunk{name: sourceName + "-" + strconv.Itoa(i), words: part}
	}
	return chunks, nil
}

// Close libera las palabras cargadas.
func (s *WordlistSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path != "" {
		s.words, s.loaded = nil, false
	}
	return nil
}

// chunk es un subrango contiguo del wordlist.
type chunk struct {
	name  string
	words []string
}

func (c *chunk) Name() string { return c.name }
func (c *chunk) Size() int64  { return int64(len(c.words)) }

func (c *chunk) Each(visit func(string) bool) {
	for _, w := range c.words {
		if !visit(w) {
			return
		}
	}
}

var _ ports.PartitionedSource = (*WordlistSource)(nil)
