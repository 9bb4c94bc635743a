// Package keyspace implements brute-force mode: every string of length
// 1..MaxLen over a charset, generated lazily and split by first character.
package keyspace

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/partition"
)

const sourceName = "keyspace"

// KeyspaceSource es un ports.PartitionedSource que nunca materializa el
// espacio de candidatos. Los caracteres repetidos del charset se conservan.
type KeyspaceSource struct {
	logger  logx.Logger
	charset []rune
	maxLen  int
}

// New valida charset y maxLen. charset puede ser un preset ("@lower").
func New(logger logx.Logger, charset string, maxLen int) (*KeyspaceSource, error) {
	runes := []rune(ResolveCharset(charset))
	if len(runes) == 0 {
		return nil, domain.ErrEmptyCharset
	}
	if maxLen <= 0 {
		return nil, fmt.Errorf("got %d: %w", maxLen, domain.ErrInvalidMaxLen)
	}

	return &KeyspaceSource{
		logger:  logger.With("source", sourceName),
		charset: runes,
		maxLen:  maxLen,
	}, nil
}

// Name implementa ports.CandidateSource.
func (s *KeyspaceSource) Name() string { return sourceName }

// Mode implementa ports.CandidateSource.
func (s *KeyspaceSource) Mode() domain.Mode { return domain.ModeBruteForce }

// Load no bloquea: el keyspace se genera bajo demanda.
func (s *KeyspaceSource) Load(ctx context.Context) error {
	s.logger.Debug("keyspace ready", "charset_len", len(s.charset), "max_len", s.maxLen, "size", s.Size())
	return ctx.Err()
}

// Close implementa ports.CandidateSource.
func (s *KeyspaceSource) Close() error { return nil }

// Charset returns the resolved charset.
func (s *KeyspaceSource) Charset() string { return string(s.charset) }

// Size retorna el total de candidatos, o -1 si no cabe en int64.
func (s *KeyspaceSource) Size() int64 {
	return Size(int64(len(s.charset)), len(s.charset), s.maxLen)
}

// Partition divide las posiciones del charset en min(n, len(charset))
// subconjuntos contiguos de primer carácter.
func (s *KeyspaceSource) Partition(n int) ([]ports.Chunk, error) {
	if n <= 0 {
		return nil, fmt.Errorf("partition into %d chunks: %w", n, domain.ErrInvalidWorkers)
	}

	ranges := partition.Ranges(len(s.charset), n)
	chunks := make([]ports.Chunk, len(ranges))
	for i, r := range ranges {
		chunks[i] = &chunk{
			name:    sourceName + "-" + strconv.Itoa(i),
			first:   s.charset[r.Start:r.End:r.End],
			charset: s.charset,
			maxLen:  s.maxLen,
		}
	}
	return chunks, nil
}

// Size cuenta las cadenas de longitud 1..maxLen cuyo primer carácter
// tiene firstCount opciones y el resto charsetLen: firstCount * sum c^(l-1).
// Retorna -1 si el resultado no cabe en int64.
func Size(firstCount int64, charsetLen, maxLen int) int64 {
	if firstCount <= 0 || charsetLen <= 0 || maxLen <= 0 {
		return 0
	}

	c := int64(charsetLen)
	var sum, pow int64 = 0, 1 // pow = c^(l-1)
	for l := 1; l <= maxLen; l++ {
		if sum > math.MaxInt64-pow {
			return -1
		}
		sum += pow
		if l < maxLen {
			if pow > math.MaxInt64/c {
				return -1
			}
			pow *= c
		}
	}

	if sum > math.MaxInt64/firstCount {
		return -1
	}
	return sum * firstCount
}

// chunk enumera, para cada longitud en orden, las cadenas cuyo primer
// carácter está en first y el resto recorre charset como un odómetro.
type chunk struct {
	name    string
	first   []rune
	charset []rune
	maxLen  int
}

func (c *chunk) Name() string { return c.name }

func (c *chunk) Size() int64 {
	return Size(int64(len(c.first)), len(c.charset), c.maxLen)
}

func (c *chunk) Each(visit func(string) bool) {
	buf := make([]rune, c.maxLen)
	idx := make([]int, c.maxLen)

	for length := 1; length <= c.maxLen; length++ {
		for _, f := range c.first {
			buf[0] = f
			for p := 1; p < length; p++ {
				idx[p] = 0
				buf[p] = c.charset[0]
			}

			for {
				if !visit(string(buf[:length])) {
					return
				}
				if !c.advance(buf, idx, length) {
					break
				}
			}
		}
	}
}

// advance incrementa las posiciones 1..length-1 como un odómetro. Retorna
// false cuando da la vuelta completa.
func (c *chunk) advance(buf []rune, idx []int, length int) bool {
	for p := length - 1; p >= 1; p-- {
		idx[p]++
		if idx[p] < len(c.charset) {
			buf[p] = c.charset[idx[p]]
			return true
		}
		idx[p] = 0
		buf[p] = c.charset[0]
	}
	return false
}

var _ ports.PartitionedSource = (*KeyspaceSource)(nil)
