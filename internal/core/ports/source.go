// internal/core/ports/source.go
package ports

import (
	"context"

	"owaspkit/internal/core/domain"
)

// CandidateSource es el port común de los tres modos (tabla, diccionario,
// bruteforce). Cada implementación además satisface LookupSource o
// PartitionedSource; el cracker elige la ruta por type assertion.
type CandidateSource interface {
	// Name retorna el nombre único de la fuente (ej: "table", "wordlist", "keyspace")
	Name() string

	// Mode retorna el modo que sirve la fuente
	Mode() domain.Mode

	// Load prepara la fuente. Es la única fase bloqueante (lectura de archivos);
	// los errores de recurso ausente envuelven domain.ErrSourceNotFound.
	Load(ctx context.Context) error

	// Close libera recursos (archivos, conexiones a la base)
	Close() error
}

// LookupSource resuelve el target con un escaneo secuencial, sin partición.
type LookupSource interface {
	CandidateSource

	// Lookup retorna el primer plaintext cuyo hash almacenado coincide con target.
	Lookup(ctx context.Context, target domain.Digest) (plaintext string, found bool, err error)
}

// PartitionedSource divide su espacio de candidatos en chunks disjuntos.
type PartitionedSource interface {
	CandidateSource

	// Partition retorna como máximo n chunks cuya unión es el espacio completo.
	Partition(n int) ([]Chunk, error)
}

// Chunk es un subrango disjunto del espacio de candidatos asignado a un worker.
type Chunk interface {
	// Name identifica el chunk en logs y eventos (ej: "wordlist-2")
	Name() string

	// Size retorna el número de candidatos del chunk, o -1 si no cabe en int64.
	Size() int64

	// Each visita los candidatos en orden y se detiene cuando visit retorna false.
	Each(visit func(candidate string) bool)
}

// SkipCounter es implementado por fuentes que descartan registros malformados.
type SkipCounter interface {
	Skipped() int64
}

// SourceMetadata describe una fuente registrada.
type SourceMetadata struct {
	Name        string
	Description string
	Mode        domain.Mode
	Sequential  bool // true para LookupSource
}
