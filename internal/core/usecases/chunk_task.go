// internal/core/usecases/chunk_task.go
package usecases

import (
	"context"
	"math/bits"
	"time"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
)

// CandidateMatcher compara candidatos contra el digest objetivo. Cada worker
// tiene el suyo; no necesita ser seguro para uso concurrente.
type CandidateMatcher interface {
	Match(candidate string) bool
}

// MatcherFactory crea un CandidateMatcher nuevo por worker.
type MatcherFactory func() (CandidateMatcher, error)

// ChunkTask adapta un ports.Chunk a workerpool.Task. Los campos de estado
// solo se leen después de que Execute terminó.
type ChunkTask struct {
	chunk      ports.Chunk
	newMatcher MatcherFactory
	stop       *domain.StopSignal
	cell       *domain.ResultCell
	onWin      func(task *ChunkTask, plaintext string)

	executed   bool
	candidates int64
	matched    bool
	won        bool
	duration   time.Duration
}

// NewChunkTask crea una ChunkTask. onWin se llama una sola vez por
// ejecución, desde el worker que ganó la asignación del resultado.
func NewChunkTask(
	chunk ports.Chunk,
	newMatcher MatcherFactory,
	stop *domain.StopSignal,
	cell *domain.ResultCell,
	onWin func(task *ChunkTask, plaintext string),
) *ChunkTask {
	return &ChunkTask{
		chunk:      chunk,
		newMatcher: newMatcher,
		stop:       stop,
		cell:       cell,
		onWin:      onWin,
	}
}

// Execute recorre el chunk. Consulta el StopSignal antes de cada candidato;
// el primer match del chunk termina el recorrido.
func (ct *ChunkTask) Execute(ctx context.Context) error {
	ct.executed = true
	start := time.Now()
	defer func() { ct.duration = time.Since(start) }()

	matcher, err := ct.newMatcher()
	if err != nil {
		return err
	}

	ct.chunk.Each(func(candidate string) bool {
		if ct.stop.IsSet() {
			return false
		}
		ct.candidates++

		if !matcher.Match(candidate) {
			return true
		}

		ct.matched = true
		if ct.cell.Set(candidate) {
			ct.won = true
			ct.stop.Set()
			if ct.onWin != nil {
				ct.onWin(ct, candidate)
			}
		}
		return false
	})

	return nil
}

// Weight crece con el logaritmo del tamaño del chunk; tamaños desconocidos
// pesan el máximo.
func (ct *ChunkTask) Weight() int {
	size := ct.chunk.Size()
	if size < 0 {
		return 100
	}
	return bits.Len64(uint64(size))
}

// Name retorna el nombre del chunk.
func (ct *ChunkTask) Name() string {
	return ct.chunk.Name()
}

// Won reports whether this task stored the run's result.
func (ct *ChunkTask) Won() bool { return ct.won }

// Executed reports whether a worker picked the task up.
func (ct *ChunkTask) Executed() bool { return ct.executed }

// Candidates retorna cuántos candidatos evaluó la tarea.
func (ct *ChunkTask) Candidates() int64 { return ct.candidates }

// Matched reports whether the chunk contained a match, even one that lost
// the race for the result.
func (ct *ChunkTask) Matched() bool { return ct.matched }

// Duration retorna cuánto tardó Execute.
func (ct *ChunkTask) Duration() time.Duration { return ct.duration }
