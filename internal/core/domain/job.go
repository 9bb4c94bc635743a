// internal/core/domain/job.go
package domain

import (
	"strings"

	"owaspkit/internal/platform/hashing"
)

// ErrUnsupportedAlgorithm is re-exported so callers only need the domain package.
var ErrUnsupportedAlgorithm = hashing.ErrUnsupportedAlgorithm

// Digest es el hash objetivo, normalizado a hex en minúsculas.
type Digest string

// NewDigest validates s as hex and lowercases it.
func NewDigest(s string) (Digest, error) {
	if _, err := hashing.DecodeDigest(s); err != nil {
		return "", wrapf(ErrInvalidDigest, "%v", err)
	}
	return Digest(strings.ToLower(strings.TrimSpace(s))), nil
}

// Equal compares against another hex digest ignoring case and surrounding space.
func (d Digest) Equal(other string) bool {
	return strings.EqualFold(string(d), strings.TrimSpace(other))
}

func (d Digest) String() string {
	return string(d)
}

// SourceParams son los parámetros específicos de cada modo.
type SourceParams struct {
	// Path del recurso (tabla o wordlist). Archivos .zip y bases SQLite se detectan por extensión.
	Path string

	// ArchivePassword para archivos .zip cifrados (opcional)
	ArchivePassword string

	// Charset del modo bruteforce, literal o preset ("@lower", "@digits", ...)
	Charset string

	// MaxLen longitud máxima de candidatos en bruteforce
	MaxLen int
}

// Job describe una ejecución completa. Se fija al inicio y no cambia.
type Job struct {
	Target    Digest
	Algorithm hashing.Algorithm
	Salt      string
	Mode      Mode
	Source    SourceParams
	Workers   int
}

// NewJob parses the textual inputs and validates the result. Every
// configuration error surfaces here, before any candidate is generated.
func NewJob(target, algorithm, salt, mode string, src SourceParams, workers int) (*Job, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	alg, err := hashing.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	digest, err := NewDigest(target)
	if err != nil {
		return nil, err
	}

	job := &Job{
		Target:    digest,
		Algorithm: alg,
		Salt:      salt,
		Mode:      m,
		Source:    src,
		Workers:   workers,
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// Validate verifica que el job sea ejecutable.
func (j Job) Validate() error {
	if !j.Mode.IsValid() {
		return wrapf(ErrUnknownMode, "%q", string(j.Mode))
	}
	if !j.Algorithm.Valid() {
		return wrapf(ErrUnsupportedAlgorithm, "%q", string(j.Algorithm))
	}
	if _, err := NewDigest(string(j.Target)); err != nil {
		return err
	}
	if j.Workers <= 0 {
		return wrapf(ErrInvalidWorkers, "got %d", j.Workers)
	}

	switch j.Mode {
	case ModeTable, ModeDictionary:
		if strings.TrimSpace(j.Source.Path) == "" {
			return wrapf(ErrMissingSource, "%s mode", j.Mode)
		}
	case ModeBruteForce:
		if j.Source.Charset == "" {
			return ErrEmptyCharset
		}
		if j.Source.MaxLen <= 0 {
			return wrapf(ErrInvalidMaxLen, "got %d", j.Source.MaxLen)
		}
	}

	// A digest of the wrong length can never match a computed one.
	if j.Mode.Hashes() && len(j.Target) != j.Algorithm.HexLen() {
		return wrapf(ErrInvalidDigest, "%s digests have %d hex chars, target has %d",
			j.Algorithm, j.Algorithm.HexLen(), len(j.Target))
	}

	return nil
}

// SaltApplied reports whether candidates are salted.
func (j Job) SaltApplied() bool {
	return j.Salt != ""
}
