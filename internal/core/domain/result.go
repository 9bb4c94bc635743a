// internal/core/domain/result.go
package domain

import (
	"time"

	"owaspkit/internal/platform/hashing"
)

// NoMatchMessage is what a negative run reports.
const NoMatchMessage = "no match found"

// Result es el resultado terminal de una ejecución: el plaintext
// encontrado o un "no match" explícito. No match no es un error.
type Result struct {
	Outcome   Outcome           `json:"outcome"`
	Plaintext string            `json:"plaintext,omitempty"`
	Target    Digest            `json:"target"`
	Algorithm hashing.Algorithm `json:"algorithm"`
	Mode      Mode              `json:"mode"`
	Salted    bool              `json:"salted"`

	// Stats informativas
	Candidates int64         `json:"candidates"`
	Chunks     int           `json:"chunks"`
	Skipped    int64         `json:"skipped_records,omitempty"`
	Workers    int           `json:"workers"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
}

// Found builds a positive result for job.
func Found(job Job, plaintext string) *Result {
	r := newResult(job)
	r.Outcome = OutcomeFound
	r.Plaintext = plaintext
	return r
}

// NoMatch builds the explicit negative result for job.
func NoMatch(job Job) *Result {
	r := newResult(job)
	r.Outcome = OutcomeNoMatch
	return r
}

func newResult(job Job) *Result {
	return &Result{
		Target:    job.Target,
		Algorithm: job.Algorithm,
		Mode:      job.Mode,
		Salted:    job.SaltApplied(),
		Workers:   job.Workers,
	}
}

// IsFound reports whether a plaintext was recovered.
func (r *Result) IsFound() bool {
	return r != nil && r.Outcome == OutcomeFound
}

// String is exactly the plaintext, or exactly NoMatchMessage.
func (r *Result) String() string {
	if r.IsFound() {
		return r.Plaintext
	}
	return NoMatchMessage
}

// Finalize stamps the duration measured from StartedAt.
func (r *Result) Finalize(now time.Time) {
	if !r.StartedAt.IsZero() {
		r.Duration = now.Sub(r.StartedAt)
	}
}
