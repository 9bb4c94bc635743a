// internal/enumerator/record.go
package enumerator

import (
	"sort"
	"strings"
	"time"
)

// Record es el resultado de un probe.
type Record struct {
	Index   int    `json:"index"` // posición del payload en la entrada
	Payload string `json:"payload"`
	URL     string `json:"url"`

	// Status es 0 cuando la petición no obtuvo respuesta
	Status int    `json:"status"`
	Body   string `json:"body,omitempty"`
	Error  string `json:"error,omitempty"`

	Duration time.Duration `json:"duration_ns"`
}

// Failed reporta si la petición no obtuvo respuesta.
func (r Record) Failed() bool {
	return r.Status == 0
}

// Report agrega los records de una ejecución, en el orden de los payloads.
type Report struct {
	Records  []Record
	Total    int // payloads de entrada
	ByStatus map[int]int
	Failed   int

	// Aborted indica que el circuit breaker cortó el resto de probes
	Aborted  bool
	Duration time.Duration
}

func newReport(total int) *Report {
	return &Report{Total: total, ByStatus: make(map[int]int)}
}

func (r *Report) add(rec Record) {
	r.Records = append(r.Records, rec)
	if rec.Failed() {
		r.Failed++
		return
	}
	r.ByStatus[rec.Status]++
}

// Skipped cuenta los payloads que nunca se enviaron.
func (r *Report) Skipped() int {
	return r.Total - len(r.Records)
}

// Statuses retorna los status observados en orden ascendente.
func (r *Report) Statuses() []int {
	out := make([]int, 0, len(r.ByStatus))
	for status := range r.ByStatus {
		out = append(out, status)
	}
	sort.Ints(out)
	return out
}

// EscapeBody deja el cuerpo en una sola línea: CRLF y LF pasan a "\n" literal.
func EscapeBody(body []byte) string {
	s := strings.ReplaceAll(string(body), "\r\n", `\n`)
	return strings.ReplaceAll(s, "\n", `\n`)
}
