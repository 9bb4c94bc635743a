// internal/enumerator/payloads.go
package enumerator

import (
	"context"
	"strconv"

	"owaspkit/internal/sources/wordlist"
)

// RangePayloads genera los ids start..end (incluido).
func RangePayloads(start, end int) []string {
	if start > end {
		return nil
	}
	out := make([]string, 0, end-start+1)
	for id := start; id <= end; id++ {
		out = append(out, strconv.Itoa(id))
	}
	return out
}

// FilePayloads lee un archivo de payloads (.txt o .zip) con las mismas
// reglas que un wordlist: sin líneas vacías ni comentarios.
func FilePayloads(ctx context.Context, path, password string) ([]string, error) {
	return wordlist.LoadWords(ctx, path, password)
}
