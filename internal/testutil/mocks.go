// internal/testutil/mocks.go
package testutil

import (
	"bytes"
	"sync"
)

// Nota: Los mocks específicos de domain/ports están en sus respectivos paquetes
// Este archivo contiene solo utilidades genéricas sin dependencias circulares

// SafeBuffer es un io.Writer seguro para goroutines; útil como destino de
// logx en tests concurrentes.
type SafeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implementa io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String retorna el contenido acumulado.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
