// internal/core/ports/exporter.go
package ports

import (
	"owaspkit/internal/core/domain"
)

// Exporter es el port para persistir el resultado de una ejecución.
type Exporter interface {
	// Name retorna el nombre del exporter (ej: "json", "table")
	Name() string

	// Export escribe el resultado
	Export(result *domain.Result) error
}
