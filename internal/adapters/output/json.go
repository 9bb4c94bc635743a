// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"owaspkit/internal/core/domain"
)

// OutputJSON guarda el resultado en path como JSON indentado. Crea el
// directorio padre si no existe.
func OutputJSON(path string, result *domain.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := encodeJSON(f, result, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputJSONStdout escribe el resultado en w (stdout en el CLI).
func OutputJSONStdout(w io.Writer, result *domain.Result, pretty bool) error {
	return encodeJSON(w, result, pretty)
}

func encodeJSON(w io.Writer, result *domain.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// JSONExporter implementa ports.Exporter sobre OutputJSON.
type JSONExporter struct {
	Path string
}

func (e JSONExporter) Name() string { return "json" }

func (e JSONExporter) Export(result *domain.Result) error {
	return OutputJSON(e.Path, result)
}
