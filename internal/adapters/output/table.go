// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"owaspkit/internal/core/domain"
)

// OutputTable imprime el resultado como tabla clave/valor.
func OutputTable(w io.Writer, result *domain.Result) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== owaspkit cracker ===\n")
	fmt.Fprintf(tw, "Target:\t%s\n", result.Target)
	fmt.Fprintf(tw, "Algorithm:\t%s\n", result.Algorithm)
	fmt.Fprintf(tw, "Mode:\t%s\n", result.Mode)
	fmt.Fprintf(tw, "Salted:\t%t\n", result.Salted)
	fmt.Fprintf(tw, "Workers:\t%d\n", result.Workers)
	fmt.Fprintf(tw, "Chunks:\t%d\n", result.Chunks)
	fmt.Fprintf(tw, "Candidates:\t%d\n", result.Candidates)
	if result.Skipped > 0 {
		fmt.Fprintf(tw, "Skipped records:\t%d\n", result.Skipped)
	}
	fmt.Fprintf(tw, "Duration:\t%s\n", result.Duration.Round(time.Millisecond))
	fmt.Fprintf(tw, "Outcome:\t%s\n", result.Outcome)
	if result.IsFound() {
		fmt.Fprintf(tw, "Plaintext:\t%s\n", result.Plaintext)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// TableExporter implementa ports.Exporter sobre OutputTable.
type TableExporter struct {
	W io.Writer
}

func (e TableExporter) Name() string { return "table" }

func (e TableExporter) Export(result *domain.Result) error {
	return OutputTable(e.W, result)
}
