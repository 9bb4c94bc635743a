// internal/adapters/output/csv.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"owaspkit/internal/enumerator"
)

// WriteCSV guarda los records del enumerator en path. Un path vacío
// desactiva la salida.
func WriteCSV(path string, records []enumerator.Record, withBody bool) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}

	if err := EncodeCSV(f, records, withBody); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeCSV escribe el header id,status[,body] y un record por línea. Todos
// los campos van entre comillas y las líneas terminan en CRLF. Un status 0
// (sin respuesta) queda como campo vacío.
func EncodeCSV(w io.Writer, records []enumerator.Record, withBody bool) error {
	bw := bufio.NewWriter(w)

	header := []string{"id", "status"}
	if withBody {
		header = append(header, "body")
	}
	writeRow(bw, header)

	for _, rec := range records {
		status := ""
		if !rec.Failed() {
			status = strconv.Itoa(rec.Status)
		}
		row := []string{rec.Payload, status}
		if withBody {
			row = append(row, rec.Body)
		}
		writeRow(bw, row)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeRow(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString("\r\n")
}
