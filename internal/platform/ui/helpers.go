// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"strings"
	"time"
)

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// BoolToString convierte booleano a yes/no
func BoolToString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderFields alinea las etiquetas en una columna.
func renderFields(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width+1, f.Label+":", f.Value))
	}
	return strings.Join(lines, "\n")
}
