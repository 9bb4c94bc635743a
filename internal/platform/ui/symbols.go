// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status es el estado final de una tarea o de la ejecución.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol es el prefijo del título del resumen.
func (s Status) Symbol() string {
	switch s {
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return "?"
	}
}

func (s Status) Color() pterm.Color {
	switch s {
	case StatusSuccess:
		return pterm.FgGreen
	case StatusWarning:
		return pterm.FgYellow
	case StatusError:
		return pterm.FgRed
	default:
		return pterm.FgDefault
	}
}

// Style colorea la caja del resumen.
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

// IconTime precede la duración en el resumen
const IconTime = "⏱"

// separator separa el encabezado del progreso
const separator = "────────────────────────────────────────────"
