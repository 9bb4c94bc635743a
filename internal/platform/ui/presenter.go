// internal/platform/ui/presenter.go
package ui

import (
	"os"
	"time"

	"golang.org/x/term"
)

// Presenter define la interfaz para presentar el progreso de una ejecución
// de manera visual. Las implementaciones son seguras para uso concurrente.
type Presenter interface {
	// Start muestra el encabezado con la configuración de la ejecución
	Start(info RunInfo)

	// StartTask inicia una tarea: spinner si total <= 0, barra si no
	StartTask(label string, total int)

	// Advance suma n unidades a la barra de progreso
	Advance(n int)

	// UpdateTask cambia el texto de la tarea activa
	UpdateTask(text string)

	// StopTask cierra la tarea activa con un estado final
	StopTask(status Status, msg string)

	Info(msg string)
	Warning(msg string)

	// Finish muestra el resumen final
	Finish(summary Summary)

	// Close limpia recursos del presenter
	Close() error
}

// Field es un par etiqueta/valor del encabezado o del resumen.
type Field struct {
	Label string
	Value string
}

// RunInfo contiene la información inicial de la ejecución.
type RunInfo struct {
	Title  string
	Fields []Field
}

// Summary contiene el resultado final de la ejecución.
type Summary struct {
	Status   Status
	Headline string
	Fields   []Field
	Duration time.Duration
}

// IsTerminal reporta si f es una terminal interactiva. Spinners y barras
// solo se animan en ese caso.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// New elige el presenter: Noop en modo quiet, PTerm en otro caso.
func New(quiet bool) Presenter {
	if quiet {
		return NewNoopPresenter()
	}
	return NewPTermPresenter(os.Stderr, IsTerminal(os.Stderr))
}
