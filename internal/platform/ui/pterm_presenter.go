// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar header, cajas, spinners y barras de progreso.
// Sin terminal (live = false) las tareas se reducen a líneas de estado.
type PTermPresenter struct {
	mu   sync.Mutex
	out  io.Writer
	live bool

	started time.Time

	// Tarea activa
	task    string
	total   int
	done    int
	spinner *pterm.SpinnerPrinter
	bar     *pterm.ProgressbarPrinter
}

// NewPTermPresenter crea un presenter que escribe en w.
func NewPTermPresenter(w io.Writer, live bool) *PTermPresenter {
	return &PTermPresenter{out: w, live: live}
}

// Start muestra el header y la caja de configuración
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = time.Now()

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint(info.Title)
	fmt.Fprintln(p.out, header)

	if len(info.Fields) > 0 {
		box := pterm.DefaultBox.
			WithTitle("Configuration").
			WithTitleTopCenter().
			WithLeftPadding(2).
			WithRightPadding(2).
			WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
			Sprint(renderFields(info.Fields))
		fmt.Fprintln(p.out, box)
	}
	fmt.Fprintln(p.out, pterm.LightBlue(separator))
}

// StartTask inicia un spinner o una barra de progreso
func (p *PTermPresenter) StartTask(label string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.task, p.total, p.done = label, total, 0

	if !p.live {
		fmt.Fprint(p.out, pterm.Info.Sprintln(label))
		return
	}

	if total > 0 {
		p.bar, _ = pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle(label).
			WithWriter(p.out).
			WithRemoveWhenDone(true).
			Start()
		return
	}
	p.spinner, _ = pterm.DefaultSpinner.
		WithWriter(p.out).
		Start(label)
}

// Advance suma n a la barra de progreso
func (p *PTermPresenter) Advance(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	if p.bar != nil {
		p.bar.Add(n)
	}
}

// UpdateTask cambia el texto de la tarea activa
func (p *PTermPresenter) UpdateTask(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.spinner != nil:
		p.spinner.UpdateText(text)
	case p.bar != nil:
		p.bar.UpdateTitle(text)
	}
}

// StopTask cierra la tarea activa mostrando su estado final
func (p *PTermPresenter) StopTask(status Status, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg == "" {
		msg = p.task
	}

	if p.spinner != nil {
		switch status {
		case StatusSuccess:
			p.spinner.Success(msg)
		case StatusError:
			p.spinner.Fail(msg)
		case StatusWarning:
			p.spinner.Warning(msg)
		default:
			p.spinner.Info(msg)
		}
		p.spinner = nil
		return
	}

	p.stopLocked()
	fmt.Fprint(p.out, statusPrinter(status).Sprintln(msg))
}

func (p *PTermPresenter) Info(msg string)    { p.println(pterm.Info, msg) }
func (p *PTermPresenter) Warning(msg string) { p.println(pterm.Warning, msg) }

func (p *PTermPresenter) println(printer pterm.PrefixPrinter, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, printer.Sprintln(msg))
}

// Finish muestra el resumen final en una caja del color del estado
func (p *PTermPresenter) Finish(summary Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	fields := summary.Fields
	if summary.Duration > 0 {
		fields = append(fields[:len(fields):len(fields)], Field{Label: IconTime + " Duration", Value: formatDuration(summary.Duration)})
	}

	title := summary.Status.Symbol() + " " + summary.Headline
	box := pterm.DefaultBox.
		WithTitle(summary.Status.Style().Sprint(title)).
		WithTitleTopLeft().
		WithLeftPadding(2).
		WithRightPadding(2).
		WithBoxStyle(summary.Status.Style()).
		Sprint(renderFields(fields))
	fmt.Fprintln(p.out, box)
}

// Close detiene cualquier tarea activa
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}

// stopLocked requiere p.mu.
func (p *PTermPresenter) stopLocked() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}

func statusPrinter(s Status) *pterm.PrefixPrinter {
	switch s {
	case StatusSuccess:
		return &pterm.Success
	case StatusError:
		return &pterm.Error
	case StatusWarning:
		return &pterm.Warning
	default:
		return &pterm.Info
	}
}

var _ Presenter = (*PTermPresenter)(nil)
