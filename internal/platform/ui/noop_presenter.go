// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo quiet o headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)                 {}
func (n *NoopPresenter) StartTask(label string, total int)  {}
func (n *NoopPresenter) Advance(delta int)                  {}
func (n *NoopPresenter) UpdateTask(text string)             {}
func (n *NoopPresenter) StopTask(status Status, msg string) {}
func (n *NoopPresenter) Info(msg string)                    {}
func (n *NoopPresenter) Warning(msg string)                 {}
func (n *NoopPresenter) Finish(summary Summary)             {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}

var _ Presenter = (*NoopPresenter)(nil)
