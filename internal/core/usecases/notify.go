// internal/core/usecases/notify.go
package usecases

import (
	"context"
	"sync"
	"time"

	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
)

const notificationTimeout = 5 * time.Second

// eventBus reparte eventos a los observers sin bloquear a quien notifica.
// Cada observer corre en su propia goroutine con timeout; Wait espera a
// que terminen todas.
type eventBus struct {
	observers []ports.Notifier
	logger    logx.Logger
	wg        sync.WaitGroup
}

func newEventBus(observers []ports.Notifier, logger logx.Logger) *eventBus {
	return &eventBus{observers: observers, logger: logger}
}

// notify envía event a todos los observers.
func (b *eventBus) notify(ctx context.Context, event ports.Event) {
	// El evento de fin debe llegar aunque la ejecución se haya cancelado.
	ctx = context.WithoutCancel(ctx)

	for _, observer := range b.observers {
		b.wg.Add(1)
		go func(notifier ports.Notifier) {
			defer b.wg.Done()

			notifyCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- notifier.Notify(notifyCtx, event)
			}()

			select {
			case err := <-done:
				if err != nil {
					b.logger.Warn("notification failed", "event_type", event.Type, "error", err.Error())
				}
			case <-notifyCtx.Done():
				b.logger.Warn("notification timeout exceeded",
					"timeout", notificationTimeout,
					"event_type", event.Type,
				)
			}
		}(observer)
	}
}

// wait bloquea hasta que todas las notificaciones terminen.
func (b *eventBus) wait() {
	b.wg.Wait()
}
