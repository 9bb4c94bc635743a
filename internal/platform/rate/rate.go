// Package rate provides a token bucket limiter used to pace outbound probes.
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter es un token bucket: rate tokens por segundo, como máximo burst
// acumulados. Es seguro para uso concurrente.
type Limiter struct {
	mu     sync.Mutex
	rate   float64 // tokens por segundo
	burst  int
	tokens float64
	last   time.Time
	now    func() time.Time
}

// New crea un limiter de rate operaciones por segundo con ráfagas de burst.
// Valores no positivos se fijan en 1.
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}

	l := &Limiter{rate: rate, burst: burst, now: time.Now}
	l.tokens = float64(burst)
	l.last = l.now()
	return l
}

// Every crea un limiter que deja pasar una operación por interval, sin
// ráfagas. Un interval no positivo retorna nil (sin límite).
func Every(interval time.Duration) *Limiter {
	if interval <= 0 {
		return nil
	}
	return New(float64(time.Second)/float64(interval), 1)
}

// Wait bloquea hasta obtener un token o hasta que ctx se cancele. Un
// Limiter nil nunca bloquea.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}

	for {
		wait := l.reserve()
		if wait == 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Allow consume un token si hay uno disponible, sin bloquear.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.reserve() == 0
}

// reserve consume un token y retorna 0, o retorna cuánto falta para el
// siguiente sin consumir nada.
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance()
	if l.tokens >= 1 {
		l.tokens--
		return 0
	}

	missing := 1 - l.tokens
	return time.Duration(missing / l.rate * float64(time.Second))
}

// advance acredita los tokens del tiempo transcurrido. Requiere l.mu.
func (l *Limiter) advance() {
	now := l.now()
	l.tokens += now.Sub(l.last).Seconds() * l.rate
	if capacity := float64(l.burst); l.tokens > capacity {
		l.tokens = capacity
	}
	l.last = now
}

// Tokens returns the tokens currently available.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.advance()
	return l.tokens
}

// Rate returns tokens per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// Burst returns the bucket capacity.
func (l *Limiter) Burst() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burst
}
