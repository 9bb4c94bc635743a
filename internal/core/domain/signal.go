// internal/core/domain/signal.go
package domain

import (
	"sync"
	"sync/atomic"
)

// StopSignal is a monotonic flag shared by the workers of one run. Workers
// poll it between candidates; stopping is cooperative, never preemptive.
type StopSignal struct {
	set atomic.Bool
}

// Set raises the flag and reports whether this call was the one that did it.
func (s *StopSignal) Set() bool {
	return s.set.CompareAndSwap(false, true)
}

// IsSet reports whether the flag has been raised.
func (s *StopSignal) IsSet() bool {
	return s.set.Load()
}

// ResultCell holds the first plaintext reported by any worker. Later writes
// are rejected.
type ResultCell struct {
	once  sync.Once
	mu    sync.RWMutex
	value string
	set   bool
}

// Set stores plaintext if the cell is empty and reports whether it did.
func (c *ResultCell) Set(plaintext string) bool {
	won := false
	c.once.Do(func() {
		c.mu.Lock()
		c.value, c.set = plaintext, true
		c.mu.Unlock()
		won = true
	})
	return won
}

// Get returns the stored plaintext and whether one was stored.
func (c *ResultCell) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.set
}
