// internal/platform/workerpool/schedulers.go
package workerpool

// FIFOScheduler no reordena (First In First Out).
type FIFOScheduler struct{}

// NewFIFOScheduler crea un scheduler FIFO.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule retorna tasks en el orden original.
func (s *FIFOScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

// Name retorna el nombre del scheduler.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}
