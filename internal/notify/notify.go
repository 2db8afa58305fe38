// Package notify is the fire-and-forget event surface for completed
// attempts. Hosts register observers at wiring time; dashboards refresh on
// the callback. No acknowledgement, no delivery guarantee beyond "called
// once per publish while the process lives".
package notify

import "sync"

// Completion carries the facts a dashboard needs to refresh.
type Completion struct {
	UserID   string
	LessonID string
	Score    int
	Passed   bool
}

// Hub fans one Completion out to every registered observer.
type Hub struct {
	mu        sync.Mutex
	observers []func(Completion)
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers an observer. Observers must not block: they run
// inline on the publishing goroutine.
func (h *Hub) Subscribe(fn func(Completion)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, fn)
}

// Publish delivers c to every observer registered at call time.
func (h *Hub) Publish(c Completion) {
	h.mu.Lock()
	observers := make([]func(Completion), len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	for _, fn := range observers {
		fn(c)
	}
}
