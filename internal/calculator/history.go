package calculator

import "sync"

// History is the ordered log of calculations performed in one session.
// It is safe for concurrent use; the diagnostics server reads its length
// while the REPL appends to it.
type History struct {
	mu      sync.RWMutex
	records []Calculation
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends a calculation.
func (h *History) Add(c Calculation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, c)
}

// All returns a copy of every calculation in insertion order.
func (h *History) All() []Calculation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Calculation, len(h.records))
	copy(out, h.records)
	return out
}

// Latest returns the most recently added calculation. ok is false when the
// history is empty.
func (h *History) Latest() (c Calculation, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.records) == 0 {
		return Calculation{}, false
	}
	return h.records[len(h.records)-1], true
}

// Clear removes every calculation.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
}

// Filter returns, in order, the calculations whose operation name is exactly
// name. The result is empty, never nil, when nothing matches.
func (h *History) Filter(name string) []Calculation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := []Calculation{}
	for _, c := range h.records {
		if c.Operation.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of calculations.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
