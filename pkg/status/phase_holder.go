package status

import (
	"sync"
	"time"
)

// PhaseHolder stores the current scenario phase in a thread-safe way.
// the verifier sets it, the logger and signal handling read it.
type PhaseHolder struct {
	mu       sync.RWMutex
	phase    Phase
	entered  time.Time
	onChange func(old, cur Phase)
}

// OnChange registers a callback that fires when the phase changes.
// only one callback is supported; subsequent calls replace the previous one.
func (h *PhaseHolder) OnChange(fn func(old, cur Phase)) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

// Set updates the current phase and fires the OnChange callback if the phase changed.
// the callback runs without the lock held, so it may call Get.
func (h *PhaseHolder) Set(p Phase) {
	h.mu.Lock()
	old := h.phase
	h.phase = p
	if old != p {
		h.entered = time.Now()
	}
	cb := h.onChange
	h.mu.Unlock()

	if old != p && cb != nil {
		cb(old, p)
	}
}

// Get returns the current phase.
func (h *PhaseHolder) Get() Phase {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.phase
}

// Since returns how long the current phase has been active, zero if no phase was set.
func (h *PhaseHolder) Since() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.entered.IsZero() {
		return 0
	}
	return time.Since(h.entered)
}
