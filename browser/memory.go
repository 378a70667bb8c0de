package browser

import "sync"

var _ Window = (*MemoryWindow)(nil)

// MemoryWindow is an in-memory Window with a browser-like history stack.
type MemoryWindow struct {
	mu        sync.Mutex
	entries   []Location
	index     int
	listeners map[int]func(Location)
	nextID    int

	scrollY      int
	scrollResets int
}

// NewMemoryWindow creates a window whose only history entry is initial.
func NewMemoryWindow(initial string) *MemoryWindow {
	return &MemoryWindow{
		entries:   []Location{ParseLocation(initial)},
		listeners: make(map[int]func(Location)),
	}
}

// Location returns the current entry.
func (w *MemoryWindow) Location() Location {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entries[w.index]
}

// PushState drops any forward entries and appends url.
func (w *MemoryWindow) PushState(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries[:w.index+1], ParseLocation(url))
	w.index++
}

// OnPopState registers fn for Back, Forward and Go.
func (w *MemoryWindow) OnPopState(fn func(Location)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Back moves one entry back and emits popstate. It reports false at the start.
func (w *MemoryWindow) Back() bool {
	return w.Go(-1)
}

// Forward moves one entry forward and emits popstate. It reports false at the end.
func (w *MemoryWindow) Forward() bool {
	return w.Go(1)
}

// Go moves delta entries through history. Out of range moves are ignored.
func (w *MemoryWindow) Go(delta int) bool {
	w.mu.Lock()
	target := w.index + delta
	if delta == 0 || target < 0 || target >= len(w.entries) {
		w.mu.Unlock()
		return false
	}
	w.index = target
	loc := w.entries[target]
	listeners := make([]func(Location), 0, len(w.listeners))
	for _, fn := range w.listeners {
		listeners = append(listeners, fn)
	}
	w.mu.Unlock()

	for _, fn := range listeners {
		fn(loc)
	}
	return true
}

// Len returns the number of history entries.
func (w *MemoryWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Entries returns the history stack as URLs, oldest first.
func (w *MemoryWindow) Entries() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.String()
	}
	return out
}

// ScrollTo simulates the user scrolling the document.
func (w *MemoryWindow) ScrollTo(y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrollY = y
}

// ScrollY returns the simulated scroll offset.
func (w *MemoryWindow) ScrollY() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollY
}

// ScrollToTop resets the scroll offset and counts the reset.
func (w *MemoryWindow) ScrollToTop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrollY = 0
	w.scrollResets++
}

// ScrollResets returns how many times ScrollToTop has been called.
func (w *MemoryWindow) ScrollResets() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollResets
}
