package sim

// HistoryCapacity is the number of mapped values kept for plotting.
const HistoryCapacity = 120

// History is a fixed-capacity FIFO window over float64 values.
// Once full, each Push evicts the oldest value. Backed by a ring buffer, so
// Push never reallocates.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type History struct {
	buf   []float64
	start int // index of the oldest value
	size  int
}

// NewHistory creates an empty History. A non-positive capacity selects
// HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &History{buf: make([]float64, capacity)}
}

// Push appends v, evicting the oldest value when the window is full.
func (h *History) Push(v float64) {
	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = v
		h.size++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of values currently held.
func (h *History) Len() int { return h.size }

// Cap returns the window capacity.
func (h *History) Cap() int { return len(h.buf) }

// Values returns a copy of the window, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}

// Last returns the most recently pushed value.
func (h *History) Last() (float64, bool) {
	if h.size == 0 {
		return 0, false
	}
	return h.buf[(h.start+h.size-1)%len(h.buf)], true
}

// Reset empties the window without changing its capacity.
func (h *History) Reset() {
	h.start = 0
	h.size = 0
}
