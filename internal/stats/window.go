package stats

import "math"

// historyWindow is a fixed-capacity ring of rates, oldest first. The sum is
// maintained incrementally (add on push, subtract on evict) so the rolling
// average stays O(1) per tick instead of rescanning the window.
type historyWindow struct {
	buf   []float64
	head  int // index of the oldest entry
	count int
	sum   float64
}

func newHistoryWindow(capacity int) *historyWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &historyWindow{buf: make([]float64, capacity)}
}

// WindowCapacity computes the window size N for an averaging window of
// averageWindowSec seconds sampled every intervalMS milliseconds, clamped
// so the window always holds at least one sample.
func WindowCapacity(intervalMS, averageWindowSec int) int {
	if intervalMS <= 0 {
		intervalMS = 1
	}
	n := int(math.Round(float64(averageWindowSec) * 1000.0 / float64(intervalMS)))
	if n < 1 {
		n = 1
	}
	return n
}

// Push appends v, evicting the oldest entry once at capacity.
func (w *historyWindow) Push(v float64) {
	if w.count == len(w.buf) {
		w.sum -= w.buf[w.head]
		w.buf[w.head] = v
		w.head = (w.head + 1) % len(w.buf)
	} else {
		w.buf[(w.head+w.count)%len(w.buf)] = v
		w.count++
	}
	w.sum += v
}

func (w *historyWindow) Len() int { return w.count }

func (w *historyWindow) Average() float64 {
	if w.count == 0 {
		return 0
	}
	return w.sum / float64(w.count)
}

// Values returns the window contents oldest first.
func (w *historyWindow) Values() []float64 {
	out := make([]float64, w.count)
	for i := 0; i < w.count; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

// Peak returns the largest value currently in the window, 0 when empty.
func (w *historyWindow) Peak() float64 {
	var peak float64
	for i := 0; i < w.count; i++ {
		if v := w.buf[(w.head+i)%len(w.buf)]; v > peak {
			peak = v
		}
	}
	return peak
}
