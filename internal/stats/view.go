package stats

import (
	"github.com/rusenback/netload/internal/model"
)

// Direction selects one of a device's two traffic series.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

func (d Direction) String() string {
	if d == Incoming {
		return "incoming"
	}
	return "outgoing"
}

// directionState holds the mutable per-direction statistics: the rolling
// window feeding the average and the graph, plus lifetime aggregates.
type directionState struct {
	window  *historyWindow
	stats   model.TrafficStats
	started bool
}

// record folds one rate into the window and aggregates. The first recorded
// rate initializes the lifetime extremes, so the zero produced by a
// baseline-less first tick pins Minimum at 0 on a busy interface.
func (d *directionState) record(rate float64, delta uint64) {
	d.window.Push(rate)
	d.stats.Current = rate
	d.stats.Average = d.window.Average()
	if !d.started || rate < d.stats.Minimum {
		d.stats.Minimum = rate
	}
	if !d.started || rate > d.stats.Maximum {
		d.stats.Maximum = rate
	}
	d.started = true
	d.stats.Total += delta
}

// DeviceView owns all statistics state for one device. Update is the sole
// mutator and runs once per tick; everything else only reads, so a
// single-threaded host needs no locking.
type DeviceView struct {
	Device model.Device

	prev     *model.RawSample
	incoming directionState
	outgoing directionState
}

// NewDeviceView creates the view for a discovered device. The window
// capacity is fixed for the view's lifetime.
func NewDeviceView(dev model.Device, intervalMS, averageWindowSec int) *DeviceView {
	n := WindowCapacity(intervalMS, averageWindowSec)
	return &DeviceView{
		Device:   dev,
		incoming: directionState{window: newHistoryWindow(n)},
		outgoing: directionState{window: newHistoryWindow(n)},
	}
}

// Update folds one counter snapshot into both directions.
//
// The very first sample has no baseline and is recorded as rate 0 in both
// directions. A sample arriving within minElapsedSec of the previous one is
// dropped entirely, leaving all state unchanged.
func (v *DeviceView) Update(sample model.RawSample) {
	if v.prev == nil {
		v.incoming.record(0, 0)
		v.outgoing.record(0, 0)
		s := sample
		v.prev = &s
		return
	}

	elapsed := sample.Timestamp.Sub(v.prev.Timestamp).Seconds()
	if elapsed < minElapsedSec {
		return
	}

	rxRate, rxDelta := deltaRate(v.prev.BytesRecv, sample.BytesRecv, elapsed)
	txRate, txDelta := deltaRate(v.prev.BytesSent, sample.BytesSent, elapsed)
	v.incoming.record(rxRate, rxDelta)
	v.outgoing.record(txRate, txDelta)

	s := sample
	v.prev = &s
}

func (v *DeviceView) direction(dir Direction) *directionState {
	if dir == Incoming {
		return &v.incoming
	}
	return &v.outgoing
}

// Stats returns the current summary for one direction.
func (v *DeviceView) Stats(dir Direction) model.TrafficStats {
	return v.direction(dir).stats
}

// History returns the rolling window for one direction, oldest first.
func (v *DeviceView) History(dir Direction) []float64 {
	return v.direction(dir).window.Values()
}

// HistoryLen reports how many samples the window currently holds.
func (v *DeviceView) HistoryLen(dir Direction) int {
	return v.direction(dir).window.Len()
}

// Peak returns the largest rate currently in one direction's window.
func (v *DeviceView) Peak(dir Direction) float64 {
	return v.direction(dir).window.Peak()
}
