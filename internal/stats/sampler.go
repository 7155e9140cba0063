package stats

// minElapsedSec guards the rate division against back-to-back ticks and
// clock anomalies. Updates arriving closer together than this are skipped
// and the previous state carried forward.
const minElapsedSec = 1e-3

// deltaRate turns two consecutive cumulative counter readings into a
// non-negative bytes/second rate plus the accepted byte delta. A counter
// that went backwards (wraparound or interface reset) yields 0 for both
// rather than a negative or spuriously huge rate. elapsed must be positive;
// callers enforce minElapsedSec before computing per-direction rates.
func deltaRate(prev, cur uint64, elapsed float64) (rate float64, delta uint64) {
	if cur < prev {
		return 0, 0
	}
	delta = cur - prev
	return float64(delta) / elapsed, delta
}
