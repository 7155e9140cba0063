package stats

import "fmt"

// Binary unit multipliers (1024-based).
const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
	tib = gib * 1024
)

// FormatRate renders a bytes-per-second rate with binary-unit suffixes.
// Each magnitude tier has a fixed precision: whole bytes below 1 KiB/s,
// two decimals from KiB/s up. Deterministic for a given input.
func FormatRate(bytesPerSec float64) string {
	switch {
	case bytesPerSec >= tib:
		return fmt.Sprintf("%.2f TiB/s", bytesPerSec/tib)
	case bytesPerSec >= gib:
		return fmt.Sprintf("%.2f GiB/s", bytesPerSec/gib)
	case bytesPerSec >= mib:
		return fmt.Sprintf("%.2f MiB/s", bytesPerSec/mib)
	case bytesPerSec >= kib:
		return fmt.Sprintf("%.2f KiB/s", bytesPerSec/kib)
	default:
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	}
}

// FormatBytes renders a cumulative byte count on the same binary-unit
// ladder as FormatRate, but as a plain byte quantity.
func FormatBytes(bytes uint64) string {
	b := float64(bytes)
	switch {
	case b >= tib:
		return fmt.Sprintf("%.2f TiB", b/tib)
	case b >= gib:
		return fmt.Sprintf("%.2f GiB", b/gib)
	case b >= mib:
		return fmt.Sprintf("%.2f MiB", b/mib)
	case b >= kib:
		return fmt.Sprintf("%.2f KiB", b/kib)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
