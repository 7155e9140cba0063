package graph

// Cell kinds emitted by Render. Presentation decides how each is styled;
// the renderer itself knows nothing about terminals.
const (
	CellFilled     byte = '#' // full bar cell
	CellPartialTop byte = '|' // fractional bar top
	CellBackground byte = '.' // empty plot area above a bar
	CellBlank      byte = ' ' // column with no data yet
)

// Render rasterizes history (oldest first) into height rows of exactly
// width cells each, top row first. The newest sample always lands in the
// rightmost column: histories longer than width are truncated to the most
// recent width samples, shorter ones are left-padded with blank columns.
// scaleMax must be positive; SelectScale guarantees a floor of 1.
//
// Zero or negative dimensions yield an empty grid rather than an error.
func Render(history []float64, width, height int, scaleMax float64) []string {
	if height <= 0 {
		return nil
	}
	rows := make([]string, height)
	if width <= 0 {
		return rows
	}

	pad := 0
	visible := history
	if len(history) >= width {
		visible = history[len(history)-width:]
	} else {
		pad = width - len(history)
	}

	// Per column: number of fully filled cells from the bottom, plus
	// whether the fractional remainder earns a partial-top cell.
	full := make([]int, len(visible))
	partial := make([]bool, len(visible))
	for i, v := range visible {
		if v < 0 {
			v = 0
		}
		if v > scaleMax {
			v = scaleMax
		}
		exact := v / scaleMax * float64(height)
		f := int(exact)
		if f > height {
			f = height
		}
		full[i] = f
		partial[i] = exact-float64(f) >= 0.5 && f < height
	}

	buf := make([]byte, width)
	for r := 0; r < height; r++ {
		fromBottom := height - 1 - r
		for c := 0; c < pad; c++ {
			buf[c] = CellBlank
		}
		for i := range visible {
			switch {
			case fromBottom < full[i]:
				buf[pad+i] = CellFilled
			case fromBottom == full[i] && partial[i]:
				buf[pad+i] = CellPartialTop
			default:
				buf[pad+i] = CellBackground
			}
		}
		rows[r] = string(buf)
	}
	return rows
}
