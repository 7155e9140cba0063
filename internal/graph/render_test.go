package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDimensions(t *testing.T) {
	histories := map[string][]float64{
		"empty":            {},
		"shorter than width": make([]float64, 5),
		"equal to width":     make([]float64, 30),
		"longer than width":  make([]float64, 50),
	}

	for name, history := range histories {
		t.Run(name, func(t *testing.T) {
			rows := Render(history, 30, 8, 1024)
			require.Len(t, rows, 8)
			for _, row := range rows {
				assert.Len(t, row, 30)
			}
		})
	}
}

func TestRenderDegenerateDimensions(t *testing.T) {
	history := []float64{1, 2, 3}

	assert.Empty(t, Render(history, 30, 0, 1024))
	assert.Empty(t, Render(history, 30, -1, 1024))

	rows := Render(history, 0, 4, 1024)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, "", row)
	}
}

func TestRenderRightAlignsNewestSamples(t *testing.T) {
	// 50 samples into 30 columns: only the most recent 30 are drawn. The
	// older samples are at full scale, the recent ones at zero, so every
	// visible column must be empty plot area.
	history := make([]float64, 50)
	for i := 0; i < 20; i++ {
		history[i] = 1024
	}
	rows := Render(history, 30, 4, 1024)

	for _, row := range rows {
		assert.Equal(t, strings.Repeat(string(CellBackground), 30), row)
	}

	// Flipped: the newest sample is at full scale and must land in the
	// rightmost column.
	history = make([]float64, 50)
	history[49] = 1024
	rows = Render(history, 30, 4, 1024)
	for _, row := range rows {
		assert.Equal(t, CellFilled, row[29])
	}
}

func TestRenderLeftPadsShortHistories(t *testing.T) {
	history := make([]float64, 10)
	for i := range history {
		history[i] = 512
	}
	rows := Render(history, 30, 4, 1024)

	require.Len(t, rows, 4)
	for _, row := range rows {
		// 20 blank columns, then 10 data columns.
		assert.Equal(t, strings.Repeat(string(CellBlank), 20), row[:20])
		assert.NotContains(t, row[20:], string(CellBlank))
	}
}

func TestRenderColumnShapes(t *testing.T) {
	const height = 4
	tests := []struct {
		name     string
		value    float64
		scaleMax float64
		column   string // top to bottom
	}{
		{"zero is all background", 0, 100, "...."},
		{"full scale fills the column", 100, 100, "####"},
		{"above scale clamps to full", 250, 100, "####"},
		{"half scale", 50, 100, "..##"},
		{"fractional top earns a marker", 62.5, 100, ".|##"},
		{"small fraction stays background", 5, 100, "...."},
		{"rounds up to a partial", 10, 80, "...|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Render([]float64{tt.value}, 1, height, tt.scaleMax)
			require.Len(t, rows, height)

			var col strings.Builder
			for _, row := range rows {
				col.WriteByte(row[0])
			}
			assert.Equal(t, tt.column, col.String())
		})
	}
}

func TestRenderNegativeValuesClampToZero(t *testing.T) {
	rows := Render([]float64{-500}, 1, 3, 100)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, string(CellBackground), row)
	}
}
