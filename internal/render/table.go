package render

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// fmtValue renders a float cell, showing undefined values explicitly.
func fmtValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}

// Table renders a markdown-style table of timestamped columns. All
// column slices must share the index of times.
func Table(header []string, times []time.Time, columns ...[]float64) string {
	var b strings.Builder

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	rows := make([][]string, len(times))
	for r, ts := range times {
		row := make([]string, len(header))
		row[0] = ts.Format("2006-01-02")
		for c, col := range columns {
			row[c+1] = fmtValue(col[r])
		}
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
		rows[r] = row
	}

	writeRow := func(cells []string) {
		b.WriteString("|")
		for c, cell := range cells {
			b.WriteString(fmt.Sprintf(" %-*s |", widths[c], cell))
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// tail returns the last n entries of both slices, keeping them aligned.
func tail(times []time.Time, values []float64, n int) ([]time.Time, []float64) {
	if n >= len(times) {
		return times, values
	}
	return times[len(times)-n:], values[len(values)-n:]
}
