package ui

import "strings"

// renderWave plots one period of the wavetable on a character grid. The
// phase argument scrolls the trace horizontally so the display drifts the
// way the original oscilloscope view did; phase is in [0, 2) where 2 is one
// full period.
func renderWave(table []float32, width, height int, phase float64) string {
	if width < 2 || height < 2 || len(table) == 0 {
		return ""
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	// faint center line
	for x := 0; x < width; x++ {
		grid[height/2][x] = '·'
	}
	for x := 0; x < width; x++ {
		u := float64(x)/float64(width) + phase/2.0
		u -= float64(int(u))
		i := int(u * float64(len(table)))
		if i >= len(table) {
			i = len(table) - 1
		}
		sample := float64(table[i])
		y := int((1.0 - sample) / 2.0 * float64(height-1))
		if y < 0 {
			y = 0
		}
		if y >= height {
			y = height - 1
		}
		grid[y][x] = '█'
	}
	rows := make([]string, height)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return strings.Join(rows, "\n")
}

// renderBar draws a horizontal gauge filled to frac of width.
func renderBar(frac float64, width int) (filled string, rest string) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	n := int(frac * float64(width))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}

// peak returns the largest absolute sample value, for the output meter.
func peak(samples []float32) float64 {
	var p float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > p {
			p = s
		}
	}
	return float64(p)
}
