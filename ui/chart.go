package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// minBarHeight keeps the smallest bar visible.
const minBarHeight = 5.0

var barLevels = []rune(" ▁▂▃▄▅▆▇█")

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

// BarHeights scales values to percentages of the min..max range, never
// below minBarHeight. Equal values all get the minimum height.
func BarHeights(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}
	heights := make([]float64, len(values))
	for i, v := range values {
		h := (v - min) / span * 100
		if h < minBarHeight {
			h = minBarHeight
		}
		heights[i] = h
	}
	return heights
}

// RenderGasChart draws values, oldest first, as vertical bars rows lines
// high. Each bar is barWidth columns wide with one column between bars.
func RenderGasChart(values []float64, rows, barWidth int) string {
	if len(values) == 0 || rows <= 0 {
		return ""
	}
	if barWidth <= 0 {
		barWidth = 1
	}
	heights := BarHeights(values)
	eighths := make([]int, len(heights))
	for i, h := range heights {
		eighths[i] = int(h/100*float64(rows*8) + 0.5)
	}

	lines := make([]string, 0, rows)
	for row := rows - 1; row >= 0; row-- {
		var b strings.Builder
		for i, e := range eighths {
			if i > 0 {
				b.WriteByte(' ')
			}
			filled := e - row*8
			if filled < 0 {
				filled = 0
			}
			if filled > 8 {
				filled = 8
			}
			b.WriteString(strings.Repeat(string(barLevels[filled]), barWidth))
		}
		lines = append(lines, barStyle.Render(b.String()))
	}
	return strings.Join(lines, "\n")
}
