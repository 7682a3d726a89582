package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBarHeights(t *testing.T) {
	got := BarHeights([]float64{10, 20, 30})
	want := []float64{minBarHeight, 50, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("height[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	flat := BarHeights([]float64{7, 7})
	if flat[0] != minBarHeight || flat[1] != minBarHeight {
		t.Errorf("equal values should get the minimum height, got %v", flat)
	}
	if BarHeights(nil) != nil {
		t.Error("no values should give no heights")
	}
}

func TestRenderGasChart(t *testing.T) {
	chart := ansi.Strip(RenderGasChart([]float64{0, 100}, 2, 1))
	lines := strings.Split(chart, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(lines), chart)
	}
	// the tallest bar fills both rows, the smallest barely shows
	if lines[0] != "  █" {
		t.Errorf("top row = %q", lines[0])
	}
	if lines[1] != "▁ █" {
		t.Errorf("bottom row = %q", lines[1])
	}
	if RenderGasChart(nil, 4, 1) != "" {
		t.Error("empty series should render nothing")
	}
}
