package main

import (
	"fmt"
	"strings"
)

// DebugOverlay stores debug information for display. Lines are rebuilt
// every frame and drawn with the bitmap text renderer.
type DebugOverlay struct {
	lines   []string
	visible bool
}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{visible: true}
}

func (do *DebugOverlay) AddLine(format string, args ...interface{}) {
	do.lines = append(do.lines, fmt.Sprintf(format, args...))
}

func (do *DebugOverlay) Clear() {
	do.lines = do.lines[:0]
}

func (do *DebugOverlay) Toggle() {
	do.visible = !do.visible
}

func (do *DebugOverlay) Visible() bool {
	return do.visible
}

func (do *DebugOverlay) Text() string {
	if len(do.lines) == 0 {
		return ""
	}
	var result string
	for _, line := range do.lines {
		result += line + "\n"
	}
	return result
}

var sparkRamp = []rune(" .:-=+*#%@")

// Sparkline renders values as a one-line ASCII graph, width characters
// wide, scaled between the slice's own min and max. Each column shows the
// peak of its bucket so short spikes stay visible.
func Sparkline(values []float32, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
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

	var sb strings.Builder
	for col := 0; col < width; col++ {
		lo := col * len(values) / width
		hi := (col + 1) * len(values) / width
		if hi <= lo {
			hi = lo + 1
		}

		peak := values[lo]
		for _, v := range values[lo:hi] {
			if v > peak {
				peak = v
			}
		}

		idx := 0
		if max > min {
			idx = int((peak - min) / (max - min) * float32(len(sparkRamp)-1))
		}
		sb.WriteRune(sparkRamp[idx])
	}
	return sb.String()
}
