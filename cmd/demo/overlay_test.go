package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugOverlayLines(t *testing.T) {
	do := NewDebugOverlay()
	do.AddLine("fps %d", 60)
	do.AddLine("hello")

	assert.Equal(t, "fps 60\nhello\n", do.Text())

	do.Clear()
	assert.Equal(t, "", do.Text())
}

func TestDebugOverlayToggle(t *testing.T) {
	do := NewDebugOverlay()
	assert.True(t, do.Visible())

	do.Toggle()
	assert.False(t, do.Visible())

	do.Toggle()
	assert.True(t, do.Visible())
}

func TestSparklineEmpty(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 10))
	assert.Equal(t, "", Sparkline([]float32{1, 2}, 0))
}

func TestSparklineWidth(t *testing.T) {
	line := Sparkline([]float32{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	assert.Len(t, line, 4)
}

func TestSparklineRampIsMonotonic(t *testing.T) {
	line := []rune(Sparkline([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10))

	ramp := string(sparkRamp)
	for i := 1; i < len(line); i++ {
		prev := strings.IndexRune(ramp, line[i-1])
		cur := strings.IndexRune(ramp, line[i])
		assert.GreaterOrEqual(t, cur, prev, "column %d", i)
	}
	// Extremes hit both ends of the ramp
	assert.Equal(t, sparkRamp[0], line[0])
	assert.Equal(t, sparkRamp[len(sparkRamp)-1], line[len(line)-1])
}

func TestSparklineFlatSeries(t *testing.T) {
	line := Sparkline([]float32{5, 5, 5, 5}, 4)
	assert.Equal(t, strings.Repeat(string(sparkRamp[0]), 4), line)
}

func TestSparklineBucketsKeepPeaks(t *testing.T) {
	// A single spike inside a wide bucket must still reach the top glyph
	values := make([]float32, 16)
	values[5] = 10
	line := []rune(Sparkline(values, 4))

	assert.Equal(t, sparkRamp[len(sparkRamp)-1], line[1])
	assert.Equal(t, sparkRamp[0], line[0])
}
