package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressClamps(t *testing.T) {
	out := RenderProgress(1.5, 10)
	assert.Contains(t, out, "100%")
	assert.Equal(t, 10, strings.Count(out, filledBlock))

	out = RenderProgress(-0.5, 10)
	assert.Contains(t, out, "0%")
	assert.Equal(t, 10, strings.Count(out, emptyBlock))
}

func TestRenderProgressPartial(t *testing.T) {
	out := RenderProgress(0.5, 10)
	assert.Contains(t, out, "50%")
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderXP(t *testing.T) {
	out := RenderXP(120, 280, 10)
	assert.Contains(t, out, "120/280 XP")
	assert.Equal(t, 4, strings.Count(out, filledBlock))

	// Overshoot clamps to a full bar, zero threshold does not divide by zero.
	assert.Contains(t, RenderXP(500, 280, 10), "500/280 XP")
	assert.NotPanics(t, func() { RenderXP(10, 0, 10) })
}
