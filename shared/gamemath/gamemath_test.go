package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravityCapsFall(t *testing.T) {
	assert.Equal(t, 150.0, ApplyGravity(0, 1200, 800, 0.125))
	assert.Equal(t, 800.0, ApplyGravity(790, 1200, 800, 0.125))
	assert.Equal(t, -450.0, ApplyGravity(-600, 1200, 800, 0.125), "rising is not capped")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
	assert.Equal(t, -4.0, ClampSpeed(-9, 4))
}

func TestOscillateAndPulse(t *testing.T) {
	assert.InDelta(t, 105.0, Oscillate(100, math.Pi/2, 5), 1e-9)
	assert.InDelta(t, 100.0, Oscillate(100, 0, 5), 1e-9)
	assert.InDelta(t, 0.8, Pulse(math.Pi/2, 0.5, 0.8), 1e-9)
	assert.InDelta(t, 0.5, Pulse(-math.Pi/2, 0.5, 0.8), 1e-9)
}

func TestRectOverlaps(t *testing.T) {
	floor := Rect{X: 0, Y: 100, W: 200, H: 20}
	resting := RectFromCenter(50, 84, 32, 32)

	assert.Equal(t, 100.0, resting.Bottom())
	assert.False(t, resting.Overlaps(floor, 0), "exact touch without slop")
	assert.True(t, resting.Overlaps(floor, 0.5))
	assert.False(t, RectFromCenter(300, 84, 32, 32).Overlaps(floor, 0.5))
	assert.True(t, floor.Contains(10, 110))
	assert.False(t, floor.Contains(10, 130))
}
