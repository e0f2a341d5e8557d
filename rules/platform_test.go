package rules

import (
	"testing"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestNewPlatformDefaultWidths(t *testing.T) {
	tests := []struct {
		kind  components.PlatformKind
		width float64
	}{
		{components.StaticPlatform, 150},
		{components.BreakawayPlatform, 150},
		{components.BouncePlatform, 100},
		{components.RechargePlatform, 120},
		{components.CheckpointPlatform, 200},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.width, NewPlatform(tt.kind, 0).Width)
		})
	}
	assert.Equal(t, 64.0, NewPlatform(components.StaticPlatform, 64).Width)
}

func TestBreakawayRemovedAfterBreakTime(t *testing.T) {
	pl := NewPlatform(components.BreakawayPlatform, 0)
	surface := math.Vec2{X: 75, Y: 500}

	assert.False(t, TickPlatform(&pl, dt), "stable platforms never expire")

	PlatformContactBegin(&pl, surface, 100)
	assert.Equal(t, components.BreakBreaking, pl.Break)

	ticks := 0
	for {
		ticks++
		// The player keeps hopping on it while it breaks
		PlatformContactBegin(&pl, surface, 100)
		if TickPlatform(&pl, dt) {
			break
		}
		if ticks > 100 {
			t.Fatal("breakaway platform never broke")
		}
	}
	assert.Equal(t, 12, ticks)
	assert.Equal(t, components.BreakBroken, pl.Break)
	assert.Equal(t, 1.0, BreakProgress(&pl))
}

func TestBounceOnlyWhenFalling(t *testing.T) {
	pl := NewPlatform(components.BouncePlatform, 0)
	surface := math.Vec2{X: 50, Y: 400}

	rising := PlatformContactBegin(&pl, surface, -200)
	assert.Equal(t, 0.0, rising.Impulse)
	assert.False(t, pl.Compressed)

	falling := PlatformContactBegin(&pl, surface, 250)
	assert.Equal(t, 900.0, falling.Impulse)
	assert.True(t, pl.Compressed)

	TickPlatform(&pl, 0.05)
	assert.True(t, pl.Compressed)
	TickPlatform(&pl, 0.05)
	assert.False(t, pl.Compressed)
}

func TestRechargeOnlyWhileTouching(t *testing.T) {
	pl := NewPlatform(components.RechargePlatform, 0)
	assert.InDelta(t, 30*dt, PlatformContactStay(&pl, dt).FuelDelta, 1e-9)

	static := NewPlatform(components.StaticPlatform, 0)
	assert.True(t, PlatformContactStay(&static, dt).Empty())
}

func TestCheckpointActivatesOnce(t *testing.T) {
	pl := NewPlatform(components.CheckpointPlatform, 0)

	first := PlatformContactBegin(&pl, math.Vec2{X: 400, Y: 1000}, 0)
	if assert.NotNil(t, first.Checkpoint) {
		assert.Equal(t, math.Vec2{X: 400, Y: 950}, *first.Checkpoint)
	}
	assert.True(t, pl.Activated)

	second := PlatformContactBegin(&pl, math.Vec2{X: 400, Y: 1000}, 0)
	assert.Nil(t, second.Checkpoint)
	assert.True(t, second.Empty())
}
