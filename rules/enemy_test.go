package rules

import (
	"testing"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestNewEnemyScalesSpeed(t *testing.T) {
	assert.InDelta(t, 70, NewEnemy(components.RollerBot, 0, 0, 0, config.Easy).Speed, 1e-9)
	assert.InDelta(t, 130, NewEnemy(components.RollerBot, 0, 0, 0, config.Hard).Speed, 1e-9)
	assert.InDelta(t, 80, NewEnemy(components.HoverDrone, 0, 0, 0, config.Medium).Speed, 1e-9)

	assert.Equal(t, 150.0, NewEnemy(components.HoverDrone, 0, 0, 0, config.Medium).Range)
	assert.Equal(t, 220.0, NewEnemy(components.HoverDrone, 0, 0, 220, config.Medium).Range)
}

func TestRollerBotTurnsAtPlatformEnd(t *testing.T) {
	// Platform spans x 100..300 with its top at y 500
	platform := gamemath.Rect{X: 100, Y: 500, W: 200, H: 20}
	hasGround := func(x, y float64) bool { return SupportsPoint(platform, x, y) }

	e := NewEnemy(components.RollerBot, 200, 488, 0, config.Medium)
	pos := math.Vec2{X: 200, Y: 488}

	maxX := pos.X
	for i := 0; i < 40; i++ {
		StepRollerBot(&e, &pos, dt, 800, hasGround)
		if pos.X > maxX {
			maxX = pos.X
		}
	}
	assert.Less(t, maxX, 300.0)
	assert.Greater(t, pos.X, 100.0)
}

func TestRollerBotTurnsNearWorldEdge(t *testing.T) {
	always := func(x, y float64) bool { return true }

	e := NewEnemy(components.RollerBot, 760, 0, 0, config.Medium)
	pos := math.Vec2{X: 760, Y: 0}
	StepRollerBot(&e, &pos, dt, 800, always)
	assert.Equal(t, -1.0, e.Direction)

	// Heading away from the edge does not flip it back
	StepRollerBot(&e, &pos, dt, 800, always)
	assert.Equal(t, -1.0, e.Direction)
}

func TestSupportsPoint(t *testing.T) {
	platform := gamemath.Rect{X: 100, Y: 500, W: 200, H: 20}
	assert.True(t, SupportsPoint(platform, 150, 500))
	assert.True(t, SupportsPoint(platform, 150, 504))
	assert.False(t, SupportsPoint(platform, 150, 506))
	assert.False(t, SupportsPoint(platform, 301, 500))
}

func TestHoverDronePatrolsWithinRange(t *testing.T) {
	e := NewEnemy(components.HoverDrone, 400, 300, 0, config.Medium)
	pos := math.Vec2{X: 400, Y: 300}

	for i := 0; i < 200; i++ {
		StepHoverDrone(&e, &pos, dt)
		require.InDelta(t, 400, pos.X, 75+e.Speed*dt)
		require.InDelta(t, 300, pos.Y, config.Enemy.HoverBobAmplitude+1e-9)
	}
}

func TestDropBotDetection(t *testing.T) {
	bot := math.Vec2{X: 400, Y: 200}
	tests := []struct {
		name   string
		player math.Vec2
		want   bool
	}{
		{"directly below", math.Vec2{X: 400, Y: 300}, true},
		{"inside the horizontal range", math.Vec2{X: 479, Y: 300}, true},
		{"outside the horizontal range", math.Vec2{X: 481, Y: 300}, false},
		{"level with the bot", math.Vec2{X: 400, Y: 200}, false},
		{"above", math.Vec2{X: 400, Y: 150}, false},
		{"too far below", math.Vec2{X: 400, Y: 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(components.DropBot, bot.X, bot.Y, 0, config.Medium)
			var phys components.PhysicsData
			player := tt.player
			StepDropBot(&e, &phys, bot, &player, dt)
			assert.Equal(t, tt.want, e.Drop == components.DropWarning)
		})
	}
}

func TestDropBotFallsAfterWarningTime(t *testing.T) {
	e := NewEnemy(components.DropBot, 400, 200, 0, config.Medium)
	var phys components.PhysicsData
	bot := math.Vec2{X: 400, Y: 200}
	player := math.Vec2{X: 400, Y: 350}

	StepDropBot(&e, &phys, bot, &player, dt)
	require.Equal(t, components.DropWarning, e.Drop)

	// 0.5s at 0.125 per tick: the fourth warning tick starts the fall
	for i := 0; i < 3; i++ {
		StepDropBot(&e, &phys, bot, nil, dt)
		require.Equal(t, components.DropWarning, e.Drop, "tick %d", i+1)
	}
	assert.Equal(t, 0.0, phys.Gravity)

	StepDropBot(&e, &phys, bot, nil, dt)
	assert.Equal(t, components.DropFalling, e.Drop)
	assert.Equal(t, config.Player.Gravity, phys.Gravity)
	assert.Equal(t, config.Enemy.DropBotFallSpeed, phys.MaxFall)

	assert.True(t, DropBotLanded(&e))
	assert.Equal(t, components.DropRemoved, e.Drop)
	assert.False(t, DropBotLanded(&e))
}

func TestHangingDropBotIgnoresGround(t *testing.T) {
	e := NewEnemy(components.DropBot, 0, 0, 0, config.Medium)
	assert.False(t, DropBotLanded(&e))
	assert.Equal(t, components.DropHanging, e.Drop)
}

func TestEnemyHitPlayerOnce(t *testing.T) {
	e := NewEnemy(components.RollerBot, 0, 0, 0, config.Medium)
	fx := EnemyHitPlayer(&e)
	assert.Equal(t, Effects{Damage: 1, RemoveSelf: true}, fx)
	assert.True(t, EnemyHitPlayer(&e).Empty())
}
