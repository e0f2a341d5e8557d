package rules

import (
	"testing"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const dt = 0.125

func TestNewPlayerScalesFuelAndFallTolerance(t *testing.T) {
	easy := NewPlayer(config.Easy)
	assert.InDelta(t, 140, easy.MaxFuel, 1e-9)
	assert.InDelta(t, 140, easy.Fuel, 1e-9)
	assert.InDelta(t, 420, easy.FallDamageThreshold, 1e-9)

	hard := NewPlayer(config.Hard)
	assert.InDelta(t, 80, hard.MaxFuel, 1e-9)
	assert.InDelta(t, 210, hard.FallDamageThreshold, 1e-9)
	assert.Equal(t, config.Player.MoveSpeed, hard.MoveSpeed)
}

func TestThrustConsumesFuelMonotonically(t *testing.T) {
	p := NewPlayer(config.Medium)
	var phys components.PhysicsData
	in := components.ControlsData{Thrust: true}

	prev := p.Fuel
	for i := 0; i < 100; i++ {
		TickPlayer(&p, &phys, in, false, dt)
		require.LessOrEqual(t, p.Fuel, prev)
		require.GreaterOrEqual(t, p.Fuel, 0.0)
		prev = p.Fuel
	}
	assert.Equal(t, 0.0, p.Fuel)
}

func TestThrustWithEmptyTankDoesNothing(t *testing.T) {
	p := NewPlayer(config.Medium)
	p.Fuel = 0
	phys := components.PhysicsData{Velocity: math.Vec2{Y: 50}}

	TickPlayer(&p, &phys, components.ControlsData{Thrust: true}, false, dt)

	assert.False(t, p.IsThrusting)
	assert.Equal(t, 0.0, p.Fuel)
	assert.Equal(t, 50.0, phys.Velocity.Y)
}

func TestThrustSetsUpwardVelocity(t *testing.T) {
	p := NewPlayer(config.Medium)
	var phys components.PhysicsData

	TickPlayer(&p, &phys, components.ControlsData{Thrust: true, Left: true}, false, dt)

	assert.True(t, p.IsThrusting)
	assert.Equal(t, -config.Player.JetpackThrust, phys.Velocity.Y)
	assert.Equal(t, -config.Player.MoveSpeed, phys.Velocity.X)
	assert.InDelta(t, 100-20*dt, p.Fuel, 1e-9)
}

func TestDangerousFallLatchesUntilGrounded(t *testing.T) {
	p := NewPlayer(config.Medium)
	phys := components.PhysicsData{Velocity: math.Vec2{Y: 350}}

	TickPlayer(&p, &phys, components.ControlsData{}, false, dt)
	assert.True(t, p.IsDangerousFall)

	// Slowing down mid-air does not clear the latch
	phys.Velocity.Y = -10
	TickPlayer(&p, &phys, components.ControlsData{}, false, dt)
	assert.True(t, p.IsDangerousFall)

	phys.Velocity.Y = 0
	TickPlayer(&p, &phys, components.ControlsData{}, true, dt)
	assert.False(t, p.IsDangerousFall)
	assert.Equal(t, 0.0, p.FallVelocity)
}

func TestLandOnPlatform(t *testing.T) {
	p := NewPlayer(config.Medium)

	assert.True(t, LandOnPlatform(&p, 100).Empty())

	p.IsDangerousFall = true
	p.FallVelocity = 400
	fx := LandOnPlatform(&p, 0)
	assert.Equal(t, 1, fx.Damage)
	assert.False(t, p.IsDangerousFall)
	assert.Equal(t, 0.0, p.FallVelocity)

	// A hard impact counts even if the latch was never set
	assert.Equal(t, 1, LandOnPlatform(&p, 301).Damage)
}

func TestRespawnPrefersCheckpoint(t *testing.T) {
	p := NewPlayer(config.Medium)
	p.Fuel = 3
	p.IsDangerousFall = true
	p.HasShield = true
	phys := components.PhysicsData{Velocity: math.Vec2{X: 10, Y: 700}}
	start := math.Vec2{X: 400, Y: 2340}

	pos := Respawn(&p, &phys, start)
	assert.Equal(t, start, pos)
	assert.Equal(t, p.MaxFuel, p.Fuel)
	assert.False(t, p.IsDangerousFall)
	assert.False(t, p.HasShield)
	assert.Equal(t, math.Vec2{}, phys.Velocity)

	p.Checkpoint = &math.Vec2{X: 100, Y: 900}
	assert.Equal(t, math.Vec2{X: 100, Y: 900}, Respawn(&p, &phys, start))
}

func TestFellOut(t *testing.T) {
	assert.False(t, FellOut(2400, 2400))
	assert.False(t, FellOut(2600, 2400))
	assert.True(t, FellOut(2601, 2400))
}

func TestShieldExpires(t *testing.T) {
	p := NewPlayer(config.Medium)
	var phys components.PhysicsData
	run := components.NewRunState()
	Apply(run, &p, &phys, Effects{GrantShield: true})

	ticks := int(config.PowerUp.ShieldDuration / dt)
	for i := 0; i < ticks-1; i++ {
		TickPlayer(&p, &phys, components.ControlsData{}, true, dt)
	}
	assert.True(t, p.HasShield)
	TickPlayer(&p, &phys, components.ControlsData{}, true, dt)
	assert.False(t, p.HasShield)
}
