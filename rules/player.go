package rules

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/yohamta/donburi/features/math"
)

// NewPlayer returns a fresh player scaled for difficulty d.
func NewPlayer(d config.Difficulty) components.PlayerData {
	maxFuel := config.Scale(config.Fuel.DefaultFuel, config.KeyFuelRate, d)
	return components.PlayerData{
		Fuel:                maxFuel,
		MaxFuel:             maxFuel,
		MoveSpeed:           config.Player.MoveSpeed,
		FallDamageThreshold: config.Scale(config.Player.FallDamageThreshold, config.KeyFallTolerance, d),
	}
}

// TickPlayer applies one step of movement intent, jetpack fuel use, fall
// tracking and timers. grounded is whether the player rested on a platform
// after the previous physics step.
func TickPlayer(p *components.PlayerData, phys *components.PhysicsData, in components.ControlsData, grounded bool, dt float64) {
	phys.Velocity.X = in.Axis() * p.MoveSpeed

	if in.Thrust && p.Fuel > 0 {
		phys.Velocity.Y = -config.Player.JetpackThrust
		p.Fuel -= config.Fuel.ConsumptionRate * dt
		if p.Fuel < 0 {
			p.Fuel = 0
		}
		p.IsThrusting = true
	} else {
		p.IsThrusting = false
	}

	if phys.Velocity.Y > 0 {
		p.FallVelocity = phys.Velocity.Y
	} else if grounded {
		p.FallVelocity = 0
		p.IsDangerousFall = false
	}
	if p.FallVelocity > p.FallDamageThreshold {
		p.IsDangerousFall = true
	}

	if p.HasShield {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= timerEpsilon {
			p.HasShield = false
			p.ShieldTimer = 0
		}
	}
	if p.FlashTimer > 0 {
		p.FlashTimer -= dt
		if p.FlashTimer < timerEpsilon {
			p.FlashTimer = 0
		}
	}
}

// LandOnPlatform is called when the player lands on any platform. A
// dangerous fall, latched earlier or detected from the impact speed, costs
// one damage event. The fall state is cleared either way.
func LandOnPlatform(p *components.PlayerData, impactVelY float64) Effects {
	dangerous := p.IsDangerousFall || impactVelY > p.FallDamageThreshold
	p.IsDangerousFall = false
	p.FallVelocity = 0
	if !dangerous {
		return Effects{}
	}
	return Effects{Damage: 1}
}

// Respawn resets the player after falling out of the level and returns
// where it should reappear: the activated checkpoint, else the level start.
func Respawn(p *components.PlayerData, phys *components.PhysicsData, start math.Vec2) math.Vec2 {
	phys.Velocity = math.Vec2{}
	phys.OnGround = nil
	phys.ImpactVelY = 0

	p.Fuel = p.MaxFuel
	p.IsThrusting = false
	p.IsDangerousFall = false
	p.FallVelocity = 0
	p.HasShield = false
	p.ShieldTimer = 0

	if p.Checkpoint != nil {
		return *p.Checkpoint
	}
	return start
}

// FellOut reports whether a player centered at y has left a world of the
// given height through the bottom.
func FellOut(y, worldHeight float64) bool {
	return y > worldHeight+config.World.DeadZoneDepth
}

// DeadZoneHit is the effect of falling out of the level.
func DeadZoneHit() Effects {
	return Effects{Damage: 1}
}
