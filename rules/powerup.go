package rules

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
)

// NewPowerUp returns a pickup of the given kind floating around baseY.
func NewPowerUp(kind components.PowerUpKind, baseY float64) components.PowerUpData {
	amplitude := config.PowerUp.FloatAmplitude
	if kind == components.ExtraLife {
		amplitude = config.PowerUp.ExtraLifeAmplitude
	}
	return components.PowerUpData{
		Kind:           kind,
		BaseY:          baseY,
		FloatAmplitude: amplitude,
	}
}

// CollectPowerUp returns the pickup's one-shot effect. Collecting an already
// collected pickup does nothing.
func CollectPowerUp(pu *components.PowerUpData, p *components.PlayerData) Effects {
	if pu.Collected {
		return Effects{}
	}
	pu.Collected = true

	fx := Effects{RemoveSelf: true}
	switch pu.Kind {
	case components.FuelCell:
		fx.FuelDelta = p.MaxFuel * config.PowerUp.FuelCellRatio
	case components.Shield:
		fx.GrantShield = true
	case components.MegaBoost:
		fx.Impulse = config.PowerUp.MegaBoostForce
	case components.ExtraLife:
		fx.LivesDelta = 1
	}
	return fx
}

// TickPowerUp advances the float animation and returns the new center Y.
func TickPowerUp(pu *components.PowerUpData, dt float64) float64 {
	pu.FloatTime += dt
	return gamemath.Oscillate(pu.BaseY, pu.FloatTime*config.PowerUp.FloatRate, pu.FloatAmplitude)
}

// EnterDoorway latches the doorway and signals level completion once.
func EnterDoorway(d *components.DoorwayData) Effects {
	if d.Activated {
		return Effects{}
	}
	d.Activated = true
	return Effects{LevelComplete: true}
}

// TickDoorway advances the glow and returns the doorway's opacity.
func TickDoorway(d *components.DoorwayData, dt float64) float64 {
	d.GlowTime += dt
	return gamemath.Pulse(d.GlowTime*3, 0.5, 0.8)
}
