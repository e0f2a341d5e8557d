package rules

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
)

// Outcome reports what Apply did.
type Outcome struct {
	Damaged       int  // Lives actually lost
	ShieldUsed    bool // A shield absorbed a damage event
	Died          bool // Death was raised by this call; true at most once per run
	LevelComplete bool
}

// Apply mutates the run and the player according to fx. Pickups are applied
// before damage, so a shield or life collected in the same tick as a hit
// already counts. Every damage event, whether from a fall or a hazard,
// consumes a shield first and otherwise costs one life.
func Apply(run *components.RunStateData, p *components.PlayerData, phys *components.PhysicsData, fx Effects) Outcome {
	out := Outcome{LevelComplete: fx.LevelComplete}

	if fx.GrantShield {
		p.HasShield = true
		p.ShieldTimer = config.PowerUp.ShieldDuration
	}
	run.Lives += fx.LivesDelta
	if fx.FuelDelta != 0 {
		p.Fuel = gamemath.Clamp(p.Fuel+fx.FuelDelta, 0, p.MaxFuel)
	}
	if fx.Checkpoint != nil {
		cp := *fx.Checkpoint
		p.Checkpoint = &cp
	}
	if fx.Impulse > 0 && phys != nil {
		phys.Velocity.Y = -fx.Impulse
	}

	for i := 0; i < fx.Damage; i++ {
		if p.HasShield {
			p.HasShield = false
			p.ShieldTimer = 0
			out.ShieldUsed = true
			continue
		}
		run.Lives--
		out.Damaged++
	}

	if out.Damaged > 0 {
		if run.Lives <= 0 {
			out.Died = run.RaiseDeath()
		} else {
			p.FlashTimer = config.Player.DamageFlashTime
		}
	}

	return out
}
