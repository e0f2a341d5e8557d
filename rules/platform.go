package rules

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/yohamta/donburi/features/math"
)

// DefaultPlatformWidth is the width used when a level leaves it out.
func DefaultPlatformWidth(kind components.PlatformKind) float64 {
	switch kind {
	case components.BouncePlatform:
		return 100
	case components.RechargePlatform:
		return 120
	case components.CheckpointPlatform:
		return 200
	}
	return config.Platform.DefaultWidth
}

// NewPlatform returns a platform of the given kind. A non-positive width
// selects the kind's default.
func NewPlatform(kind components.PlatformKind, width float64) components.PlatformData {
	if width <= 0 {
		width = DefaultPlatformWidth(kind)
	}
	return components.PlatformData{
		Kind:        kind,
		Width:       width,
		Height:      config.Platform.Height,
		BreakTime:   config.Platform.BreakTime,
		BounceForce: config.Platform.BounceForce,
	}
}

// PlatformContactBegin handles the first tick of player contact. surface is
// the top-center point of the platform and impactVelY the player's vertical
// velocity as it arrived (positive when falling).
func PlatformContactBegin(pl *components.PlatformData, surface math.Vec2, impactVelY float64) Effects {
	switch pl.Kind {
	case components.BreakawayPlatform:
		if pl.Break == components.BreakStable {
			pl.Break = components.BreakBreaking
			pl.BreakTimer = 0
		}
	case components.BouncePlatform:
		if impactVelY > 0 {
			pl.Compressed = true
			pl.CompressTimer = config.Platform.CompressTime
			return Effects{Impulse: pl.BounceForce}
		}
	case components.CheckpointPlatform:
		if !pl.Activated {
			pl.Activated = true
			cp := math.Vec2{X: surface.X, Y: surface.Y - config.Platform.CheckpointLift}
			return Effects{Checkpoint: &cp}
		}
	}
	return Effects{}
}

// PlatformContactStay handles every further tick of continuous contact.
// Apply clamps the refill to the player's tank.
func PlatformContactStay(pl *components.PlatformData, dt float64) Effects {
	if pl.Kind == components.RechargePlatform {
		return Effects{FuelDelta: config.Fuel.RechargeRate * dt}
	}
	return Effects{}
}

// TickPlatform advances platform timers and reports whether the platform
// should be removed this tick.
func TickPlatform(pl *components.PlatformData, dt float64) (remove bool) {
	switch pl.Kind {
	case components.BreakawayPlatform:
		if pl.Break != components.BreakBreaking {
			return false
		}
		pl.BreakTimer += dt
		if pl.BreakTimer >= pl.BreakTime-timerEpsilon {
			pl.Break = components.BreakBroken
			return true
		}
	case components.BouncePlatform:
		if pl.Compressed {
			pl.CompressTimer -= dt
			if pl.CompressTimer <= timerEpsilon {
				pl.Compressed = false
				pl.CompressTimer = 0
			}
		}
	}
	return false
}

// BreakProgress returns how far a breaking platform is toward removal, 0..1.
func BreakProgress(pl *components.PlatformData) float64 {
	if pl.Break == components.BreakStable || pl.BreakTime <= 0 {
		return 0
	}
	if pl.BreakTimer >= pl.BreakTime {
		return 1
	}
	return pl.BreakTimer / pl.BreakTime
}
