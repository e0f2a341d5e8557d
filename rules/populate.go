package rules

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
)

// Rand is the random source used to populate a level. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Selection is the subset of a level description that survived the
// difficulty rolls, in authored order. Specs with unknown types are kept
// here; the entity factory skips them.
type Selection struct {
	Platforms []leveldata.PlatformSpec
	Enemies   []leveldata.EnemySpec
	PowerUps  []leveldata.PowerUpSpec
}

// SelectLevel rolls every spec in desc against the difficulty profile.
// Platforms, enemies and power-ups are rolled in that order, one list at a
// time, so a seeded source always yields the same selection.
func SelectLevel(desc *leveldata.Description, d config.Difficulty, rng Rand) Selection {
	d = d.Normalize()
	profile := config.GetProfile(d)

	var sel Selection
	for _, spec := range desc.Platforms {
		if KeepPlatform(profile.PlatformDensity, d, rng) {
			sel.Platforms = append(sel.Platforms, spec)
		}
	}
	for _, spec := range desc.Enemies {
		if keepSpawn(profile.HazardRate, d, rng) {
			sel.Enemies = append(sel.Enemies, spec)
		}
	}
	for _, spec := range desc.PowerUps {
		if keepSpawn(profile.PowerUpFrequency, d, rng) {
			sel.PowerUps = append(sel.PowerUps, spec)
		}
	}
	return sel
}

// KeepPlatform rolls one platform against density. A platform that fails the
// roll is still kept, except on hard where a second roll drops it 30% of the
// time.
func KeepPlatform(density float64, d config.Difficulty, rng Rand) bool {
	if rng.Float64() < density {
		return true
	}
	if d == config.Hard && rng.Float64() > 0.7 {
		return false
	}
	return true
}

// keepSpawn is the enemy and power-up rule. Medium keeps everything but the
// draw is made regardless so every difficulty consumes the same sequence.
func keepSpawn(rate float64, d config.Difficulty, rng Rand) bool {
	return !(rng.Float64() > rate && d != config.Medium)
}

// PlatformKindOf maps a level type name onto a platform kind.
func PlatformKindOf(name string) (components.PlatformKind, bool) {
	switch name {
	case leveldata.PlatformStatic:
		return components.StaticPlatform, true
	case leveldata.PlatformBreakaway:
		return components.BreakawayPlatform, true
	case leveldata.PlatformBounce:
		return components.BouncePlatform, true
	case leveldata.PlatformRecharge:
		return components.RechargePlatform, true
	case leveldata.PlatformCheckpoint:
		return components.CheckpointPlatform, true
	}
	return 0, false
}

// EnemyKindOf maps a level type name onto an enemy kind.
func EnemyKindOf(name string) (components.EnemyKind, bool) {
	switch name {
	case leveldata.EnemyRollerBot:
		return components.RollerBot, true
	case leveldata.EnemyHoverDrone:
		return components.HoverDrone, true
	case leveldata.EnemyDropBot:
		return components.DropBot, true
	}
	return 0, false
}

// PowerUpKindOf maps a level type name onto a power-up kind.
func PowerUpKindOf(name string) (components.PowerUpKind, bool) {
	switch name {
	case leveldata.PowerUpFuelCell:
		return components.FuelCell, true
	case leveldata.PowerUpShield:
		return components.Shield, true
	case leveldata.PowerUpMegaBoost:
		return components.MegaBoost, true
	case leveldata.PowerUpExtraLife:
		return components.ExtraLife, true
	}
	return 0, false
}
