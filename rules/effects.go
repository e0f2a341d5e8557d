// Package rules holds the per-tick gameplay decisions for the player, enemies,
// platforms and pickups, plus level population. Handlers are pure functions
// over component data that return Effects; Apply is the single place where
// those effects reach the run state and the player.
package rules

import "github.com/yohamta/donburi/features/math"

// Timer comparisons tolerate accumulated float error so that a countdown of
// n*dt finishes on the n-th tick.
const timerEpsilon = 1e-9

// Effects is what a contact, pickup or hazard asks for.
type Effects struct {
	Damage        int // Number of damage events
	LivesDelta    int
	FuelDelta     float64
	Impulse       float64 // Upward launch speed, 0 for none
	GrantShield   bool
	Checkpoint    *math.Vec2
	RemoveSelf    bool // The entity that produced the effect should be removed
	LevelComplete bool
}

// Merge combines two effect sets. Damage and deltas add up, the stronger
// impulse wins and a later checkpoint replaces an earlier one.
func (e Effects) Merge(o Effects) Effects {
	e.Damage += o.Damage
	e.LivesDelta += o.LivesDelta
	e.FuelDelta += o.FuelDelta
	if o.Impulse > e.Impulse {
		e.Impulse = o.Impulse
	}
	e.GrantShield = e.GrantShield || o.GrantShield
	if o.Checkpoint != nil {
		e.Checkpoint = o.Checkpoint
	}
	e.RemoveSelf = e.RemoveSelf || o.RemoveSelf
	e.LevelComplete = e.LevelComplete || o.LevelComplete
	return e
}

// Empty reports whether e asks for nothing.
func (e Effects) Empty() bool {
	return e == Effects{}
}
