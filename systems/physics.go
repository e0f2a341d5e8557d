package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// How far a body may sink into a platform and still land on it
const landingSlop = 0.5

// UpdatePhysics integrates gravity and moves every body. Platforms are
// one-way: a body lands only when it crosses a platform top while falling,
// so jumping up through a platform is allowed.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := TickDelta()
	level := GetLevel(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.Velocity.Y = gamemath.ApplyGravity(physics.Velocity.Y, physics.Gravity, physics.MaxFall, dt)

		obj.X += physics.Velocity.X * dt
		if level != nil {
			obj.X = gamemath.Clamp(obj.X, 0, level.Width-obj.W)
		}

		previous := physics.OnGround
		physics.OnGround = nil
		physics.Landed = false
		dy := physics.Velocity.Y * dt
		if dy > 0 {
			if platform := findLanding(obj.Object, dy); platform != nil {
				if platform != previous {
					physics.Landed = true
					physics.ImpactVelY = physics.Velocity.Y
				}
				physics.Velocity.Y = 0
				physics.OnGround = platform
				obj.Y = platform.Y - obj.H
				obj.Update()
				return
			}
		}
		obj.Y += dy
		obj.Update()
	})
}

// findLanding returns the highest platform whose top the body's bottom
// crosses when moving down by dy.
func findLanding(obj *resolv.Object, dy float64) *resolv.Object {
	// Look one unit further so a body resting exactly on a cell boundary
	// still sees the platform below it.
	col := obj.Check(0, dy+1, tags.ResolvPlatform.String())
	if col == nil {
		return nil
	}

	bottom := obj.Y + obj.H
	var best *resolv.Object
	for _, p := range col.ObjectsByTags(tags.ResolvPlatform.String()) {
		if obj.X+obj.W <= p.X || p.X+p.W <= obj.X {
			continue
		}
		if bottom > p.Y+landingSlop || bottom+dy < p.Y {
			continue
		}
		if best == nil || p.Y < best.Y {
			best = p
		}
	}
	return best
}

// levelBottom is the y below which bodies count as fallen out.
func levelBottom(level *components.LevelData) float64 {
	return level.Height + cfg.World.DeadZoneDepth
}
