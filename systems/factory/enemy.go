package factory

import (
	"github.com/automoto/jetpack-ascent/archetypes"
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy creates an enemy at (x, y) with its speed scaled for d.
// Roller bots and hover drones are centered on the point; a drop bot hangs
// from it.
func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y, patrolRange float64, d cfg.Difficulty) *donburi.Entry {
	var e *donburi.Entry
	var w, h float64
	cy := y

	switch kind {
	case components.HoverDrone:
		e = archetypes.FlyingEnemy.Spawn(ecs)
		w, h = cfg.Enemy.HoverDroneWidth, cfg.Enemy.HoverDroneHeight
	case components.DropBot:
		e = archetypes.FallingEnemy.Spawn(ecs)
		w, h = cfg.Enemy.DropBotSize, cfg.Enemy.DropBotSize
		cy = y + h/2
		// Held in place until it drops
		components.Physics.SetValue(e, components.PhysicsData{})
	default:
		e = archetypes.FallingEnemy.Spawn(ecs)
		w, h = cfg.Enemy.RollerBotSize, cfg.Enemy.RollerBotSize
		components.Physics.SetValue(e, components.PhysicsData{
			Gravity: cfg.Player.Gravity,
			MaxFall: cfg.Player.MaxFallSpeed,
		})
	}

	obj := newObject(e, x-w/2, cy-h/2, w, h, tags.ResolvEnemy.String(), kind.String())
	components.Enemy.SetValue(e, rules.NewEnemy(kind, x, cy, patrolRange, d))

	addToSpace(ecs, obj)

	return e
}
