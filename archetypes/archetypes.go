package archetypes

import (
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Controls,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
		components.Visual,
	)
	// Roller and drop bots fall under gravity
	FallingEnemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
	)
	// Hover drones are moved directly
	FlyingEnemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
		components.Visual,
	)
	Doorway = newArchetype(
		tags.Doorway,
		components.Doorway,
		components.Object,
		components.Visual,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
