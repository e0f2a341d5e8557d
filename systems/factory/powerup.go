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

func CreatePowerUp(ecs *ecs.ECS, kind components.PowerUpKind, x, y float64) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(ecs)

	size := cfg.PowerUp.Size
	obj := newObject(powerUp, x-size/2, y-size/2, size, size, tags.ResolvPowerUp.String(), kind.String())

	components.PowerUp.SetValue(powerUp, rules.NewPowerUp(kind, y))
	components.Visual.SetValue(powerUp, components.VisualData{Opacity: 1, ScaleY: 1})

	addToSpace(ecs, obj)

	return powerUp
}

// CreateDoorway creates the level exit centered on (x, y)
func CreateDoorway(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	doorway := archetypes.Doorway.Spawn(ecs)

	w, h := cfg.World.DoorwayWidth, cfg.World.DoorwayHeight
	obj := newObject(doorway, x-w/2, y-h/2, w, h, tags.ResolvDoorway.String())

	components.Doorway.SetValue(doorway, components.DoorwayData{})
	components.Visual.SetValue(doorway, components.VisualData{Opacity: 0.5, ScaleY: 1})

	addToSpace(ecs, obj)

	return doorway
}
