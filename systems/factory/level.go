package factory

import (
	stdmath "math"

	"github.com/automoto/jetpack-ascent/archetypes"
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldSize returns the playable area of desc. Missing sizes fall back to the
// default width and to a height that fits every entity.
func WorldSize(desc *leveldata.Description) (width, height float64) {
	width = desc.Width
	if width <= 0 {
		width = cfg.World.DefaultWidth
	}
	height = desc.Height
	if height <= 0 {
		height = stdmath.Max(cfg.World.MinHeight, desc.Bottom()+cfg.World.BottomPadding)
	}
	return width, height
}

// CreateLevel creates the level entity for desc as level number of run.
func CreateLevel(ecs *ecs.ECS, desc *leveldata.Description, run *components.RunStateData, number int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	width, height := WorldSize(desc)
	name := desc.Name
	if name == "" {
		name = cfg.LevelName(number)
	}

	components.Level.Set(level, &components.LevelData{
		Run:      run,
		Number:   number,
		Name:     name,
		Width:    width,
		Height:   height,
		Start:    math.Vec2{X: desc.StartPosition.X(), Y: desc.StartPosition.Y()},
		Contacts: make(map[donburi.Entity]bool),
	})

	return level
}
