package factory

import (
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var logger = log.WithPrefix("populator")

// Layout summarizes a populated level.
type Layout struct {
	Start   math.Vec2
	Doorway math.Vec2
	Width   float64
	Height  float64

	Platforms int
	Enemies   int
	PowerUps  int
	Skipped   int // Selected specs with an unknown type
}

// PopulateLevel rolls desc against the run's difficulty and creates the
// surviving platforms, enemies and power-ups plus the doorway. Unknown types
// are skipped.
func PopulateLevel(ecs *ecs.ECS, desc *leveldata.Description, run *components.RunStateData, rng rules.Rand) *Layout {
	d := run.Difficulty.Normalize()
	sel := rules.SelectLevel(desc, d, rng)

	width, height := WorldSize(desc)
	layout := &Layout{
		Start:   math.Vec2{X: desc.StartPosition.X(), Y: desc.StartPosition.Y()},
		Doorway: math.Vec2{X: desc.DoorwayPosition.X(), Y: desc.DoorwayPosition.Y()},
		Width:   width,
		Height:  height,
	}

	for _, spec := range sel.Platforms {
		kind, ok := rules.PlatformKindOf(spec.Type)
		if !ok {
			logger.Debug("skipping platform", "type", spec.Type, "x", spec.X, "y", spec.Y)
			layout.Skipped++
			continue
		}
		CreatePlatform(ecs, kind, spec.X, spec.Y, spec.Width)
		layout.Platforms++
	}

	for _, spec := range sel.Enemies {
		kind, ok := rules.EnemyKindOf(spec.Type)
		if !ok {
			logger.Debug("skipping enemy", "type", spec.Type, "x", spec.X, "y", spec.Y)
			layout.Skipped++
			continue
		}
		CreateEnemy(ecs, kind, spec.X, spec.Y, spec.Range, d)
		layout.Enemies++
	}

	for _, spec := range sel.PowerUps {
		kind, ok := rules.PowerUpKindOf(spec.Type)
		if !ok {
			logger.Debug("skipping power-up", "type", spec.Type, "x", spec.X, "y", spec.Y)
			layout.Skipped++
			continue
		}
		CreatePowerUp(ecs, kind, spec.X, spec.Y)
		layout.PowerUps++
	}

	CreateDoorway(ecs, layout.Doorway.X, layout.Doorway.Y)

	logger.Info("level populated",
		"name", desc.Name,
		"difficulty", d,
		"platforms", layout.Platforms,
		"enemies", layout.Enemies,
		"powerups", layout.PowerUps,
		"authored", len(desc.Platforms)+len(desc.Enemies)+len(desc.PowerUps),
		"skipped", layout.Skipped,
	)

	return layout
}

// BuildLevel sets up a complete playable world for desc: the level entity,
// the collision space, the populated entities, the player at the start
// position and the camera.
func BuildLevel(ecs *ecs.ECS, desc *leveldata.Description, run *components.RunStateData, number int, rng rules.Rand) *Layout {
	level := components.Level.Get(CreateLevel(ecs, desc, run, number))

	// The space reaches below the world so falling bodies keep colliding
	// until they hit the dead zone.
	CreateSpace(ecs,
		int(level.Width),
		int(level.Height+2*cfg.World.DeadZoneDepth),
		cfg.World.CellSize, cfg.World.CellSize,
	)

	layout := PopulateLevel(ecs, desc, run, rng)
	CreatePlayer(ecs, layout.Start.X, layout.Start.Y, run.Difficulty)
	CreateCamera(ecs, layout.Start)

	return layout
}
