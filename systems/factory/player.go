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

// CreatePlayer creates the player centered on (x, y) with fuel and fall
// tolerance scaled for d.
func CreatePlayer(ecs *ecs.ECS, x, y float64, d cfg.Difficulty) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := newObject(player, x-w/2, y-h/2, w, h, tags.ResolvPlayer.String())

	components.Player.SetValue(player, rules.NewPlayer(d))
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
		MaxFall: cfg.Player.MaxFallSpeed,
	})
	components.Controls.SetValue(player, components.ControlsData{})

	addToSpace(ecs, obj)

	return player
}
