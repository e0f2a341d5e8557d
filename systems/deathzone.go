package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeadZone handles the player falling out of the bottom of the level:
// one damage event, then a respawn at the checkpoint or the level start
// unless that was the last life.
func UpdateDeadZone(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	playerEntry, ok := GetPlayer(ecs)
	if level == nil || !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	if !rules.FellOut(obj.Position().Y, level.Height) {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	out := rules.Apply(level.Run, player, physics, rules.DeadZoneHit())
	if out.Died {
		PlayerDied.Publish(ecs.World, DeathEvent{Level: level.Number, Score: level.Run.Score})
		return
	}

	pos := rules.Respawn(player, physics, level.Start)
	obj.SetPosition(pos)
	obj.Update()
	level.Contacts = make(map[donburi.Entity]bool)

	log.Debug("player respawned", "x", pos.X, "y", pos.Y, "lives", level.Run.Lives)
}
