package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the pilot's intent, jetpack fuel and fall tracking.
// Grounded state comes from the previous physics step.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	controls := components.Controls.Get(playerEntry)

	rules.TickPlayer(player, physics, *controls, physics.Grounded(), TickDelta())
}
