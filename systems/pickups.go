package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps advances the float animation of every pickup.
func UpdatePowerUps(ecs *ecs.ECS) {
	dt := TickDelta()
	components.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		powerUp := components.PowerUp.Get(e)
		y := rules.TickPowerUp(powerUp, dt)
		components.Visual.Get(e).OffsetY = y - powerUp.BaseY
	})
}

// UpdateDoorway advances the doorway glow.
func UpdateDoorway(ecs *ecs.ECS) {
	dt := TickDelta()
	components.Doorway.Each(ecs.World, func(e *donburi.Entry) {
		components.Visual.Get(e).Opacity = rules.TickDoorway(components.Doorway.Get(e), dt)
	})
}
