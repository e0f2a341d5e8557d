package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances the breakaway and bounce timers and removes
// platforms that finished breaking.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := TickDelta()
	var toRemove []*donburi.Entry

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		if rules.TickPlatform(components.Platform.Get(e), dt) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}
