package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collision box with the space's cells
// after kinematic movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
