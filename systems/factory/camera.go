package factory

import (
	"github.com/automoto/jetpack-ascent/archetypes"
	"github.com/automoto/jetpack-ascent/components"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera already centered on focus.
func CreateCamera(ecs *ecs.ECS, focus math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: focus})
}

