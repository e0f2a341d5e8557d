package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Center of the view in world coordinates
}

var Camera = donburi.NewComponentType[CameraData]()
