package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Position returns the center of the collision box.
func (o ObjectData) Position() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetPosition moves the collision box so that its center is p.
func (o ObjectData) SetPosition(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Space = donburi.NewComponentType[resolv.Space]()
