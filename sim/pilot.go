package sim

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/yohamta/donburi/features/math"
)

// View is what a pilot sees of the player each tick.
type View struct {
	Tick     int
	Position math.Vec2
	Velocity math.Vec2
	Fuel     float64
	MaxFuel  float64
	Grounded bool
	Doorway  math.Vec2
}

// Pilot decides the controls for the next tick.
type Pilot interface {
	Steer(v View) components.ControlsData
}

// PilotFunc adapts a plain function to the Pilot interface.
type PilotFunc func(v View) components.ControlsData

func (f PilotFunc) Steer(v View) components.ControlsData {
	return f(v)
}

// Idle never touches the controls.
var Idle = PilotFunc(func(View) components.ControlsData {
	return components.ControlsData{}
})

// Homing flies straight at the doorway, thrusting while the doorway is above
// it and fuel remains.
type Homing struct {
	Deadband float64 // Horizontal distance treated as on target
}

func (h Homing) Steer(v View) components.ControlsData {
	var c components.ControlsData

	dx := v.Doorway.X - v.Position.X
	switch {
	case dx < -h.Deadband:
		c.Left = true
	case dx > h.Deadband:
		c.Right = true
	}

	c.Thrust = v.Fuel > 0 && v.Doorway.Y < v.Position.Y
	return c
}
