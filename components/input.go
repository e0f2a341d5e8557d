package components

import "github.com/yohamta/donburi"

// ControlsData is the pilot's intent for the current tick, filled from the
// keyboard or from a scripted pilot.
type ControlsData struct {
	Left   bool
	Right  bool
	Thrust bool
}

var Controls = donburi.NewComponentType[ControlsData]()

// Axis returns -1, 0 or 1 for the held horizontal direction.
func (c ControlsData) Axis() float64 {
	axis := 0.0
	if c.Left {
		axis--
	}
	if c.Right {
		axis++
	}
	return axis
}
