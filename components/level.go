package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Run    *RunStateData
	Number int
	Name   string
	Width  float64
	Height float64
	Start  math.Vec2

	// Entities overlapping the player at the end of the last tick, used to
	// tell a new contact from a continuing one.
	Contacts map[donburi.Entity]bool

	Complete bool
}

var Level = donburi.NewComponentType[LevelData]()
