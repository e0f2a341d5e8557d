package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Fuel    float64
	MaxFuel float64 // DefaultFuel scaled by fuelRate

	IsThrusting bool
	MoveSpeed   float64

	// Fall tracking
	FallVelocity        float64
	IsDangerousFall     bool // Latched until grounded
	FallDamageThreshold float64

	HasShield   bool
	ShieldTimer float64 // seconds left before the shield expires

	Checkpoint *math.Vec2 // nil until a checkpoint platform is touched

	FlashTimer float64 // Damage flash, cosmetic
}

var Player = donburi.NewComponentType[PlayerData]()
