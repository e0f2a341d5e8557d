package components

import "github.com/yohamta/donburi"

// PowerUpKind selects a pickup's effect
type PowerUpKind int

const (
	FuelCell PowerUpKind = iota
	Shield
	MegaBoost
	ExtraLife
)

func (k PowerUpKind) String() string {
	switch k {
	case FuelCell:
		return "fuelCell"
	case Shield:
		return "shield"
	case MegaBoost:
		return "megaBoost"
	case ExtraLife:
		return "extraLife"
	}
	return "unknown"
}

type PowerUpData struct {
	Kind PowerUpKind

	// Float animation, cosmetic
	BaseY          float64
	FloatTime      float64
	FloatAmplitude float64

	Collected bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

type DoorwayData struct {
	Activated bool
	GlowTime  float64
}

var Doorway = donburi.NewComponentType[DoorwayData]()
