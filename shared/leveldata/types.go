// Package leveldata describes authored levels and loads them from JSON or
// Tiled TMX files. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Platform type names
const (
	PlatformStatic     = "static"
	PlatformBreakaway  = "breakaway"
	PlatformBounce     = "bounce"
	PlatformRecharge   = "recharge"
	PlatformCheckpoint = "checkpoint"
)

// Enemy type names
const (
	EnemyRollerBot  = "rollerBot"
	EnemyHoverDrone = "hoverDrone"
	EnemyDropBot    = "dropBot"
)

// Power-up type names
const (
	PowerUpFuelCell  = "fuelCell"
	PowerUpShield    = "shield"
	PowerUpMegaBoost = "megaBoost"
	PowerUpExtraLife = "extraLife"
)

// Point is an [x, y] pair as written in level files.
type Point [2]float64

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Description is a read-only level layout. Platform coordinates are the
// top-left corner; every other position is an entity center.
type Description struct {
	Name            string         `json:"name"`
	Width           float64        `json:"width,omitempty"`  // 0 means the default world width
	Height          float64        `json:"height,omitempty"` // 0 means derived from content
	Platforms       []PlatformSpec `json:"platforms"`
	Enemies         []EnemySpec    `json:"enemies"`
	PowerUps        []PowerUpSpec  `json:"powerups"`
	StartPosition   Point          `json:"startPosition"`
	DoorwayPosition Point          `json:"doorwayPosition"`
}

// PlatformSpec places one platform. A zero Width means the type's default.
type PlatformSpec struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width,omitempty"`
}

// EnemySpec places one enemy. Range only applies to hover drones.
type EnemySpec struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Range float64 `json:"range,omitempty"`
}

// PowerUpSpec places one pickup.
type PowerUpSpec struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Bottom returns the largest y coordinate used by any entity in the level.
func (d *Description) Bottom() float64 {
	bottom := d.StartPosition.Y()
	if d.DoorwayPosition.Y() > bottom {
		bottom = d.DoorwayPosition.Y()
	}
	for _, p := range d.Platforms {
		if p.Y > bottom {
			bottom = p.Y
		}
	}
	for _, e := range d.Enemies {
		if e.Y > bottom {
			bottom = e.Y
		}
	}
	for _, p := range d.PowerUps {
		if p.Y > bottom {
			bottom = p.Y
		}
	}
	return bottom
}
