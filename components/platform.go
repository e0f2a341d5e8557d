package components

import "github.com/yohamta/donburi"

// PlatformKind selects a platform's behavior
type PlatformKind int

const (
	StaticPlatform PlatformKind = iota
	BreakawayPlatform
	BouncePlatform
	RechargePlatform
	CheckpointPlatform
)

func (k PlatformKind) String() string {
	switch k {
	case StaticPlatform:
		return "static"
	case BreakawayPlatform:
		return "breakaway"
	case BouncePlatform:
		return "bounce"
	case RechargePlatform:
		return "recharge"
	case CheckpointPlatform:
		return "checkpoint"
	}
	return "unknown"
}

// BreakState is the breakaway platform state machine
type BreakState int

const (
	BreakStable BreakState = iota
	BreakBreaking
	BreakBroken
)

type PlatformData struct {
	Kind   PlatformKind
	Width  float64
	Height float64

	// Breakaway
	Break      BreakState
	BreakTimer float64
	BreakTime  float64

	// Bounce
	BounceForce   float64
	Compressed    bool
	CompressTimer float64

	// Checkpoint
	Activated bool
}

var Platform = donburi.NewComponentType[PlatformData]()
