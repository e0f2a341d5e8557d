package components

import "github.com/yohamta/donburi"

// EnemyKind selects an enemy's behavior
type EnemyKind int

const (
	RollerBot EnemyKind = iota
	HoverDrone
	DropBot
)

func (k EnemyKind) String() string {
	switch k {
	case RollerBot:
		return "rollerBot"
	case HoverDrone:
		return "hoverDrone"
	case DropBot:
		return "dropBot"
	}
	return "unknown"
}

// DropState is the drop bot state machine
type DropState int

const (
	DropHanging DropState = iota
	DropWarning
	DropFalling
	DropRemoved
)

type EnemyData struct {
	Kind      EnemyKind
	Direction float64 // 1 = right, -1 = left
	Speed     float64 // enemySpeed already applied

	// Hover drone patrol
	StartX  float64
	StartY  float64
	Range   float64
	BobTime float64

	// Drop bot
	Drop         DropState
	WarningTimer float64
	DetectRange  float64

	Angle float64 // Cosmetic spin, radians
	Spent bool    // Already hit the player this tick
}

var Enemy = donburi.NewComponentType[EnemyData]()
