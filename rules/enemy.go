package rules

import (
	stdmath "math"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// NewEnemy returns an enemy of the given kind spawned at (x, y). patrolRange
// only applies to hover drones; a non-positive value selects the default.
func NewEnemy(kind components.EnemyKind, x, y, patrolRange float64, d config.Difficulty) components.EnemyData {
	e := components.EnemyData{
		Kind:        kind,
		Direction:   1,
		StartX:      x,
		StartY:      y,
		DetectRange: config.Enemy.DropBotDetectRange,
	}
	switch kind {
	case components.RollerBot:
		e.Speed = config.Scale(config.Enemy.RollerBotSpeed, config.KeyEnemySpeed, d)
	case components.HoverDrone:
		e.Speed = config.Scale(config.Enemy.HoverDroneSpeed, config.KeyEnemySpeed, d)
		e.Range = patrolRange
		if e.Range <= 0 {
			e.Range = config.Enemy.HoverDroneRange
		}
	}
	return e
}

// StepRollerBot moves a roller bot centered at pos along its platform.
// hasGround reports whether a platform surface supports the point (x, y).
// The bot turns around when there is no ground ahead, or when it is heading
// into the edge margin of the world.
func StepRollerBot(e *components.EnemyData, pos *math.Vec2, dt, worldWidth float64, hasGround func(x, y float64) bool) {
	pos.X += e.Speed * e.Direction * dt

	aheadX := pos.X + e.Direction*config.Enemy.EdgeLookahead
	bottom := pos.Y + config.Enemy.RollerBotSize/2

	atLeftEdge := pos.X < config.Enemy.EdgeMargin && e.Direction < 0
	atRightEdge := pos.X > worldWidth-config.Enemy.EdgeMargin && e.Direction > 0
	if !hasGround(aheadX, bottom) || atLeftEdge || atRightEdge {
		e.Direction = -e.Direction
	}

	e.Angle += dt * e.Speed * config.Enemy.RollerBotSpinFactor * e.Direction
}

// SupportsPoint is the ground test used by roller bots: the platform top must
// lie within the ground tolerance of y, and x must fall inside the platform.
func SupportsPoint(platform gamemath.Rect, x, y float64) bool {
	return stdmath.Abs(platform.Y-y) < config.Enemy.GroundTolerance &&
		stdmath.Abs(platform.CenterX()-x) < platform.W/2
}

// StepHoverDrone patrols a drone around its spawn X and bobs it around its
// spawn Y. The turn only happens while heading away from the spawn, so a
// drone that overshoots does not flip back and forth.
func StepHoverDrone(e *components.EnemyData, pos *math.Vec2, dt float64) {
	pos.X += e.Speed * e.Direction * dt

	offset := pos.X - e.StartX
	half := e.Range / 2
	if (offset > half && e.Direction > 0) || (offset < -half && e.Direction < 0) {
		e.Direction = -e.Direction
	}

	e.BobTime += config.Enemy.HoverBobRate * dt
	pos.Y = gamemath.Oscillate(e.StartY, e.BobTime, config.Enemy.HoverBobAmplitude)
}

// StepDropBot advances the hang, warn, fall state machine. player is the
// player's center, or nil when there is none. Entering the falling state
// hands the bot to gravity through phys.
func StepDropBot(e *components.EnemyData, phys *components.PhysicsData, pos math.Vec2, player *math.Vec2, dt float64) {
	switch e.Drop {
	case components.DropHanging:
		if player != nil && dropBotDetects(e, pos, *player) {
			e.Drop = components.DropWarning
			e.WarningTimer = 0
		}
	case components.DropWarning:
		e.WarningTimer += dt
		if e.WarningTimer >= config.Enemy.DropBotWarningTime-timerEpsilon {
			e.Drop = components.DropFalling
			phys.Gravity = config.Player.Gravity
			phys.MaxFall = config.Enemy.DropBotFallSpeed
		}
	case components.DropFalling:
		e.Angle += dt * config.Enemy.DropBotSpinRate
	}
}

func dropBotDetects(e *components.EnemyData, pos, player math.Vec2) bool {
	dx := stdmath.Abs(player.X - pos.X)
	dy := player.Y - pos.Y
	return dx < e.DetectRange && dy > 0 && dy < config.Enemy.DropBotDetectDepth
}

// DropBotLanded is called when a drop bot touches down on a platform. It
// reports whether the bot should be removed, which only happens mid-fall.
func DropBotLanded(e *components.EnemyData) bool {
	if e.Drop != components.DropFalling {
		return false
	}
	e.Drop = components.DropRemoved
	return true
}

// EnemyHitPlayer is the shared contact rule: one damage event, then the
// enemy removes itself. A second contact after the first is ignored.
func EnemyHitPlayer(e *components.EnemyData) Effects {
	if e.Spent {
		return Effects{}
	}
	e.Spent = true
	if e.Kind == components.DropBot {
		e.Drop = components.DropRemoved
	}
	return Effects{Damage: 1, RemoveSelf: true}
}

// WarningBlink reports whether a warning drop bot shows its alert color.
func WarningBlink(e *components.EnemyData) bool {
	return e.Drop == components.DropWarning && stdmath.Sin(e.WarningTimer*15) > 0
}
