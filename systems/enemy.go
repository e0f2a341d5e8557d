package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies steps every enemy's behavior. Drop bots that landed on a
// platform during the last physics step are removed here.
func UpdateEnemies(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	dt := TickDelta()

	var playerPos *math.Vec2
	if playerEntry, ok := GetPlayer(ecs); ok {
		pos := components.Object.Get(playerEntry).Position()
		playerPos = &pos
	}

	var toRemove []*donburi.Entry

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		pos := obj.Position()

		switch enemy.Kind {
		case components.RollerBot:
			hasGround := groundCheck(obj)
			if !components.Physics.Get(e).Grounded() {
				// Airborne rollers keep their heading until they land
				hasGround = func(x, y float64) bool { return true }
			}
			rules.StepRollerBot(enemy, &pos, dt, level.Width, hasGround)
			obj.SetPosition(pos)
		case components.HoverDrone:
			rules.StepHoverDrone(enemy, &pos, dt)
			obj.SetPosition(pos)
		case components.DropBot:
			physics := components.Physics.Get(e)
			if physics.Grounded() && rules.DropBotLanded(enemy) {
				toRemove = append(toRemove, e)
				return
			}
			rules.StepDropBot(enemy, physics, pos, playerPos, dt)
		}

		if pos.Y > levelBottom(level) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroy(ecs, e)
	}
}

// groundCheck returns the roller bot ground test for obj. Candidates come
// from the collision space around the checked point; the support test itself
// is rules.SupportsPoint.
func groundCheck(obj *components.ObjectData) func(x, y float64) bool {
	return func(x, y float64) bool {
		center := obj.Position()
		dx := x - center.X
		dy := y + cfg.Enemy.GroundTolerance - (obj.Y + obj.H)

		col := obj.Check(dx, dy, tags.ResolvPlatform.String())
		if col == nil {
			return false
		}
		for _, p := range col.ObjectsByTags(tags.ResolvPlatform.String()) {
			if rules.SupportsPoint(gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}, x, y) {
				return true
			}
		}
		return false
	}
}
