package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/shared/gamemath"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Boxes closer than this count as touching
const contactSlop = 0.5

var contactTags = []string{
	tags.ResolvPlatform.String(),
	tags.ResolvEnemy.String(),
	tags.ResolvPowerUp.String(),
	tags.ResolvDoorway.String(),
}

// UpdateContacts dispatches every player contact to its handler, merges the
// returned effects and applies them once. Entities that asked to be removed
// are destroyed after the effects are applied.
func UpdateContacts(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	playerEntry, ok := GetPlayer(ecs)
	if level == nil || !ok {
		return
	}
	dt := TickDelta()

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	box := rectOf(playerObj.Object)

	current := make(map[donburi.Entity]bool)
	var fx rules.Effects
	var toRemove []*donburi.Entry

	for _, obj := range nearby(playerObj.Object) {
		if !box.Overlaps(rectOf(obj), contactSlop) {
			continue
		}
		entry, ok := entryOf(obj)
		if !ok || current[entry.Entity()] {
			continue
		}
		current[entry.Entity()] = true
		begin := !level.Contacts[entry.Entity()]

		var category tags.Category
		var f rules.Effects
		switch {
		case obj.HasTags(tags.ResolvPlatform.String()):
			category = tags.ResolvPlatform
			f = platformContact(entry, obj, box, player, physics, begin, dt)
		case obj.HasTags(tags.ResolvEnemy.String()):
			category = tags.ResolvEnemy
			f = rules.EnemyHitPlayer(components.Enemy.Get(entry))
		case obj.HasTags(tags.ResolvPowerUp.String()):
			category = tags.ResolvPowerUp
			f = rules.CollectPowerUp(components.PowerUp.Get(entry), player)
		case obj.HasTags(tags.ResolvDoorway.String()):
			category = tags.ResolvDoorway
			f = rules.EnterDoorway(components.Doorway.Get(entry))
		}

		Contact.Publish(ecs.World, ContactEvent{Category: category, Entity: entry.Entity(), Begin: begin})

		if f.RemoveSelf {
			toRemove = append(toRemove, entry)
			f.RemoveSelf = false
		}
		fx = fx.Merge(f)
	}
	level.Contacts = current

	out := rules.Apply(level.Run, player, physics, fx)

	for _, e := range toRemove {
		destroy(ecs, e)
	}

	if out.Died {
		PlayerDied.Publish(ecs.World, DeathEvent{Level: level.Number, Score: level.Run.Score})
		return
	}
	if out.LevelComplete {
		level.Complete = true
		level.Run.CompleteLevel(player.Fuel)
		LevelCompleted.Publish(ecs.World, LevelCompleteEvent{
			Level:         level.Number,
			Score:         level.Run.Score,
			RemainingFuel: player.Fuel,
		})
	}
}

// platformContact handles one platform touch. Landing on the platform runs
// the landing rule and the first-contact rule with the speed the player
// arrived at, even when the boxes were already touching. Striking a
// platform's side or underside during a dangerous fall also ends the fall.
func platformContact(entry *donburi.Entry, obj *resolv.Object, box gamemath.Rect, player *components.PlayerData, physics *components.PhysicsData, begin bool, dt float64) rules.Effects {
	platform := components.Platform.Get(entry)
	surface := math.Vec2{X: obj.X + obj.W/2, Y: obj.Y}

	if physics.Landed && physics.OnGround == obj {
		fx := rules.LandOnPlatform(player, physics.ImpactVelY)
		return fx.Merge(rules.PlatformContactBegin(platform, surface, physics.ImpactVelY))
	}
	if begin {
		fx := rules.PlatformContactBegin(platform, surface, physics.Velocity.Y)
		if player.IsDangerousFall && !landable(box, obj) {
			fx = fx.Merge(rules.LandOnPlatform(player, 0))
		}
		return fx
	}
	return rules.PlatformContactStay(platform, dt)
}

// landable reports whether box is above obj and overlaps it horizontally,
// so the next physics step can still land it on top.
func landable(box gamemath.Rect, obj *resolv.Object) bool {
	if box.Right() <= obj.X || obj.X+obj.W <= box.X {
		return false
	}
	return box.Bottom() <= obj.Y+landingSlop
}

// nearby returns the tagged objects in the cells around obj, each once.
func nearby(obj *resolv.Object) []*resolv.Object {
	var found []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	// Shifting the check both ways covers boxes that only touch an edge
	for _, dy := range []float64{-1, 1} {
		col := obj.Check(0, dy, contactTags...)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			if !seen[o] {
				seen[o] = true
				found = append(found, o)
			}
		}
	}
	return found
}

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
