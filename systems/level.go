package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TickDelta is the simulated time covered by one Update, in seconds.
func TickDelta() float64 {
	return 1 / float64(cfg.C.TickRate)
}

// GetLevel returns the active level, or nil outside a level.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetPlayer returns the player entry if there is one.
func GetPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// destroy removes an entity and its collision box. Bodies standing on the
// removed box lose their footing.
func destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		components.Physics.Each(ecs.World, func(e *donburi.Entry) {
			if phys := components.Physics.Get(e); phys.OnGround == obj {
				phys.OnGround = nil
			}
		})
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	if level := GetLevel(ecs); level != nil {
		delete(level.Contacts, entry.Entity())
	}
	entry.Remove()
}

// entryOf returns the entity that owns a collision box.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
