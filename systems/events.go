package systems

import (
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// DeathEvent is published once when the run's lives run out.
type DeathEvent struct {
	Level int
	Score int
}

// LevelCompleteEvent is published when the player enters the doorway. The
// score already includes the level bonus.
type LevelCompleteEvent struct {
	Level         int
	Score         int
	RemainingFuel float64
}

// ContactEvent reports one player contact. Begin is false for every tick
// after the first of a continuous contact.
type ContactEvent struct {
	Category tags.Category
	Entity   donburi.Entity
	Begin    bool
}

var (
	PlayerDied     = events.NewEventType[DeathEvent]()
	LevelCompleted = events.NewEventType[LevelCompleteEvent]()
	Contact        = events.NewEventType[ContactEvent]()
)

// ProcessEvents delivers the events queued during this tick. It runs last.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
