package systems

import (
	"github.com/automoto/jetpack-ascent/components"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution while paused, after
// the level is complete, or once the run is dead.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		if level := GetLevel(e); level != nil {
			if level.Complete || (level.Run != nil && level.Run.Dead()) {
				return
			}
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
