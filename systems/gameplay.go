package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the level simulation in tick order. Timers
// tick before contacts so a contact made this tick counts from the next one.
// Input systems are left to the caller.
func AddGameplaySystems(e *ecs.ECS) {
	e.AddSystem(WithGameplayChecks(UpdatePlayer))
	e.AddSystem(WithGameplayChecks(UpdateEnemies))
	e.AddSystem(WithGameplayChecks(UpdateObjects))
	e.AddSystem(WithGameplayChecks(UpdatePlatforms))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateContacts))
	e.AddSystem(WithGameplayChecks(UpdatePowerUps))
	e.AddSystem(WithGameplayChecks(UpdateDoorway))
	e.AddSystem(WithGameplayChecks(UpdateDeadZone))
	e.AddSystem(WithGameplayChecks(UpdateEffects))
	e.AddSystem(WithGameplayChecks(UpdateCamera))

	// Events queued by a tick that ended the level still go out
	e.AddSystem(ProcessEvents)
}
