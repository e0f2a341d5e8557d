package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/automoto/jetpack-ascent/systems/factory"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newLevelECS builds a playable world for desc with the gameplay systems and
// no input.
func newLevelECS(t *testing.T, desc *leveldata.Description, run *components.RunStateData) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	AddGameplaySystems(e)
	factory.BuildLevel(e, desc, run, 1, rand.New(rand.NewSource(1)))
	return e
}

func step(e *ecs.ECS, ticks int) {
	for i := 0; i < ticks; i++ {
		e.Update()
	}
}

func onFloor(kind string, x, width float64) *leveldata.Description {
	return &leveldata.Description{
		Name:            "Test",
		Platforms:       []leveldata.PlatformSpec{{Type: kind, X: x, Y: 580, Width: width}},
		StartPosition:   leveldata.Point{400, 540},
		DoorwayPosition: leveldata.Point{700, 60},
	}
}

func player(t *testing.T, e *ecs.ECS) (*components.PlayerData, *components.PhysicsData, *components.ObjectData) {
	t.Helper()
	entry, ok := GetPlayer(e)
	require.True(t, ok)
	return components.Player.Get(entry), components.Physics.Get(entry), components.Object.Get(entry)
}

func TestPlayerRestsOnPlatform(t *testing.T) {
	e := newLevelECS(t, onFloor(leveldata.PlatformStatic, 0, 800), components.NewRunState())

	var begins, stays int
	Contact.Subscribe(e.World, func(w donburi.World, evt ContactEvent) {
		if evt.Category != tags.ResolvPlatform {
			return
		}
		if evt.Begin {
			begins++
		} else {
			stays++
		}
	})

	step(e, 60)

	_, phys, obj := player(t, e)
	assert.True(t, phys.Grounded())
	assert.InDelta(t, 580, obj.Y+obj.H, 1e-9)
	assert.Equal(t, 1, begins, "resting is one continuous contact")
	assert.Greater(t, stays, 30)
}

func TestBreakawayPlatformRemovedAfterContact(t *testing.T) {
	run := components.NewRunState()
	e := newLevelECS(t, onFloor(leveldata.PlatformBreakaway, 300, 200), run)

	step(e, 60)
	entry, ok := tags.Platform.First(e.World)
	require.True(t, ok)
	assert.Equal(t, components.BreakBreaking, components.Platform.Get(entry).Break)
	assert.Less(t, components.Visual.Get(entry).Opacity, 1.0)

	// Landing happens within the first few ticks and the break takes 1.5s
	step(e, 60)
	_, ok = tags.Platform.First(e.World)
	assert.False(t, ok)

	_, phys, _ := player(t, e)
	assert.False(t, phys.Grounded())
	assert.Greater(t, phys.Velocity.Y, 0.0)
}

func TestBouncePlatformLaunchesPlayer(t *testing.T) {
	e := newLevelECS(t, onFloor(leveldata.PlatformBounce, 350, 0), components.NewRunState())

	minVelY := 0.0
	compressed := false
	for i := 0; i < 30; i++ {
		e.Update()
		_, phys, _ := player(t, e)
		if phys.Velocity.Y < minVelY {
			minVelY = phys.Velocity.Y
		}
		entry, ok := tags.Platform.First(e.World)
		require.True(t, ok)
		compressed = compressed || components.Platform.Get(entry).Compressed
	}

	assert.InDelta(t, -cfg.Platform.BounceForce, minVelY, 1e-9)
	assert.True(t, compressed)
}

func TestHardLandingCostsALife(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.StartPosition = leveldata.Point{400, 100}
	e := newLevelECS(t, desc, run)

	step(e, 120)

	assert.Equal(t, cfg.Player.DefaultLives-1, run.Lives)
	p, phys, _ := player(t, e)
	assert.True(t, phys.Grounded())
	assert.False(t, p.IsDangerousFall)
}

func TestShieldAbsorbsHardLanding(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.StartPosition = leveldata.Point{400, 100}
	desc.PowerUps = []leveldata.PowerUpSpec{{Type: leveldata.PowerUpShield, X: 400, Y: 110}}
	e := newLevelECS(t, desc, run)

	step(e, 120)

	assert.Equal(t, cfg.Player.DefaultLives, run.Lives)
	p, _, _ := player(t, e)
	assert.False(t, p.HasShield)
	_, ok := tags.PowerUp.First(e.World)
	assert.False(t, ok, "collected power-ups are removed")
}

func TestDeathPublishedOnce(t *testing.T) {
	run := components.NewRunState()
	run.Lives = 1
	desc := &leveldata.Description{
		StartPosition:   leveldata.Point{400, 100},
		DoorwayPosition: leveldata.Point{700, 60},
	}
	e := newLevelECS(t, desc, run)

	deaths := 0
	PlayerDied.Subscribe(e.World, func(w donburi.World, evt DeathEvent) {
		deaths++
	})

	step(e, 300)

	assert.Equal(t, 1, deaths)
	assert.True(t, run.Dead())
	assert.Equal(t, 0, run.Lives)
}

func TestFallingOutRespawnsAtStart(t *testing.T) {
	run := components.NewRunState()
	desc := &leveldata.Description{
		StartPosition:   leveldata.Point{400, 100},
		DoorwayPosition: leveldata.Point{700, 60},
	}
	e := newLevelECS(t, desc, run)

	for run.Lives == cfg.Player.DefaultLives {
		e.Update()
	}

	p, phys, obj := player(t, e)
	assert.Equal(t, 100.0, obj.Position().Y)
	assert.Zero(t, phys.Velocity.Y)
	assert.Equal(t, p.MaxFuel, p.Fuel)
	assert.False(t, run.Dead())
}

func TestLevelCompletePublishedWithScore(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.DoorwayPosition = leveldata.Point{400, 560}
	e := newLevelECS(t, desc, run)

	var got []LevelCompleteEvent
	LevelCompleted.Subscribe(e.World, func(w donburi.World, evt LevelCompleteEvent) {
		got = append(got, evt)
	})

	step(e, 10)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Level)
	assert.Equal(t, cfg.World.LevelCompleteBonus+int(cfg.Fuel.DefaultFuel), got[0].Score)
	assert.True(t, GetLevel(e).Complete)
}

func TestPauseFreezesGameplay(t *testing.T) {
	e := newLevelECS(t, onFloor(leveldata.PlatformStatic, 0, 800), components.NewRunState())
	GetOrCreatePause(e).IsPaused = true

	step(e, 30)

	_, phys, obj := player(t, e)
	assert.Equal(t, 540.0, obj.Position().Y)
	assert.Zero(t, phys.Velocity.Y)
}

func TestTickDelta(t *testing.T) {
	rate := cfg.C.TickRate
	t.Cleanup(func() { cfg.C.TickRate = rate })

	cfg.C.TickRate = 8
	assert.Equal(t, 0.125, TickDelta())
}

func TestEnemyContactRemovesEnemy(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.Enemies = []leveldata.EnemySpec{{Type: leveldata.EnemyHoverDrone, X: 400, Y: 540}}
	e := newLevelECS(t, desc, run)

	step(e, 5)

	assert.Equal(t, cfg.Player.DefaultLives-1, run.Lives)
	_, ok := tags.Enemy.First(e.World)
	assert.False(t, ok)
	assert.False(t, run.Dead())
}

func TestShieldCollectedWithEnemyHit(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.Enemies = []leveldata.EnemySpec{{Type: leveldata.EnemyHoverDrone, X: 400, Y: 540}}
	desc.PowerUps = []leveldata.PowerUpSpec{{Type: leveldata.PowerUpShield, X: 400, Y: 540}}
	e := newLevelECS(t, desc, run)

	step(e, 5)

	assert.Equal(t, cfg.Player.DefaultLives, run.Lives, "the shield picked up this tick absorbs the hit")
	p, _, _ := player(t, e)
	assert.False(t, p.HasShield)
	_, ok := tags.Enemy.First(e.World)
	assert.False(t, ok)
	_, ok = tags.PowerUp.First(e.World)
	assert.False(t, ok)
}

func TestRechargeRefillsWhileStanding(t *testing.T) {
	e := newLevelECS(t, onFloor(leveldata.PlatformRecharge, 340, 0), components.NewRunState())
	p, _, _ := player(t, e)
	p.Fuel = 10

	step(e, 60)
	_, phys, _ := player(t, e)
	require.True(t, phys.Grounded())
	assert.Greater(t, p.Fuel, 30.0)
	assert.Less(t, p.Fuel, p.MaxFuel)

	step(e, 300)
	assert.Equal(t, p.MaxFuel, p.Fuel)
}

func TestDropBotRemovedOnLanding(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	// Beside the player, not above it
	desc.Enemies = []leveldata.EnemySpec{{Type: leveldata.EnemyDropBot, X: 460, Y: 300}}
	e := newLevelECS(t, desc, run)

	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	bot := components.Enemy.Get(entry)
	assert.Equal(t, components.DropHanging, bot.Drop)

	step(e, 1)
	assert.Equal(t, components.DropWarning, bot.Drop)

	step(e, 20)
	assert.Equal(t, components.DropWarning, bot.Drop, "still warning before the warning time elapses")

	step(e, 19)
	assert.Equal(t, components.DropFalling, bot.Drop)

	step(e, 110)
	_, ok = tags.Enemy.First(e.World)
	assert.False(t, ok)
	assert.Equal(t, cfg.Player.DefaultLives, run.Lives)
}

func TestRespawnAtCheckpoint(t *testing.T) {
	run := components.NewRunState()
	e := newLevelECS(t, onFloor(leveldata.PlatformCheckpoint, 340, 0), run)

	step(e, 30)
	p, _, obj := player(t, e)
	require.NotNil(t, p.Checkpoint)
	// Platform center, lifted above its surface
	assert.Equal(t, 440.0, p.Checkpoint.X)
	assert.Equal(t, 580-cfg.Platform.CheckpointLift, p.Checkpoint.Y)

	// Drop the player below the dead zone
	obj.Y = 1000
	obj.Update()
	step(e, 1)

	pos := obj.Position()
	assert.Equal(t, 440.0, pos.X)
	assert.Equal(t, 580-cfg.Platform.CheckpointLift, pos.Y)
	assert.Equal(t, cfg.Player.DefaultLives-1, run.Lives)
}

func TestSameTickDamageDiesOnce(t *testing.T) {
	run := components.NewRunState()
	run.Lives = 2
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	// The player starts just above the floor with a drone in its landing spot
	desc.StartPosition = leveldata.Point{400, 559}
	desc.Enemies = []leveldata.EnemySpec{{Type: leveldata.EnemyHoverDrone, X: 400, Y: 560}}
	e := newLevelECS(t, desc, run)

	_, phys, _ := player(t, e)
	phys.Velocity.Y = cfg.Player.MaxFallSpeed

	deaths := 0
	PlayerDied.Subscribe(e.World, func(w donburi.World, evt DeathEvent) {
		deaths++
	})

	step(e, 1)
	assert.True(t, phys.Grounded(), "the landing and the hit happen in the same tick")
	assert.Equal(t, 0, run.Lives)

	step(e, 30)
	assert.Equal(t, 1, deaths)
	assert.True(t, run.Dead())
}

func TestSideContactDuringDangerousFall(t *testing.T) {
	run := components.NewRunState()
	desc := onFloor(leveldata.PlatformStatic, 0, 800)
	desc.StartPosition = leveldata.Point{394, 100}
	// Just right of the falling player, close enough to touch
	desc.Platforms = append(desc.Platforms, leveldata.PlatformSpec{Type: leveldata.PlatformStatic, X: 410.3, Y: 400, Width: 64})
	e := newLevelECS(t, desc, run)

	_, phys, obj := player(t, e)
	for i := 0; i < 120 && obj.Y < 430; i++ {
		e.Update()
	}
	require.False(t, phys.Grounded(), "the side platform is never landed on")
	assert.Equal(t, cfg.Player.DefaultLives-1, run.Lives)

	// The fall latches again and the floor costs another life
	step(e, 60)
	assert.True(t, phys.Grounded())
	assert.Equal(t, cfg.Player.DefaultLives-2, run.Lives)
}
