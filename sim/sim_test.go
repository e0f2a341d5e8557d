package sim

import (
	"testing"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorLevel() *leveldata.Description {
	return &leveldata.Description{
		Name:            "Floor",
		Platforms:       []leveldata.PlatformSpec{{Type: leveldata.PlatformStatic, X: 0, Y: 580, Width: 800}},
		StartPosition:   leveldata.Point{400, 540},
		DoorwayPosition: leveldata.Point{400, 100},
	}
}

func TestIdlePilotLandsAndWaits(t *testing.T) {
	report := NewRunner(Options{Level: floorLevel(), MaxTicks: 120}).Run()

	assert.Equal(t, 120, report.Ticks)
	assert.False(t, report.Completed)
	assert.False(t, report.Died)
	assert.Equal(t, cfg.Player.DefaultLives, report.Lives)
	assert.Equal(t, 1, report.Contacts[tags.ResolvPlatform], "resting on the floor is one continuous contact")
	assert.InDelta(t, cfg.Fuel.DefaultFuel, report.Fuel, 1e-9)
}

func TestHomingPilotReachesDoorway(t *testing.T) {
	r := NewRunner(Options{Level: floorLevel(), Pilot: Homing{Deadband: 4}, MaxTicks: 600})
	report := r.Run()

	require.True(t, report.Completed)
	assert.False(t, report.Died)
	assert.Less(t, report.Ticks, 120)
	assert.Equal(t, 1, report.Contacts[tags.ResolvDoorway])
	assert.Less(t, report.Fuel, cfg.Fuel.DefaultFuel)
	assert.Equal(t, cfg.World.LevelCompleteBonus+int(report.Fuel), report.Score)

	// Further steps are ignored once the run is over
	r.Step()
	assert.Equal(t, report.Ticks, r.Report().Ticks)
}

func TestFallingOutCostsEveryLife(t *testing.T) {
	desc := &leveldata.Description{
		Name:            "Void",
		StartPosition:   leveldata.Point{400, 100},
		DoorwayPosition: leveldata.Point{700, 60},
	}
	run := components.NewRunState()
	run.StartRun(cfg.Medium)

	report := NewRunner(Options{Level: desc, Run: run}).Run()

	assert.True(t, report.Died)
	assert.False(t, report.Completed)
	assert.Equal(t, 0, report.Lives)
	assert.Equal(t, 0, report.Contacts[tags.ResolvPlatform])
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	desc, err := leveldata.Builtin(1)
	require.NoError(t, err)

	play := func() *Report {
		run := components.NewRunState()
		run.StartRun(cfg.Hard)
		return NewRunner(Options{Level: desc, Run: run, Seed: 7, MaxTicks: 900, Pilot: Homing{Deadband: 8}}).Run()
	}

	first, second := play(), play()
	assert.Equal(t, first, second)
}
