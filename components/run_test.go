package components

import (
	"testing"

	"github.com/automoto/jetpack-ascent/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRunState(t *testing.T) {
	r := NewRunState()
	assert.Equal(t, 1, r.CurrentLevel)
	assert.Equal(t, config.Medium, r.Difficulty)
	assert.Equal(t, 3, r.Lives)
	assert.Zero(t, r.Score)
	assert.False(t, r.Dead())
}

func TestStartRunGrantsDifficultyLives(t *testing.T) {
	r := NewRunState()
	r.StartRun(config.Easy)
	assert.Equal(t, 4, r.Lives)

	r.StartRun(config.Hard)
	assert.Equal(t, 3, r.Lives)
	assert.Equal(t, config.Hard, r.Difficulty)

	r.StartRun("bogus")
	assert.Equal(t, config.Medium, r.Difficulty)
}

func TestRaiseDeathLatches(t *testing.T) {
	r := NewRunState()
	assert.True(t, r.RaiseDeath())
	assert.False(t, r.RaiseDeath())
	assert.True(t, r.Dead())

	r.ResetToMenu()
	assert.False(t, r.Dead())
}

func TestCampaignProgression(t *testing.T) {
	r := NewRunState()
	r.StartRun(config.Medium)

	r.CompleteLevel(42.9)
	assert.Equal(t, 1042, r.Score)
	assert.False(t, r.AdvanceLevel())
	assert.Equal(t, 2, r.CurrentLevel)

	r.CompleteLevel(0)
	assert.Equal(t, 3042, r.Score)
	assert.False(t, r.AdvanceLevel())
	assert.True(t, r.AdvanceLevel(), "finishing level 3 is victory")
	assert.Equal(t, 3, r.CurrentLevel)

	r.ResetToMenu()
	assert.Equal(t, 1, r.CurrentLevel)
	assert.Zero(t, r.Score)
}

func TestControlsAxis(t *testing.T) {
	assert.Equal(t, 0.0, ControlsData{}.Axis())
	assert.Equal(t, -1.0, ControlsData{Left: true}.Axis())
	assert.Equal(t, 1.0, ControlsData{Right: true}.Axis())
	assert.Equal(t, 0.0, ControlsData{Left: true, Right: true}.Axis())
}
