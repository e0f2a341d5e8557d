package components

import "github.com/automoto/jetpack-ascent/config"

// RunStateData is the state of one play-through. A single value is owned by
// the host and passed by pointer to every level.
type RunStateData struct {
	CurrentLevel int
	Difficulty   config.Difficulty
	Lives        int
	Score        int

	deathRaised bool
}

// NewRunState returns the process-start defaults: level 1 on medium.
func NewRunState() *RunStateData {
	return &RunStateData{
		CurrentLevel: 1,
		Difficulty:   config.Medium,
		Lives:        config.Player.DefaultLives,
	}
}

// StartRun begins a new play-through at difficulty d. Easy grants its bonus
// life here and nowhere else.
func (r *RunStateData) StartRun(d config.Difficulty) {
	r.Difficulty = d.Normalize()
	r.Lives = config.StartingLives(r.Difficulty)
	r.CurrentLevel = 1
	r.Score = 0
	r.deathRaised = false
}

// ResetToMenu is applied after game over or victory.
func (r *RunStateData) ResetToMenu() {
	r.CurrentLevel = 1
	r.Score = 0
	r.deathRaised = false
}

// RaiseDeath latches the death of the run. It returns true only the first
// time it is called, so the game-over transition fires once.
func (r *RunStateData) RaiseDeath() bool {
	if r.deathRaised {
		return false
	}
	r.deathRaised = true
	return true
}

// Dead reports whether death has been raised for this run.
func (r *RunStateData) Dead() bool {
	return r.deathRaised
}

// CompleteLevel awards the level bonus plus whatever fuel is left.
func (r *RunStateData) CompleteLevel(remainingFuel float64) {
	r.Score += config.World.LevelCompleteBonus*r.CurrentLevel + int(remainingFuel)
}

// AdvanceLevel moves to the next level and reports victory when the last
// level was just finished.
func (r *RunStateData) AdvanceLevel() (victory bool) {
	if r.CurrentLevel >= config.World.LevelCount {
		return true
	}
	r.CurrentLevel++
	return false
}
