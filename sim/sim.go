// Package sim runs a level without a window. A pilot stands in for the
// keyboard and the run ends on completion, death or a tick limit.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/automoto/jetpack-ascent/systems/factory"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = log.WithPrefix("sim")

// Options configures one headless run.
type Options struct {
	Level    *leveldata.Description
	Number   int // Campaign level number, used for the completion bonus
	Run      *components.RunStateData
	Seed     int64
	MaxTicks int
	Pilot    Pilot
}

// Report is the outcome of a headless run.
type Report struct {
	Level     int
	Name      string
	Ticks     int
	Completed bool
	Died      bool
	Lives     int
	Score     int
	Fuel      float64
	Contacts  map[tags.Category]int // Contact begins per category
	Layout    *factory.Layout
}

func (r *Report) String() string {
	outcome := "timed out"
	switch {
	case r.Completed:
		outcome = "completed"
	case r.Died:
		outcome = "died"
	}
	return fmt.Sprintf("level %d (%s): %s after %d ticks, lives %d, score %d, fuel %.1f",
		r.Level, r.Name, outcome, r.Ticks, r.Lives, r.Score, r.Fuel)
}

// Runner steps a level one tick at a time.
type Runner struct {
	ecs    *ecs.ECS
	opts   Options
	report *Report
}

// NewRunner builds the level described by opts. A nil Run starts a fresh
// medium run and a nil Pilot idles.
func NewRunner(opts Options) *Runner {
	if opts.Run == nil {
		opts.Run = components.NewRunState()
	}
	if opts.Pilot == nil {
		opts.Pilot = Idle
	}
	if opts.Number < 1 {
		opts.Number = opts.Run.CurrentLevel
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 120 * cfg.C.TickRate
	}

	r := &Runner{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		opts: opts,
		report: &Report{
			Level:    opts.Number,
			Name:     opts.Level.Name,
			Contacts: make(map[tags.Category]int),
		},
	}

	r.ecs.AddSystem(r.steer)
	systems.AddGameplaySystems(r.ecs)

	systems.Contact.Subscribe(r.ecs.World, func(w donburi.World, evt systems.ContactEvent) {
		if evt.Begin {
			r.report.Contacts[evt.Category]++
		}
	})
	systems.PlayerDied.Subscribe(r.ecs.World, func(w donburi.World, evt systems.DeathEvent) {
		r.report.Died = true
	})
	systems.LevelCompleted.Subscribe(r.ecs.World, func(w donburi.World, evt systems.LevelCompleteEvent) {
		r.report.Completed = true
	})

	rng := rand.New(rand.NewSource(opts.Seed))
	r.report.Layout = factory.BuildLevel(r.ecs, opts.Level, opts.Run, opts.Number, rng)

	return r
}

// ECS exposes the simulated world.
func (r *Runner) ECS() *ecs.ECS {
	return r.ecs
}

// Done reports whether the run has ended.
func (r *Runner) Done() bool {
	return r.report.Completed || r.report.Died || r.report.Ticks >= r.opts.MaxTicks
}

// Step advances one tick unless the run has ended.
func (r *Runner) Step() {
	if r.Done() {
		return
	}
	r.ecs.Update()
	r.report.Ticks++
}

// Run steps until the run ends and returns the report.
func (r *Runner) Run() *Report {
	for !r.Done() {
		r.Step()
	}
	report := r.Report()
	logger.Info("simulation finished",
		"level", report.Level,
		"ticks", report.Ticks,
		"completed", report.Completed,
		"died", report.Died,
		"score", report.Score,
	)
	return report
}

// Report snapshots the current state of the run.
func (r *Runner) Report() *Report {
	report := *r.report
	report.Contacts = make(map[tags.Category]int, len(r.report.Contacts))
	for k, v := range r.report.Contacts {
		report.Contacts[k] = v
	}
	report.Lives = r.opts.Run.Lives
	report.Score = r.opts.Run.Score
	if entry, ok := systems.GetPlayer(r.ecs); ok {
		report.Fuel = components.Player.Get(entry).Fuel
	}
	return &report
}

func (r *Runner) steer(e *ecs.ECS) {
	entry, ok := systems.GetPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	phys := components.Physics.Get(entry)

	view := View{
		Tick:     r.report.Ticks,
		Position: components.Object.Get(entry).Position(),
		Velocity: phys.Velocity,
		Fuel:     player.Fuel,
		MaxFuel:  player.MaxFuel,
		Grounded: phys.Grounded(),
		Doorway:  r.report.Layout.Doorway,
	}
	components.Controls.SetValue(entry, r.opts.Pilot.Steer(view))
}
