package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/config/keymap"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/automoto/jetpack-ascent/systems/factory"
	"github.com/automoto/jetpack-ascent/systems/host"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = log.WithPrefix("level")

// LevelScene plays the campaign's current level
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	next         interface{} // Scene to switch to after this tick
	once         sync.Once
}

// NewLevelScene creates a scene for the campaign's current level
func NewLevelScene(sc SceneChanger, campaign *Campaign) *LevelScene {
	return &LevelScene{sceneChanger: sc, campaign: campaign}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.next == nil {
		ls.ecs.Update()
	}

	if ls.next == nil && host.GetAction(ls.ecs, keymap.ActionMenuBack).JustPressed {
		ls.campaign.Run.ResetToMenu()
		ls.next = NewMenuScene(ls.sceneChanger, ls.campaign)
	}

	if ls.next != nil {
		ls.sceneChanger.ChangeScene(ls.next)
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	run := ls.campaign.Run

	// Systems that always run
	ls.ecs.AddSystem(host.UpdateInput)
	ls.ecs.AddSystem(host.UpdateControls)
	ls.ecs.AddSystem(host.UpdatePause)

	systems.AddGameplaySystems(ls.ecs)

	ls.ecs.AddRenderer(cfg.Default, host.DrawLevel)
	ls.ecs.AddRenderer(cfg.Default, host.DrawHUD)
	ls.ecs.AddRenderer(cfg.Default, host.DrawDebug)
	ls.ecs.AddRenderer(cfg.Default, host.DrawPause)

	systems.PlayerDied.Subscribe(ls.ecs.World, func(w donburi.World, evt systems.DeathEvent) {
		logger.Info("game over", "level", evt.Level, "score", evt.Score)
		ls.next = NewGameOverScene(ls.sceneChanger, ls.campaign)
	})
	systems.LevelCompleted.Subscribe(ls.ecs.World, func(w donburi.World, evt systems.LevelCompleteEvent) {
		logger.Info("level complete", "level", evt.Level, "score", evt.Score, "fuel", int(evt.RemainingFuel))
		if run.AdvanceLevel() {
			ls.next = NewVictoryScene(ls.sceneChanger, ls.campaign)
			return
		}
		ls.next = NewTransitionScene(ls.sceneChanger, ls.campaign)
	})

	desc, ok := ls.campaign.Level(run.CurrentLevel)
	if !ok {
		logger.Warn("no such level, returning to menu", "level", run.CurrentLevel)
		run.ResetToMenu()
		ls.next = NewMenuScene(ls.sceneChanger, ls.campaign)
		return
	}

	layout := factory.BuildLevel(ls.ecs, desc, run, run.CurrentLevel, ls.campaign.Rand)
	logger.Info("level started",
		"level", run.CurrentLevel,
		"name", desc.Name,
		"start", layout.Start,
		"lives", run.Lives,
	)
}
