package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/systems/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EndScene is the game over or victory screen. Leaving it resets the run's
// level and score and returns to the main menu.
type EndScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	draw         func(*Campaign) ecs.RendererWithArg[ebiten.Image]
	once         sync.Once
}

// NewGameOverScene creates the screen shown when the run's lives run out
func NewGameOverScene(sc SceneChanger, campaign *Campaign) *EndScene {
	return &EndScene{
		sceneChanger: sc,
		campaign:     campaign,
		draw:         func(c *Campaign) ecs.RendererWithArg[ebiten.Image] { return host.NewDrawGameOver(c.Run) },
	}
}

// NewVictoryScene creates the screen shown after the last level
func NewVictoryScene(sc SceneChanger, campaign *Campaign) *EndScene {
	return &EndScene{
		sceneChanger: sc,
		campaign:     campaign,
		draw:         func(c *Campaign) ecs.RendererWithArg[ebiten.Image] { return host.NewDrawVictory(c.Run) },
	}
}

func (es *EndScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EndScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EndScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())

	leave := func() {
		es.campaign.Run.ResetToMenu()
		es.sceneChanger.ChangeScene(NewMenuScene(es.sceneChanger, es.campaign))
	}

	es.ecs.AddSystem(host.UpdateInput)
	es.ecs.AddSystem(host.NewUpdateEndScreen(leave))

	es.ecs.AddRenderer(cfg.Default, es.draw(es.campaign))
}
