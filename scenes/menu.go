package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/systems/host"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, campaign *Campaign) *MenuScene {
	return &MenuScene{sceneChanger: sc, campaign: campaign}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) start(d cfg.Difficulty) {
	ms.campaign.Run.StartRun(d)
	log.Info("run started", "difficulty", ms.campaign.Run.Difficulty, "lives", ms.campaign.Run.Lives)
	ms.sceneChanger.ChangeScene(NewLevelScene(ms.sceneChanger, ms.campaign))
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(host.UpdateInput)
	ms.ecs.AddSystem(host.NewUpdateMenu(ms.start))

	ms.ecs.AddRenderer(cfg.Default, host.DrawMenu)
}
