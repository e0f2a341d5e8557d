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

// TransitionScene is shown between two levels
type TransitionScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     *Campaign
	once         sync.Once
}

// NewTransitionScene announces the campaign's current level
func NewTransitionScene(sc SceneChanger, campaign *Campaign) *TransitionScene {
	return &TransitionScene{sceneChanger: sc, campaign: campaign}
}

func (ts *TransitionScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TransitionScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TransitionScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	next := func() {
		ts.sceneChanger.ChangeScene(NewLevelScene(ts.sceneChanger, ts.campaign))
	}

	ts.ecs.AddSystem(host.UpdateInput)
	ts.ecs.AddSystem(host.NewUpdateTransition(cfg.World.TransitionDelay, next))

	ts.ecs.AddRenderer(cfg.Default, host.NewDrawTransition(ts.campaign.Run.CurrentLevel))
}
