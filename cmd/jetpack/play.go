package main

import (
	"fmt"
	"image"
	"time"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagPlayDifficulty string
	flagPlayLevel      int
	flagPlaySeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Starts the game at the main menu. Passing --difficulty skips the menu
and starts a run at --level directly.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Skip the menu and start at this difficulty")
	playCmd.Flags().IntVar(&flagPlayLevel, "level", 1, "Level to start at when skipping the menu")
	playCmd.Flags().Int64Var(&flagPlaySeed, "seed", 0, "RNG seed (0 = random based on time)")
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(campaign *scenes.Campaign) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if flagPlayDifficulty != "" {
		campaign.Run.StartRun(cfg.ParseDifficulty(flagPlayDifficulty))
		campaign.Run.CurrentLevel = flagPlayLevel
		g.scene = scenes.NewLevelScene(g, campaign)
	} else {
		g.scene = scenes.NewMenuScene(g, campaign)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	levels, _, err := loadLevels()
	if err != nil {
		return err
	}
	if flagPlayLevel < 1 || flagPlayLevel > len(levels) {
		return fmt.Errorf("level %d out of range 1-%d", flagPlayLevel, len(levels))
	}

	seed := flagPlaySeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Jetpack Ascent")
	ebiten.SetTPS(cfg.C.TickRate)

	if err := ebiten.RunGame(NewGame(scenes.NewCampaign(levels, seed))); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}
