package host

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/config/keymap"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	menuBackground       = color.RGBA{10, 10, 30, 255}
	transitionBackground = color.RGBA{10, 10, 20, 255}
	gameOverBackground   = color.RGBA{20, 10, 10, 255}
	victoryBackground    = color.RGBA{10, 25, 10, 255}
	highlightColor       = color.RGBA{100, 150, 255, 255}
)

// MenuData is the main menu state
type MenuData struct {
	Selected int // Index into cfg.Difficulties
}

var Menu = donburi.NewComponentType[MenuData]()

// NewUpdateMenu creates the main menu system. 1, 2 and 3 start a run at
// that difficulty directly; left and right move the highlight and select
// starts the highlighted one.
func NewUpdateMenu(start func(d cfg.Difficulty)) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)

		switch {
		case GetAction(e, keymap.ActionMenuEasy).JustPressed:
			start(cfg.Easy)
		case GetAction(e, keymap.ActionMenuMedium).JustPressed:
			start(cfg.Medium)
		case GetAction(e, keymap.ActionMenuHard).JustPressed:
			start(cfg.Hard)
		case GetAction(e, keymap.ActionMenuSelect).JustPressed:
			start(cfg.Difficulties[menu.Selected])
		}

		// Navigate with wrap-around using modulo arithmetic
		n := len(cfg.Difficulties)
		if GetAction(e, keymap.ActionMoveLeft).JustPressed {
			menu.Selected = (menu.Selected - 1 + n) % n
		}
		if GetAction(e, keymap.ActionMoveRight).JustPressed {
			menu.Selected = (menu.Selected + 1) % n
		}
	}
}

// DrawMenu renders the title and the difficulty choices.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)
	width := screen.Bounds().Dx()
	screen.Fill(menuBackground)

	drawCentered(screen, "JETPACK ASCENT", width, 150)
	drawCentered(screen, "Reach the doorway at the top of each tower", width, 180)

	for i, d := range cfg.Difficulties {
		y := 280 + i*50
		label := fmt.Sprintf("%d  %s  (%d lives)", i+1, strings.ToUpper(string(d)), cfg.StartingLives(d))
		if i == menu.Selected {
			vector.StrokeRect(screen, float32(width/2-110), float32(y-10), 220, 34, 2, highlightColor, false)
		}
		drawCentered(screen, label, width, y)
	}

	drawCentered(screen, "Arrows / A D to move, Space or W to thrust, P to pause", width, 480)
}

// getOrCreateMenu returns the singleton Menu component, creating if needed.
func getOrCreateMenu(e *ecs.ECS) *MenuData {
	if _, ok := Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(Menu))
		Menu.SetValue(ent, MenuData{Selected: 1})
	}
	ent, _ := Menu.First(e.World)
	return Menu.Get(ent)
}

// NewUpdateTransition creates the level complete system. It calls next once,
// after the delay or when select is pressed, whichever comes first.
func NewUpdateTransition(delay float64, next func()) ecs.System {
	elapsed := 0.0
	done := false
	return func(e *ecs.ECS) {
		if done {
			return
		}
		elapsed += systems.TickDelta()
		if elapsed >= delay || GetAction(e, keymap.ActionMenuSelect).JustPressed {
			done = true
			next()
		}
	}
}

// NewDrawTransition renders the screen shown between levels.
func NewDrawTransition(nextLevel int) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		screen.Fill(transitionBackground)
		drawCentered(screen, "LEVEL COMPLETE!", width, 150)
		drawCentered(screen, fmt.Sprintf("Entering Level %d", nextLevel), width, 250)
		drawCentered(screen, cfg.LevelName(nextLevel), width, 320)
		drawCentered(screen, "Press SPACE to continue", width, 450)
	}
}

// NewUpdateEndScreen creates the system for the game over and victory
// screens: select or back calls leave once.
func NewUpdateEndScreen(leave func()) ecs.System {
	done := false
	return func(e *ecs.ECS) {
		if done {
			return
		}
		if GetAction(e, keymap.ActionMenuSelect).JustPressed || GetAction(e, keymap.ActionMenuBack).JustPressed {
			done = true
			leave()
		}
	}
}

// NewDrawGameOver renders the game over screen for run.
func NewDrawGameOver(run *components.RunStateData) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		screen.Fill(gameOverBackground)
		drawCentered(screen, "GAME OVER", width, 150)
		drawCentered(screen, fmt.Sprintf("Level Reached: %d", run.CurrentLevel), width, 280)
		drawCentered(screen, fmt.Sprintf("Difficulty: %s", strings.ToUpper(string(run.Difficulty))), width, 320)
		drawCentered(screen, fmt.Sprintf("Score: %d", run.Score), width, 360)
		drawCentered(screen, "Press ENTER for the main menu", width, 450)
	}
}

// NewDrawVictory renders the screen shown after the last level.
func NewDrawVictory(run *components.RunStateData) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		screen.Fill(victoryBackground)
		drawCentered(screen, "VICTORY!", width, 150)
		drawCentered(screen, "You conquered every tower", width, 220)
		drawCentered(screen, fmt.Sprintf("Final Score: %d", run.Score), width, 300)
		drawCentered(screen, fmt.Sprintf("Difficulty: %s", strings.ToUpper(string(run.Difficulty))), width, 340)
		drawCentered(screen, "Press ENTER for the main menu", width, 450)
	}
}

// drawCentered prints s centered horizontally. The debug font is 6x16.
func drawCentered(screen *ebiten.Image, s string, width, y int) {
	ebitenutil.DebugPrintAt(screen, s, (width-len(s)*6)/2, y)
}
