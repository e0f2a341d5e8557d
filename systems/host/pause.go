package host

import (
	"image/color"

	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/config/keymap"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOverlay = color.RGBA{0, 0, 0, 160}

// UpdatePause toggles pause and debug drawing.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := systems.GetOrCreatePause(ecs)

	if GetAction(ecs, keymap.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if GetAction(ecs, keymap.ActionToggleDebug).JustPressed {
		cfg.C.DebugDraw = !cfg.C.DebugDraw
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), pauseOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", width/2-18, height/2-20)
	ebitenutil.DebugPrintAt(screen, "P: Resume   Esc: Main Menu", width/2-78, height/2)
}
