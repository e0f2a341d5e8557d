package host

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/systems"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	levelBackgrounds = map[int]color.RGBA{
		1: {10, 10, 30, 255},
		2: {25, 12, 30, 255},
		3: {20, 24, 30, 255},
	}

	platformColors = map[components.PlatformKind]color.RGBA{
		components.StaticPlatform:     {120, 120, 130, 255},
		components.BreakawayPlatform:  {160, 110, 70, 255},
		components.BouncePlatform:     {230, 90, 200, 255},
		components.RechargePlatform:   {60, 200, 230, 255},
		components.CheckpointPlatform: {200, 200, 60, 255},
	}
	checkpointActive = color.RGBA{90, 240, 90, 255}

	powerUpColors = map[components.PowerUpKind]color.RGBA{
		components.FuelCell:  {255, 200, 0, 255},
		components.Shield:    {80, 160, 255, 255},
		components.MegaBoost: {255, 90, 40, 255},
		components.ExtraLife: {255, 60, 120, 255},
	}

	rollerColor  = color.RGBA{230, 60, 60, 255}
	droneColor   = color.RGBA{240, 140, 40, 255}
	dropColor    = color.RGBA{150, 150, 160, 255}
	warningColor = color.RGBA{255, 230, 0, 255}

	playerColor  = color.RGBA{70, 130, 255, 255}
	flashColor   = color.RGBA{255, 80, 80, 255}
	flameColor   = color.RGBA{255, 160, 30, 255}
	shieldColor  = color.RGBA{120, 200, 255, 200}
	doorwayColor = color.RGBA{80, 255, 140, 255}

	fuelBack = color.RGBA{40, 40, 40, 255}
	fuelFill = color.RGBA{255, 200, 0, 255}
	fuelLow  = color.RGBA{230, 60, 60, 255}
)

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float64) color.RGBA {
	a := math.Max(0, math.Min(1, opacity))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel renders every entity as a flat shape.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level := systems.GetLevel(ecs)
	if level == nil {
		return
	}
	bg, ok := levelBackgrounds[level.Number]
	if !ok {
		bg = levelBackgrounds[1]
	}
	screen.Fill(bg)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawPlatform(screen, e, camX, camY)
	})
	components.Doorway.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := fade(doorwayColor, components.Visual.Get(e).Opacity)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	})
	components.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		v := components.Visual.Get(e)
		c := powerUpColors[components.PowerUp.Get(e).Kind]
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY+v.OffsetY), float32(o.W), float32(o.H), c, false)
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawEnemy(screen, e, camX, camY)
	})

	if playerEntry, ok := systems.GetPlayer(ecs); ok {
		drawPlayer(screen, playerEntry, camX, camY)
	}
}

func drawPlatform(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	o := components.Object.Get(e)
	platform := components.Platform.Get(e)
	v := components.Visual.Get(e)

	c := platformColors[platform.Kind]
	if platform.Kind == components.CheckpointPlatform && platform.Activated {
		c = checkpointActive
	}
	c = fade(c, v.Opacity)

	// Squash toward the bottom edge
	h := o.H * v.ScaleY
	y := o.Y + o.H - h
	vector.FillRect(screen, float32(o.X+camX+v.OffsetX), float32(y+camY), float32(o.W), float32(h), c, false)
}

func drawEnemy(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	o := components.Object.Get(e)
	enemy := components.Enemy.Get(e)
	cx := float32(o.X + o.W/2 + camX)
	cy := float32(o.Y + o.H/2 + camY)
	r := float32(o.W / 2)

	switch enemy.Kind {
	case components.RollerBot:
		vector.StrokeCircle(screen, cx, cy, r-2, 4, rollerColor, true)
	case components.HoverDrone:
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), droneColor, false)
		return
	case components.DropBot:
		c := dropColor
		if rules.WarningBlink(enemy) {
			c = warningColor
		}
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	}

	// Spokes show the cosmetic spin
	dx := float32(math.Cos(enemy.Angle)) * r
	dy := float32(math.Sin(enemy.Angle)) * r
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 2, color.White, true)
}

func drawPlayer(screen *ebiten.Image, e *donburi.Entry, camX, camY float64) {
	o := components.Object.Get(e)
	player := components.Player.Get(e)
	x, y := float32(o.X+camX), float32(o.Y+camY)

	c := playerColor
	if player.FlashTimer > 0 {
		c = flashColor
	}
	vector.FillRect(screen, x, y, float32(o.W), float32(o.H), c, false)

	if player.IsThrusting {
		vector.FillRect(screen, x+float32(o.W)/2-4, y+float32(o.H), 8, 10, flameColor, false)
	}
	if player.HasShield {
		vector.StrokeCircle(screen, x+float32(o.W)/2, y+float32(o.H)/2, float32(o.W), 2, shieldColor, true)
	}
}

// DrawHUD renders lives, fuel, score and the level name in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level := systems.GetLevel(ecs)
	playerEntry, ok := systems.GetPlayer(ecs)
	if level == nil || !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	const (
		margin    = 10
		barWidth  = 130
		barHeight = 10
	)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  Lives: %d  Score: %d", level.Name, level.Run.Lives, level.Run.Score), margin, margin)

	ratio := 0.0
	if player.MaxFuel > 0 {
		ratio = player.Fuel / player.MaxFuel
	}
	fill := fuelFill
	if ratio < 0.25 {
		fill = fuelLow
	}
	vector.FillRect(screen, margin, margin+20, barWidth, barHeight, fuelBack, false)
	vector.FillRect(screen, margin, margin+20, float32(barWidth*ratio), barHeight, fill, false)
	ebitenutil.DebugPrintAt(screen, "FUEL", margin+barWidth+6, margin+16)

	if player.HasShield {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SHIELD %.0fs", math.Ceil(player.ShieldTimer)), margin, margin+36)
	}
}

// DrawDebug outlines every collision box when debug drawing is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.DebugDraw {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvPlatform.String()):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer.String()):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy.String()):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvPowerUp.String()):
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
	}

	if playerEntry, ok := systems.GetPlayer(ecs); ok {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("vel %.0f,%.0f  fall %.0f/%.0f  ground %t  TPS %.0f",
			physics.Velocity.X, physics.Velocity.Y, player.FallVelocity, player.FallDamageThreshold,
			physics.Grounded(), ebiten.ActualTPS()), 10, screen.Bounds().Dy()-20)
	}
}
