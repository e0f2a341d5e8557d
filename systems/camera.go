package systems

import (
	"math"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player vertically. The view leads in the
// direction of travel and never shows space outside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := GetPlayer(e)
	if !ok {
		return
	}
	level := GetLevel(e)
	if level == nil {
		return
	}
	playerPos := components.Object.Get(playerEntry).Position()
	physics := components.Physics.Get(playerEntry)

	lookAhead := 0.0
	if physics.Velocity.Y < 0 {
		lookAhead = -config.Camera.LookAheadY
	} else if physics.Velocity.Y > 0 && !physics.Grounded() {
		lookAhead = config.Camera.LookAheadY
	}
	targetY := playerPos.Y + lookAhead

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, level.Height-screenHeight/2)
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X = level.Width / 2
	if level.Width > screenWidth {
		camera.Position.X = math.Max(screenWidth/2, math.Min(level.Width-screenWidth/2, playerPos.X))
	}
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.Smoothing
}
