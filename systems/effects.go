package systems

import (
	"math"

	"github.com/automoto/jetpack-ascent/components"
	cfg "github.com/automoto/jetpack-ascent/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Breakaway shake, in pixels and radians per second
const (
	shakeAmplitude = 2.0
	shakeRate      = 40.0
)

// UpdateEffects drives the cosmetic platform tweens: breakaway platforms
// shake and fade while breaking, bounce pads squash when launched from.
func UpdateEffects(ecs *ecs.ECS) {
	dt := TickDelta()

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		visual := components.Visual.Get(e)

		switch platform.Kind {
		case components.BreakawayPlatform:
			updateBreakawayVisual(platform, visual, dt)
		case components.BouncePlatform:
			updateBounceVisual(platform, visual, dt)
		}
	})
}

func updateBreakawayVisual(platform *components.PlatformData, visual *components.VisualData, dt float64) {
	if platform.Break != components.BreakBreaking {
		return
	}
	if visual.Fade == nil {
		visual.Fade = gween.New(1, float32(cfg.Platform.BreakMinOpacity), float32(platform.BreakTime), ease.Linear)
	}
	opacity, _ := visual.Fade.Update(float32(dt))
	visual.Opacity = float64(opacity)
	visual.OffsetX = math.Sin(platform.BreakTimer*shakeRate) * shakeAmplitude
}

func updateBounceVisual(platform *components.PlatformData, visual *components.VisualData, dt float64) {
	if !platform.Compressed {
		visual.Squash = nil
		visual.ScaleY = 1
		return
	}
	if visual.Squash == nil {
		visual.Squash = gween.New(float32(cfg.Platform.CompressScale), 1, float32(cfg.Platform.CompressTime), ease.OutQuad)
	}
	scale, _ := visual.Squash.Update(float32(dt))
	visual.ScaleY = float64(scale)
}
