package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData holds render-only state. Nothing in gameplay reads it.
type VisualData struct {
	Opacity float64
	ScaleY  float64
	OffsetX float64 // Shake offset
	OffsetY float64 // Float offset, the collision box stays put

	Fade   *gween.Tween
	Squash *gween.Tween
}

var Visual = donburi.NewComponentType[VisualData]()
