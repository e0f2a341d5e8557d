package factory

import (
	"github.com/automoto/jetpack-ascent/archetypes"
	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/rules"
	"github.com/automoto/jetpack-ascent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a platform whose top-left corner is (x, y). A zero
// width selects the kind's default.
func CreatePlatform(ecs *ecs.ECS, kind components.PlatformKind, x, y, width float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	data := rules.NewPlatform(kind, width)
	obj := newObject(platform, x, y, data.Width, data.Height, tags.ResolvPlatform.String(), kind.String())

	components.Platform.SetValue(platform, data)
	components.Visual.SetValue(platform, components.VisualData{Opacity: 1, ScaleY: 1})

	addToSpace(ecs, obj)

	return platform
}
