package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX levels
const (
	GroupPlatforms = "Platforms"
	GroupEnemies   = "Enemies"
	GroupPowerUps  = "PowerUps"
	GroupStart     = "PlayerSpawn"
	GroupDoorway   = "Doorway"
)

// LoadTMX builds a Description from the object layers of a Tiled map. The
// object class (or legacy type attribute) names the entity type. Platforms
// keep the object's top-left corner; other objects are converted to centers.
func LoadTMX(fsys fs.FS, tmxPath string) (*Description, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	desc := &Description{
		Name:      levelMap.Properties.GetString("name"),
		Width:     float64(levelMap.Width * levelMap.TileWidth),
		Height:    float64(levelMap.Height * levelMap.TileHeight),
		Platforms: []PlatformSpec{},
		Enemies:   []EnemySpec{},
		PowerUps:  []PowerUpSpec{},
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				desc.Platforms = append(desc.Platforms, PlatformSpec{
					Type:  objectType(o),
					X:     o.X,
					Y:     o.Y,
					Width: o.Width,
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				x, y := center(o)
				desc.Enemies = append(desc.Enemies, EnemySpec{
					Type:  objectType(o),
					X:     x,
					Y:     y,
					Range: o.Properties.GetFloat("range"),
				})
			}
		case GroupPowerUps:
			for _, o := range og.Objects {
				x, y := center(o)
				desc.PowerUps = append(desc.PowerUps, PowerUpSpec{
					Type: objectType(o),
					X:    x,
					Y:    y,
				})
			}
		case GroupStart:
			if len(og.Objects) > 0 {
				x, y := center(og.Objects[0])
				desc.StartPosition = Point{x, y}
			}
		case GroupDoorway:
			if len(og.Objects) > 0 {
				x, y := center(og.Objects[0])
				desc.DoorwayPosition = Point{x, y}
			}
		}
	}

	return desc, nil
}

func objectType(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func center(o *tiled.Object) (float64, float64) {
	return o.X + o.Width/2, o.Y + o.Height/2
}
