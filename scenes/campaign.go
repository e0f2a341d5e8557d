package scenes

import (
	"math/rand"

	"github.com/automoto/jetpack-ascent/components"
	"github.com/automoto/jetpack-ascent/shared/leveldata"
)

// Campaign is everything a play session carries from scene to scene: the
// run state, the ordered levels and the random source used to populate them.
type Campaign struct {
	Run    *components.RunStateData
	Levels []*leveldata.Description // Levels[0] is level 1
	Rand   *rand.Rand
}

func NewCampaign(levels []*leveldata.Description, seed int64) *Campaign {
	return &Campaign{
		Run:    components.NewRunState(),
		Levels: levels,
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// Level returns the description of level n, counting from 1.
func (c *Campaign) Level(n int) (*leveldata.Description, bool) {
	if n < 1 || n > len(c.Levels) {
		return nil, false
	}
	return c.Levels[n-1], true
}
