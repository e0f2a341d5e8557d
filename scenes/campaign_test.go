package scenes

import (
	"testing"

	"github.com/automoto/jetpack-ascent/shared/leveldata"
	"github.com/stretchr/testify/assert"
)

func TestCampaignLevelIsOneBased(t *testing.T) {
	first := &leveldata.Description{Name: "First"}
	second := &leveldata.Description{Name: "Second"}
	c := NewCampaign([]*leveldata.Description{first, second}, 1)

	got, ok := c.Level(1)
	assert.True(t, ok)
	assert.Same(t, first, got)

	got, ok = c.Level(2)
	assert.True(t, ok)
	assert.Same(t, second, got)

	_, ok = c.Level(0)
	assert.False(t, ok)
	_, ok = c.Level(3)
	assert.False(t, ok)

	assert.Equal(t, 1, c.Run.CurrentLevel)
}
