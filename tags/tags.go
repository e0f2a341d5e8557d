package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Enemy    = donburi.NewTag().SetName("Enemy")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
	Doorway  = donburi.NewTag().SetName("Doorway")
)

// Category is the collision category reported for a contact. The values
// double as resolv tags.
type Category string

// Resolv tags for collision dispatch
const (
	ResolvPlayer   Category = "player"
	ResolvPlatform Category = "platform"
	ResolvEnemy    Category = "enemy"
	ResolvPowerUp  Category = "powerup"
	ResolvDoorway  Category = "doorway"
)

// String returns the resolv tag for c.
func (c Category) String() string {
	return string(c)
}
