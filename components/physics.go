package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData is the integration state of a moving body. Velocity is in
// units per second with y pointing down.
type PhysicsData struct {
	Velocity   math.Vec2
	Gravity    float64 // 0 disables gravity
	MaxFall    float64
	OnGround   *resolv.Object
	ImpactVelY float64 // Vertical velocity just before the most recent landing
	Landed     bool    // OnGround was reached this step rather than kept
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Grounded reports whether the body landed on a platform during the last step.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}
