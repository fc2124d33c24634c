package physics

import (
	"math"

	"github.com/lixenwraith/flick/vmath"
)

// SpinAxis is the axis torque is applied around for a flicked coin
var SpinAxis = vmath.Vec3{X: vmath.Scale}

// MaxFlickVelocity bounds the torque taken from a flick (units/s)
// Squared magnitudes of larger Q32.32 values overflow in V3Mag
const MaxFlickVelocity = 20000.0

// Impulse is the momentum handed to a body at the end of a flick
type Impulse struct {
	Force      vmath.Vec3
	TorqueAxis vmath.Vec3
	Torque     int64
}

// ImpulseFromFlick maps flick outputs to an impulse
// Force is the swipe direction on the XY plane, torque magnitude is the swipe
// velocity clamped to [0, MaxFlickVelocity]
func ImpulseFromFlick(dir vmath.Vector, velocity float64) Impulse {
	velocity = math.Max(0, math.Min(vmath.Finite(velocity), MaxFlickVelocity))
	return Impulse{
		Force:      vmath.V3FromFloat(dir.DX, dir.DY, 0),
		TorqueAxis: SpinAxis,
		Torque:     vmath.FromFloat(velocity),
	}
}

// Apply hands the impulse to b
func (imp Impulse) Apply(b *Body) {
	b.ApplyImpulse(imp.Force)
	b.ApplyTorque(imp.TorqueAxis, imp.Torque)
}
