package physics

import (
	"github.com/lixenwraith/flick/vmath"
)

// DefaultRestSpeed is the linear and angular speed below which a body is at rest (Q32.32, units/s)
var DefaultRestSpeed = vmath.FromFloat(0.05)

// Body is a rigid coin-like body receiving impulses
// Position and velocities are Q32.32; nothing here integrates motion
type Body struct {
	Position        vmath.Vec3
	Velocity        vmath.Vec3
	AngularVelocity vmath.Vec3
	// Mass also serves as the scalar moment of inertia
	Mass int64
	// MaxSpeed caps linear speed after an impulse, 0 disables the cap
	MaxSpeed  int64
	RestSpeed int64

	resting bool
	onRest  []func(*Body)
}

// NewBody creates a resting body with the given mass
// Non-positive mass is treated as 1.0
func NewBody(mass float64) *Body {
	m := vmath.FromFloat(mass)
	if m <= 0 {
		m = vmath.Scale
	}
	return &Body{
		Mass:      m,
		RestSpeed: DefaultRestSpeed,
		resting:   true,
	}
}

// OnRest registers fn to run when the body transitions from moving to resting
func (b *Body) OnRest(fn func(*Body)) {
	b.onRest = append(b.onRest, fn)
}

// Place moves the body to p and stops it
func (b *Body) Place(p vmath.Vec3) {
	b.Position = p
	b.Velocity = vmath.Vec3{}
	b.AngularVelocity = vmath.Vec3{}
	b.resting = true
}

// ApplyImpulse adds force/mass to linear velocity (momentum transfer)
func (b *Body) ApplyImpulse(force vmath.Vec3) {
	b.Velocity = vmath.V3Add(b.Velocity, divScalar(force, b.Mass))
	if b.MaxSpeed > 0 {
		CapSpeed3D(&b.Velocity, b.MaxSpeed)
	}
	b.updateRest()
}

// ApplyTorque adds an angular impulse of magnitude around axis
// The axis is normalized; a zero axis applies nothing
func (b *Body) ApplyTorque(axis vmath.Vec3, magnitude int64) {
	n := vmath.V3Normalize(axis)
	if n == (vmath.Vec3{}) {
		return
	}
	delta := vmath.V3Scale(n, vmath.Div(magnitude, b.Mass))
	b.AngularVelocity = vmath.V3Add(b.AngularVelocity, delta)
	b.updateRest()
}

// Damp scales both velocities by factor (Scale = no damping)
// Returns true if this call brought the body to rest
func (b *Body) Damp(factor int64) bool {
	if b.resting {
		return false
	}
	b.Velocity = vmath.V3Damp(b.Velocity, factor)
	b.AngularVelocity = vmath.V3Damp(b.AngularVelocity, factor)
	return b.updateRest()
}

// IsResting reports whether both speeds are under RestSpeed
func (b *Body) IsResting() bool {
	return b.resting
}

// Speed returns linear speed in Q32.32
func (b *Body) Speed() int64 {
	return vmath.V3Mag(b.Velocity)
}

// Spin returns angular speed in Q32.32
func (b *Body) Spin() int64 {
	return vmath.V3Mag(b.AngularVelocity)
}

// updateRest recomputes the rest flag, firing observers on moving -> resting
func (b *Body) updateRest() bool {
	resting := b.Speed() < b.RestSpeed && b.Spin() < b.RestSpeed
	wasResting := b.resting
	b.resting = resting

	if resting && !wasResting {
		b.Velocity = vmath.Vec3{}
		b.AngularVelocity = vmath.Vec3{}
		for _, fn := range b.onRest {
			fn(b)
		}
		return true
	}
	return false
}

func divScalar(v vmath.Vec3, s int64) vmath.Vec3 {
	return vmath.Vec3{X: vmath.Div(v.X, s), Y: vmath.Div(v.Y, s), Z: vmath.Div(v.Z, s)}
}
