package physics

import (
	"github.com/lixenwraith/flick/vmath"
)

// CapSpeed3D limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed3D(vel *vmath.Vec3, maxSpeed int64) bool {
	mag := vmath.V3Mag(*vel)
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	*vel = vmath.V3Scale(*vel, vmath.Div(maxSpeed, mag))
	return true
}
