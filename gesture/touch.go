package gesture

import (
	"time"

	"github.com/lixenwraith/flick/vmath"
)

// Touch is one contact reported by the host for a single callback
type Touch struct {
	Point vmath.Point
	// Force is the pressure reading, meaningful only when HasForce is set
	Force    float64
	HasForce bool
}

// TouchAt returns a touch without a force reading
func TouchAt(x, y float64) Touch {
	return Touch{Point: vmath.Pt(x, y)}
}

// TouchWithForce returns a touch carrying a force reading
func TouchWithForce(x, y, force float64) Touch {
	return Touch{Point: vmath.Pt(x, y), Force: force, HasForce: true}
}

// Sample is an accepted touch position with its arrival time
type Sample struct {
	Point vmath.Point
	Time  time.Time
}
