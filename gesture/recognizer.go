package gesture

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lixenwraith/flick/vmath"
)

// HandlerID identifies a registered transition handler
type HandlerID uint32

// Handler is invoked after every state transition
type Handler func(r *FlickRecognizer)

type handlerEntry struct {
	id HandlerID
	fn Handler
}

// FlickRecognizer tracks one single-finger linear swipe at a time
// Touch callbacks must be delivered serially by the host; no locking is done
type FlickRecognizer struct {
	cfg   Config
	clock TimeProvider

	state        State
	startPoint   vmath.Point
	currentPoint vmath.Point
	startTime    time.Time
	currentTime  time.Time
	force        float64
	hasForce     bool
	samples      []Sample

	handlers []handlerEntry
	nextID   HandlerID
}

// NewFlickRecognizer creates a recognizer in StatePossible
// A nil clock uses SystemClock
func NewFlickRecognizer(cfg Config, clock TimeProvider) *FlickRecognizer {
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	return &FlickRecognizer{
		cfg:         cfg,
		clock:       clock,
		startTime:   now,
		currentTime: now,
	}
}

// Config returns the active configuration
func (r *FlickRecognizer) Config() Config { return r.cfg }

// SetLineThreshold changes the linearity tolerance for subsequent moves
func (r *FlickRecognizer) SetLineThreshold(threshold float64) {
	r.cfg.LineThreshold = threshold
}

// --- Host callbacks ---

// TouchesBegan starts a new gesture instance from the first touch
// More than one simultaneous touch fails the gesture immediately
func (r *FlickRecognizer) TouchesBegan(touches []Touch) {
	if len(touches) == 0 {
		return
	}

	now := r.clock.Now()
	r.startPoint = touches[0].Point
	r.currentPoint = touches[0].Point
	r.startTime = now
	r.currentTime = now
	r.force, r.hasForce = 0, false
	r.samples = append(r.samples[:0], Sample{Point: r.startPoint, Time: now})

	if len(touches) > 1 {
		r.TransitionTo(StateFailed)
		return
	}
	r.TransitionTo(StateBegan)
}

// TouchesMoved accepts the first touch if it stays near the line from the start to the current point
// Once a move has been accepted, later moves are accepted without the distance check
func (r *FlickRecognizer) TouchesMoved(touches []Touch) {
	if len(touches) == 0 || !r.state.IsActive() {
		return
	}

	touch := touches[0]
	r.currentTime = r.clock.Now()

	// First reading sticks
	if !r.hasForce && touch.HasForce {
		r.force, r.hasForce = touch.Force, true
	}

	line := vmath.NewSlope(r.startPoint, r.currentPoint)
	if line.DistanceFrom(touch.Point) <= r.cfg.LineThreshold || len(r.samples) > 1 {
		r.currentPoint = touch.Point
		r.samples = append(r.samples, Sample{Point: touch.Point, Time: r.currentTime})
		r.TransitionTo(StateChanged)
		return
	}

	r.TransitionTo(StateFailed)
}

// TouchesEnded records the lift point and ends the gesture without a linearity check
func (r *FlickRecognizer) TouchesEnded(touches []Touch) {
	if len(touches) == 0 || !r.state.IsActive() {
		return
	}

	r.currentPoint = touches[0].Point
	r.currentTime = r.clock.Now()
	r.samples = append(r.samples, Sample{Point: r.currentPoint, Time: r.currentTime})
	r.TransitionTo(StateEnded)
}

// TouchesCancelled marks the gesture cancelled by the host
func (r *FlickRecognizer) TouchesCancelled(touches []Touch) {
	if !r.state.IsActive() {
		return
	}
	r.TransitionTo(StateCancelled)
}

// --- State machine ---

// TransitionTo sets the state and notifies handlers
// Entering StateFailed clears every tracked field first
// Handlers registered at the time of the transition are all called, even if
// one of them removes itself or another handler
func (r *FlickRecognizer) TransitionTo(state State) {
	r.state = state
	if state == StateFailed {
		r.clear()
	}
	for _, h := range slices.Clone(r.handlers) {
		h.fn(r)
	}
}

// Reset returns to StatePossible with cleared fields, without notifying handlers
func (r *FlickRecognizer) Reset() {
	r.state = StatePossible
	r.clear()
}

func (r *FlickRecognizer) clear() {
	now := r.clock.Now()
	r.startPoint = vmath.Point{}
	r.currentPoint = vmath.Point{}
	r.startTime = now
	r.currentTime = now
	r.force, r.hasForce = 0, false
	r.samples = r.samples[:0]
}

// AddHandler registers fn to run after each transition
func (r *FlickRecognizer) AddHandler(fn Handler) HandlerID {
	r.nextID++
	r.handlers = append(r.handlers, handlerEntry{id: r.nextID, fn: fn})
	return r.nextID
}

// RemoveHandler unregisters a handler, returns false if id is unknown
func (r *FlickRecognizer) RemoveHandler(id HandlerID) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			copy(r.handlers[i:], r.handlers[i+1:])
			r.handlers[len(r.handlers)-1] = handlerEntry{}
			r.handlers = r.handlers[:len(r.handlers)-1]
			return true
		}
	}
	return false
}

// --- Outputs ---

func (r *FlickRecognizer) State() State              { return r.state }
func (r *FlickRecognizer) StartPoint() vmath.Point   { return r.startPoint }
func (r *FlickRecognizer) CurrentPoint() vmath.Point { return r.currentPoint }

// Force returns the first pressure reading of the gesture, if any
func (r *FlickRecognizer) Force() (float64, bool) {
	return r.force, r.hasForce
}

// Samples returns a copy of the accepted samples in arrival order
func (r *FlickRecognizer) Samples() []Sample {
	out := make([]Sample, len(r.samples))
	copy(out, r.samples)
	return out
}

// SampleCount returns the number of accepted samples
func (r *FlickRecognizer) SampleCount() int {
	return len(r.samples)
}

// Direction returns the vector from the start point to the current point
func (r *FlickRecognizer) Direction() vmath.Vector {
	return r.currentPoint.Sub(r.startPoint)
}

// Duration returns seconds elapsed between the start and the latest update
func (r *FlickRecognizer) Duration() float64 {
	return r.currentTime.Sub(r.startTime).Seconds()
}

// Velocity returns the swipe length per second, 0 for a zero duration
func (r *FlickRecognizer) Velocity() float64 {
	return vmath.SafeDiv(r.Direction().Length(), r.Duration())
}

func (r *FlickRecognizer) String() string {
	var sb strings.Builder
	sb.WriteString("FlickRecognizer:")
	fmt.Fprintf(&sb, "\n\t- State: %s", r.state)
	fmt.Fprintf(&sb, "\n\t- Start point: %s", r.startPoint)
	fmt.Fprintf(&sb, "\n\t- Current point: %s", r.currentPoint)
	fmt.Fprintf(&sb, "\n\t- Direction: %s", r.Direction())
	fmt.Fprintf(&sb, "\n\t- Velocity: %g", r.Velocity())
	fmt.Fprintf(&sb, "\n\t- Duration: %g", r.Duration())
	if r.hasForce {
		fmt.Fprintf(&sb, "\n\t- Force: %g", r.force)
	}
	return sb.String()
}
