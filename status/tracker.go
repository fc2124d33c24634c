package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/flick/gesture"
)

// Metric keys written by GestureTracker
const (
	KeyBegan        = "gesture.began"
	KeyEnded        = "gesture.ended"
	KeyCancelled    = "gesture.cancelled"
	KeyFailed       = "gesture.failed"
	KeyLastVelocity = "gesture.last_velocity"
	KeyLastDuration = "gesture.last_duration"
	KeyPeakVelocity = "gesture.peak_velocity"
)

// GestureTracker counts gesture outcomes and records kinematics of finished gestures
// Pointers are cached at construction; Observe only touches atomics
type GestureTracker struct {
	began     *atomic.Int64
	ended     *atomic.Int64
	cancelled *atomic.Int64
	failed    *atomic.Int64

	lastVelocity *AtomicFloat
	lastDuration *AtomicFloat
	peakVelocity *AtomicFloat
}

// NewGestureTracker registers gesture metrics in reg
func NewGestureTracker(reg *Registry) *GestureTracker {
	return &GestureTracker{
		began:        reg.Ints.Get(KeyBegan),
		ended:        reg.Ints.Get(KeyEnded),
		cancelled:    reg.Ints.Get(KeyCancelled),
		failed:       reg.Ints.Get(KeyFailed),
		lastVelocity: reg.Floats.Get(KeyLastVelocity),
		lastDuration: reg.Floats.Get(KeyLastDuration),
		peakVelocity: reg.Floats.Get(KeyPeakVelocity),
	}
}

// Attach registers the tracker as a transition handler on r
func (t *GestureTracker) Attach(r *gesture.FlickRecognizer) gesture.HandlerID {
	return r.AddHandler(t.Observe)
}

// Observe records the recognizer's current transition
func (t *GestureTracker) Observe(r *gesture.FlickRecognizer) {
	switch r.State() {
	case gesture.StateBegan:
		t.began.Add(1)
	case gesture.StateEnded:
		t.ended.Add(1)
		t.record(r)
	case gesture.StateCancelled:
		t.cancelled.Add(1)
		t.record(r)
	case gesture.StateFailed:
		t.failed.Add(1)
	}
}

func (t *GestureTracker) record(r *gesture.FlickRecognizer) {
	v := r.Velocity()
	t.lastVelocity.Set(v)
	t.lastDuration.Set(r.Duration())
	t.peakVelocity.Max(v)
}

// Snapshot is a point-in-time copy of tracker metrics
type Snapshot struct {
	Began, Ended, Cancelled, Failed int64
	LastVelocity, LastDuration      float64
	PeakVelocity                    float64
}

// Snapshot reads all metrics
func (t *GestureTracker) Snapshot() Snapshot {
	return Snapshot{
		Began:        t.began.Load(),
		Ended:        t.ended.Load(),
		Cancelled:    t.cancelled.Load(),
		Failed:       t.failed.Load(),
		LastVelocity: t.lastVelocity.Get(),
		LastDuration: t.lastDuration.Get(),
		PeakVelocity: t.peakVelocity.Get(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("ok:%d cancel:%d fail:%d | v:%.1f peak:%.1f t:%.2fs",
		s.Ended, s.Cancelled, s.Failed, s.LastVelocity, s.PeakVelocity, s.LastDuration)
}
