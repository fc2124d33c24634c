package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flick/gesture"
	"github.com/lixenwraith/flick/vmath"
)

func newHostFixture() (*touchHost, *gesture.FlickRecognizer, *gesture.MockTimeProvider) {
	clock := gesture.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := gesture.NewFlickRecognizer(gesture.DefaultConfig(), clock)
	return newTouchHost(rec), rec, clock
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestTouchHost_Swipe(t *testing.T) {
	host, rec, clock := newHostFixture()

	if host.HandleMouse(mouse(5, 5, tcell.ButtonNone)) {
		t.Error("hover without button should not be a gesture event")
	}

	host.HandleMouse(mouse(10, 5, tcell.Button1))
	if rec.State() != gesture.StateBegan {
		t.Fatalf("state = %s, want began", rec.State())
	}
	if rec.StartPoint() != vmath.Pt(10, 10) {
		t.Errorf("start = %v, want (10, 10) in view units", rec.StartPoint())
	}

	for x := 12; x <= 30; x += 2 {
		clock.Advance(10 * time.Millisecond)
		host.HandleMouse(mouse(x, 5, tcell.Button1))
	}
	if rec.State() != gesture.StateChanged {
		t.Fatalf("state = %s, want changed", rec.State())
	}

	clock.Advance(10 * time.Millisecond)
	host.HandleMouse(mouse(32, 5, tcell.ButtonNone))
	if rec.State() != gesture.StateEnded {
		t.Fatalf("state = %s, want ended", rec.State())
	}
	if d := rec.Direction(); d.DX != 22 || d.DY != 0 {
		t.Errorf("direction = %v, want (22, 0)", d)
	}
	if host.down {
		t.Error("host still down after release")
	}
}

func TestTouchHost_TwoButtonsFail(t *testing.T) {
	host, rec, _ := newHostFixture()
	host.HandleMouse(mouse(3, 3, tcell.Button1|tcell.Button3))
	if rec.State() != gesture.StateFailed {
		t.Errorf("state = %s, want failed", rec.State())
	}
}

func TestTouchHost_Cancel(t *testing.T) {
	host, rec, _ := newHostFixture()
	if host.Cancel() {
		t.Error("Cancel without a touch should report false")
	}

	host.HandleMouse(mouse(3, 3, tcell.Button1))
	if !host.Cancel() {
		t.Fatal("Cancel with a touch should report true")
	}
	if rec.State() != gesture.StateCancelled {
		t.Errorf("state = %s, want cancelled", rec.State())
	}

	// Release after cancel is plain hover
	if host.HandleMouse(mouse(4, 3, tcell.ButtonNone)) {
		t.Error("release after cancel should be ignored")
	}
}

func TestCellViewRoundTrip(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {7, 3}, {80, 24}} {
		x, y := viewToCell(cellToView(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("round trip %v -> (%d, %d)", c, x, y)
		}
	}
}
