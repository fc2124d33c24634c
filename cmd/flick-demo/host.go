package main

import (
	"math/bits"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flick/gesture"
	"github.com/lixenwraith/flick/vmath"
)

// cellAspect scales rows to view units; terminal cells are about twice as tall as wide
const cellAspect = 2.0

const touchButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// cellToView converts a cell position to view coordinates
func cellToView(x, y int) vmath.Point {
	return vmath.Pt(float64(x), float64(y)*cellAspect)
}

// viewToCell converts view coordinates back to the nearest cell
func viewToCell(p vmath.Point) (x, y int) {
	return int(p.X + 0.5), int(p.Y/cellAspect + 0.5)
}

// touchHost turns tcell mouse events into recognizer touch callbacks
// Any held button is a finger; holding several at press time is a multi-touch
type touchHost struct {
	rec  *gesture.FlickRecognizer
	down bool
}

func newTouchHost(rec *gesture.FlickRecognizer) *touchHost {
	return &touchHost{rec: rec}
}

// HandleMouse delivers one mouse event, returns true if it was part of a gesture
func (h *touchHost) HandleMouse(ev *tcell.EventMouse) bool {
	held := ev.Buttons() & touchButtons
	p := cellToView(ev.Position())

	switch {
	case !h.down && held != 0:
		h.down = true
		h.rec.TouchesBegan(touchesFor(p, bits.OnesCount(uint(held))))
	case h.down && held != 0:
		h.rec.TouchesMoved([]gesture.Touch{{Point: p}})
	case h.down:
		h.down = false
		h.rec.TouchesEnded([]gesture.Touch{{Point: p}})
	default:
		return false
	}
	return true
}

// Cancel withdraws an in-progress touch, returns false if none was down
func (h *touchHost) Cancel() bool {
	if !h.down {
		return false
	}
	h.down = false
	h.rec.TouchesCancelled(nil)
	return true
}

// touchesFor reports n contacts at p; the mouse has a single position
func touchesFor(p vmath.Point, n int) []gesture.Touch {
	touches := make([]gesture.Touch, n)
	for i := range touches {
		touches[i] = gesture.Touch{Point: p}
	}
	return touches
}
