package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/flick/gesture"
	"github.com/lixenwraith/flick/physics"
	"github.com/lixenwraith/flick/status"
	"github.com/lixenwraith/flick/vmath"
)

// Heat gradient endpoints for speed coloring
var (
	coldColor = colorful.Color{R: 0.25, G: 0.55, B: 1.0}
	hotColor  = colorful.Color{R: 1.0, G: 0.35, B: 0.1}
)

const (
	// heatSpeed is the speed (view units/s) rendered fully hot
	heatSpeed = 1500.0
	// arrowScale converts coin speed to arrow length in cells
	arrowScale = 0.1
	maxArrow   = 20
)

var (
	styleBase   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	styleTitle  = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleDim    = styleBase.Foreground(tcell.ColorGray)
	styleFailed = styleBase.Foreground(tcell.ColorRed)
)

// heatColor blends cold to hot by speed
func heatColor(speed float64) tcell.Color {
	t := math.Max(0, math.Min(speed/heatSpeed, 1))
	r, g, b := coldColor.BlendLab(hotColor, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// scene is everything drawn in one frame
type scene struct {
	rec       *gesture.FlickRecognizer
	coin      *physics.Body
	tracker   *status.GestureTracker
	muted     bool
	lastState gesture.State
}

func (sc *scene) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()

	drawText(s, 1, 0, "flick-demo: drag with the left button | esc cancel | +/- threshold | m mute | q quit", styleTitle)

	sc.drawSamples(s)
	sc.drawCoin(s)

	// Recognizer summary
	lines := strings.Split(sc.rec.String(), "\n")
	for i, line := range lines {
		style := styleDim
		if sc.lastState == gesture.StateFailed {
			style = styleFailed
		}
		drawText(s, 1, 2+i, strings.ReplaceAll(line, "\t", "  "), style)
	}

	// Status bar
	mute := ""
	if sc.muted {
		mute = " | muted"
	}
	bar := fmt.Sprintf("threshold %.0f | %s%s", sc.rec.Config().LineThreshold, sc.tracker.Snapshot(), mute)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, styleBase.Reverse(true))
	}
	drawText(s, 1, h-1, bar, styleBase.Reverse(true))

	s.Show()
}

// drawSamples renders the accepted touch path, colored by local speed
func (sc *scene) drawSamples(s tcell.Screen) {
	samples := sc.rec.Samples()
	for i, sample := range samples {
		speed := 0.0
		if i > 0 {
			prev := samples[i-1]
			dt := sample.Time.Sub(prev.Time).Seconds()
			speed = vmath.SafeDiv(prev.Point.DistanceTo(sample.Point), dt)
		}
		x, y := viewToCell(sample.Point)
		s.SetContent(x, y, '•', nil, styleBase.Foreground(heatColor(speed)))
	}
}

// drawCoin renders the coin at its position with an arrow along its velocity
func (sc *scene) drawCoin(s tcell.Screen) {
	px, py, _ := sc.coin.Position.Floats()
	cx, cy := viewToCell(vmath.Pt(px, py))

	speed := vmath.ToFloat(sc.coin.Speed())
	color := heatColor(speed)

	if !sc.coin.IsResting() {
		vx, vy, _ := vmath.V3Normalize(sc.coin.Velocity).Floats()
		n := int(math.Min(speed*arrowScale, maxArrow))
		for i := 1; i <= n; i++ {
			f := float64(i) * cellAspect
			ax, ay := viewToCell(vmath.Pt(px+vx*f, py+vy*f))
			s.SetContent(ax, ay, '·', nil, styleBase.Foreground(color))
		}
	}

	glyph := 'O'
	if sc.coin.Spin() > 0 {
		glyph = '0'
	}
	s.SetContent(cx, cy, glyph, nil, styleTitle.Foreground(color))
}
