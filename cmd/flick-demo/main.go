package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flick/audio"
	"github.com/lixenwraith/flick/gesture"
	"github.com/lixenwraith/flick/physics"
	"github.com/lixenwraith/flick/status"
	"github.com/lixenwraith/flick/vmath"
)

const (
	frameInterval  = 16 * time.Millisecond
	thresholdStep  = 5.0
	coinMass       = 1.0
	coinMaxSpeed   = 2000.0
	coinDampFactor = 0.92
)

var (
	thresholdFlag = flag.Float64("threshold", gesture.DefaultLineThreshold, "Line threshold in view units (overrides FLICK_LINE_THRESHOLD)")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/flick.log")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
	volumeFlag    = flag.Int("volume", 50, "Cue volume 0-100 (overrides FLICK_VOLUME)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	set := explicitFlags()
	cfg, err := resolveGestureConfig(*thresholdFlag, set["threshold"])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore terminal to a sane state before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFLICK-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(styleBase)
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	screen.Clear()

	audioCfg := audio.LoadConfig()
	if set["volume"] {
		audioCfg.SetVolumePercent(*volumeFlag)
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Init(); err != nil {
		// Non-fatal, demo runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()
	if *muteFlag {
		player.SetMuted(true)
	}

	rec := gesture.NewFlickRecognizer(cfg, nil)
	host := newTouchHost(rec)

	tracker := status.NewGestureTracker(status.NewRegistry())
	tracker.Attach(rec)

	coin := physics.NewBody(coinMass)
	coin.MaxSpeed = vmath.FromFloat(coinMaxSpeed)
	ctrl := newCoinController(coin, spawnPoint(screen.Size()), player)
	rec.AddHandler(ctrl.Observe)

	sc := &scene{rec: rec, coin: coin, tracker: tracker, muted: player.Muted()}
	rec.AddHandler(func(r *gesture.FlickRecognizer) { sc.lastState = r.State() })

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	damp := vmath.FromFloat(coinDampFactor)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, host, rec, player) {
					return
				}
				sc.muted = player.Muted()
			case *tcell.EventMouse:
				host.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
				ctrl.SetSpawn(spawnPoint(ev.Size()))
			}

		case <-ticker.C:
			coin.Damp(damp)
			sc.draw(screen)
		}
	}
}

// explicitFlags returns the names of flags given on the command line
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// resolveGestureConfig loads the environment config and applies an explicit
// -threshold on top; the result is validated whatever its source
func resolveGestureConfig(threshold float64, thresholdSet bool) (gesture.Config, error) {
	cfg, err := gesture.LoadConfig()
	if err != nil {
		log.Printf("gesture config: %v (using defaults)", err)
	}
	if thresholdSet {
		cfg.LineThreshold = threshold
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// handleKey applies keyboard commands, returns false to quit
func handleKey(ev *tcell.EventKey, host *touchHost, rec *gesture.FlickRecognizer, player *audio.Player) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		host.Cancel()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			player.SetMuted(!player.Muted())
		case '+', '=':
			rec.SetLineThreshold(rec.Config().LineThreshold + thresholdStep)
		case '-':
			rec.SetLineThreshold(max(0, rec.Config().LineThreshold-thresholdStep))
		}
	}
	return true
}

// spawnPoint is the screen center in view units
func spawnPoint(w, h int) vmath.Vec3 {
	p := cellToView(w/2, h/2)
	return vmath.V3FromFloat(p.X, p.Y, 0)
}
