package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Cue pitches and lengths
const (
	MinFlickPitch = 220.0
	MaxFlickPitch = 1760.0
	// FlickPitchSpan is the velocity (units/s) that reaches MaxFlickPitch
	FlickPitchSpan = 3000.0
	FailPitch      = 110.0

	FlickCueDuration = 90 * time.Millisecond
	FailCueDuration  = 60 * time.Millisecond
	cueAttack        = 5 * time.Millisecond
	cueRelease       = 30 * time.Millisecond
)

// Player plays short gesture cues through the system speaker
// A player that failed to initialize stays silent
type Player struct {
	cfg   *Config
	rate  beep.SampleRate
	ready atomic.Bool
	muted atomic.Bool
}

// NewPlayer creates a player; Init must be called before cues are audible
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Player{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Init opens the speaker, a disabled config skips it
func (p *Player) Init() error {
	if !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.ready.Store(true)
	return nil
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// SetMuted toggles playback without closing the speaker
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether cues are suppressed
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// PlayFlick plays a tone whose pitch rises with velocity
func (p *Player) PlayFlick(velocity float64) error {
	return p.play(FlickPitch(velocity), FlickCueDuration)
}

// PlayFail plays a short low tone
func (p *Player) PlayFail() error {
	return p.play(FailPitch, FailCueDuration)
}

func (p *Player) play(freq float64, d time.Duration) error {
	if !p.ready.Load() || p.muted.Load() {
		return nil
	}
	s, err := p.Cue(freq, d)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Cue builds the enveloped, volume-scaled sine stream for freq lasting d
func (p *Player) Cue(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", freq)
	}
	tone := beep.Take(p.rate.N(d), sine)
	return newVolume(newEnvelope(tone, d, cueAttack, cueRelease, p.rate), p.cfg.Volume), nil
}

// FlickPitch maps velocity to a pitch over three octaves, clamped at both ends
func FlickPitch(velocity float64) float64 {
	if velocity <= 0 || math.IsNaN(velocity) {
		return MinFlickPitch
	}
	t := math.Min(velocity/FlickPitchSpan, 1)
	return MinFlickPitch * math.Exp2(t*math.Log2(MaxFlickPitch/MinFlickPitch))
}
