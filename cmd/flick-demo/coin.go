package main

import (
	"log"

	"github.com/lixenwraith/flick/gesture"
	"github.com/lixenwraith/flick/physics"
	"github.com/lixenwraith/flick/vmath"
)

// cuePlayer is the subset of audio.Player the coin controller needs
type cuePlayer interface {
	PlayFlick(velocity float64) error
	PlayFail() error
}

// coinController re-spawns the coin and hands it the flick impulse when a gesture finishes
type coinController struct {
	coin  *physics.Body
	spawn vmath.Vec3
	cues  cuePlayer

	flicks int
}

func newCoinController(coin *physics.Body, spawn vmath.Vec3, cues cuePlayer) *coinController {
	coin.Place(spawn)
	coin.OnRest(func(b *physics.Body) {
		x, y, _ := b.Position.Floats()
		log.Printf("coin at rest at (%.1f, %.1f)", x, y)
	})
	return &coinController{coin: coin, spawn: spawn, cues: cues}
}

// SetSpawn moves the spawn point, used on terminal resize
func (c *coinController) SetSpawn(spawn vmath.Vec3) {
	c.spawn = spawn
	if c.coin.IsResting() {
		c.coin.Place(spawn)
	}
}

// Observe is registered as a recognizer handler
func (c *coinController) Observe(r *gesture.FlickRecognizer) {
	log.Println(r)

	switch r.State() {
	case gesture.StateEnded, gesture.StateCancelled:
		velocity := r.Velocity()
		c.coin.Place(c.spawn)
		physics.ImpulseFromFlick(r.Direction(), velocity).Apply(c.coin)
		c.flicks++
		if err := c.cues.PlayFlick(velocity); err != nil {
			log.Printf("flick cue: %v", err)
		}
	case gesture.StateFailed:
		if err := c.cues.PlayFail(); err != nil {
			log.Printf("fail cue: %v", err)
		}
	}
}
