// Package locator implements the locator probe: a float that is thrown into
// a pond on a parabolic arc, bobs on the surface while it scans, and fades
// out when it is removed.
//
// A Probe does nothing on its own. The owner advances it by calling Tick
// with the frame delta once per update.
package locator

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/stillwater/internal/core/geom"
)

// State is the lifecycle state of a probe.
type State int

const (
	StateNone      State = iota // created, never thrown
	StateThrown                 // flying towards the target
	StateIdle                   // landed, bobbing
	StateFadingOut              // removal requested, fading
	StateRemoved                // terminal
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateThrown:
		return "thrown"
	case StateIdle:
		return "idle"
	case StateFadingOut:
		return "fading_out"
	case StateRemoved:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Params tunes the probe animation.
type Params struct {
	ThrowDuration time.Duration
	ThrowHeight   float64 // peak of the arc above the straight line
	Curve         Curve

	BobAmplitude float64
	BobFrequency float64 // radians per second

	FadeDuration time.Duration
}

// DefaultParams returns the stock locator tuning.
func DefaultParams() Params {
	return Params{
		ThrowDuration: 1500 * time.Millisecond,
		ThrowHeight:   2,
		Curve:         EaseInOut,
		BobAmplitude:  0.1,
		BobFrequency:  1,
		FadeDuration:  500 * time.Millisecond,
	}
}

// Probe is one locator instance.
type Probe struct {
	id     uuid.UUID
	params Params

	state   State
	elapsed time.Duration // time spent in the current state

	start  geom.Point
	target geom.Point
	pos    geom.Point
	alpha  float64

	// OnLanded fires once the throw completes and scanning starts.
	OnLanded func(p *Probe)
	// OnRemoved fires once, when the fade-out completes.
	OnRemoved func(p *Probe)
}

// New creates a probe that has not been thrown yet.
func New(params Params) *Probe {
	if params.Curve == nil {
		params.Curve = Linear
	}
	return &Probe{
		id:     uuid.New(),
		params: params,
		state:  StateNone,
		alpha:  1,
	}
}

// ThrowTo starts (or restarts) the throw from start to target. A throw in
// progress is abandoned and the arc begins again from start. Probes that are
// fading out or removed cannot be thrown again.
func (p *Probe) ThrowTo(start, target geom.Point) {
	if p.state == StateFadingOut || p.state == StateRemoved {
		log.Printf("Warning: probe %s cannot be thrown while %s", p.ShortID(), p.state)
		return
	}
	p.start = start
	p.target = target
	p.pos = start
	p.alpha = 1
	p.elapsed = 0
	p.state = StateThrown
}

// Remove starts the fade-out. It pre-empts a throw in flight: the probe fades
// where it is. Calling Remove on a fading or removed probe does nothing.
func (p *Probe) Remove() {
	switch p.state {
	case StateNone:
		p.state = StateRemoved
	case StateThrown, StateIdle:
		p.state = StateFadingOut
		p.elapsed = 0
		p.alpha = 1
	}
}

// Tick advances the probe by dt. Ticking a probe that was never thrown is a
// programming error and panics.
func (p *Probe) Tick(dt time.Duration) {
	switch p.state {
	case StateNone:
		panic(fmt.Sprintf("locator: Tick on probe %s that was never thrown", p.ShortID()))
	case StateThrown:
		p.tickThrow(dt)
	case StateIdle:
		p.tickIdle(dt)
	case StateFadingOut:
		p.tickFade(dt)
	case StateRemoved:
	}
}

func (p *Probe) tickThrow(dt time.Duration) {
	p.elapsed += dt
	if p.elapsed >= p.params.ThrowDuration {
		p.land()
		return
	}

	progress := float64(p.elapsed) / float64(p.params.ThrowDuration)
	pos := geom.Lerp(p.start, p.target, p.params.Curve(progress))
	pos.Y += math.Sin(progress*math.Pi) * p.params.ThrowHeight
	p.pos = pos
}

func (p *Probe) land() {
	p.pos = p.target
	p.elapsed = 0
	p.state = StateIdle

	log.Printf("Probe %s hit the water at (%.2f, %.2f)", p.ShortID(), p.target.X, p.target.Y)
	if p.OnLanded != nil {
		p.OnLanded(p)
	}
}

func (p *Probe) tickIdle(dt time.Duration) {
	p.elapsed += dt
	offset := math.Sin(p.elapsed.Seconds()*p.params.BobFrequency) * p.params.BobAmplitude
	p.pos = geom.Point{X: p.target.X, Y: p.target.Y + offset}
}

func (p *Probe) tickFade(dt time.Duration) {
	p.elapsed += dt
	if p.elapsed >= p.params.FadeDuration {
		p.alpha = 0
		p.state = StateRemoved
		if p.OnRemoved != nil {
			p.OnRemoved(p)
		}
		return
	}
	p.alpha = 1 - float64(p.elapsed)/float64(p.params.FadeDuration)
}

// ID returns the probe's unique id.
func (p *Probe) ID() uuid.UUID { return p.id }

// ShortID returns the first block of the id, for log lines.
func (p *Probe) ShortID() string { return p.id.String()[:8] }

// State returns the current lifecycle state.
func (p *Probe) State() State { return p.state }

// Position returns the current world position.
func (p *Probe) Position() geom.Point { return p.pos }

// Target returns where the current throw lands.
func (p *Probe) Target() geom.Point { return p.target }

// Alpha returns the opacity, 1 until the fade starts.
func (p *Probe) Alpha() float64 { return p.alpha }

// IsThrowing reports whether the probe is in flight.
func (p *Probe) IsThrowing() bool { return p.state == StateThrown }

// IsIdle reports whether the probe has landed and is scanning.
func (p *Probe) IsIdle() bool { return p.state == StateIdle }

// IsLive reports whether the probe is thrown or idle, i.e. not on its way out.
func (p *Probe) IsLive() bool { return p.state == StateThrown || p.state == StateIdle }
