// Package pond validates cast requests against a pond's water area and the
// shared research ledger, and owns the locator probe thrown into that pond.
package pond

//go:generate go tool mockgen -destination=mocks/pond_mock.go -package=mocks chosenoffset.com/stillwater/internal/pond AreaQuery,ChargeLedger,Listener

import (
	"errors"
	"fmt"
	"log"
	"time"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/core/notify"
	"chosenoffset.com/stillwater/internal/locator"
	"chosenoffset.com/stillwater/internal/research"
)

// Outcome is the result of a cast request.
type Outcome int

const (
	Accepted Outcome = iota
	RejectedOutOfRange
	RejectedNotOnTarget
	RejectedNoCharge
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case RejectedOutOfRange:
		return "rejected_out_of_range"
	case RejectedNotOnTarget:
		return "rejected_not_on_target"
	case RejectedNoCharge:
		return "rejected_no_charge"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Kind classifies why a request was rejected.
type Kind int

const (
	KindNone          Kind = iota
	KindValidation         // bad distance or target outside the water
	KindExhausted          // no charges left or location limit reached
	KindConfiguration      // unknown location or interaction disabled
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindExhausted:
		return "exhausted"
	case KindConfiguration:
		return "configuration"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	ErrInteractionDisabled = errors.New("pond interaction disabled")
	ErrNotOnTarget         = errors.New("target is not on the water")
	ErrTooFar              = errors.New("target too far")
	ErrTooClose            = errors.New("target too close")
)

// Rejection describes a refused cast.
type Rejection struct {
	LocationID string
	Outcome    Outcome
	Kind       Kind
	Err        error
	Target     geom.Point
	Distance   float64
}

// Listener receives controller events.
type Listener interface {
	CastAccepted(locationID string, target geom.Point)
	CastRejected(r Rejection)
	// ProbeLanded reports that the probe hit the water and started scanning.
	ProbeLanded(locationID string, pos geom.Point)
	// ProbeRemoved reports that a probe finished fading out.
	ProbeRemoved(locationID string)
}

// AreaQuery answers whether a point lies on a location's water.
type AreaQuery interface {
	Contains(p geom.Point, locationID string) bool
}

// ChargeLedger is the part of research.Ledger the controller needs.
type ChargeLedger interface {
	Check(locationID string) error
	TryConsume(locationID string) bool
}

// Request is a single cast attempt.
type Request struct {
	LocationID string
	Target     geom.Point
	Requester  geom.Point
}

// Config holds per-pond settings.
type Config struct {
	LocationID  string
	MinDistance float64
	MaxDistance float64
	Probe       locator.Params
}

// Controller gates casts at one pond and drives at most one live probe.
// It is not safe for concurrent use; call it from the update loop.
type Controller struct {
	cfg    Config
	ledger ChargeLedger
	areas  AreaQuery

	enabled  bool
	active   *locator.Probe
	retiring []*locator.Probe

	listeners notify.List[Listener]
}

// NewController wires a controller for one pond. The ledger is usually
// shared between every pond in the scene. A nil *research.Ledger or *Areas
// inside the interface counts as missing.
func NewController(cfg Config, ledger ChargeLedger, areas AreaQuery) (*Controller, error) {
	if l, ok := ledger.(*research.Ledger); ledger == nil || ok && l == nil {
		return nil, fmt.Errorf("pond %s: charge ledger is required", cfg.LocationID)
	}
	if a, ok := areas.(*Areas); areas == nil || ok && a == nil {
		return nil, fmt.Errorf("pond %s: area query is required", cfg.LocationID)
	}
	if cfg.LocationID == "" {
		return nil, fmt.Errorf("pond controller needs a location id")
	}
	if cfg.MinDistance < 0 || cfg.MaxDistance < cfg.MinDistance {
		return nil, fmt.Errorf("pond %s: invalid cast range [%.2f, %.2f]", cfg.LocationID, cfg.MinDistance, cfg.MaxDistance)
	}
	return &Controller{
		cfg:     cfg,
		ledger:  ledger,
		areas:   areas,
		enabled: true,
	}, nil
}

// Subscribe registers a listener and returns its unsubscribe function.
func (c *Controller) Subscribe(l Listener) (unsubscribe func()) {
	return c.listeners.Subscribe(l)
}

// RequestCast validates req and, when it passes, consumes a charge and
// throws a new probe. Any probe already in the water starts fading before
// the new one is created.
func (c *Controller) RequestCast(req Request) Outcome {
	if req.LocationID == "" {
		req.LocationID = c.cfg.LocationID
	}
	if !c.enabled {
		return c.reject(req, RejectedNotOnTarget, KindConfiguration, ErrInteractionDisabled, 0)
	}
	if req.LocationID != c.cfg.LocationID {
		return c.reject(req, RejectedNotOnTarget, KindConfiguration,
			fmt.Errorf("%w: %s", research.ErrUnknownLocation, req.LocationID), 0)
	}

	if !c.areas.Contains(req.Target, req.LocationID) {
		return c.reject(req, RejectedNotOnTarget, KindValidation, ErrNotOnTarget, 0)
	}

	dist := geom.Distance(req.Requester, req.Target)
	if dist > c.cfg.MaxDistance {
		return c.reject(req, RejectedOutOfRange, KindValidation, ErrTooFar, dist)
	}
	if dist < c.cfg.MinDistance {
		return c.reject(req, RejectedOutOfRange, KindValidation, ErrTooClose, dist)
	}

	if err := c.ledger.Check(req.LocationID); err != nil {
		return c.reject(req, RejectedNoCharge, ledgerKind(err), err, dist)
	}
	if !c.ledger.TryConsume(req.LocationID) {
		// Another pond drained the shared pool between Check and consume.
		return c.reject(req, RejectedNoCharge, KindExhausted, research.ErrNoCharges, dist)
	}

	c.ForceRemove()

	probe := locator.New(c.cfg.Probe)
	probe.OnLanded = c.probeLanded
	probe.OnRemoved = c.probeRemoved
	probe.ThrowTo(req.Requester, req.Target)
	c.active = probe

	log.Printf("Cast accepted at %s: probe %s thrown to (%.2f, %.2f), distance %.2f",
		req.LocationID, probe.ShortID(), req.Target.X, req.Target.Y, dist)
	c.listeners.Each(func(l Listener) { l.CastAccepted(req.LocationID, req.Target) })
	return Accepted
}

func (c *Controller) reject(req Request, outcome Outcome, kind Kind, err error, dist float64) Outcome {
	r := Rejection{
		LocationID: req.LocationID,
		Outcome:    outcome,
		Kind:       kind,
		Err:        err,
		Target:     req.Target,
		Distance:   dist,
	}
	log.Printf("Cast rejected at %s: %s (%s): %v", req.LocationID, outcome, kind, err)
	c.listeners.Each(func(l Listener) { l.CastRejected(r) })
	return outcome
}

func ledgerKind(err error) Kind {
	if errors.Is(err, research.ErrUnknownLocation) {
		return KindConfiguration
	}
	return KindExhausted
}

// ForceRemove starts the fade-out of the active probe, if any. The probe
// keeps ticking until the fade completes but is no longer active.
func (c *Controller) ForceRemove() {
	if c.active == nil {
		return
	}
	p := c.active
	c.active = nil
	p.Remove()
	if p.State() != locator.StateRemoved {
		c.retiring = append(c.retiring, p)
	}
}

// Tick advances the active probe and every probe that is still fading.
func (c *Controller) Tick(dt time.Duration) {
	if c.active != nil {
		c.active.Tick(dt)
	}

	// Listeners may cast from ProbeRemoved, which retires the active probe
	// while this loop runs; those appends land on the fresh slice.
	retiring := c.retiring
	c.retiring = nil
	for _, p := range retiring {
		p.Tick(dt)
		if p.State() != locator.StateRemoved {
			c.retiring = append(c.retiring, p)
		}
	}
}

func (c *Controller) probeLanded(p *locator.Probe) {
	pos := p.Position()
	c.listeners.Each(func(l Listener) { l.ProbeLanded(c.cfg.LocationID, pos) })
}

func (c *Controller) probeRemoved(p *locator.Probe) {
	log.Printf("Probe %s removed from %s", p.ShortID(), c.cfg.LocationID)
	c.listeners.Each(func(l Listener) { l.ProbeRemoved(c.cfg.LocationID) })
}

// HasActiveProbe reports whether a probe is in flight or scanning. Use
// IsScanning for landed probes only.
func (c *Controller) HasActiveProbe() bool {
	return c.active != nil && c.active.IsLive()
}

// ActiveProbePosition returns the active probe's position. ok is false when
// there is none.
func (c *Controller) ActiveProbePosition() (pos geom.Point, ok bool) {
	if !c.HasActiveProbe() {
		return geom.Point{}, false
	}
	return c.active.Position(), true
}

// IsScanning reports whether the active probe has landed.
func (c *Controller) IsScanning() bool {
	return c.active != nil && c.active.IsIdle()
}

// Probes returns every probe that still needs drawing, fading ones first.
func (c *Controller) Probes() []*locator.Probe {
	out := make([]*locator.Probe, 0, len(c.retiring)+1)
	out = append(out, c.retiring...)
	if c.active != nil {
		out = append(out, c.active)
	}
	return out
}

// LiveProbes counts probes that are thrown or idle. It never exceeds one.
func (c *Controller) LiveProbes() int {
	n := 0
	for _, p := range c.Probes() {
		if p.IsLive() {
			n++
		}
	}
	return n
}

// LocationID returns the pond's location id.
func (c *Controller) LocationID() string { return c.cfg.LocationID }

// Config returns the pond settings.
func (c *Controller) Config() Config { return c.cfg }

// SetInteractionEnabled turns casting on or off. Probes already thrown are
// left alone.
func (c *Controller) SetInteractionEnabled(enabled bool) {
	c.enabled = enabled
}

// InteractionEnabled reports whether casting is on.
func (c *Controller) InteractionEnabled() bool { return c.enabled }
