package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"chosenoffset.com/stillwater/internal/audio"
	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/i18n"
	"chosenoffset.com/stillwater/internal/pond"
	"chosenoffset.com/stillwater/internal/research"
	"chosenoffset.com/stillwater/internal/simulation"
	"chosenoffset.com/stillwater/internal/ui/hud"
)

// Pond pairs a scene pond with the controller that gates casts into it.
type Pond struct {
	Def        PondDef
	Controller *pond.Controller
}

// Session ties the shared ledger, every pond controller, the player, the
// HUD and the sound cues together. Front-ends drive it from their update
// loop; it is not safe for concurrent use.
type Session struct {
	scene   *Scene
	config  *simulation.Config
	ledger  *research.Ledger
	areas   *pond.Areas
	ponds   []*Pond
	byID    map[string]*Pond
	player  Player
	display *hud.Display
	sound   *audio.SoundManager

	unsubscribe []func()
}

// NewSession builds the ledger and one controller per pond and subscribes
// the display and sound cues to them. sound may be nil.
func NewSession(scene *Scene, config *simulation.Config, display *hud.Display, sound *audio.SoundManager) (*Session, error) {
	if display == nil {
		return nil, fmt.Errorf("session needs a display")
	}
	areas, err := scene.BuildAreas()
	if err != nil {
		return nil, fmt.Errorf("failed to build pond areas: %w", err)
	}

	ledger := research.NewLedger(config.Charges.Max, config.Charges.Initial, config.Charges.LocationLimits)

	s := &Session{
		scene:   scene,
		config:  config,
		ledger:  ledger,
		areas:   areas,
		byID:    make(map[string]*Pond, len(scene.Ponds)),
		display: display,
		sound:   sound,
		player: Player{
			Pos:   scene.PlayerStart,
			Speed: scene.PlayerSpeed,
		},
	}

	for _, def := range scene.Ponds {
		if !ledger.HasLocation(def.LocationID) {
			if def.CastLimit > 0 {
				ledger.SetLocationLimit(def.LocationID, def.CastLimit)
			} else {
				log.Printf("Warning: pond %s has no cast limit, casts there will be rejected", def.LocationID)
			}
		}

		ctrl, err := pond.NewController(pond.Config{
			LocationID:  def.LocationID,
			MinDistance: config.Cast.MinDistance,
			MaxDistance: config.Cast.MaxDistance,
			Probe:       config.ProbeParams(),
		}, ledger, areas)
		if err != nil {
			s.Close()
			return nil, err
		}
		ctrl.SetInteractionEnabled(!def.Disabled)

		p := &Pond{Def: def, Controller: ctrl}
		s.ponds = append(s.ponds, p)
		s.byID[def.LocationID] = p

		s.unsubscribe = append(s.unsubscribe, ctrl.Subscribe(display))
		if sound != nil {
			s.unsubscribe = append(s.unsubscribe, ctrl.Subscribe(cueListener{sound}))
		}
	}

	s.unsubscribe = append(s.unsubscribe, ledger.Subscribe(display))
	if sound != nil {
		s.unsubscribe = append(s.unsubscribe, ledger.Subscribe(cueListener{sound}))
	}
	display.SetCharges(ledger.Charges(), ledger.MaxCharges())

	log.Printf("Session started: scene %s, %d ponds, %d/%d charges",
		scene.Name, len(s.ponds), ledger.Charges(), ledger.MaxCharges())
	return s, nil
}

// Close detaches every listener registered by NewSession. It is safe to
// call more than once.
func (s *Session) Close() {
	for _, unsub := range s.unsubscribe {
		unsub()
	}
	s.unsubscribe = nil
}

// CastAt casts from the player's position to target. The pond whose water
// contains target takes the request; if none does, the pond nearest the
// player takes it and rejects it as off target.
func (s *Session) CastAt(target geom.Point) pond.Outcome {
	p := s.pondAt(target)
	if p == nil {
		p = s.nearestPond()
	}
	if p == nil {
		return pond.RejectedNotOnTarget
	}
	return p.Controller.RequestCast(pond.Request{
		LocationID: p.Def.LocationID,
		Target:     target,
		Requester:  s.player.Pos,
	})
}

func (s *Session) pondAt(target geom.Point) *Pond {
	loc, ok := s.areas.Locate(target)
	if !ok {
		return nil
	}
	return s.byID[loc]
}

func (s *Session) nearestPond() *Pond {
	var best *Pond
	bestDist := math.Inf(1)
	for _, p := range s.ponds {
		center, ok := s.areas.Center(p.Def.LocationID)
		if !ok {
			continue
		}
		if d := geom.Distance(s.player.Pos, center); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// AddResearchCharges adds amount charges to the shared pool.
func (s *Session) AddResearchCharges(amount int) {
	s.ledger.Add(amount)
	s.display.Notify(s.display.Translator().T(i18n.ChargesAdded, amount))
	s.sound.Play(audio.CueChime)
	log.Printf("Added %d research charges: %s", amount, s.ledger.Debug())
}

// ResetDailyLimits clears every location's cast counter.
func (s *Session) ResetDailyLimits() {
	s.ledger.ResetLocationLimits()
	s.display.Notify(s.display.Translator().T(i18n.LimitsReset))
	s.sound.Play(audio.CueChime)
}

// RemoveAllLocators starts the fade-out of every pond's probe.
func (s *Session) RemoveAllLocators() {
	for _, p := range s.ponds {
		p.Controller.ForceRemove()
	}
	s.display.Notify(s.display.Translator().T(i18n.LocatorsRemoved))
}

// ShowLocationInfo shows the casts used at locationID. An empty id means
// the pond nearest the player.
func (s *Session) ShowLocationInfo(locationID string) {
	if locationID == "" {
		p := s.nearestPond()
		if p == nil {
			return
		}
		locationID = p.Def.LocationID
	}
	if !s.ledger.HasLocation(locationID) {
		s.display.Notify(s.display.Translator().T(i18n.UnknownLocation, locationID))
		return
	}
	s.display.ShowLocationInfo(locationID, s.ledger.LocationCasts(locationID), s.ledger.LocationLimit(locationID))
}

// MovePlayer moves the player by (dx, dy) metres, clamped to the scene.
func (s *Session) MovePlayer(dx, dy float64) {
	pos := s.player.Pos.Add(geom.Pt(dx, dy))
	pos.X = min(max(pos.X, 0), s.scene.Width)
	pos.Y = min(max(pos.Y, 0), s.scene.Height)
	s.player.Pos = pos
}

// Tick advances every pond's probes and the HUD timers.
func (s *Session) Tick(dt time.Duration) {
	for _, p := range s.ponds {
		p.Controller.Tick(dt)
	}
	s.display.Tick(dt)
}

// Scene returns the loaded scene.
func (s *Session) Scene() *Scene { return s.scene }

// Config returns the simulation config.
func (s *Session) Config() *simulation.Config { return s.config }

// Ledger returns the shared research ledger.
func (s *Session) Ledger() *research.Ledger { return s.ledger }

// Areas returns the pond spatial index.
func (s *Session) Areas() *pond.Areas { return s.areas }

// Ponds returns the ponds in scene order.
func (s *Session) Ponds() []*Pond { return s.ponds }

// Pond returns the pond registered under locationID.
func (s *Session) Pond(locationID string) (*Pond, bool) {
	p, ok := s.byID[locationID]
	return p, ok
}

// Player returns the player state.
func (s *Session) Player() Player { return s.player }

// Display returns the HUD.
func (s *Session) Display() *hud.Display { return s.display }

// cueListener turns ledger and pond events into sound cues.
type cueListener struct {
	sound *audio.SoundManager
}

func (c cueListener) ChargesChanged(int, int) {}

func (c cueListener) LocationLimitReached(string) {}

func (c cueListener) CastAccepted(string, geom.Point) { c.sound.Play(audio.CueThrow) }

func (c cueListener) CastRejected(pond.Rejection) { c.sound.Play(audio.CueBuzz) }

func (c cueListener) ProbeLanded(string, geom.Point) { c.sound.Play(audio.CueSplash) }

func (c cueListener) ProbeRemoved(string) { c.sound.Play(audio.CueFade) }
