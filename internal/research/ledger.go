// Package research tracks research charges: a global pool of consumable
// charges shared by every pond, plus a per-location cast counter bounded by
// a per-location limit.
package research

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"chosenoffset.com/stillwater/internal/core/notify"
)

// Listener receives ledger notifications. Calls are made after the ledger
// lock is released, so a listener may query the ledger.
type Listener interface {
	// ChargesChanged reports the new total after every consume or Add.
	ChargesChanged(total, max int)
	// LocationLimitReached reports a cast attempt at an exhausted location.
	LocationLimitReached(locationID string)
}

// Ledger holds the charge pool and per-location counters.
type Ledger struct {
	mu sync.Mutex

	maxCharges int
	charges    int

	limits map[string]int
	used   map[string]int

	listeners notify.List[Listener]
}

// NewLedger creates a ledger with the given capacity, starting charges and
// per-location limits. initial is clamped to [0, maxCharges].
func NewLedger(maxCharges, initial int, limits map[string]int) *Ledger {
	if maxCharges < 0 {
		maxCharges = 0
	}
	l := &Ledger{
		maxCharges: maxCharges,
		charges:    clamp(initial, 0, maxCharges),
		limits:     make(map[string]int, len(limits)),
		used:       make(map[string]int, len(limits)),
	}
	for loc, limit := range limits {
		l.limits[loc] = max(limit, 0)
		l.used[loc] = 0
	}
	return l
}

// Subscribe registers a listener and returns its unsubscribe function.
func (l *Ledger) Subscribe(lis Listener) (unsubscribe func()) {
	return l.listeners.Subscribe(lis)
}

// SetLocationLimit registers a location or changes its limit. Lowering a
// limit below the casts already made clamps the used counter so the
// used <= limit invariant keeps holding.
func (l *Ledger) SetLocationLimit(locationID string, limit int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit = max(limit, 0)
	l.limits[locationID] = limit
	l.used[locationID] = min(l.used[locationID], limit)
}

// Check reports why a cast at locationID would fail, or nil if it would
// succeed. A limit-reached result also notifies listeners.
func (l *Ledger) Check(locationID string) error {
	l.mu.Lock()
	err := l.checkLocked(locationID)
	l.mu.Unlock()

	l.report(locationID, err)
	return err
}

// CanCast reports whether a cast at locationID is currently allowed.
func (l *Ledger) CanCast(locationID string) bool {
	return l.Check(locationID) == nil
}

// TryConsume spends one charge at locationID. The check and the update
// happen under one lock, so no other ledger call can observe or change the
// counters in between.
func (l *Ledger) TryConsume(locationID string) bool {
	l.mu.Lock()
	err := l.checkLocked(locationID)
	if err != nil {
		l.mu.Unlock()
		l.report(locationID, err)
		return false
	}

	l.charges--
	l.used[locationID]++
	total, maxCharges := l.charges, l.maxCharges
	used, limit := l.used[locationID], l.limits[locationID]
	l.mu.Unlock()

	log.Printf("Charge used. Remaining: %d/%d (%s casts: %d/%d)", total, maxCharges, locationID, used, limit)
	l.emitCharges(total, maxCharges)
	return true
}

// Add changes the charge pool by amount and clamps it to [0, MaxCharges].
// Listeners are notified even when nothing changed.
func (l *Ledger) Add(amount int) {
	l.mu.Lock()
	l.charges = clamp(l.charges+amount, 0, l.maxCharges)
	total, maxCharges := l.charges, l.maxCharges
	l.mu.Unlock()

	log.Printf("Added charges: %d. Total: %d", amount, total)
	l.emitCharges(total, maxCharges)
}

// ResetLocationLimits zeroes every per-location counter, e.g. when a new
// day starts. The charge pool is not touched.
func (l *Ledger) ResetLocationLimits() {
	l.mu.Lock()
	for loc := range l.used {
		l.used[loc] = 0
	}
	l.mu.Unlock()

	log.Printf("Location limits reset")
}

// Charges returns the current size of the charge pool.
func (l *Ledger) Charges() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.charges
}

// MaxCharges returns the pool capacity.
func (l *Ledger) MaxCharges() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxCharges
}

// LocationCasts returns the casts made at a location (0 if unknown).
func (l *Ledger) LocationCasts(locationID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used[locationID]
}

// LocationLimit returns a location's limit (0 if unknown).
func (l *Ledger) LocationLimit(locationID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.limits[locationID]
}

// HasLocation reports whether locationID is registered.
func (l *Ledger) HasLocation(locationID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.limits[locationID]
	return ok
}

// Locations returns all registered location ids, sorted.
func (l *Ledger) Locations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	locs := make([]string, 0, len(l.limits))
	for loc := range l.limits {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// Debug returns a string representation of the ledger
func (l *Ledger) Debug() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("Ledger{%d/%d charges, %d locations}", l.charges, l.maxCharges, len(l.limits))
}

func (l *Ledger) checkLocked(locationID string) error {
	if l.charges <= 0 {
		return ErrNoCharges
	}
	limit, ok := l.limits[locationID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocation, locationID)
	}
	if l.used[locationID] >= limit {
		return fmt.Errorf("%w: %s (%d/%d)", ErrLocationLimit, locationID, l.used[locationID], limit)
	}
	return nil
}

// report logs a failed check and forwards limit-reached to listeners.
func (l *Ledger) report(locationID string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrNoCharges):
		log.Printf("No research charges available")
	case errors.Is(err, ErrUnknownLocation):
		log.Printf("Warning: %v", err)
	case errors.Is(err, ErrLocationLimit):
		log.Printf("Cast limit reached for location %s", locationID)
		l.listeners.Each(func(lis Listener) { lis.LocationLimitReached(locationID) })
	}
}

func (l *Ledger) emitCharges(total, maxCharges int) {
	l.listeners.Each(func(lis Listener) { lis.ChargesChanged(total, maxCharges) })
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
