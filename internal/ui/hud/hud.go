// Package hud shows the research charges, the scanning state of each pond
// and short-lived notifications.
package hud

import (
	"errors"
	"image/color"
	"sort"
	"time"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/i18n"
	"chosenoffset.com/stillwater/internal/placeholders"
	"chosenoffset.com/stillwater/internal/pond"
	"chosenoffset.com/stillwater/internal/render"
	"chosenoffset.com/stillwater/internal/research"
)

// Config defines how the HUD looks and behaves
type Config struct {
	NotificationDuration time.Duration
	ShowControls         bool
	Opacity              float64 // panel background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() Config {
	return Config{
		NotificationDuration: 3 * time.Second,
		ShowControls:         true,
		Opacity:              0.7,
	}
}

// Display is the charge and notification HUD. It listens to the ledger and
// to every pond controller. It is driven from the update loop and is not
// safe for concurrent use.
type Display struct {
	config Config
	tr     *i18n.Translator

	charges    int
	maxCharges int

	notification string
	remaining    time.Duration

	scanning map[string]bool

	panelWidth int
}

var (
	_ research.Listener = (*Display)(nil)
	_ pond.Listener     = (*Display)(nil)
)

// New creates a HUD with the given configuration
func New(config Config, tr *i18n.Translator) *Display {
	if config.NotificationDuration <= 0 {
		config.NotificationDuration = DefaultConfig().NotificationDuration
	}
	return &Display{
		config:     config,
		tr:         tr,
		scanning:   make(map[string]bool),
		panelWidth: 190,
	}
}

// SetCharges sets the displayed totals without a ledger event, e.g. at
// startup.
func (d *Display) SetCharges(total, max int) {
	d.charges = total
	d.maxCharges = max
}

// ChargesChanged implements research.Listener.
func (d *Display) ChargesChanged(total, max int) {
	d.SetCharges(total, max)
}

// LocationLimitReached implements research.Listener.
func (d *Display) LocationLimitReached(locationID string) {
	d.Notify(d.tr.T(i18n.LimitReached, locationID))
}

// CastAccepted implements pond.Listener.
func (d *Display) CastAccepted(locationID string, _ geom.Point) {
	delete(d.scanning, locationID)
}

// CastRejected implements pond.Listener.
func (d *Display) CastRejected(r pond.Rejection) {
	switch {
	case errors.Is(r.Err, research.ErrLocationLimit):
		// Already reported through LocationLimitReached.
	case errors.Is(r.Err, research.ErrNoCharges):
		d.Notify(d.tr.T(i18n.NoCharges))
	case errors.Is(r.Err, research.ErrUnknownLocation):
		d.Notify(d.tr.T(i18n.UnknownLocation, r.LocationID))
	case errors.Is(r.Err, pond.ErrTooFar):
		d.Notify(d.tr.T(i18n.TooFar, r.Distance))
	case errors.Is(r.Err, pond.ErrTooClose):
		d.Notify(d.tr.T(i18n.TooClose, r.Distance))
	case errors.Is(r.Err, pond.ErrInteractionDisabled):
		d.Notify(d.tr.T(i18n.Disabled))
	default:
		d.Notify(d.tr.T(i18n.NotOnPond))
	}
}

// ProbeLanded implements pond.Listener.
func (d *Display) ProbeLanded(locationID string, _ geom.Point) {
	d.scanning[locationID] = true
}

// ProbeRemoved implements pond.Listener.
func (d *Display) ProbeRemoved(locationID string) {
	delete(d.scanning, locationID)
}

// Notify shows msg, replacing whatever notification is up.
func (d *Display) Notify(msg string) {
	d.notification = msg
	d.remaining = d.config.NotificationDuration
}

// ShowLocationInfo shows the casts used at a location.
func (d *Display) ShowLocationInfo(locationID string, used, limit int) {
	d.Notify(d.tr.T(i18n.LocationInfo, locationID, used, limit))
}

// Tick counts down the current notification.
func (d *Display) Tick(dt time.Duration) {
	if d.remaining <= 0 {
		return
	}
	d.remaining -= dt
	if d.remaining <= 0 {
		d.remaining = 0
		d.notification = ""
	}
}

// Notification returns the message on screen, if any.
func (d *Display) Notification() (string, bool) {
	return d.notification, d.remaining > 0
}

// ChargeText returns the localised "n/max" line.
func (d *Display) ChargeText() string {
	return d.tr.T(i18n.Charges, d.charges, d.maxCharges)
}

// BarRatio returns the charge bar fill in [0, 1].
func (d *Display) BarRatio() float64 {
	if d.maxCharges <= 0 {
		return 0
	}
	return float64(d.charges) / float64(d.maxCharges)
}

// IconColors returns one color per charge slot: available slots first,
// then used ones.
func (d *Display) IconColors() []color.RGBA {
	icons := make([]color.RGBA, d.maxCharges)
	for i := range icons {
		if i < d.charges {
			icons[i] = placeholders.ColorPalette.ChargeAvailable
		} else {
			icons[i] = placeholders.ColorPalette.ChargeUsed
		}
	}
	return icons
}

// Scanning returns the locations with a landed probe, sorted.
func (d *Display) Scanning() []string {
	locs := make([]string, 0, len(d.scanning))
	for loc := range d.scanning {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// Translator returns the translator used for HUD text.
func (d *Display) Translator() *i18n.Translator { return d.tr }

// Draw renders the HUD to the screen
func (d *Display) Draw(screen render.Image, r render.Renderer) {
	width, height := screen.Size()

	d.drawChargePanel(screen, r, 8, 8)

	// Scanning list, top right
	y := 12
	for _, loc := range d.Scanning() {
		line := d.tr.T(i18n.Scanning, loc)
		w, _ := r.MeasureText(line, 1)
		r.DrawText(screen, line, width-w-12, y, placeholders.ColorPalette.Warning, 1)
		y += 16
	}

	if msg, ok := d.Notification(); ok {
		d.drawNotification(screen, r, msg, width, height)
	}

	if d.config.ShowControls {
		r.DrawText(screen, d.tr.T(i18n.ControlsHint), 8, height-18, placeholders.ColorPalette.Border, 1)
	}
}

func (d *Display) panelColor() color.RGBA {
	return placeholders.WithAlpha(color.RGBA{20, 20, 30, 255}, uint8(d.config.Opacity*255))
}

// drawChargePanel draws the charge text, bar and icons
func (d *Display) drawChargePanel(screen render.Image, r render.Renderer, x, y int) {
	const (
		padding   = 8
		barHeight = 10
		iconSize  = 12
	)
	height := padding + 16 + barHeight + 6 + iconSize + padding

	r.FillRect(screen, float32(x), float32(y), float32(d.panelWidth), float32(height), d.panelColor())
	r.StrokeRect(screen, float32(x), float32(y), float32(d.panelWidth), float32(height), 1, color.RGBA{60, 60, 80, 255})

	cy := y + padding
	r.DrawText(screen, d.ChargeText(), x+padding, cy, placeholders.ColorPalette.Text, 1)
	cy += 16

	barWidth := d.panelWidth - 2*padding
	r.FillRect(screen, float32(x+padding), float32(cy), float32(barWidth), barHeight, color.RGBA{40, 40, 60, 255})
	if fill := float32(float64(barWidth) * d.BarRatio()); fill > 0 {
		r.FillRect(screen, float32(x+padding), float32(cy), fill, barHeight, color.RGBA{80, 160, 220, 255})
	}
	cy += barHeight + 6

	for i, clr := range d.IconColors() {
		cx := float32(x + padding + i*(iconSize+4) + iconSize/2)
		r.FillCircle(screen, cx, float32(cy+iconSize/2), iconSize/2, clr)
	}
}

// drawNotification draws the notification panel centered near the bottom
func (d *Display) drawNotification(screen render.Image, r render.Renderer, msg string, width, height int) {
	w, h := r.MeasureText(msg, 1)
	panelW, panelH := w+24, h+16
	x := (width - panelW) / 2
	y := height - panelH - 40

	r.FillRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), d.panelColor())
	r.StrokeRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), 1, placeholders.ColorPalette.Warning)
	r.DrawText(screen, msg, x+12, y+8, placeholders.ColorPalette.Text, 1)
}
