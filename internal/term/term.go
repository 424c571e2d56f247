// Package term is a character-cell front-end for a game session. The scene
// fills the screen above a few HUD rows; mouse clicks cast and the keys match
// the windowed build.
package term

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/game"
	"chosenoffset.com/stillwater/internal/i18n"
	"chosenoffset.com/stillwater/internal/locator"
	"chosenoffset.com/stillwater/internal/placeholders"
)

const (
	hudRows   = 3
	frameTime = time.Second / game.TickRate

	// moveStep is how far one key press moves the player, in seconds of
	// walking.
	moveStep = 0.25
)

var (
	styleGrass    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWater    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleScanning = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	styleRing     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleProbe    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFading   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleUsed     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNotice   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// App runs a session on a tcell screen.
type App struct {
	screen        tcell.Screen
	session       *game.Session
	width, height int
	buttons       tcell.ButtonMask
}

// New wraps an initialised screen.
func New(screen tcell.Screen, session *game.Session) *App {
	screen.EnableMouse()
	a := &App{screen: screen, session: session}
	a.width, a.height = screen.Size()
	return a
}

// Run polls input on its own goroutine and ticks the session at a fixed
// rate until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.pollEvents(events, quit)

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.session.Tick(now.Sub(last))
			last = now
			a.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or quit
// is closed. events is closed only when the screen stops delivering.
func (a *App) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the player
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.Command('w')
		case tcell.KeyDown:
			a.Command('s')
		case tcell.KeyLeft:
			a.Command('a')
		case tcell.KeyRight:
			a.Command('d')
		case tcell.KeyRune:
			a.Command(ev.Rune())
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := a.buttons&tcell.Button1 != 0
		a.buttons = ev.Buttons()
		if pressed && !wasPressed {
			x, y := ev.Position()
			a.Click(x, y)
		}
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

// Command runs the action bound to key r. Unbound keys are ignored.
func (a *App) Command(r rune) {
	step := a.session.Player().Speed * moveStep
	switch r {
	case 'w', 'W':
		a.session.MovePlayer(0, step)
	case 's', 'S':
		a.session.MovePlayer(0, -step)
	case 'a', 'A':
		a.session.MovePlayer(-step, 0)
	case 'd', 'D':
		a.session.MovePlayer(step, 0)
	case 'c', 'C':
		a.session.AddResearchCharges(1)
	case 'r', 'R':
		a.session.ResetDailyLimits()
	case 'x', 'X':
		a.session.RemoveAllLocators()
	case 'i', 'I':
		a.session.ShowLocationInfo("")
	}
}

// Click casts at the scene cell (x, y). Clicks on the HUD rows do nothing.
func (a *App) Click(x, y int) {
	if y >= a.mapRows() || x < 0 || y < 0 || x >= a.width {
		return
	}
	target := a.CellToWorld(x, y)
	log.Printf("Click at cell (%d, %d) -> (%.2f, %.2f)", x, y, target.X, target.Y)
	a.session.CastAt(target)
}

func (a *App) mapRows() int {
	return max(a.height-hudRows, 1)
}

// cellSize returns the world size of one cell.
func (a *App) cellSize() (w, h float64) {
	scene := a.session.Scene()
	return scene.Width / float64(max(a.width, 1)), scene.Height / float64(a.mapRows())
}

// CellToWorld returns the world point at the center of a scene cell.
func (a *App) CellToWorld(x, y int) geom.Point {
	cw, ch := a.cellSize()
	return geom.Pt((float64(x)+0.5)*cw, a.session.Scene().Height-(float64(y)+0.5)*ch)
}

// WorldToCell returns the cell containing p.
func (a *App) WorldToCell(p geom.Point) (x, y int) {
	cw, ch := a.cellSize()
	x = int(p.X / cw)
	y = int((a.session.Scene().Height - p.Y) / ch)
	return min(max(x, 0), a.width-1), min(max(y, 0), a.mapRows()-1)
}

// Draw renders the scene and HUD.
func (a *App) Draw() {
	a.screen.Clear()
	a.drawScene()
	a.drawProbes()
	a.drawHUD()
	a.screen.Show()
}

func (a *App) drawScene() {
	areas := a.session.Areas()
	player := a.session.Player().Pos
	cast := a.session.Config().Cast
	cw, ch := a.cellSize()
	tolerance := max(cw, ch) / 2

	for y := 0; y < a.mapRows(); y++ {
		for x := 0; x < a.width; x++ {
			p := a.CellToWorld(x, y)
			r, style := '.', styleGrass

			if loc, ok := areas.Locate(p); ok {
				r, style = '~', styleWater
				if pd, ok := a.session.Pond(loc); ok {
					switch {
					case !pd.Controller.InteractionEnabled():
						style = styleDisabled
					case pd.Controller.IsScanning():
						style = styleScanning
					}
				}
			}

			d := geom.Distance(player, p)
			if math.Abs(d-cast.MaxDistance) < tolerance || (cast.MinDistance > 0 && math.Abs(d-cast.MinDistance) < tolerance) {
				style = styleRing
				if r == '.' {
					r = ':'
				}
			}
			a.screen.SetContent(x, y, r, nil, style)
		}
	}

	px, py := a.WorldToCell(player)
	a.screen.SetContent(px, py, '@', nil, stylePlayer)
}

func (a *App) drawProbes() {
	for _, p := range a.session.Ponds() {
		for _, probe := range p.Controller.Probes() {
			x, y := a.WorldToCell(probe.Position())
			switch probe.State() {
			case locator.StateThrown:
				a.screen.SetContent(x, y, '*', nil, styleProbe)
			case locator.StateIdle:
				a.screen.SetContent(x, y, 'o', nil, styleProbe)
			case locator.StateFadingOut:
				a.screen.SetContent(x, y, 'o', nil, styleFading)
			}
		}
	}
}

func (a *App) drawHUD() {
	display := a.session.Display()
	row := a.mapRows()

	col := a.drawText(0, row, display.ChargeText(), styleText) + 1
	for i, clr := range display.IconColors() {
		style := styleText
		if clr == placeholders.ColorPalette.ChargeUsed {
			style = styleUsed
		}
		a.screen.SetContent(col+i, row, '●', nil, style)
	}

	col = 0
	for _, loc := range display.Scanning() {
		col = a.drawText(col, row+1, display.Translator().T(i18n.Scanning, loc), styleScanning) + 2
	}
	if msg, ok := display.Notification(); ok {
		a.drawText(col, row+1, msg, styleNotice)
	}

	a.drawText(0, row+2, display.Translator().T(i18n.ControlsHint), styleUsed)
}

// drawText writes s from column x and returns the column after it.
func (a *App) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= a.width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
