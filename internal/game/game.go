package game

import (
	"log"
	"time"

	"chosenoffset.com/stillwater/internal/render"
	"chosenoffset.com/stillwater/internal/render/sprites"
)

// TickRate is the fixed update rate.
const TickRate = 60

// tickDuration is one fixed update step.
const tickDuration = time.Second / TickRate

// Game is the windowed front-end. It turns input into session operations
// and draws the scene.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	View         View
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Sprites      *sprites.Sheet

	// Debug
	FrameCount int
}

// NewGame sizes the screen to the scene.
func NewGame(session *Session, r render.Renderer, input render.InputManager, sheet *sprites.Sheet) *Game {
	scene := session.Scene()
	view := View{PixelsPerUnit: scene.PixelsPerUnit, WorldHeight: scene.Height}
	return &Game{
		ScreenWidth:  int(view.Scale(scene.Width)),
		ScreenHeight: int(view.Scale(scene.Height)),
		Session:      session,
		View:         view,
		Renderer:     r,
		InputMgr:     input,
		Sprites:      sheet,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("Quit requested")
		return render.ErrTerminated
	}

	g.handleMovement()

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		target := g.View.ToWorld(float64(x), float64(y))
		g.Session.CastAt(target)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		g.Session.AddResearchCharges(1)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Session.ResetDailyLimits()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyX) {
		g.Session.RemoveAllLocators()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyI) {
		g.Session.ShowLocationInfo("")
	}

	g.Session.Tick(tickDuration)
	return nil
}

// handleMovement moves the player while WASD or the arrow keys are held.
func (g *Game) handleMovement() {
	var dx, dy float64
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		dy++
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		dy--
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		dx--
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		dx++
	}
	if dx == 0 && dy == 0 {
		return
	}
	step := g.Session.Player().Speed * tickDuration.Seconds()
	g.Session.MovePlayer(dx*step, dy*step)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
