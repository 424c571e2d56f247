package locator

import (
	"math"
	"testing"
	"time"

	"chosenoffset.com/stillwater/internal/core/geom"
)

const epsilon = 1e-9

func linearParams() Params {
	params := DefaultParams()
	params.Curve = Linear
	return params
}

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestThrowArcMidpointAndLanding(t *testing.T) {
	p := New(linearParams())
	landed := 0
	p.OnLanded = func(*Probe) { landed++ }

	p.ThrowTo(geom.Pt(0, 0), geom.Pt(5, 0))
	if p.State() != StateThrown {
		t.Fatalf("Expected thrown, got %s", p.State())
	}

	p.Tick(750 * time.Millisecond)
	if !near(p.Position(), geom.Pt(2.5, 2.0)) {
		t.Errorf("Expected (2.5, 2.0) at half progress, got %+v", p.Position())
	}
	if landed != 0 {
		t.Error("Probe must not land mid-throw")
	}

	p.Tick(750 * time.Millisecond)
	if p.Position() != geom.Pt(5, 0) {
		t.Errorf("Expected exact target (5, 0), got %+v", p.Position())
	}
	if p.State() != StateIdle {
		t.Errorf("Expected idle after landing, got %s", p.State())
	}
	if landed != 1 {
		t.Errorf("Expected one landing, got %d", landed)
	}
}

func TestThrowWithFrameTicks(t *testing.T) {
	p := New(DefaultParams())
	p.ThrowTo(geom.Pt(1, 1), geom.Pt(8, -2))

	frame := time.Second / 60
	ticks := 0
	for p.IsThrowing() {
		p.Tick(frame)
		ticks++
		if ticks > 200 {
			t.Fatal("Throw never completed")
		}
	}

	if ticks != 91 {
		t.Errorf("Expected landing on tick 91, got %d", ticks)
	}
	if p.Position() != geom.Pt(8, -2) {
		t.Errorf("Expected exact target, got %+v", p.Position())
	}
}

func TestEaseInOutArc(t *testing.T) {
	p := New(DefaultParams())
	p.ThrowTo(geom.Pt(0, 0), geom.Pt(4, 0))

	p.Tick(375 * time.Millisecond) // progress 0.25
	wantX := 4 * EaseInOut(0.25)
	wantY := 2 * math.Sin(0.25*math.Pi)
	if !near(p.Position(), geom.Pt(wantX, wantY)) {
		t.Errorf("Expected (%f, %f), got %+v", wantX, wantY, p.Position())
	}
}

func TestIdleBobsAroundLandingPoint(t *testing.T) {
	params := linearParams()
	params.BobAmplitude = 0.5
	params.BobFrequency = math.Pi
	p := New(params)
	p.ThrowTo(geom.Pt(0, 0), geom.Pt(3, 1))
	p.Tick(params.ThrowDuration)

	p.Tick(500 * time.Millisecond) // sin(pi/2) = 1
	if !near(p.Position(), geom.Pt(3, 1.5)) {
		t.Errorf("Expected crest at (3, 1.5), got %+v", p.Position())
	}

	p.Tick(time.Second) // sin(3pi/2) = -1
	if !near(p.Position(), geom.Pt(3, 0.5)) {
		t.Errorf("Expected trough at (3, 0.5), got %+v", p.Position())
	}
	if !p.IsIdle() {
		t.Error("Idle has no terminal condition of its own")
	}
}

func TestRemoveFadesThenNotifiesOnce(t *testing.T) {
	p := New(linearParams())
	removed := 0
	p.OnRemoved = func(*Probe) { removed++ }

	p.ThrowTo(geom.Pt(0, 0), geom.Pt(5, 0))
	p.Tick(2 * time.Second)

	p.Remove()
	p.Remove()
	if p.State() != StateFadingOut {
		t.Fatalf("Expected fading out, got %s", p.State())
	}

	p.Tick(250 * time.Millisecond)
	if math.Abs(p.Alpha()-0.5) > epsilon {
		t.Errorf("Expected alpha 0.5 halfway through fade, got %f", p.Alpha())
	}
	p.Remove()

	p.Tick(250 * time.Millisecond)
	if p.State() != StateRemoved {
		t.Fatalf("Expected removed, got %s", p.State())
	}
	if p.Alpha() != 0 {
		t.Errorf("Expected alpha 0, got %f", p.Alpha())
	}

	p.Remove()
	p.Tick(time.Second)
	if removed != 1 {
		t.Errorf("Expected exactly one removed notification, got %d", removed)
	}
}

func TestRemoveMidThrowPreemptsLanding(t *testing.T) {
	p := New(linearParams())
	landed := false
	p.OnLanded = func(*Probe) { landed = true }

	p.ThrowTo(geom.Pt(0, 0), geom.Pt(5, 0))
	p.Tick(750 * time.Millisecond)
	at := p.Position()

	p.Remove()
	if p.State() != StateFadingOut {
		t.Fatalf("Expected immediate fade, got %s", p.State())
	}

	p.Tick(time.Second)
	if landed {
		t.Error("A removed probe must never land")
	}
	if p.Position() != at {
		t.Errorf("Expected probe to fade where it was, got %+v want %+v", p.Position(), at)
	}
}

func TestThrowToRestartsTrajectory(t *testing.T) {
	p := New(linearParams())
	p.ThrowTo(geom.Pt(0, 0), geom.Pt(5, 0))
	p.Tick(time.Second)

	p.ThrowTo(geom.Pt(10, 0), geom.Pt(20, 0))
	if p.Position() != geom.Pt(10, 0) {
		t.Errorf("Expected restart at new start, got %+v", p.Position())
	}

	p.Tick(750 * time.Millisecond)
	if !near(p.Position(), geom.Pt(15, 2)) {
		t.Errorf("Expected midpoint of new arc (15, 2), got %+v", p.Position())
	}
}

func TestThrowIgnoredOnceFading(t *testing.T) {
	p := New(linearParams())
	p.ThrowTo(geom.Pt(0, 0), geom.Pt(5, 0))
	p.Remove()

	p.ThrowTo(geom.Pt(1, 1), geom.Pt(2, 2))
	if p.State() != StateFadingOut {
		t.Errorf("Expected fading probe to stay fading, got %s", p.State())
	}
}

func TestTickUnthrownProbePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when ticking a probe that was never thrown")
		}
	}()
	New(DefaultParams()).Tick(time.Millisecond)
}

func TestRemoveUnthrownProbe(t *testing.T) {
	p := New(DefaultParams())
	notified := false
	p.OnRemoved = func(*Probe) { notified = true }

	p.Remove()
	if p.State() != StateRemoved {
		t.Errorf("Expected removed, got %s", p.State())
	}
	p.Tick(time.Second)
	if notified {
		t.Error("A probe that never appeared must not report removal")
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range CurveNames() {
		c, err := CurveByName(name)
		if err != nil {
			t.Fatalf("CurveByName(%q): %v", name, err)
		}
		if c(0) != 0 || c(1) != 1 {
			t.Errorf("%s: expected curve to map 0->0 and 1->1, got %f, %f", name, c(0), c(1))
		}
	}

	if _, err := CurveByName("bounce"); err == nil {
		t.Error("Expected error for unknown curve")
	}
}
