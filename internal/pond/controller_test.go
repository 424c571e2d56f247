package pond_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/locator"
	"chosenoffset.com/stillwater/internal/pond"
	"chosenoffset.com/stillwater/internal/pond/mocks"
	"chosenoffset.com/stillwater/internal/research"
)

const frame = time.Second / 60

func testConfig() pond.Config {
	params := locator.DefaultParams()
	params.Curve = locator.Linear
	return pond.Config{
		LocationID:  "Pond_Main",
		MinDistance: 2,
		MaxDistance: 10,
		Probe:       params,
	}
}

func newController(t *testing.T, ledger pond.ChargeLedger, areas pond.AreaQuery) *pond.Controller {
	t.Helper()
	c, err := pond.NewController(testConfig(), ledger, areas)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func castTo(x, y float64) pond.Request {
	return pond.Request{LocationID: "Pond_Main", Target: geom.Pt(x, y), Requester: geom.Pt(0, 0)}
}

func onWater(ctrl *gomock.Controller) *mocks.MockAreaQuery {
	areas := mocks.NewMockAreaQuery(ctrl)
	areas.EXPECT().Contains(gomock.Any(), "Pond_Main").Return(true).AnyTimes()
	return areas
}

func TestNewControllerRequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(5, 5, nil)

	if _, err := pond.NewController(testConfig(), nil, mocks.NewMockAreaQuery(ctrl)); err == nil {
		t.Error("Expected error without a ledger")
	}
	if _, err := pond.NewController(testConfig(), ledger, nil); err == nil {
		t.Error("Expected error without an area query")
	}

	var noLedger *research.Ledger
	if _, err := pond.NewController(testConfig(), noLedger, mocks.NewMockAreaQuery(ctrl)); err == nil {
		t.Error("Expected error for a nil *research.Ledger")
	}
	var noAreas *pond.Areas
	if _, err := pond.NewController(testConfig(), ledger, noAreas); err == nil {
		t.Error("Expected error for a nil *pond.Areas")
	}

	cfg := testConfig()
	cfg.MinDistance = 20
	if _, err := pond.NewController(cfg, ledger, mocks.NewMockAreaQuery(ctrl)); err == nil {
		t.Error("Expected error when min distance exceeds max distance")
	}
}

func TestTooCloseLeavesChargesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(5, 5, map[string]int{"Pond_Main": 3})
	c := newController(t, ledger, onWater(ctrl))

	lis := mocks.NewMockListener(ctrl)
	lis.EXPECT().CastRejected(gomock.Any()).Do(func(r pond.Rejection) {
		if r.Kind != pond.KindValidation || !errors.Is(r.Err, pond.ErrTooClose) {
			t.Errorf("Expected validation/too close, got %s/%v", r.Kind, r.Err)
		}
		if r.Distance != 1 {
			t.Errorf("Expected distance 1, got %f", r.Distance)
		}
	})
	c.Subscribe(lis)

	if got := c.RequestCast(castTo(1, 0)); got != pond.RejectedOutOfRange {
		t.Fatalf("Expected %s, got %s", pond.RejectedOutOfRange, got)
	}
	if ledger.Charges() != 5 {
		t.Errorf("Expected charges unchanged at 5, got %d", ledger.Charges())
	}
	if c.HasActiveProbe() {
		t.Error("Rejected cast must not create a probe")
	}
}

func TestTooFarIsOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockChargeLedger(ctrl)
	c := newController(t, ledger, onWater(ctrl))

	if got := c.RequestCast(castTo(12, 0)); got != pond.RejectedOutOfRange {
		t.Errorf("Expected %s, got %s", pond.RejectedOutOfRange, got)
	}
}

func TestContainmentCheckedBeforeDistanceAndLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	areas := mocks.NewMockAreaQuery(ctrl)
	areas.EXPECT().Contains(geom.Pt(1, 0), "Pond_Main").Return(false)
	// No ledger expectations: any ledger call fails the test.
	ledger := mocks.NewMockChargeLedger(ctrl)
	c := newController(t, ledger, areas)

	if got := c.RequestCast(castTo(1, 0)); got != pond.RejectedNotOnTarget {
		t.Errorf("Expected %s for a target off the water, got %s", pond.RejectedNotOnTarget, got)
	}
}

func TestLedgerRejectionsAreNoCharge(t *testing.T) {
	tests := []struct {
		name   string
		limits map[string]int
		charge int
		kind   pond.Kind
		err    error
	}{
		{"no charges", map[string]int{"Pond_Main": 3}, 0, pond.KindExhausted, research.ErrNoCharges},
		{"limit reached", map[string]int{"Pond_Main": 0}, 5, pond.KindExhausted, research.ErrLocationLimit},
		{"unknown location", map[string]int{"Lake_Deep": 5}, 5, pond.KindConfiguration, research.ErrUnknownLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledger := research.NewLedger(5, tt.charge, tt.limits)
			c := newController(t, ledger, onWater(ctrl))

			var got pond.Rejection
			lis := mocks.NewMockListener(ctrl)
			lis.EXPECT().CastRejected(gomock.Any()).Do(func(r pond.Rejection) { got = r })
			c.Subscribe(lis)

			if outcome := c.RequestCast(castTo(5, 0)); outcome != pond.RejectedNoCharge {
				t.Fatalf("Expected %s, got %s", pond.RejectedNoCharge, outcome)
			}
			if got.Kind != tt.kind || !errors.Is(got.Err, tt.err) {
				t.Errorf("Expected %s/%v, got %s/%v", tt.kind, tt.err, got.Kind, got.Err)
			}
			if ledger.Charges() != tt.charge {
				t.Errorf("Expected charges unchanged at %d, got %d", tt.charge, ledger.Charges())
			}
		})
	}
}

func TestAcceptedCastLifecycleEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(5, 5, map[string]int{"Pond_Main": 3})
	c := newController(t, ledger, onWater(ctrl))

	lis := mocks.NewMockListener(ctrl)
	gomock.InOrder(
		lis.EXPECT().CastAccepted("Pond_Main", geom.Pt(5, 0)),
		lis.EXPECT().ProbeLanded("Pond_Main", geom.Pt(5, 0)),
		lis.EXPECT().ProbeRemoved("Pond_Main"),
	)
	c.Subscribe(lis)

	if got := c.RequestCast(castTo(5, 0)); got != pond.Accepted {
		t.Fatalf("Expected accepted, got %s", got)
	}
	if ledger.Charges() != 4 || ledger.LocationCasts("Pond_Main") != 1 {
		t.Errorf("Expected one charge consumed, got charges=%d used=%d",
			ledger.Charges(), ledger.LocationCasts("Pond_Main"))
	}
	if !c.HasActiveProbe() || c.IsScanning() {
		t.Fatal("Expected a probe in flight")
	}

	c.Tick(750 * time.Millisecond)
	pos, ok := c.ActiveProbePosition()
	if !ok || pos != geom.Pt(2.5, 2) {
		t.Errorf("Expected mid-arc position (2.5, 2), got %+v (ok=%v)", pos, ok)
	}

	c.Tick(750 * time.Millisecond)
	if !c.IsScanning() {
		t.Fatal("Expected probe to be scanning after landing")
	}

	c.ForceRemove()
	c.ForceRemove()
	if c.HasActiveProbe() {
		t.Error("Expected no active probe after ForceRemove")
	}
	if _, ok := c.ActiveProbePosition(); ok {
		t.Error("Expected no active position after ForceRemove")
	}
	if len(c.Probes()) != 1 {
		t.Fatalf("Expected the fading probe to stay drawable, got %d", len(c.Probes()))
	}

	c.Tick(time.Second)
	c.Tick(time.Second)
	if len(c.Probes()) != 0 {
		t.Errorf("Expected faded probe to be dropped, got %d", len(c.Probes()))
	}
}

func TestSecondCastRetiresFirstProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(5, 5, map[string]int{"Pond_Main": 3})
	c := newController(t, ledger, onWater(ctrl))

	c.RequestCast(castTo(3, 0))
	first := c.Probes()[0]
	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}

	if got := c.RequestCast(castTo(6, 0)); got != pond.Accepted {
		t.Fatalf("Expected second cast accepted, got %s", got)
	}
	if first.State() != locator.StateFadingOut {
		t.Errorf("Expected first probe fading, got %s", first.State())
	}
	probes := c.Probes()
	if len(probes) != 2 || probes[0] != first {
		t.Fatalf("Expected [first, second], got %d probes", len(probes))
	}
	if c.LiveProbes() != 1 {
		t.Errorf("Expected one live probe, got %d", c.LiveProbes())
	}

	for i := 0; i < 120; i++ {
		c.Tick(frame)
		if c.LiveProbes() > 1 {
			t.Fatalf("tick %d: %d live probes", i, c.LiveProbes())
		}
	}
	if first.State() != locator.StateRemoved {
		t.Errorf("Expected first probe removed, got %s", first.State())
	}
	if len(c.Probes()) != 1 {
		t.Errorf("Expected only the second probe left, got %d", len(c.Probes()))
	}
}

// recastOnRemoval casts once from inside the first ProbeRemoved callback.
type recastOnRemoval struct {
	c       *pond.Controller
	target  pond.Request
	recast  pond.Outcome
	removed int
}

func (r *recastOnRemoval) CastAccepted(string, geom.Point) {}
func (r *recastOnRemoval) CastRejected(pond.Rejection)     {}
func (r *recastOnRemoval) ProbeLanded(string, geom.Point)  {}

func (r *recastOnRemoval) ProbeRemoved(string) {
	r.removed++
	if r.removed == 1 {
		r.recast = r.c.RequestCast(r.target)
	}
}

func TestCastFromRemovalCallbackKeepsRetiredProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(5, 5, map[string]int{"Pond_Main": 3})
	c := newController(t, ledger, onWater(ctrl))

	rec := &recastOnRemoval{c: c, target: castTo(5, 0)}
	c.Subscribe(rec)

	c.RequestCast(castTo(3, 0))
	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}
	c.RequestCast(castTo(6, 0))
	second := c.Probes()[1]

	// The first probe finishes fading inside this window and the callback
	// retires the second one mid-Tick.
	for i := 0; i < 40; i++ {
		c.Tick(frame)
	}
	if rec.recast != pond.Accepted {
		t.Fatalf("Expected cast from the callback accepted, got %s", rec.recast)
	}
	if second.State() != locator.StateFadingOut {
		t.Errorf("Expected second probe fading, got %s", second.State())
	}
	probes := c.Probes()
	if len(probes) != 2 || probes[0] != second {
		t.Fatalf("Expected [second, third], got %d probes", len(probes))
	}
	if c.LiveProbes() != 1 {
		t.Errorf("Expected one live probe, got %d", c.LiveProbes())
	}

	for i := 0; i < 60; i++ {
		c.Tick(frame)
	}
	if second.State() != locator.StateRemoved {
		t.Errorf("Expected second probe removed, got %s", second.State())
	}
	if rec.removed != 2 {
		t.Errorf("Expected two removal notices, got %d", rec.removed)
	}
	if len(c.Probes()) != 1 {
		t.Errorf("Expected only the third probe left, got %d", len(c.Probes()))
	}
}

func TestFailedConsumeKeepsCurrentProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockChargeLedger(ctrl)
	ledger.EXPECT().Check("Pond_Main").Return(nil).Times(2)
	gomock.InOrder(
		ledger.EXPECT().TryConsume("Pond_Main").Return(true),
		ledger.EXPECT().TryConsume("Pond_Main").Return(false),
	)
	c := newController(t, ledger, onWater(ctrl))

	c.RequestCast(castTo(4, 0))
	if got := c.RequestCast(castTo(5, 0)); got != pond.RejectedNoCharge {
		t.Fatalf("Expected %s, got %s", pond.RejectedNoCharge, got)
	}
	if !c.HasActiveProbe() {
		t.Error("A failed cast must not remove the probe already thrown")
	}
	if c.Probes()[0].Target() != geom.Pt(4, 0) {
		t.Errorf("Expected original probe target, got %+v", c.Probes()[0].Target())
	}
}

func TestDisabledInteractionShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	areas := mocks.NewMockAreaQuery(ctrl)
	ledger := mocks.NewMockChargeLedger(ctrl)
	c := newController(t, ledger, areas)
	c.SetInteractionEnabled(false)

	var got pond.Rejection
	lis := mocks.NewMockListener(ctrl)
	lis.EXPECT().CastRejected(gomock.Any()).Do(func(r pond.Rejection) { got = r })
	c.Subscribe(lis)

	if outcome := c.RequestCast(castTo(5, 0)); outcome != pond.RejectedNotOnTarget {
		t.Fatalf("Expected %s, got %s", pond.RejectedNotOnTarget, outcome)
	}
	if got.Kind != pond.KindConfiguration || !errors.Is(got.Err, pond.ErrInteractionDisabled) {
		t.Errorf("Expected configuration/disabled, got %s/%v", got.Kind, got.Err)
	}
}

func TestSharedLedgerAcrossPonds(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := research.NewLedger(2, 2, map[string]int{"Pond_Main": 3, "Pond_Forest": 2})

	areas := mocks.NewMockAreaQuery(ctrl)
	areas.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	mainPond := newController(t, ledger, areas)
	forestCfg := testConfig()
	forestCfg.LocationID = "Pond_Forest"
	forest, err := pond.NewController(forestCfg, ledger, areas)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	mainPond.RequestCast(castTo(3, 0))
	forest.RequestCast(pond.Request{LocationID: "Pond_Forest", Target: geom.Pt(3, 0)})
	if got := mainPond.RequestCast(castTo(4, 0)); got != pond.RejectedNoCharge {
		t.Errorf("Expected shared pool to be empty, got %s", got)
	}
	if !mainPond.HasActiveProbe() || !forest.HasActiveProbe() {
		t.Error("Each pond keeps its own probe")
	}
}

func TestRealAreasRouteContainment(t *testing.T) {
	areas := pond.NewAreas(40, 30, 4)
	if err := areas.Add("Pond_Main", pond.CircleShape{Center: geom.Pt(10, 10), Radius: 3}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ledger := research.NewLedger(5, 5, map[string]int{"Pond_Main": 3})
	c := newController(t, ledger, areas)

	req := pond.Request{LocationID: "Pond_Main", Requester: geom.Pt(4, 10)}

	req.Target = geom.Pt(10, 14)
	if got := c.RequestCast(req); got != pond.RejectedNotOnTarget {
		t.Errorf("Expected off-water target rejected, got %s", got)
	}

	req.Target = geom.Pt(9, 11)
	if got := c.RequestCast(req); got != pond.Accepted {
		t.Errorf("Expected on-water target accepted, got %s", got)
	}
}
