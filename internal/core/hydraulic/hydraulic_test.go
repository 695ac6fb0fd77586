package hydraulic

import (
	"math"
	"testing"

	perr "driptime/internal/platform/errors"
	"driptime/internal/platform/testkit"
)

func TestEmpiricalTravelTime(t *testing.T) {
	t.Parallel()

	// 0.5 m spacing, 150 m lateral, 20.2 mm pipe, 1 L/h emitters
	tt := EmpiricalTravelTime(DefaultParams())
	testkit.CloseTo(t, tt, 56.847, 0.01)
	testkit.CloseTo(t, EmpiricalTT95(DefaultParams()), tt/2, 1e-12)
}

func TestEmpiricalScaling(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	base := EmpiricalTravelTime(p)

	// doubling the emitter flow halves the travel time
	p.EmitterFlow = 2
	testkit.CloseTo(t, EmpiricalTravelTime(p), base/2, 1e-9)
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cases := []struct {
		name  string
		mut   func(*Params)
		field string
	}{
		{"zero flow", func(p *Params) { p.EmitterFlow = 0 }, "emitter_flow"},
		{"negative spacing", func(p *Params) { p.EmitterSpacing = -0.5 }, "emitter_spacing"},
		{"nan length", func(p *Params) { p.LateralLength = math.NaN() }, "lateral_length"},
		{"inf diameter", func(p *Params) { p.InternalDiameter = math.Inf(1) }, "internal_diameter"},
		{"lateral shorter than spacing", func(p *Params) { p.LateralLength = 0.3 }, "lateral_length"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mut(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Errorf("code = %v, want invalid argument", perr.CodeOf(err))
			}
			if e, ok := perr.As(err); !ok || e.Field() != tc.field {
				t.Errorf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestOutletSegments(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	sr := OutletSegments(p)

	if got, want := len(sr.Segments), p.Outlets(); got != want {
		t.Fatalf("segments = %d, want %d", got, want)
	}

	last := sr.Segments[len(sr.Segments)-1]
	if last.Flow != 0 {
		t.Errorf("last segment flow = %v, want exactly 0", last.Flow)
	}

	// the dead-end segment inherits the previous velocity instead of stalling
	prev := sr.Segments[len(sr.Segments)-2]
	testkit.CloseTo(t, last.Velocity, prev.Velocity, 1e-15)

	for i := 1; i < len(sr.Segments); i++ {
		a, b := sr.Segments[i-1], sr.Segments[i]
		if b.Flow > a.Flow {
			t.Fatalf("flow increased at segment %d", i+1)
		}
		if b.CumTime <= a.CumTime {
			t.Fatalf("cumulative time not strictly increasing at segment %d", i+1)
		}
		if b.CumHeadLoss < a.CumHeadLoss {
			t.Fatalf("cumulative head loss decreased at segment %d", i+1)
		}
	}

	// the reconciled total matches the regression
	testkit.CloseToRel(t, sr.TravelTime, EmpiricalTravelTime(p), 1e-9)
	if sr.TT95 > sr.TravelTime {
		t.Errorf("TT95 %v exceeds full travel time %v", sr.TT95, sr.TravelTime)
	}
	if sr.TT95 <= 0 {
		t.Errorf("TT95 = %v, want positive", sr.TT95)
	}
}

func TestOutletSegmentsVelocityFill(t *testing.T) {
	t.Parallel()

	// 10 outlets: the last segment carries no flow and inherits the
	// velocity of segment 9 rather than going to zero or NaN
	p := Params{EmitterFlow: 1, EmitterSpacing: 1, LateralLength: 10, InternalDiameter: 20.2}
	sr := OutletSegments(p)

	if len(sr.Segments) != 10 {
		t.Fatalf("segments = %d, want 10", len(sr.Segments))
	}
	last, prev := sr.Segments[9], sr.Segments[8]
	if last.Flow != 0 {
		t.Fatalf("last flow = %v, want 0", last.Flow)
	}
	if last.Velocity != prev.Velocity {
		t.Errorf("last velocity = %v, want fill from %v", last.Velocity, prev.Velocity)
	}
	if math.IsNaN(last.TravelTime) || math.IsInf(last.TravelTime, 0) {
		t.Errorf("last travel time = %v", last.TravelTime)
	}
}

func TestFixedSegments(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	sr := FixedSegments(p, 100)

	if len(sr.Segments) != 100 {
		t.Fatalf("segments = %d, want 100", len(sr.Segments))
	}
	step := p.LateralLength / 100
	testkit.CloseTo(t, sr.Segments[0].Position, step, 1e-9)
	testkit.CloseTo(t, sr.Segments[99].Position, p.LateralLength, 1e-9)

	for i, s := range sr.Segments {
		if s.Velocity < minVelocity {
			t.Fatalf("segment %d velocity %v below floor", i+1, s.Velocity)
		}
	}
	testkit.CloseToRel(t, sr.TravelTime, EmpiricalTravelTime(p), 1e-9)
}

func TestSingleSegmentBoundary(t *testing.T) {
	t.Parallel()

	p := Params{EmitterFlow: 1, EmitterSpacing: 140, LateralLength: 150, InternalDiameter: 20.2}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	sr := OutletSegments(p)
	if len(sr.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(sr.Segments))
	}
	testkit.CloseTo(t, sr.Segments[0].Position, p.EmitterSpacing, 1e-9)
	testkit.CloseToRel(t, sr.TravelTime, EmpiricalTravelTime(p), 1e-9)
}

func TestSegmentedIdempotence(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	a := OutletSegments(p)
	b := OutletSegments(p)
	if a.TravelTime != b.TravelTime || a.TT95 != b.TT95 || a.HeadLoss != b.HeadLoss {
		t.Fatal("identical inputs produced different totals")
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			t.Fatalf("segment %d differs between runs", i+1)
		}
	}
}

func TestSyntheticCurve(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	sr := SyntheticCurve(p, 100, 0, 0)

	if len(sr.Points) != 100 {
		t.Fatalf("points = %d, want 100", len(sr.Points))
	}
	for i := 1; i < len(sr.Points); i++ {
		if sr.Points[i].Time <= sr.Points[i-1].Time {
			t.Fatalf("advance time not increasing at point %d", i+1)
		}
		if sr.Points[i].HeadLoss < sr.Points[i-1].HeadLoss {
			t.Fatalf("head loss decreased at point %d", i+1)
		}
	}

	tt := EmpiricalTravelTime(p)
	testkit.CloseTo(t, sr.TravelTime, tt, 1e-12)
	testkit.CloseTo(t, sr.TT95, tt/2, 1e-12)

	// with k=4 the curve ends at 1-exp(-4) of the total
	last := sr.Points[len(sr.Points)-1]
	testkit.CloseToRel(t, last.Time, tt*(1-math.Exp(-4)), 1e-9)

	// a steeper decay front-loads the curve
	steep := SyntheticCurve(p, 100, 8, 0)
	if steep.Points[10].Time <= sr.Points[10].Time {
		t.Error("higher decay rate should advance faster early on")
	}
}

func TestModelVariants(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	for _, v := range Variants() {
		m, err := New(v, Options{})
		if err != nil {
			t.Fatalf("New(%s): %v", v, err)
		}
		res, err := m.Compute(p)
		if err != nil {
			t.Fatalf("Compute(%s): %v", v, err)
		}
		if res.Variant != v {
			t.Errorf("variant = %s, want %s", res.Variant, v)
		}
		if res.TravelTime <= 0 || res.TT95 <= 0 || res.HeadLoss <= 0 {
			t.Errorf("%s: non-positive summary %+v", v, res)
		}
		if res.TT95 > res.TravelTime {
			t.Errorf("%s: TT95 %v exceeds travel time %v", v, res.TT95, res.TravelTime)
		}
	}

	if _, err := New(Variant("plugflow"), Options{}); err == nil {
		t.Error("expected error for unknown variant")
	}

	m, _ := New(VariantSegmented, Options{})
	if _, err := m.Compute(Params{}); err == nil {
		t.Error("expected validation error for zero params")
	}
}

func TestModelFixedResolution(t *testing.T) {
	t.Parallel()

	m, err := New(VariantSegmented, Options{Resolution: 50})
	if err != nil {
		t.Fatal(err)
	}
	res, err := m.Compute(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Segments) != 50 {
		t.Fatalf("segments = %d, want 50", len(res.Segments))
	}
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	if v, err := ParseVariant(""); err != nil || v != VariantSegmented {
		t.Errorf("empty variant = %v, %v; want segmented default", v, err)
	}
	if v, err := ParseVariant("synthetic"); err != nil || v != VariantSynthetic {
		t.Errorf("ParseVariant(synthetic) = %v, %v", v, err)
	}
	if _, err := ParseVariant("bogus"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Errorf("ParseVariant(bogus) code = %v", perr.CodeOf(err))
	}
}

func TestReferenceCurve(t *testing.T) {
	t.Parallel()

	pts := ReferenceCurve()
	if len(pts) != 11 {
		t.Fatalf("points = %d, want 11", len(pts))
	}
	if pts[0].CumLengthFrac != 0 || pts[len(pts)-1].CumLengthFrac != 1 {
		t.Error("cumulative fraction should run from 0 to 1")
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].CumLengthFrac < pts[i-1].CumLengthFrac {
			t.Fatalf("cumulative fraction decreased at point %d", i+1)
		}
	}
}
