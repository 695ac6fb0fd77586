package hydraulic

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Segment is one discretization step of the lateral. Field names follow the
// export contract of the results table.
type Segment struct {
	Outlet      int     `json:"outlets"`   // 1-based index along the lateral
	Position    float64 `json:"long_acum"` // m from the inlet
	Flow        float64 `json:"q_tramo"`   // L/h carried through the segment
	Velocity    float64 `json:"v_tramo"`   // m/s
	TravelTime  float64 `json:"t_tramo"`   // min spent crossing the segment
	CumTime     float64 `json:"t_acum"`    // min from the inlet
	HeadLoss    float64 `json:"headloss"`  // m lost across the segment
	CumHeadLoss float64 `json:"HL_acum"`   // m from the inlet
}

// Hazen-Williams with C=140 (PE pipe), flow in m³/h, length in m, diameter
// in mm. Returns head loss in m.
const (
	hazenC    = 140.0
	hazenCoef = 1.131e9
	hazenExpQ = 1.852
	hazenExpD = -4.872
)

func hazenWilliams(flowLPH, stepM, diaMM float64) float64 {
	return hazenCoef * math.Pow(flowLPH/1000/hazenC, hazenExpQ) * stepM * math.Pow(diaMM, hazenExpD)
}

// minVelocity floors the fixed-resolution velocity so the tail segments keep
// a finite crossing time instead of dividing by zero.
const minVelocity = 1e-6

// SegmentedResult holds the reconciled segment table and its totals.
type SegmentedResult struct {
	Segments   []Segment
	TravelTime float64 // min, reconciled total (equals the empirical TT)
	TT95       float64 // min, cumulative time at the 95% segment
	HeadLoss   float64 // m, total over the lateral
	RawTime    float64 // min, hydraulic total before reconciliation
	Scale      float64 // reconciliation factor applied to segment times
}

// OutletSegments builds one segment per emitter. Flow through segment i is
// the total inlet flow minus the discharge of the i upstream emitters, so it
// reaches zero at the last segment. Zero-flow segments inherit the last
// positive velocity: the front keeps moving at the speed it had when the
// final emitter started drawing.
func OutletSegments(p Params) SegmentedResult {
	n := p.Outlets()
	if n < 1 {
		n = 1
	}
	total := float64(n) * p.EmitterFlow
	area := p.Area()

	segs := make([]Segment, n)
	lastV := minVelocity
	for i := range segs {
		flow := total - float64(i+1)*p.EmitterFlow
		v := flow / 1000 / 3600 / area
		if v <= 0 {
			v = lastV
		} else {
			lastV = v
		}
		segs[i] = Segment{
			Outlet:     i + 1,
			Position:   float64(i+1) * p.EmitterSpacing,
			Flow:       flow,
			Velocity:   v,
			TravelTime: p.EmitterSpacing / v / 60,
			HeadLoss:   hazenWilliams(flow, p.EmitterSpacing, p.InternalDiameter),
		}
	}
	return reconcile(p, segs)
}

// FixedResolution is the default segment count of the fixed-step model.
const FixedResolution = 100

// FixedSegments discretizes the lateral into steps of equal length regardless
// of emitter spacing. Flow at position x is proportional to the emitters that
// remain downstream. Velocities are clamped to a small floor rather than
// filled forward.
func FixedSegments(p Params, steps int) SegmentedResult {
	if steps < 1 {
		steps = FixedResolution
	}
	step := p.LateralLength / float64(steps)
	area := p.Area()

	segs := make([]Segment, steps)
	for i := range segs {
		x := float64(i+1) * step
		flow := (p.LateralLength - x) / p.EmitterSpacing * p.EmitterFlow
		if flow < 0 {
			flow = 0
		}
		v := flow / 1000 / 3600 / area
		if v < minVelocity {
			v = minVelocity
		}
		segs[i] = Segment{
			Outlet:     i + 1,
			Position:   x,
			Flow:       flow,
			Velocity:   v,
			TravelTime: step / v / 60,
			HeadLoss:   hazenWilliams(flow, step, p.InternalDiameter),
		}
	}
	return reconcile(p, segs)
}

// reconcile scales every segment time so the hydraulic total matches the
// empirical regression, then fills the cumulative columns and totals.
func reconcile(p Params, segs []Segment) SegmentedResult {
	n := len(segs)
	times := make([]float64, n)
	losses := make([]float64, n)
	for i, s := range segs {
		times[i] = s.TravelTime
		losses[i] = s.HeadLoss
	}

	raw := floats.Sum(times)
	target := EmpiricalTravelTime(p)
	scale := 1.0
	if raw > 0 {
		scale = target / raw
	}
	floats.Scale(scale, times)

	cumT := make([]float64, n)
	cumH := make([]float64, n)
	floats.CumSum(cumT, times)
	floats.CumSum(cumH, losses)
	for i := range segs {
		segs[i].TravelTime = times[i]
		segs[i].CumTime = cumT[i]
		segs[i].CumHeadLoss = cumH[i]
	}

	return SegmentedResult{
		Segments:   segs,
		TravelTime: cumT[n-1],
		TT95:       cumT[tt95Index(n)],
		HeadLoss:   cumH[n-1],
		RawTime:    raw,
		Scale:      scale,
	}
}

// tt95Index is the zero-based offset of the nearest-rank segment covering
// 95% of the lateral, never before the first segment.
func tt95Index(n int) int {
	i := int(float64(n) * 0.95) // 1-based rank
	if i < 1 {
		i = 1
	}
	if i > n {
		i = n
	}
	return i - 1
}
