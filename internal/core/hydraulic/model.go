package hydraulic

import perr "driptime/internal/platform/errors"

// Variant names a computation path. Selection is always explicit; nothing
// infers a variant from the inputs.
type Variant string

const (
	// VariantSegmented discretizes the lateral and reconciles the segment
	// times against the empirical total.
	VariantSegmented Variant = "segmented"
	// VariantEmpirical evaluates only the regression scalars.
	VariantEmpirical Variant = "empirical"
	// VariantSynthetic samples the closed-form exponential advance curve.
	VariantSynthetic Variant = "synthetic"
)

// Variants lists the supported computation paths.
func Variants() []Variant {
	return []Variant{VariantSegmented, VariantEmpirical, VariantSynthetic}
}

// ParseVariant validates a user-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSegmented, VariantEmpirical, VariantSynthetic:
		return v, nil
	case "":
		return VariantSegmented, nil
	default:
		return "", perr.WithField(perr.InvalidArgf("unknown variant %q", s), "variant")
	}
}

// Options tune a model without changing its contract. The zero value selects
// outlet-indexed segmentation and the default decay rates.
type Options struct {
	// Resolution > 0 switches the segmented model to fixed-length steps of
	// that count; 0 means one segment per emitter.
	Resolution int
	// TimeDecay and HeadDecay control the synthetic exponential curves.
	// Non-positive values fall back to the defaults.
	TimeDecay float64
	HeadDecay float64
}

// Result is the uniform output of every variant. Segments is populated by
// the segmented path, Points by the synthetic path; the empirical path
// carries scalars only.
type Result struct {
	Variant    Variant
	TravelTime float64 // min
	TT95       float64 // min
	HeadLoss   float64 // m
	Segments   []Segment
	Points     []SyntheticPoint
}

// Model computes a Result for one set of lateral parameters.
type Model interface {
	Compute(Params) (Result, error)
}

// New returns the model for a variant.
func New(v Variant, opts Options) (Model, error) {
	switch v {
	case VariantSegmented:
		return segmentedModel{opts: opts}, nil
	case VariantEmpirical:
		return empiricalModel{}, nil
	case VariantSynthetic:
		return syntheticModel{opts: opts}, nil
	default:
		return nil, perr.WithField(perr.InvalidArgf("unknown variant %q", string(v)), "variant")
	}
}

type segmentedModel struct{ opts Options }

func (m segmentedModel) Compute(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	var sr SegmentedResult
	if m.opts.Resolution > 0 {
		sr = FixedSegments(p, m.opts.Resolution)
	} else {
		sr = OutletSegments(p)
	}
	return Result{
		Variant:    VariantSegmented,
		TravelTime: sr.TravelTime,
		TT95:       sr.TT95,
		HeadLoss:   sr.HeadLoss,
		Segments:   sr.Segments,
	}, nil
}

type empiricalModel struct{}

func (empiricalModel) Compute(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	tt := EmpiricalTravelTime(p)
	total := float64(p.Outlets()) * p.EmitterFlow
	return Result{
		Variant:    VariantEmpirical,
		TravelTime: tt,
		TT95:       tt / 2,
		HeadLoss:   christiansenF * hazenWilliams(total, p.LateralLength, p.InternalDiameter),
	}, nil
}

type syntheticModel struct{ opts Options }

func (m syntheticModel) Compute(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	points := m.opts.Resolution
	if points <= 0 {
		points = FixedResolution
	}
	sr := SyntheticCurve(p, points, m.opts.TimeDecay, m.opts.HeadDecay)
	return Result{
		Variant:    VariantSynthetic,
		TravelTime: sr.TravelTime,
		TT95:       sr.TT95,
		HeadLoss:   sr.HeadLoss,
		Points:     sr.Points,
	}, nil
}
