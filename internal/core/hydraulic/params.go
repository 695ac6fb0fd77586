// Package hydraulic implements advance-time and head-loss models for a
// drip-irrigation lateral: an empirical regression for the total travel time,
// a discretized segment model reconciled against it, and a synthetic
// exponential advance curve for quick plotting.
package hydraulic

import (
	"math"

	perr "driptime/internal/platform/errors"
)

// Params describes one lateral fed from a single inlet
type Params struct {
	EmitterFlow      float64 `json:"emitter_flow"`      // L/h discharged per emitter
	EmitterSpacing   float64 `json:"emitter_spacing"`   // m between emitters
	LateralLength    float64 `json:"lateral_length"`    // m from inlet to closed end
	InternalDiameter float64 `json:"internal_diameter"` // mm
}

// DefaultParams are the field-typical values the UI starts from
func DefaultParams() Params {
	return Params{
		EmitterFlow:      1.0,
		EmitterSpacing:   0.5,
		LateralLength:    150,
		InternalDiameter: 20.2,
	}
}

// Validate fails fast before any segment generation: every parameter must be
// a positive finite number and the lateral must hold at least one emitter
func (p Params) Validate() error {
	if err := positive(p.EmitterFlow); err != nil {
		return perr.WithField(err, "emitter_flow")
	}
	if err := positive(p.EmitterSpacing); err != nil {
		return perr.WithField(err, "emitter_spacing")
	}
	if err := positive(p.LateralLength); err != nil {
		return perr.WithField(err, "lateral_length")
	}
	if err := positive(p.InternalDiameter); err != nil {
		return perr.WithField(err, "internal_diameter")
	}
	if p.LateralLength/p.EmitterSpacing < 1 {
		return perr.WithField(
			perr.InvalidArgf("lateral must be at least one emitter spacing long"),
			"lateral_length")
	}
	return nil
}

// Outlets returns the emitter count along the lateral
func (p Params) Outlets() int {
	return int(p.LateralLength / p.EmitterSpacing)
}

// Area returns the internal cross section in m²
func (p Params) Area() float64 {
	d := p.InternalDiameter / 1000 // mm -> m
	return math.Pi * d * d / 4
}

func positive(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return perr.InvalidArgf("must be a finite number")
	}
	if v <= 0 {
		return perr.InvalidArgf("must be positive")
	}
	return nil
}
