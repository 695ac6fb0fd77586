// Package domain holds DTOs for advance http and service contracts
package domain

import "driptime/internal/core/hydraulic"

// ComputeInput describes one lateral plus model selection.
// Units match the field sheets: L/h, m, m, mm.
type ComputeInput struct {
	EmitterFlow      float64 `json:"emitter_flow" validate:"required,gte=0.1,lte=10" example:"1.0"`
	EmitterSpacing   float64 `json:"emitter_spacing" validate:"required,gte=0.05,lte=2" example:"0.5"`
	LateralLength    float64 `json:"lateral_length" validate:"required,gte=1,lte=1000" example:"150"`
	InternalDiameter float64 `json:"internal_diameter" validate:"required,gte=8,lte=40" example:"20.2"`

	// Variant picks the computation path; empty means the service default
	Variant string `json:"variant,omitempty" validate:"omitempty,oneof=segmented empirical synthetic" example:"segmented"`
	// Resolution switches the segmented path to fixed-length steps and sets
	// the synthetic sample count; 0 means one segment per emitter
	Resolution int `json:"resolution,omitempty" validate:"omitempty,min=1,max=10000" example:"100"`
	// Decay rates for the synthetic curves; 0 means the model defaults
	TimeDecay float64 `json:"time_decay,omitempty" validate:"omitempty,gt=0,lte=100" example:"4"`
	HeadDecay float64 `json:"head_decay,omitempty" validate:"omitempty,gt=0,lte=100" example:"4"`
}

// Params converts the validated input to core parameters.
func (in ComputeInput) Params() hydraulic.Params {
	return hydraulic.Params{
		EmitterFlow:      in.EmitterFlow,
		EmitterSpacing:   in.EmitterSpacing,
		LateralLength:    in.LateralLength,
		InternalDiameter: in.InternalDiameter,
	}
}

// Summary carries the three headline metrics, rounded to 3 decimals
type Summary struct {
	TravelTimeMin   float64 `json:"travel_time_min" example:"56.847"`
	TravelTime95Min float64 `json:"travel_time_95_min" example:"28.424"`
	TotalHeadLossM  float64 `json:"total_headloss_m" example:"1.917"`
}

// ComputeResult is the full computation response
type ComputeResult struct {
	RunID    string                     `json:"run_id" example:"9df1a58e-3f0c-4f4f-9a6e-6a1f6f2f7d80"`
	Variant  string                     `json:"variant" example:"segmented"`
	Summary  Summary                    `json:"summary"`
	Segments []hydraulic.Segment        `json:"segments,omitempty"`
	Points   []hydraulic.SyntheticPoint `json:"points,omitempty"`
}

// Range documents a valid input interval
type Range struct {
	Min float64 `json:"min" example:"0.1"`
	Max float64 `json:"max" example:"10"`
}

// DefaultsOut reports starting values and accepted ranges for each parameter
type DefaultsOut struct {
	Defaults hydraulic.Params `json:"defaults"`
	Ranges   map[string]Range `json:"ranges"`
	Variants []string         `json:"variants"`
}
