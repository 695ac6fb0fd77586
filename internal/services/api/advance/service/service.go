// Package service contains the advance computation workflows
package service

import (
	"context"
	"io"
	"math"

	"github.com/google/uuid"

	"driptime/internal/core/export"
	"driptime/internal/core/hydraulic"
	perr "driptime/internal/platform/errors"
	"driptime/internal/platform/logger"
	"driptime/internal/services/api/advance/domain"
)

// Service defines the advance service contract
type Service interface {
	domain.ServicePort
}

// Options tune the service defaults applied when a request leaves them unset
type Options struct {
	DefaultVariant hydraulic.Variant
	Resolution     int
	TimeDecay      float64
	HeadDecay      float64
}

// Svc implements the advance service
type Svc struct {
	opts Options
}

// New constructs an advance service
func New(opts Options) *Svc {
	if opts.DefaultVariant == "" {
		opts.DefaultVariant = hydraulic.VariantSegmented
	}
	return &Svc{opts: opts}
}

// Compute runs the selected model and wraps the result with a run id
func (s *Svc) Compute(ctx context.Context, in domain.ComputeInput) (domain.ComputeResult, error) {
	variant, res, err := s.run(in)
	if err != nil {
		return domain.ComputeResult{}, err
	}

	runID := uuid.NewString()
	logger.C(ctx).Debug().
		Str("run_id", runID).
		Str("variant", string(variant)).
		Float64("travel_time_min", res.TravelTime).
		Int("segments", len(res.Segments)).
		Msg("advance computed")

	return domain.ComputeResult{
		RunID:   runID,
		Variant: string(variant),
		Summary: domain.Summary{
			TravelTimeMin:   round3(res.TravelTime),
			TravelTime95Min: round3(res.TT95),
			TotalHeadLossM:  round3(res.HeadLoss),
		},
		Segments: res.Segments,
		Points:   res.Points,
	}, nil
}

// Defaults reports the documented starting values and valid ranges
func (s *Svc) Defaults(context.Context) domain.DefaultsOut {
	variants := hydraulic.Variants()
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = string(v)
	}
	return domain.DefaultsOut{
		Defaults: hydraulic.DefaultParams(),
		Ranges: map[string]domain.Range{
			"emitter_flow":      {Min: 0.1, Max: 10},
			"emitter_spacing":   {Min: 0.05, Max: 2},
			"lateral_length":    {Min: 1, Max: 1000},
			"internal_diameter": {Min: 8, Max: 40},
		},
		Variants: names,
	}
}

// Reference returns the dimensionless advance chart
func (s *Svc) Reference(context.Context) []hydraulic.ReferencePoint {
	return hydraulic.ReferenceCurve()
}

// ExportCSV streams the segment table for a computation. Only the segmented
// path produces the full table, so other variants are rejected up front.
func (s *Svc) ExportCSV(ctx context.Context, in domain.ComputeInput, w io.Writer) error {
	variant, res, err := s.run(in)
	if err != nil {
		return err
	}
	if variant != hydraulic.VariantSegmented {
		return perr.WithField(
			perr.InvalidArgf("variant %q has no segment table to export", variant), "variant")
	}
	logger.C(ctx).Debug().Int("segments", len(res.Segments)).Msg("exporting segment table")
	return export.WriteCSV(w, res.Segments)
}

func (s *Svc) run(in domain.ComputeInput) (hydraulic.Variant, hydraulic.Result, error) {
	variant := s.opts.DefaultVariant
	if in.Variant != "" {
		v, err := hydraulic.ParseVariant(in.Variant)
		if err != nil {
			return "", hydraulic.Result{}, err
		}
		variant = v
	}

	opts := hydraulic.Options{
		Resolution: s.opts.Resolution,
		TimeDecay:  s.opts.TimeDecay,
		HeadDecay:  s.opts.HeadDecay,
	}
	if in.Resolution > 0 {
		opts.Resolution = in.Resolution
	}
	if in.TimeDecay > 0 {
		opts.TimeDecay = in.TimeDecay
	}
	if in.HeadDecay > 0 {
		opts.HeadDecay = in.HeadDecay
	}

	m, err := hydraulic.New(variant, opts)
	if err != nil {
		return "", hydraulic.Result{}, err
	}
	res, err := m.Compute(in.Params())
	if err != nil {
		return "", hydraulic.Result{}, err
	}
	return variant, res, nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
