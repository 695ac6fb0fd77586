package module

import (
	"context"
	"io"

	"driptime/internal/core/hydraulic"
	"driptime/internal/services/api/advance/domain"
	advsvc "driptime/internal/services/api/advance/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAdvancePort struct{ svc advsvc.Service }

// Compute runs the selected model for one lateral
func (a adaptAdvancePort) Compute(ctx context.Context, in domain.ComputeInput) (domain.ComputeResult, error) {
	return a.svc.Compute(ctx, in)
}

// Defaults reports starting values and valid ranges
func (a adaptAdvancePort) Defaults(ctx context.Context) domain.DefaultsOut {
	return a.svc.Defaults(ctx)
}

// Reference returns the dimensionless advance chart
func (a adaptAdvancePort) Reference(ctx context.Context) []hydraulic.ReferencePoint {
	return a.svc.Reference(ctx)
}

// ExportCSV streams the segment table for a computation
func (a adaptAdvancePort) ExportCSV(ctx context.Context, in domain.ComputeInput, w io.Writer) error {
	return a.svc.ExportCSV(ctx, in, w)
}
