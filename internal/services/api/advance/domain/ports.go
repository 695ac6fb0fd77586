package domain

import (
	"context"
	"io"

	"driptime/internal/core/hydraulic"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Compute(ctx context.Context, in ComputeInput) (ComputeResult, error)
	Defaults(ctx context.Context) DefaultsOut
	Reference(ctx context.Context) []hydraulic.ReferencePoint
	ExportCSV(ctx context.Context, in ComputeInput, w io.Writer) error
}
