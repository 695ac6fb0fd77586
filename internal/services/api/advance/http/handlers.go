// Package http provides http transport for advance computations
package http

import (
	"bytes"
	"io"
	stdhttp "net/http"
	"strconv"

	"driptime/internal/core/export"
	"driptime/internal/modkit/httpkit"
	perr "driptime/internal/platform/errors"
	"driptime/internal/platform/net/http/bind"
	"driptime/internal/services/api/advance/domain"
	svc "driptime/internal/services/api/advance/service"
)

// Register mounts advance endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// run a model and return summary plus table
	httpkit.PostJSON[domain.ComputeInput](r, "/compute", h.compute)

	// documented defaults and valid ranges
	httpkit.Get(r, "/defaults", h.defaults)

	// dimensionless reference advance chart
	httpkit.Get(r, "/reference", h.reference)

	// segment table as a CSV attachment
	r.Get("/export", h.export)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /advance/compute Advance advanceCompute
// @Summary Compute advance time and head loss for one lateral
// @Tags Advance
// @Accept json
// @Produce json
// @Param payload body domain.ComputeInput true "Lateral parameters and model selection"
// @Success 200 {object} domain.ComputeResult "ok"
// @Router /advance/compute [post]
func (h *handlers) compute(r *stdhttp.Request, in domain.ComputeInput) (any, error) {
	return h.svc.Compute(r.Context(), in)
}

// swagger:route GET /advance/defaults Advance advanceDefaults
// @Summary Default parameters and valid ranges
// @Tags Advance
// @Produce json
// @Success 200 {object} domain.DefaultsOut "ok"
// @Router /advance/defaults [get]
func (h *handlers) defaults(r *stdhttp.Request) (any, error) {
	return h.svc.Defaults(r.Context()), nil
}

// swagger:route GET /advance/reference Advance advanceReference
// @Summary Dimensionless reference advance curve
// @Tags Advance
// @Produce json
// @Success 200 {array} hydraulic.ReferencePoint "ok"
// @Router /advance/reference [get]
func (h *handlers) reference(r *stdhttp.Request) (any, error) {
	return h.svc.Reference(r.Context()), nil
}

// swagger:route GET /advance/export Advance advanceExport
// @Summary Segment table as CSV attachment
// @Tags Advance
// @Produce text/csv
// @Param flow query number true "Emitter flow L/h"
// @Param spacing query number true "Emitter spacing m"
// @Param length query number true "Lateral length m"
// @Param diameter query number true "Internal diameter mm"
// @Param variant query string false "Model variant"
// @Param resolution query int false "Fixed segment count"
// @Success 200 {string} string "csv"
// @Router /advance/export [get]
func (h *handlers) export(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := exportInput(r)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}

	// build the table before any headers go out so rejects still get a
	// proper error envelope
	var buf bytes.Buffer
	if err := h.svc.ExportCSV(r.Context(), in, &buf); err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	_ = httpkit.CSV(w, r, export.Filename, func(out io.Writer) error {
		_, err := out.Write(buf.Bytes())
		return err
	})
}

// exportInput maps query params onto the same validated input the JSON
// endpoint uses, so both surfaces share one set of range rules
func exportInput(r *stdhttp.Request) (domain.ComputeInput, error) {
	q := r.URL.Query()

	var in domain.ComputeInput
	var err error
	if in.EmitterFlow, err = queryFloat(q.Get("flow"), "flow"); err != nil {
		return in, err
	}
	if in.EmitterSpacing, err = queryFloat(q.Get("spacing"), "spacing"); err != nil {
		return in, err
	}
	if in.LateralLength, err = queryFloat(q.Get("length"), "length"); err != nil {
		return in, err
	}
	if in.InternalDiameter, err = queryFloat(q.Get("diameter"), "diameter"); err != nil {
		return in, err
	}
	in.Variant = q.Get("variant")
	if raw := q.Get("resolution"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, perr.WithField(perr.InvalidArgf("resolution must be an integer"), "resolution")
		}
		in.Resolution = n
	}
	if err := bind.Validate(&in); err != nil {
		return in, err
	}
	return in, nil
}

func queryFloat(raw, name string) (float64, error) {
	if raw == "" {
		return 0, perr.WithField(perr.InvalidArgf("missing query parameter %q", name), name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("%q is not a number", raw), name)
	}
	return v, nil
}
