// Package export serializes segment tables to CSV in the layout downstream
// spreadsheets expect.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"driptime/internal/core/hydraulic"
	perr "driptime/internal/platform/errors"
)

// Filename is the suggested attachment name for HTTP downloads.
const Filename = "hydraulic_advance_results.csv"

var header = []string{"outlets", "long_acum", "q_tramo", "v_tramo", "t_tramo", "t_acum", "headloss", "HL_acum"}

// WriteCSV streams the segment table, one row per segment, header first.
func WriteCSV(w io.Writer, segs []hydraulic.Segment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write csv header")
	}
	for _, s := range segs {
		rec := []string{
			strconv.Itoa(s.Outlet),
			fmtFloat(s.Position),
			fmtFloat(s.Flow),
			fmtFloat(s.Velocity),
			fmtFloat(s.TravelTime),
			fmtFloat(s.CumTime),
			fmtFloat(s.HeadLoss),
			fmtFloat(s.CumHeadLoss),
		}
		if err := cw.Write(rec); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "flush csv")
	}
	return nil
}

// ReadCSV parses a table previously produced by WriteCSV.
func ReadCSV(r io.Reader) ([]hydraulic.Segment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, perr.InvalidArgf("parse csv: %v", err)
	}
	if len(recs) == 0 || recs[0][0] != header[0] {
		return nil, perr.InvalidArgf("missing csv header")
	}

	segs := make([]hydraulic.Segment, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		outlet, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, perr.InvalidArgf("row %d: bad outlet index %q", i+1, rec[0])
		}
		vals := make([]float64, len(rec)-1)
		for j, f := range rec[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, perr.InvalidArgf("row %d: bad %s value %q", i+1, header[j+1], f)
			}
			vals[j] = v
		}
		segs = append(segs, hydraulic.Segment{
			Outlet:      outlet,
			Position:    vals[0],
			Flow:        vals[1],
			Velocity:    vals[2],
			TravelTime:  vals[3],
			CumTime:     vals[4],
			HeadLoss:    vals[5],
			CumHeadLoss: vals[6],
		})
	}
	return segs, nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
