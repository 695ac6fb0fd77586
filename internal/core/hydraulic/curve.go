package hydraulic

// ReferencePoint is one row of the dimensionless advance chart: for a slice
// of relative advance time, the fraction of the lateral covered during that
// slice and the cumulative fraction covered so far.
type ReferencePoint struct {
	RelativeTime  float64 `json:"relative_time"`
	LengthFract   float64 `json:"length_fraction"`
	CumLengthFrac float64 `json:"cumulative_length_fraction"`
}

// ReferenceCurve returns the published dimensionless advance table. Roughly
// half the lateral is covered in the first tenth of the advance; the front
// slows sharply after that.
func ReferenceCurve() []ReferencePoint {
	rel := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	frac := []float64{0, 0.47, 0.25, 0.13, 0.07, 0.04, 0.02, 0.01, 0.01, 0, 0}
	cum := []float64{0, 0.47, 0.71, 0.85, 0.92, 0.96, 0.98, 0.99, 0.99, 1, 1}

	pts := make([]ReferencePoint, len(rel))
	for i := range pts {
		pts[i] = ReferencePoint{RelativeTime: rel[i], LengthFract: frac[i], CumLengthFrac: cum[i]}
	}
	return pts
}
