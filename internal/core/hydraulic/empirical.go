package hydraulic

import "math"

// Regression coefficients fitted on measured advance data
// (travel time in minutes as a function of spacing, length, diameter and flow).
const (
	empCoef    = 0.0912
	empSpacing = 0.7824
	empLength  = 0.1928
)

// EmpiricalTravelTime returns the fitted time in minutes for water to reach
// the far end of the lateral.
//
//	TT = 0.0912 * S^0.7824 * L^0.1928 * D² / q
func EmpiricalTravelTime(p Params) float64 {
	return empCoef *
		math.Pow(p.EmitterSpacing, empSpacing) *
		math.Pow(p.LateralLength, empLength) *
		p.InternalDiameter * p.InternalDiameter /
		p.EmitterFlow
}

// EmpiricalTT95 is the fitted time to reach 95% of the lateral length.
// The regression dataset showed the front covering the last 5% in roughly
// half the total time, so TT95 is taken as TT/2.
func EmpiricalTT95(p Params) float64 {
	return EmpiricalTravelTime(p) / 2
}
