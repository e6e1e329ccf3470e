// Package airflow holds the physical constants and the area, velocity, and
// velocity-pressure arithmetic shared by every fitting pipeline. Inputs use
// the engine's standard units: inches for lengths, cfm for flow rates.
package airflow

import "math"

const (
	// SquareInchesPerSquareFoot converts areas computed from inch
	// dimensions to the ft² used for velocity.
	SquareInchesPerSquareFoot = 144.0

	// VelocityPressureDenominator converts ft/min to inches of water
	// column via (V/4005)².
	VelocityPressureDenominator = 4005.0
)

// CircleArea returns the cross-sectional area in in² of a round duct of
// diameter d inches.
func CircleArea(d float64) float64 {
	return math.Pi * (d / 2) * (d / 2)
}

// RectArea returns the cross-sectional area in in² of a rectangular duct.
func RectArea(h, w float64) float64 {
	return h * w
}

// SquareFeet converts an in² area to ft².
func SquareFeet(areaIn2 float64) float64 {
	return areaIn2 / SquareInchesPerSquareFoot
}

// Velocity returns the duct velocity in ft/min for a flow rate in cfm
// through an area in ft².
func Velocity(q, areaFt2 float64) float64 {
	return q / areaFt2
}

// VelocityPressure returns the velocity pressure in inches of water column
// for a velocity in ft/min.
func VelocityPressure(v float64) float64 {
	r := v / VelocityPressureDenominator
	return r * r
}

// ReynoldsNumber approximates the duct Reynolds number from diameter in
// inches and velocity in ft/min.
func ReynoldsNumber(d, v float64) float64 {
	return 8.5 * d * v
}
