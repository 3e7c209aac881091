package muzzleblast

import "errors"

// Physical constants of the model.
const (
	// AmbientPressure pinf in Pa.
	AmbientPressure = 101.0e3
	// SoundSpeed ainf in m/s.
	SoundSpeed = 341.0
	// SpecificHeatRatio γ of the propellant gas.
	SpecificHeatRatio = 1.24
	// PascalsPerKgPerCm2 converts the traditional kg/cm² muzzle-pressure
	// unit to Pa.
	PascalsPerKgPerCm2 = 98066.5
)

// farFieldScaledDistance is the rb = r/lp threshold separating the
// near-field and far-field fits. PeakOverpressure and
// PositivePhaseDuration must branch on the identical value for any given
// call, so it lives here and nowhere else.
const farFieldScaledDistance = 50.0

// logArgCoefficient is the 33119·rb coefficient inside the far-field
// logarithms.
const logArgCoefficient = 33119.0

// Sentinel errors for muzzle-blast computations.
var (
	// ErrMomentumIndex indicates |μ·sinθ| > 1 in the directivity ratio;
	// the scaling-length radicand would be negative.
	ErrMomentumIndex = errors.New("muzzleblast: momentum index incompatible with angle")
	// ErrInvalidParameter indicates a non-positive pressure, speed, bore
	// area or distance.
	ErrInvalidParameter = errors.New("muzzleblast: parameter out of range")
)

// Params is the fully derived muzzle-blast description for one scene and
// load. Values are immutable once computed.
type Params struct {
	// ScalingLength l in m, from the energy deposition rate.
	ScalingLength float64
	// WeightedScalingLength lp in m: l weighted by directivity.
	WeightedScalingLength float64
	// TimeOfArrival ta in s, relative to the shot at t = 0.
	TimeOfArrival float64
	// PositivePhaseDuration tau in s.
	PositivePhaseDuration float64
	// PeakOverpressure Pb (dimensionless amplitude for the Friedlander
	// profile; see the package note on scaling).
	PeakOverpressure float64
}
