package nwave

import "errors"

// Atmospheric constants of the model. They are fixed fitted literals,
// not tunables; changing them invalidates the empirical coefficients in
// the scaling laws.
const (
	// AmbientPressure is the ambient atmospheric pressure P0 in Pa.
	AmbientPressure = 101.0e3
	// SoundSpeed is the ambient speed of sound in m/s.
	SoundSpeed = 341.0
	// MeanFreePath is the molecular mean free path λ in m, which sets the
	// shock rise time.
	MeanFreePath = 68.0e-9
)

// Sentinel errors for N-wave computations.
var (
	// ErrSubsonic indicates a Mach-cone quantity was requested for a
	// projectile at or below Mach 1; no ballistic shock exists there.
	ErrSubsonic = errors.New("nwave: projectile is not supersonic")
	// ErrInvalidParameter indicates a non-positive projectile dimension,
	// miss distance, or peak overpressure.
	ErrInvalidParameter = errors.New("nwave: parameter out of range")
)

// Params is the fully derived N-wave description. All fields are in SI
// units; a Params value is immutable once computed.
type Params struct {
	// PeakOverpressure pmax in Pa.
	PeakOverpressure float64
	// TimeOfArrival ta in s, relative to the shot at t = 0.
	TimeOfArrival float64
	// Duration Td in s: the full peak-to-peak length of the N.
	Duration float64
	// RiseTime tr in s: the shock front rise at both ends of the N.
	RiseTime float64
	// MissDistance x in m: perpendicular distance from the microphone to
	// the trajectory.
	MissDistance float64
}
