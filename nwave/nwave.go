package nwave

import (
	"fmt"
	"math"

	"github.com/metu-sparg/gunshot/geometry"
)

// MachNumber converts a projectile speed in m/s to its Mach number under
// the fixed ambient SoundSpeed.
func MachNumber(v float64) float64 {
	return v / SoundSpeed
}

// ConeAngle returns the Mach cone half-angle arcsin(1/M) in radians.
// Returns ErrSubsonic for M ≤ 1, where the arcsin argument leaves its
// domain and no cone exists.
func ConeAngle(m float64) (float64, error) {
	if m <= 1 {
		return 0, fmt.Errorf("ConeAngle: M=%g: %w", m, ErrSubsonic)
	}

	return math.Asin(1 / m), nil
}

// Overpressure returns the N-wave peak overpressure pmax in Pa for a
// projectile of speed v (m/s), diameter d (m) and length l (m) missing
// the microphone by x (m):
//
//	pmax = 0.53·d·(M²−1)^⅛ / (x^¾ · l^¼) · P0
//
// Returns ErrSubsonic for v at or below Mach 1 and ErrInvalidParameter
// for non-positive d, l or x.
func Overpressure(v, d, l, x float64) (float64, error) {
	m := MachNumber(v)
	if m <= 1 {
		return 0, fmt.Errorf("Overpressure: M=%g: %w", m, ErrSubsonic)
	}
	if d <= 0 || l <= 0 || x <= 0 {
		return 0, fmt.Errorf("Overpressure: d=%g l=%g x=%g: %w", d, l, x, ErrInvalidParameter)
	}

	pmax := 0.53 * d * math.Pow(m*m-1, 0.125) /
		(math.Pow(x, 0.75) * math.Pow(l, 0.25)) * AmbientPressure

	return pmax, nil
}

// Duration returns the peak-to-peak N-wave duration Td in s:
//
//	L  = 1.82·d·M·x^¼ / ((M²−1)^⅜ · l^¼)
//	Td = L / c
//
// Same domain requirements as Overpressure.
func Duration(v, d, l, x float64) (float64, error) {
	m := MachNumber(v)
	if m <= 1 {
		return 0, fmt.Errorf("Duration: M=%g: %w", m, ErrSubsonic)
	}
	if d <= 0 || l <= 0 || x <= 0 {
		return 0, fmt.Errorf("Duration: d=%g l=%g x=%g: %w", d, l, x, ErrInvalidParameter)
	}

	spatial := 1.82 * d * m * math.Pow(x, 0.25) /
		(math.Pow(m*m-1, 0.375) * math.Pow(l, 0.25))

	return spatial / SoundSpeed, nil
}

// RiseTime returns the shock rise time tr = λ/c · P0/pmax in s. The rise
// is set by molecular relaxation, so it shortens as the shock strengthens.
// Returns ErrInvalidParameter for pmax ≤ 0.
func RiseTime(pmax float64) (float64, error) {
	if pmax <= 0 {
		return 0, fmt.Errorf("RiseTime: pmax=%g: %w", pmax, ErrInvalidParameter)
	}

	return MeanFreePath / SoundSpeed * AmbientPressure / pmax, nil
}

// TimeOfArrival returns when the ballistic shock reaches the microphone:
// the projectile flies the along-track distance at v, then the shock
// front crosses the remaining cos(θ)·miss at the speed of sound.
//
//	ta = cos(θ)·miss/c + line/v,  θ = ConeAngle(MachNumber(v))
//
// Returns ErrSubsonic below Mach 1 and ErrDegenerateGeometry for a zero
// barrel direction.
func TimeOfArrival(v float64, gun, barrelDir, mic geometry.Vec3) (float64, error) {
	theta, err := ConeAngle(MachNumber(v))
	if err != nil {
		return 0, fmt.Errorf("TimeOfArrival: %w", err)
	}
	miss, line, err := geometry.MissDistance(gun, barrelDir, mic)
	if err != nil {
		return 0, fmt.Errorf("TimeOfArrival: %w", err)
	}

	return math.Cos(theta)*miss/SoundSpeed + line/v, nil
}

// NewParams derives the complete N-wave parameter set for one
// scene/projectile configuration. The result feeds Sample and Waveform.
func NewParams(gun, barrelDir, mic geometry.Vec3, v, d, l, x float64) (Params, error) {
	pmax, err := Overpressure(v, d, l, x)
	if err != nil {
		return Params{}, err
	}
	ta, err := TimeOfArrival(v, gun, barrelDir, mic)
	if err != nil {
		return Params{}, err
	}
	td, err := Duration(v, d, l, x)
	if err != nil {
		return Params{}, err
	}
	tr, err := RiseTime(pmax)
	if err != nil {
		return Params{}, err
	}

	return Params{
		PeakOverpressure: pmax,
		TimeOfArrival:    ta,
		Duration:         td,
		RiseTime:         tr,
		MissDistance:     x,
	}, nil
}

// Sample evaluates the four-segment N-wave at time t (s). The boundary
// comparisons are exact (≤ on the right edge of each segment) so that no
// instant is counted twice and no gap opens between segments.
func Sample(p Params, t float64) float64 {
	ta, tr, td, pmax := p.TimeOfArrival, p.RiseTime, p.Duration, p.PeakOverpressure

	switch {
	case t < ta:
		return 0
	case t <= ta+tr:
		// Shock front: linear rise to +pmax.
		return (t - ta) / tr * pmax
	case t <= ta+td-tr:
		// Body: linear decay from +pmax through zero to −pmax.
		return (1 - 2*(t-ta-tr)/(td-2*tr)) * pmax
	case t <= ta+td:
		// Tail shock: linear recovery from −pmax back to zero.
		return (-1 + (t-ta-td+tr)/tr) * pmax
	default:
		return 0
	}
}

// Waveform samples the N-wave on the uniform grid t_i = i/fs for
// i ∈ [0, round(duration·fs)). Parameters are derived once; each sample
// is then an independent O(1) evaluation. Returns ErrInvalidParameter
// for a non-positive duration or sample rate.
func Waveform(gun, barrelDir, mic geometry.Vec3, v, d, l, x, duration, fs float64) ([]float64, error) {
	if duration <= 0 || fs <= 0 {
		return nil, fmt.Errorf("Waveform: duration=%g fs=%g: %w", duration, fs, ErrInvalidParameter)
	}
	p, err := NewParams(gun, barrelDir, mic, v, d, l, x)
	if err != nil {
		return nil, fmt.Errorf("Waveform: %w", err)
	}

	n := int(math.Round(duration * fs))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = Sample(p, float64(i)/fs)
	}

	return out, nil
}
