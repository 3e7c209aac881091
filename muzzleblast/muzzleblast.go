package muzzleblast

import (
	"fmt"
	"math"
)

// PressureToPascals converts a muzzle pressure given in kg/cm² to Pa.
func PressureToPascals(kgPerCm2 float64) float64 {
	return PascalsPerKgPerCm2 * kgPerCm2
}

// Friedlander evaluates the blast profile at time t (s) for arrival time
// ta, positive-phase duration tau and peak amplitude pp:
//
//	0                                        for t < ta
//	pp·(1 − (t−ta)/tau)·exp(−(t−ta)/tau)·pinf·ainf   otherwise
//
// The pinf·ainf factor is the model's amplitude convention; preserve it
// (see doc.go).
func Friedlander(t, ta, tau, pp float64) float64 {
	if t < ta {
		return 0
	}
	u := (t - ta) / tau

	return pp * (1 - u) * math.Exp(-u) * AmbientPressure * SoundSpeed
}

// MomentumIndex computes the directivity weight μ from the projectile
// Mach number m, the muzzle pressure in kg/cm² and the propellant
// specific heat ratio gamma:
//
//	xmod = M·sqrt(γ·(pe/pinf)/2),  μ = 0.87 − 0.01·xmod
//
// High-pressure, high-Mach loads drive μ negative, which skews the blast
// directivity rearward.
func MomentumIndex(m, peKgPerCm2, gamma float64) float64 {
	pe := PressureToPascals(peKgPerCm2) / AmbientPressure
	xmod := m * math.Sqrt(gamma*pe/2)

	return 0.87 - 0.01*xmod
}

// ScalingLength derives the blast scaling length l and its
// directivity-weighted counterpart lp from the propellant exhaust state:
// specific heat ratio gamma, muzzle pressure pe in Pa, propellant exit
// speed ue in m/s, bore area ae in m², momentum index mu, and the
// microphone angle theta in radians.
//
//	dE/dt = γ·(pe/pinf)·ue/(γ−1) · (1 + (γ−1)/2·Me²) · Ae
//	l     = sqrt(dE/dt / (pinf·ainf))
//	lp    = l · (μ·cosθ + sqrt(1 − μ²·sin²θ)) · 10
//
// Returns ErrMomentumIndex when the directivity radicand is negative and
// ErrInvalidParameter for non-positive pe, ue or ae.
func ScalingLength(gamma, pe, ue, ae, mu, theta float64) (l, lp float64, err error) {
	if pe <= 0 || ue <= 0 || ae <= 0 {
		return 0, 0, fmt.Errorf("ScalingLength: pe=%g ue=%g ae=%g: %w", pe, ue, ae, ErrInvalidParameter)
	}

	peb := pe / AmbientPressure
	me := ue / SoundSpeed
	dEdt := (gamma * peb * ue) / (gamma - 1) * (1 + (gamma-1)/2*me*me) * ae
	l = math.Sqrt(dEdt / (AmbientPressure * SoundSpeed))

	sin := math.Sin(theta)
	radicand := 1 - mu*mu*sin*sin
	if radicand < 0 {
		return 0, 0, fmt.Errorf("ScalingLength: mu=%g theta=%g: %w", mu, theta, ErrMomentumIndex)
	}
	ratio := mu*math.Cos(theta) + math.Sqrt(radicand)
	lp = l * ratio * 10

	return l, lp, nil
}

// PeakOverpressure computes the Friedlander peak Pb at distance r (m)
// for weighted scaling length lp (m). Near field (rb < 50) uses the
// polynomial fit in lp/r; far field uses the logarithmic decay fit. The
// branch is sharp by design.
func PeakOverpressure(r, lp float64) float64 {
	rb := r / lp
	var pb float64
	if rb < farFieldScaledDistance {
		pb = 0.89*(lp/r) + 1.61*(lp/r)*(lp/r)
	} else {
		pb = 3.48975 / (rb * math.Sqrt(math.Log(logArgCoefficient*rb)))
	}

	return pb / 100
}

// TimeOfArrival computes when the blast front reaches distance r (m):
//
//	X   = sqrt(rb² + 1.04·rb + 1.88)
//	tab = X − 0.52·ln(2X + 2rb + 1.04) − 0.56
//	ta  = lp·tab/ainf
//
// The scaled form accounts for the front travelling above sound speed
// close to the muzzle.
func TimeOfArrival(r, lp float64) float64 {
	rb := r / lp
	x := math.Sqrt(rb*rb + 1.04*rb + 1.88)
	tab := x - 0.52*math.Log(2*x+2*rb+1.04) - 0.56

	return lp * tab / SoundSpeed
}

// PositivePhaseDuration computes tau (s) at distance r (m) for weighted
// scaling length lp, unweighted scaling length l, barrel length barrelLen
// (m) and projectile exit speed vp (m/s). Shares the rb = 50 branch with
// PeakOverpressure.
func PositivePhaseDuration(r, lp, l, barrelLen, vp float64) float64 {
	rb := r / lp
	x := math.Sqrt(rb*rb + 1.04*rb + 1.88)
	delta := (barrelLen * SoundSpeed) / (vp * l)
	g := 0.09 - 0.00379*delta + 1.07*(1-1.36*math.Exp(-0.049*rb))*l/lp

	var tb float64
	if rb < farFieldScaledDistance {
		tb = rb - x + 0.52*math.Log(2*x+2*rb+1.04) + 0.56 + g
	} else {
		tb = 2.99*math.Sqrt(math.Log(logArgCoefficient*rb)) - 8.534 + g
	}

	return tb * lp / SoundSpeed
}

// NewParams derives the complete muzzle-blast parameter set.
//
// Inputs: propellant specific heat ratio gamma, muzzle pressure in
// kg/cm², propellant exit speed ue (m/s), bore area ae (m²), momentum
// index mu, microphone angle theta (rad), distance r (m), barrel length
// (m), projectile exit speed vp (m/s).
func NewParams(gamma, peKgPerCm2, ue, ae, mu, theta, r, barrelLen, vp float64) (Params, error) {
	if r <= 0 || vp <= 0 || barrelLen <= 0 {
		return Params{}, fmt.Errorf("NewParams: r=%g vp=%g barrelLen=%g: %w",
			r, vp, barrelLen, ErrInvalidParameter)
	}

	pe := PressureToPascals(peKgPerCm2)
	l, lp, err := ScalingLength(gamma, pe, ue, ae, mu, theta)
	if err != nil {
		return Params{}, fmt.Errorf("NewParams: %w", err)
	}

	return Params{
		ScalingLength:         l,
		WeightedScalingLength: lp,
		TimeOfArrival:         TimeOfArrival(r, lp),
		PositivePhaseDuration: PositivePhaseDuration(r, lp, l, barrelLen, vp),
		PeakOverpressure:      PeakOverpressure(r, lp),
	}, nil
}

// Waveform renders the Friedlander wave on the uniform grid t_i = i/fs
// for i ∈ [0, round(duration·fs)), with the derived (ta, tau, Pb) fixed
// across the render. Returns ErrInvalidParameter for a non-positive
// duration or sample rate.
func Waveform(p Params, duration, fs float64) ([]float64, error) {
	if duration <= 0 || fs <= 0 {
		return nil, fmt.Errorf("Waveform: duration=%g fs=%g: %w", duration, fs, ErrInvalidParameter)
	}

	n := int(math.Round(duration * fs))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = Friedlander(float64(i)/fs, p.TimeOfArrival, p.PositivePhaseDuration, p.PeakOverpressure)
	}

	return out, nil
}
