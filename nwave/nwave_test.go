package nwave_test

import (
	"math"
	"testing"

	"github.com/metu-sparg/gunshot/geometry"
	"github.com/metu-sparg/gunshot/nwave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rifle-class reference configuration used across the tests: 9 mm bullet,
// 30 mm long, 900 m/s, microphone 5 m off a downrange trajectory.
var (
	refGun    = geometry.Vec3{}
	refBarrel = geometry.Vec3{Z: 1}
	refMic    = geometry.Vec3{X: 5, Z: 100}

	refV = 900.0
	refD = 0.009
	refL = 0.03
	refX = 5.0
)

// TestMachNumber_SoundSpeedIsMachOne pins the v/c conversion.
func TestMachNumber_SoundSpeedIsMachOne(t *testing.T) {
	assert.Equal(t, 1.0, nwave.MachNumber(341.0), "v = c must be exactly Mach 1")
	assert.InDelta(t, 2.0, nwave.MachNumber(682.0), 1e-12, "v = 2c must be Mach 2")
}

// TestConeAngle_SupersonicOnly checks the arcsin(1/M) value and the
// subsonic error domain.
func TestConeAngle_SupersonicOnly(t *testing.T) {
	theta, err := nwave.ConeAngle(2.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Asin(0.5), theta, 1e-12, "Mach 2 cone half-angle")

	for _, m := range []float64{1.0, 0.9, 0.0, -3.0} {
		_, err = nwave.ConeAngle(m)
		assert.ErrorIs(t, err, nwave.ErrSubsonic, "M ≤ 1 must error, got M=%g", m)
	}
}

// TestOverpressure_ReferenceValue evaluates the closed form directly and
// compares against an independent transcription of the formula.
func TestOverpressure_ReferenceValue(t *testing.T) {
	pmax, err := nwave.Overpressure(refV, refD, refL, refX)
	require.NoError(t, err)

	m := refV / 341.0
	want := 0.53 * refD * math.Pow(m*m-1, 0.125) /
		(math.Pow(refX, 0.75) * math.Pow(refL, 0.25)) * 101.0e3
	assert.InDelta(t, want, pmax, 1e-9, "overpressure closed form")
	assert.Greater(t, pmax, 0.0, "overpressure is a positive peak")
}

// TestOverpressure_Domain covers the subsonic and non-positive-parameter
// error branches.
func TestOverpressure_Domain(t *testing.T) {
	_, err := nwave.Overpressure(200, refD, refL, refX)
	assert.ErrorIs(t, err, nwave.ErrSubsonic, "subsonic projectile has no shock")

	_, err = nwave.Overpressure(refV, 0, refL, refX)
	assert.ErrorIs(t, err, nwave.ErrInvalidParameter, "zero diameter")

	_, err = nwave.Overpressure(refV, refD, refL, -1)
	assert.ErrorIs(t, err, nwave.ErrInvalidParameter, "negative miss distance")
}

// TestRiseTime_ScalesInversely verifies tr = λ/c·P0/pmax and its error
// domain.
func TestRiseTime_ScalesInversely(t *testing.T) {
	tr1, err := nwave.RiseTime(100)
	require.NoError(t, err)
	tr2, err := nwave.RiseTime(200)
	require.NoError(t, err)
	assert.InDelta(t, tr1/2, tr2, 1e-18, "doubling pmax halves the rise time")

	_, err = nwave.RiseTime(0)
	assert.ErrorIs(t, err, nwave.ErrInvalidParameter, "pmax must be positive")
}

// TestTimeOfArrival_Components checks the two-leg arrival model against a
// hand-computed value.
func TestTimeOfArrival_Components(t *testing.T) {
	ta, err := nwave.TimeOfArrival(refV, refGun, refBarrel, refMic)
	require.NoError(t, err)

	theta := math.Asin(341.0 / refV)
	want := math.Cos(theta)*refX/341.0 + 100.0/refV
	assert.InDelta(t, want, ta, 1e-12, "cos(θ)·miss/c + line/v")
}

// TestSample_SegmentContinuity probes the waveform just inside each
// segment boundary; adjacent formulas must agree within float tolerance.
func TestSample_SegmentContinuity(t *testing.T) {
	p, err := nwave.NewParams(refGun, refBarrel, refMic, refV, refD, refL, refX)
	require.NoError(t, err)

	const eps = 1e-12
	boundaries := []struct {
		name string
		t    float64
		want float64
	}{
		{"onset", p.TimeOfArrival, 0},
		{"front peak", p.TimeOfArrival + p.RiseTime, p.PeakOverpressure},
		{"tail trough", p.TimeOfArrival + p.Duration - p.RiseTime, -p.PeakOverpressure},
		{"recovery end", p.TimeOfArrival + p.Duration, 0},
	}
	for _, b := range boundaries {
		t.Run(b.name, func(t *testing.T) {
			below := nwave.Sample(p, b.t-eps)
			at := nwave.Sample(p, b.t)
			above := nwave.Sample(p, b.t+eps)

			tol := math.Abs(p.PeakOverpressure) * 1e-6
			assert.InDelta(t, b.want, at, tol, "value at boundary")
			assert.InDelta(t, at, below, tol+math.Abs(p.PeakOverpressure)*eps/p.RiseTime,
				"continuous from below")
			assert.InDelta(t, at, above, tol+math.Abs(p.PeakOverpressure)*eps/p.RiseTime,
				"continuous from above")
		})
	}
}

// TestSample_ZeroOutsideSupport asserts silence before arrival and after
// the recovery shock.
func TestSample_ZeroOutsideSupport(t *testing.T) {
	p, err := nwave.NewParams(refGun, refBarrel, refMic, refV, refD, refL, refX)
	require.NoError(t, err)

	assert.Zero(t, nwave.Sample(p, 0), "silence at t=0")
	assert.Zero(t, nwave.Sample(p, p.TimeOfArrival/2), "silence before arrival")
	assert.Zero(t, nwave.Sample(p, p.TimeOfArrival+p.Duration+1e-9), "silence after the N")
}

// TestWaveform_LengthAndShape checks the round(duration·Fs) contract and
// that the rendered N actually swings both positive and negative.
func TestWaveform_LengthAndShape(t *testing.T) {
	// The shock arrives ~0.125 s after the shot (100 m at 900 m/s plus
	// the cross-cone leg), so the window must extend past that.
	const (
		duration = 0.15
		fs       = 48000.0
	)
	sig, err := nwave.Waveform(refGun, refBarrel, refMic, refV, refD, refL, refX, duration, fs)
	require.NoError(t, err)
	assert.Len(t, sig, int(math.Round(duration*fs)), "round(duration·Fs) samples")

	var lo, hi float64
	for _, s := range sig {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	assert.Greater(t, hi, 0.0, "positive lobe present")
	assert.Less(t, lo, 0.0, "negative lobe present")
}

// TestWaveform_SubsonicErrors confirms the error propagates unmodified
// from the parameter derivation.
func TestWaveform_SubsonicErrors(t *testing.T) {
	_, err := nwave.Waveform(refGun, refBarrel, refMic, 200, refD, refL, refX, 0.05, 48000)
	assert.ErrorIs(t, err, nwave.ErrSubsonic, "subsonic waveform request must error")
}

// TestWaveform_InvalidGrid ensures a non-positive duration or sample
// rate errors instead of feeding a negative length into the allocation.
func TestWaveform_InvalidGrid(t *testing.T) {
	cases := []struct {
		name         string
		duration, fs float64
	}{
		{"negative duration", -1, 48000},
		{"zero duration", 0, 48000},
		{"negative rate", 0.05, -48000},
		{"zero rate", 0.05, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nwave.Waveform(refGun, refBarrel, refMic, refV, refD, refL, refX,
				tc.duration, tc.fs)
			assert.ErrorIs(t, err, nwave.ErrInvalidParameter, "grid must be validated")
		})
	}
}
