// Package muzzleblast models the propellant-gas blast of a gunshot as a
// Friedlander wave scaled by empirical gun-blast laws.
//
// What:
//
//   - Friedlander — the canonical rise-then-exponential-decay blast
//     profile, evaluated at a time instant.
//   - ScalingLength — blast energy deposition rate → scaling length l and
//     directivity-weighted scaling length lp.
//   - MomentumIndex — directivity weight μ from Mach number and muzzle
//     pressure.
//   - PeakOverpressure, TimeOfArrival, PositivePhaseDuration — empirical
//     fits in the scaled distance rb = r/lp, with distinct near-field
//     (rb < 50) and far-field branches.
//   - NewParams / Waveform — derive everything once, then render the
//     signal on the uniform grid t_i = i/Fs.
//
// The empirical fits follow the KSU gun-blast model; coefficients and the
// rb = 50 regime threshold are fixed literals of that model. Both
// regime-switched quantities share the same threshold constant, and the
// switch is a sharp branch: the small discontinuity at rb = 50 is part
// of the model, not smoothed over.
//
// The Friedlander amplitude carries a pinf·ainf factor inherited from
// the KSU formulation. It is not an SI pressure scaling, but it is kept
// because downstream consumers normalize the signal anyway and parity
// with prior renders matters more than unit purity.
//
// Complexity: parameter derivation O(1); Waveform O(n) for
// n = round(duration·Fs).
//
// Errors:
//
//   - ErrMomentumIndex — the directivity radicand 1 − μ²sin²θ is
//     negative, i.e. |μ·sinθ| > 1.
//   - ErrInvalidParameter — non-positive pressures, speeds, areas or
//     distances.
package muzzleblast
