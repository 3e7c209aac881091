// Package nwave models the ballistic shock wave of a supersonic
// projectile as an idealized N-wave: a molecular-relaxation rise to peak
// overpressure, a linear decay through zero to the negative peak, and a
// symmetric recovery.
//
// What:
//
//   - MachNumber / ConeAngle — supersonic regime helpers.
//   - Overpressure, Duration, RiseTime, TimeOfArrival — closed-form
//     waveform parameters from the Whitham far-field scaling laws, driven
//     by projectile speed, diameter, length and miss distance.
//   - NewParams — derives the full parameter set once.
//   - Sample / Waveform — evaluate the four-segment waveform at a time
//     instant, or over a uniform sample grid t_i = i/Fs.
//
// Why:
//
//	A microphone inside the Mach cone of a supersonic bullet records a
//	characteristic "crack" ahead of the muzzle blast. The N-wave is that
//	crack; the composer in package gunshot decides when it applies.
//
// Complexity:
//
//   - Parameter derivation: O(1).
//   - Waveform: O(n) time, O(n) memory for n = round(duration·Fs).
//
// Errors:
//
//   - ErrSubsonic — cone angle or overpressure requested for Mach ≤ 1.
//   - ErrInvalidParameter — non-positive diameter, length, miss distance
//     or peak overpressure.
//
// All functions are pure; NaN never escapes — invalid math domains are
// reported as errors instead.
package nwave
