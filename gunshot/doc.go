// Package gunshot composes the anechoic pressure signal of a single shot
// heard at a single microphone: the muzzle blast (always) plus the
// ballistic N-wave when the projectile is supersonic and the microphone
// sits inside its Mach cone.
//
// What:
//
//   - Scene / Ballistics — the serializable input records: where the gun
//     and microphone are, and what is being fired. Both round-trip
//     through a fixed JSON layout, so existing record files keep
//     working.
//   - Synthesize — the entry point: records in, three equal-length
//     sample slices out (total, muzzle blast, N-wave) on the grid
//     t_i = i/Fs with round(duration·Fs) samples.
//
// Sonic-boom gate:
//
//	The N-wave contributes when exitVelocity > 341 m/s AND the scene
//	angle θ < π − ConeAngle(exitVelocity). The cone angle is computed
//	from the raw exit velocity, not its Mach number; see the note at
//	the gate in synthesize.go.
//
// Failure semantics:
//
//	Synthesis is all-or-nothing. Geometry and model errors propagate
//	unmodified (errors.Is works across the package boundary); there is
//	no recovery, retry, or partial result.
//
// Concurrency:
//
//	Everything is pure computation over value types; any number of
//	Synthesize calls may run concurrently.
package gunshot
