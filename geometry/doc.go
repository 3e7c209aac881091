// Package geometry derives the scalar quantities the acoustic models need
// from 3D scene positions: gun-to-microphone distance, the angle of the
// microphone relative to the fixed world up axis, and the miss distance of
// the microphone from the projectile trajectory.
//
// What:
//
//   - Vec3 — small value type for positions and directions with the usual
//     Add/Sub/Scale/Dot/Norm/Normalize operations.
//   - ComputeGeometry(mic, gun) — Euclidean distance plus the arccos angle
//     between the gun→mic vector and the fixed (0,1,0) reference axis.
//   - MissDistance(gun, barrelDir, mic) — perpendicular distance of the
//     microphone from the boreline and the along-track distance.
//
// Conventions:
//
//   - The angle is measured against the world up axis, NOT the barrel
//     direction. The muzzle-blast directivity model was fitted with this
//     convention and the composer relies on it.
//   - All lengths are meters, all angles radians.
//
// Complexity: every operation is O(1) time, O(1) memory.
//
// Errors:
//
//   - ErrDegenerateGeometry — coincident gun/microphone positions or a
//     zero-magnitude barrel direction.
package geometry
