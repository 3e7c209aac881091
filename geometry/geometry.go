package geometry

import (
	"fmt"
	"math"
)

// ComputeGeometry derives the distance and reference-axis angle of the
// microphone relative to the gun.
//
//	distance = ‖mic − gun‖
//	angle    = arccos( (mic − gun)·ReferenceAxis / distance )
//
// Returns ErrDegenerateGeometry when mic and gun coincide (distance zero,
// angle undefined).
//
// Complexity: O(1) time, O(1) memory.
func ComputeGeometry(mic, gun Vec3) (Result, error) {
	sep := mic.Sub(gun)
	r := sep.Norm()
	if r == 0 {
		return Result{}, fmt.Errorf("ComputeGeometry: mic coincides with gun: %w", ErrDegenerateGeometry)
	}

	// The cosine is already in [-1,1] up to rounding; clamp so arccos
	// never sees 1+ε and returns NaN.
	cos := sep.Dot(ReferenceAxis) / r
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return Result{Distance: r, Angle: math.Acos(cos)}, nil
}

// MissDistance splits the gun→mic vector against the boreline:
// the along-track distance from the muzzle to the closest point of the
// trajectory, and the perpendicular (miss) distance from that point to the
// microphone.
//
//	line = (mic − gun)·normalize(barrelDir)
//	miss = sqrt(‖mic − gun‖² − line²)
//
// A slightly negative radicand (floating-point noise when the microphone
// lies exactly on the boreline) clamps to zero rather than erroring.
// Returns ErrDegenerateGeometry for a zero-magnitude barrelDir.
//
// Complexity: O(1) time, O(1) memory.
func MissDistance(gun, barrelDir, mic Vec3) (miss, line float64, err error) {
	dir, err := barrelDir.Normalize()
	if err != nil {
		return 0, 0, fmt.Errorf("MissDistance: zero barrel direction: %w", err)
	}

	sep := mic.Sub(gun)
	line = sep.Dot(dir)

	radicand := sep.NormSq() - line*line
	if radicand < 0 {
		radicand = 0
	}
	miss = math.Sqrt(radicand)

	return miss, line, nil
}
