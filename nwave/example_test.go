package nwave_test

import (
	"fmt"

	"github.com/metu-sparg/gunshot/geometry"
	"github.com/metu-sparg/gunshot/nwave"
)

// ExampleNewParams derives the ballistic-shock description for a 9 mm
// projectile at 900 m/s passing 5 m from the microphone. The rise time is
// orders of magnitude shorter than the N itself, which is what makes the
// crack sound sharp.
func ExampleNewParams() {
	gun := geometry.Vec3{}
	barrel := geometry.Vec3{Z: 1}
	mic := geometry.Vec3{X: 5, Z: 100}

	p, _ := nwave.NewParams(gun, barrel, mic, 900, 0.009, 0.03, 5)
	fmt.Printf("peak: %.1f Pa\n", p.PeakOverpressure)
	fmt.Printf("duration: %.1f µs\n", p.Duration*1e6)
	fmt.Printf("rise/duration: %.5f\n", p.RiseTime/p.Duration)

	// Output:
	// peak: 432.8 Pa
	// duration: 233.1 µs
	// rise/duration: 0.00020
}

// ExampleConeAngle reports the Mach cone half-angle for a rifle round.
func ExampleConeAngle() {
	m := nwave.MachNumber(900)
	theta, _ := nwave.ConeAngle(m)
	fmt.Printf("Mach %.2f, cone half-angle %.1f°\n", m, theta*180/3.141592653589793)

	// Output:
	// Mach 2.64, cone half-angle 22.3°
}
