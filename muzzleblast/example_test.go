package muzzleblast_test

import (
	"fmt"
	"math"

	"github.com/metu-sparg/gunshot/muzzleblast"
)

// ExampleNewParams derives the blast description for a hot 9 mm load
// heard 100 m away on the horizon, then reads the Friedlander amplitude
// at onset. The blast arrives just ahead of the pure acoustic delay
// (100/341 ≈ 0.293 s) because the front starts out supersonic.
func ExampleNewParams() {
	const (
		gamma     = 1.24
		pressure  = 2000.0 // kg/cm²
		exitSpeed = 900.0  // m/s
		barrelLen = 0.3
		distance  = 100.0
		theta     = math.Pi / 2
	)
	bore := math.Pi * 0.0045 * 0.0045

	mu := muzzleblast.MomentumIndex(exitSpeed/muzzleblast.SoundSpeed, pressure, gamma)
	p, _ := muzzleblast.NewParams(gamma, pressure, exitSpeed, bore, mu, theta,
		distance, barrelLen, exitSpeed)

	onset := muzzleblast.Friedlander(p.TimeOfArrival, p.TimeOfArrival,
		p.PositivePhaseDuration, p.PeakOverpressure)

	fmt.Printf("arrival: %.4f s\n", p.TimeOfArrival)
	fmt.Printf("positive phase: %.2f ms\n", p.PositivePhaseDuration*1e3)
	fmt.Printf("onset pressure: %.0f Pa\n", onset)

	// Output:
	// arrival: 0.2925 s
	// positive phase: 0.69 ms
	// onset pressure: 157 Pa
}
