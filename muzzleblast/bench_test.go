package muzzleblast_test

import (
	"math"
	"testing"

	"github.com/metu-sparg/gunshot/muzzleblast"
)

// BenchmarkWaveform renders 0.5 s at 192 kHz (~96k samples) per
// iteration with a precomputed parameter set.
// Complexity: O(n) over the sample grid.
func BenchmarkWaveform(b *testing.B) {
	mu := muzzleblast.MomentumIndex(900.0/341.0, 2000, 1.24)
	p, err := muzzleblast.NewParams(1.24, 2000, 900, math.Pi*0.0045*0.0045, mu,
		math.Pi/2, 100, 0.3, 900)
	if err != nil {
		b.Fatalf("setup NewParams failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = muzzleblast.Waveform(p, 0.5, 192000); err != nil {
			b.Fatalf("Waveform failed: %v", err)
		}
	}
}
