package gunshot_test

import (
	"testing"

	"github.com/metu-sparg/gunshot/gunshot"
)

// BenchmarkSynthesize renders the full supersonic scenario: 0.35 s at
// 192 kHz, both components plus the sum (~67k samples each).
func BenchmarkSynthesize(b *testing.B) {
	scene := refScene()
	ball := refBallistics(900)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gunshot.Synthesize(scene, ball, 0.35, 192000); err != nil {
			b.Fatalf("Synthesize failed: %v", err)
		}
	}
}
