package align

import "errors"

// Sentinel errors for signal alignment.
var (
	// ErrEmptyInput indicates one or both signals are empty.
	ErrEmptyInput = errors.New("align: input signals must be non-empty")
	// ErrBadWindow indicates a window narrower than -1 (-1 disables the
	// constraint).
	ErrBadWindow = errors.New("align: window must be -1 or non-negative")
	// ErrPathNeedsMatrix indicates ReturnPath=true without
	// Memory=FullMatrix.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires Memory=FullMatrix")
	// ErrSilentInput indicates peak normalization of an all-zero signal.
	ErrSilentInput = errors.New("align: cannot peak-normalize a silent signal")
)

// MemoryMode selects the DP storage strategy.
type MemoryMode int

const (
	// TwoRows keeps only the current and previous DP rows: O(m) memory,
	// distance only.
	TwoRows MemoryMode = iota
	// FullMatrix keeps the whole DP table, enabling path recovery:
	// O(n·m) memory.
	FullMatrix
)

// Coord is one step of the alignment path: sample I of the first signal
// matched against sample J of the second.
type Coord struct {
	I, J int
}

// Options configures Distance.
type Options struct {
	// Window is the Sakoe–Chiba band half-width |i−j| ≤ Window; -1
	// disables the constraint.
	Window int
	// SlopePenalty is the extra cost of insertion/deletion steps,
	// discouraging excessive stretching.
	SlopePenalty float64
	// NormalizePeaks divides each signal by its own peak before
	// matching, so renders and recordings at different pressure scales
	// compare by shape.
	NormalizePeaks bool
	// ReturnPath backtracks the optimal alignment; requires FullMatrix.
	ReturnPath bool
	// Memory selects TwoRows (default) or FullMatrix.
	Memory MemoryMode
}

// DefaultOptions returns the configuration used for render-vs-recording
// checks: unconstrained window, no slope penalty, peak normalization on,
// distance only.
func DefaultOptions() Options {
	return Options{
		Window:         -1,
		NormalizePeaks: true,
		Memory:         TwoRows,
	}
}
