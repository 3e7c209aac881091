package gunshot

import "errors"

// Sentinel errors for synthesis inputs. Model and geometry errors from
// the subpackages pass through Synthesize untouched.
var (
	// ErrInvalidParameter indicates a non-positive duration, sample rate,
	// bullet dimension or pressure in the synthesis request.
	ErrInvalidParameter = errors.New("gunshot: parameter out of range")
)

// Result bundles the three signals of one synthesis: the combined
// pressure waveform and its two components. All slices have length
// round(duration·Fs); NWave is all zeros when the sonic-boom gate does
// not open. Samples are in Pa on the grid t_i = i/Fs.
type Result struct {
	Total       []float64
	MuzzleBlast []float64
	NWave       []float64
}
