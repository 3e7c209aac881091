// Package align measures the similarity of two pressure signals with
// Dynamic Time Warping, tolerating small timing offsets between them.
//
// Why:
//
//	Synthesized gunshots are validated against field recordings whose
//	arrival times never match the render exactly — microphone placement
//	is known to centimeters at best. Sample-by-sample comparison fails
//	on a one-sample shift; DTW absorbs the shift and scores the shapes.
//
// What:
//
//   - Distance(a, b, opts) — cumulative warped distance between two
//     sample slices, optionally with the alignment path.
//   - Options — Sakoe–Chiba window, slope penalty, peak normalization
//     (on by default: pressure scales differ between renders and
//     recordings), and the memory/path trade-off.
//
// Complexity: O(n·m) time; O(min two rows) memory by default, O(n·m)
// when the alignment path is requested.
//
// Errors:
//
//   - ErrEmptyInput — either signal is empty.
//   - ErrBadWindow — window below -1.
//   - ErrPathNeedsMatrix — path requested without full-matrix memory.
//   - ErrSilentInput — peak normalization requested for an all-zero
//     signal.
package align
