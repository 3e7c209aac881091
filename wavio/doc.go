// Package wavio writes synthesized pressure signals as mono 16-bit PCM
// WAV files. Signals are peak-normalized to [-1, 1] before quantization,
// so absolute pressure scale is deliberately discarded at this boundary.
//
// Errors:
//
//   - ErrEmptySignal — zero-length input.
//   - ErrSilentSignal — all-zero input; peak normalization is undefined.
//   - ErrInvalidSampleRate — non-positive sample rate.
package wavio
