package wavio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// WAV format constants for the files this package produces.
const (
	headerSize    = 44
	channels      = 1
	bitsPerSample = 16
	formatPCM     = 1
)

// Sentinel errors for WAV output.
var (
	// ErrEmptySignal indicates a zero-length signal.
	ErrEmptySignal = errors.New("wavio: empty signal")
	// ErrSilentSignal indicates an all-zero signal; its peak is zero and
	// normalization would divide by it.
	ErrSilentSignal = errors.New("wavio: signal has zero peak")
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("wavio: sample rate must be positive")
)

// Normalize returns a copy of sig scaled so its peak absolute value is 1.
// Returns ErrEmptySignal or ErrSilentSignal when no peak exists.
func Normalize(sig []float64) ([]float64, error) {
	if len(sig) == 0 {
		return nil, ErrEmptySignal
	}

	var peak float64
	for _, s := range sig {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		return nil, ErrSilentSignal
	}

	out := make([]float64, len(sig))
	for i, s := range sig {
		out[i] = s / peak
	}

	return out, nil
}

// Encode peak-normalizes sig and packs it as a complete mono 16-bit PCM
// WAV file: 44-byte RIFF header followed by little-endian samples.
func Encode(sig []float64, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("Encode: rate=%d: %w", sampleRate, ErrInvalidSampleRate)
	}
	norm, err := Normalize(sig)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	dataSize := len(norm) * channels * bitsPerSample / 8
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, headerSize+dataSize)

	// RIFF header
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt subchunk
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:24], channels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	// data subchunk
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range norm {
		// The positive range tops out at 32767, so scale by it; the peak
		// sample maps exactly to full scale.
		v := int16(math.Round(s * 32767))
		binary.LittleEndian.PutUint16(buf[headerSize+2*i:], uint16(v))
	}

	return buf, nil
}

// WriteFile encodes sig and writes it to path.
func WriteFile(path string, sig []float64, sampleRate int) error {
	data, err := Encode(sig, sampleRate)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}
