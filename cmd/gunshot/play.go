package main

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/metu-sparg/gunshot/wavio"
)

// oto bit depth 0 selects 32-bit float output (oto.FormatFloat32LE).
const playBitDepth = 0

// play renders sig through the default audio device, blocking until the
// whole signal has been consumed. The signal is peak-normalized first so
// pressure-scale waveforms map onto the [-1, 1] device range.
func play(sig []float64, sampleRate int) error {
	norm, err := wavio.Normalize(sig)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(sampleRate, 1, playBitDepth)
	if err != nil {
		return err
	}
	<-ready

	buf := make([]byte, 4*len(norm))
	for i, s := range norm {
		v := math.Float32bits(float32(s))
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v >> 16)
		buf[i*4+3] = byte(v >> 24)
	}

	player := ctx.NewPlayer(&sampleReader{data: buf})
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return player.Close()
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}
