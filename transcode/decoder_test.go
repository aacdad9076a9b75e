package transcode

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToFloat64(t *testing.T) {
	want := []float64{0.0, 1.0, -0.5, math.Pi}

	raw := make([]byte, 0, len(want)*8+3)
	for _, v := range want {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		raw = append(raw, buf[:]...)
	}
	// Trailing partial sample must be dropped
	raw = append(raw, 0x01, 0x02, 0x03)

	got := bytesToFloat64(raw)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestDecodeFile_MissingBinary(t *testing.T) {
	d := NewDecoder(&Config{
		TargetSampleRate: 22050,
		FFmpegPath:       "/nonexistent/ffmpeg",
	})

	_, err := d.DecodeFile(context.Background(), "recording.wav")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 22050, cfg.TargetSampleRate)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Positive(t, cfg.Timeout)
}
