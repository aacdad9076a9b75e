// Package transcode decodes audio recordings into mono PCM suitable
// for pitch analysis, delegating format handling to ffmpeg.
package transcode

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/RyanBlaney/raga-sonar/logging"
)

// ErrNoSamples is returned when ffmpeg produced no audio output.
var ErrNoSamples = errors.New("no audio samples decoded")

// Config holds decoder configuration.
type Config struct {
	TargetSampleRate int           `json:"target_sample_rate"`
	FFmpegPath       string        `json:"ffmpeg_path"`
	Timeout          time.Duration `json:"timeout"`
}

// DefaultConfig returns the decoder defaults: 22.05 kHz mono, which is
// plenty for melodic pitch content and keeps the analysis cheap.
func DefaultConfig() *Config {
	return &Config{
		TargetSampleRate: 22050,
		FFmpegPath:       "ffmpeg",
		Timeout:          2 * time.Minute,
	}
}

// AudioData is a decoded recording.
type AudioData struct {
	PCM        []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Duration   time.Duration `json:"duration"`
}

// Decoder decodes audio files through ffmpeg.
type Decoder struct {
	config *Config
	logger logging.Logger
}

// NewDecoder creates a decoder. A nil config selects the defaults.
func NewDecoder(config *Config) *Decoder {
	if config == nil {
		config = DefaultConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "audio_decoder",
		}),
	}
}

// DecodeFile decodes a recording to mono float64 PCM at the target
// sample rate. The context bounds the ffmpeg invocation together with
// the configured timeout.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (*AudioData, error) {
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	args := []string{
		"-v", "error",
		"-i", path,
		"-map", "0:a:0?",
		"-vn",
		"-f", "f64le", // Raw float64 little-endian
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
		"pipe:1",
	}

	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)

	d.logger.Debug("running ffmpeg decode", logging.Fields{
		"command": fmt.Sprintf("%s %s", d.config.FFmpegPath, strings.Join(args, " ")),
	})

	startTime := time.Now()
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("transcode: ffmpeg decode %s: %w, stderr: %s", path, err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("transcode: ffmpeg decode %s: %w", path, err)
	}

	samples := bytesToFloat64(output)
	if len(samples) == 0 {
		return nil, fmt.Errorf("transcode: %s: %w", path, ErrNoSamples)
	}

	duration := time.Duration(len(samples)) * time.Second / time.Duration(d.config.TargetSampleRate)

	d.logger.Debug("decode completed", logging.Fields{
		"path":        path,
		"samples":     len(samples),
		"duration_s":  duration.Seconds(),
		"decode_time": time.Since(startTime).Seconds(),
	})

	return &AudioData{
		PCM:        samples,
		SampleRate: d.config.TargetSampleRate,
		Duration:   duration,
	}, nil
}

// bytesToFloat64 reinterprets raw f64le output as samples. A trailing
// partial sample is discarded.
func bytesToFloat64(data []byte) []float64 {
	count := len(data) / 8
	samples := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
		samples[i] = math.Float64frombits(bits)
	}
	return samples
}
