// Package detector wires the raga identification pipeline together:
// pitch tracking, tonic estimation, pitch-class projection and profile
// matching against the raga store.
package detector

import (
	"context"
	"fmt"

	"github.com/RyanBlaney/raga-sonar/algorithms/pitch"
	"github.com/RyanBlaney/raga-sonar/algorithms/tonal"
	"github.com/RyanBlaney/raga-sonar/logging"
	"github.com/RyanBlaney/raga-sonar/raga"
	"github.com/RyanBlaney/raga-sonar/transcode"
)

// PitchTracker is the external pitch extraction collaborator: PCM in,
// per-frame fundamental frequency and voicing out. The YIN tracker in
// algorithms/pitch is the default implementation.
type PitchTracker interface {
	Track(samples []float64) ([]pitch.Frame, error)
}

// Result is one complete analysis of a recording.
type Result struct {
	TonicHz      float64                      `json:"tonic_hz"`
	Distribution tonal.PitchClassDistribution `json:"distribution"`
	Matches      []raga.Match                 `json:"matches"` // every stored profile, best first
}

// Best returns the top-ranked match. The second return is false only
// for an empty profile store.
func (r *Result) Best() (raga.Match, bool) {
	if len(r.Matches) == 0 {
		return raga.Match{}, false
	}
	return r.Matches[0], true
}

// Detector runs raga analyses against a fixed profile store. It holds
// no per-analysis state: one Detector may serve concurrent analyses.
type Detector struct {
	config    *Config
	store     *raga.Store
	tracker   PitchTracker
	tonic     *tonal.TonicEstimator
	projector *tonal.PitchClassProjector
	matcher   *raga.Matcher
	logger    logging.Logger
}

// New creates a detector with the standard profile store and the YIN
// pitch tracker. A nil config selects the defaults.
func New(config *Config) (*Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := raga.NewStore()
	if err != nil {
		return nil, fmt.Errorf("detector: %w", err)
	}

	tracker, err := pitch.NewTrackerWithParams(config.Pitch)
	if err != nil {
		return nil, fmt.Errorf("detector: %w", err)
	}

	return NewWithStore(config, store, tracker)
}

// NewWithStore creates a detector over a custom store and tracker,
// e.g. a trimmed raga set or a different pitch extraction backend.
func NewWithStore(config *Config, store *raga.Store, tracker PitchTracker) (*Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Detector{
		config:    config,
		store:     store,
		tracker:   tracker,
		tonic:     tonal.NewTonicEstimatorWithBins(config.TonicBins),
		projector: tonal.NewPitchClassProjector(),
		matcher:   raga.NewMatcher(store),
		logger: logging.WithFields(logging.Fields{
			"component": "raga_detector",
		}),
	}, nil
}

// Store returns the profile store the detector matches against.
func (d *Detector) Store() *raga.Store {
	return d.store
}

// AnalyzeFile decodes a recording and analyzes it.
func (d *Detector) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	decoder := transcode.NewDecoder(d.config.Decode)
	audio, err := decoder.DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.Analyze(audio.PCM)
}

// Analyze runs pitch tracking over raw mono PCM at the configured
// sample rate, then analyzes the voiced frequency estimates.
func (d *Detector) Analyze(samples []float64) (*Result, error) {
	frames, err := d.tracker.Track(samples)
	if err != nil {
		return nil, fmt.Errorf("detector: pitch tracking: %w", err)
	}

	voiced := make([]float64, 0, len(frames))
	for _, f := range frames {
		if f.Voiced {
			voiced = append(voiced, f.Frequency)
		}
	}

	d.logger.Debug("pitch extraction complete", logging.Fields{
		"frames": len(frames),
		"voiced": len(voiced),
	})

	return d.AnalyzeFrequencies(voiced)
}

// AnalyzeFrequencies runs the core pipeline on voiced fundamental
// frequency samples: tonic estimation, pitch-class projection and
// profile matching. An empty input aborts the analysis; no matching is
// attempted without a valid distribution.
func (d *Detector) AnalyzeFrequencies(voiced []float64) (*Result, error) {
	tonicHz, err := d.tonic.Estimate(voiced)
	if err != nil {
		return nil, fmt.Errorf("detector: %w", err)
	}

	dist, err := d.projector.Project(voiced, tonicHz)
	if err != nil {
		return nil, fmt.Errorf("detector: %w", err)
	}

	matches := d.matcher.Match(dist)

	if len(matches) > 0 {
		d.logger.Info("raga analysis complete", logging.Fields{
			"tonic_hz":     tonicHz,
			"entropy_bits": dist.Entropy(),
			"top_raga":     matches[0].Name,
			"top_score":    matches[0].Score,
		})
	}

	return &Result{
		TonicHz:      tonicHz,
		Distribution: dist,
		Matches:      matches,
	}, nil
}
