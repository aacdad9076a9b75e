package raga

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/raga-sonar/algorithms/melakarta"
	"github.com/RyanBlaney/raga-sonar/algorithms/tonal"
)

// Match is one ranked candidate: a stored profile and its similarity to
// the observed distribution. Score is the Pearson correlation in
// [-1, 1], or NaN when either distribution is degenerate (constant).
type Match struct {
	Name        string            `json:"name"`
	Score       float64           `json:"score"`
	Description string            `json:"description"`
	Swaras      []melakarta.Swara `json:"swaras"`
	Intervals   []int             `json:"intervals"`
}

// Matcher ranks every profile of a store against an observed
// pitch-class distribution. It never fails on a well-formed
// distribution: degenerate correlations rank last instead of erroring.
type Matcher struct {
	store *Store
}

// NewMatcher creates a matcher over the given store.
func NewMatcher(store *Store) *Matcher {
	return &Matcher{store: store}
}

// Match scores the observed distribution against every stored profile
// and returns all candidates ordered by descending correlation. NaN
// scores sort below every real score; ties keep store insertion order.
func (m *Matcher) Match(observed tonal.PitchClassDistribution) []Match {
	matches := make([]Match, 0, m.store.Len())

	for _, p := range m.store.profiles {
		ref := p.ReferenceDistribution()
		score := stat.Correlation(observed.Bins, ref.Bins, nil)

		matches = append(matches, Match{
			Name:        p.Name,
			Score:       score,
			Description: p.Description,
			Swaras:      p.Swaras,
			Intervals:   p.Intervals,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := matches[i].Score, matches[j].Score
		if math.IsNaN(si) {
			return false
		}
		if math.IsNaN(sj) {
			return true
		}
		return si > sj
	})

	return matches
}

// Best returns the top-ranked match, or false for an empty store.
func (m *Matcher) Best(observed tonal.PitchClassDistribution) (Match, bool) {
	matches := m.Match(observed)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
