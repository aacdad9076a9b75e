package raga

import (
	"fmt"

	"github.com/RyanBlaney/raga-sonar/algorithms/melakarta"
	"github.com/RyanBlaney/raga-sonar/logging"
)

// Store is an immutable collection of raga profiles. It is built once
// at startup and may be shared read-only across any number of
// concurrent analyses.
type Store struct {
	profiles []Profile
	byName   map[string]int
}

// NewStore builds the standard store: all 72 Melakarta ragas generated
// from the rule engine in index order, followed by the static janya
// entries. Construction fails fast on any malformed profile.
func NewStore() (*Store, error) {
	profiles := make([]Profile, 0, melakarta.Count+len(janyaProfiles))

	for _, st := range melakarta.All() {
		profiles = append(profiles, Profile{
			Name:        st.Name,
			Swaras:      st.Swaras,
			Intervals:   st.Intervals,
			Description: fmt.Sprintf("Melakarta %d, %s chakra", st.Index, st.ChakraName()),
			Melakarta:   st.Index,
		})
	}
	profiles = append(profiles, janyaProfiles...)

	return NewStoreWithProfiles(profiles)
}

// NewStoreWithProfiles builds a store from an explicit profile list,
// preserving its order. Every profile is validated and names must be
// unique.
func NewStoreWithProfiles(profiles []Profile) (*Store, error) {
	s := &Store{
		profiles: make([]Profile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}

	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("raga: build store: %w", err)
		}
		if _, exists := s.byName[p.Name]; exists {
			return nil, fmt.Errorf("raga: build store: %q: %w", p.Name, ErrDuplicateProfile)
		}
		s.byName[p.Name] = len(s.profiles)
		s.profiles = append(s.profiles, p)
	}

	logging.Debug("raga profile store built", logging.Fields{
		"profiles": len(s.profiles),
	})

	return s, nil
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	return len(s.profiles)
}

// Profiles returns the stored profiles in insertion order. The returned
// slice is a copy; the store itself never changes after construction.
func (s *Store) Profiles() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Get returns the profile with the given name.
func (s *Store) Get(name string) (Profile, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return Profile{}, false
	}
	return s.profiles[idx], true
}
