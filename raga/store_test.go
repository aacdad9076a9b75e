package raga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/raga-sonar/algorithms/melakarta"
)

func TestNewStore(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	assert.Equal(t, melakarta.Count+len(janyaProfiles), store.Len())

	// Melakartas first, in index order.
	profiles := store.Profiles()
	assert.Equal(t, "Kanakangi", profiles[0].Name)
	assert.Equal(t, "Dheerasankarabharanam", profiles[28].Name)
	assert.Equal(t, "Rasikapriya", profiles[71].Name)
	for i := 0; i < melakarta.Count; i++ {
		assert.Equal(t, i+1, profiles[i].Melakarta)
		assert.Len(t, profiles[i].Intervals, 7)
	}

	// Janya entries appended after the parents.
	assert.Equal(t, "Mohanam", profiles[melakarta.Count].Name)
	assert.Zero(t, profiles[melakarta.Count].Melakarta)
}

func TestStore_Get(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	p, ok := store.Get("Mechakalyani")
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4, 6, 7, 9, 11}, p.Intervals)
	assert.Equal(t, 65, p.Melakarta)

	mohanam, ok := store.Get("Mohanam")
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4, 7, 9}, mohanam.Intervals)

	_, ok = store.Get("NoSuchRaga")
	assert.False(t, ok)
}

func TestStore_AllProfilesValid(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, p := range store.Profiles() {
		assert.NoError(t, p.Validate(), "profile %q", p.Name)
	}
}

func TestNewStoreWithProfiles_FailsFast(t *testing.T) {
	valid := Profile{
		Name:      "Mohanam",
		Swaras:    []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.G3, melakarta.Pa, melakarta.D2},
		Intervals: []int{0, 2, 4, 7, 9},
	}

	tests := []struct {
		name     string
		profiles []Profile
		wantErr  error
	}{
		{
			name: "interval above range",
			profiles: []Profile{{
				Name:      "Broken",
				Swaras:    []melakarta.Swara{melakarta.Sa, melakarta.Pa},
				Intervals: []int{0, 12},
			}},
			wantErr: ErrIntervalRange,
		},
		{
			name: "negative interval",
			profiles: []Profile{{
				Name:      "Broken",
				Swaras:    []melakarta.Swara{melakarta.Sa, melakarta.Pa},
				Intervals: []int{-1, 7},
			}},
			wantErr: ErrIntervalRange,
		},
		{
			name: "empty intervals",
			profiles: []Profile{{
				Name: "Broken",
			}},
			wantErr: ErrEmptyIntervals,
		},
		{
			name: "non-increasing intervals",
			profiles: []Profile{{
				Name:      "Broken",
				Swaras:    []melakarta.Swara{melakarta.Sa, melakarta.Pa, melakarta.Pa},
				Intervals: []int{0, 7, 7},
			}},
			wantErr: ErrIntervalOrder,
		},
		{
			name: "label mismatch",
			profiles: []Profile{{
				Name:      "Broken",
				Swaras:    []melakarta.Swara{melakarta.Sa},
				Intervals: []int{0, 7},
			}},
			wantErr: ErrLabelMismatch,
		},
		{
			name:     "unnamed profile",
			profiles: []Profile{{Intervals: []int{0, 7}}},
			wantErr:  ErrEmptyName,
		},
		{
			name:     "duplicate name",
			profiles: []Profile{valid, valid},
			wantErr:  ErrDuplicateProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStoreWithProfiles(tt.profiles)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStore_ProfilesCopy(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	profiles := store.Profiles()
	profiles[0] = Profile{Name: "Clobbered"}

	again, ok := store.Get("Kanakangi")
	assert.True(t, ok)
	assert.Equal(t, "Kanakangi", again.Name)
}
