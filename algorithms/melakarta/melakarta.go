// Package melakarta derives the 72 canonical Carnatic parent scales
// (Melakarta ragas) from their index.
//
// The Melakarta system arranges all theoretically complete seven-note
// scales into twelve chakras of six ragas each. Indices 1-36 take the
// suddha madhyama (M1), 37-72 the prati madhyama (M2). Within a 36-raga
// half, the chakra fixes the rishabha/gandhara pair and the position
// within the chakra fixes the dhaivata/nishada pair.
package melakarta

import (
	"errors"
	"fmt"
)

// Count is the number of Melakarta ragas.
const Count = 72

// ErrIndexOutOfRange is returned for indices outside [1, Count].
var ErrIndexOutOfRange = errors.New("melakarta index out of range [1, 72]")

// Swara identifies a named scale-degree variant (e.g. R2 is the
// chatusruti rishabha). The seven degree categories are S, R, G, M, P,
// D and N; R, G, D and N have three variants each, M has two.
type Swara string

const (
	Sa Swara = "S"
	R1 Swara = "R1"
	R2 Swara = "R2"
	R3 Swara = "R3"
	G1 Swara = "G1"
	G2 Swara = "G2"
	G3 Swara = "G3"
	M1 Swara = "M1"
	M2 Swara = "M2"
	Pa Swara = "P"
	D1 Swara = "D1"
	D2 Swara = "D2"
	D3 Swara = "D3"
	N1 Swara = "N1"
	N2 Swara = "N2"
	N3 Swara = "N3"
)

// swaraIntervals maps every swara variant to its semitone offset from Sa.
// Variants of adjacent categories overlap (R3 and G2 both sit three
// semitones above Sa); the chakra tables below never select an
// overlapping pair, which keeps Structure intervals strictly increasing.
var swaraIntervals = map[Swara]int{
	Sa: 0,
	R1: 1, R2: 2, R3: 3,
	G1: 2, G2: 3, G3: 4,
	M1: 5, M2: 6,
	Pa: 7,
	D1: 8, D2: 9, D3: 10,
	N1: 9, N2: 10, N3: 11,
}

// Interval returns the semitone offset of the swara from Sa, or -1 for
// an unknown variant.
func (s Swara) Interval() int {
	interval, ok := swaraIntervals[s]
	if !ok {
		return -1
	}
	return interval
}

// Structure is the canonical scale structure of one Melakarta raga:
// exactly seven swaras in ascending order with their semitone intervals.
type Structure struct {
	Index     int     `json:"index"`     // Melakarta number (1-72)
	Name      string  `json:"name"`      // Canonical raga name
	Swaras    []Swara `json:"swaras"`    // [S, R, G, M, P, D, N] variants
	Intervals []int   `json:"intervals"` // Semitone offsets from Sa, ascending from 0
	Chakra    int     `json:"chakra"`    // Chakra number (1-12)
	Position  int     `json:"position"`  // Position within the chakra (1-6)
}

// Madhyama returns the madhyama variant of the scale (M1 or M2).
func (st Structure) Madhyama() Swara {
	return st.Swaras[3]
}

// ChakraName returns the traditional name of the structure's chakra.
func (st Structure) ChakraName() string {
	return chakraNames[st.Chakra-1]
}

// variantPair is an adjacent pair of swara variants selected together.
type variantPair struct {
	lower Swara
	upper Swara
}

// rgByChakra fixes the rishabha/gandhara pair for each chakra within a
// madhyama half. The pairing follows the published Melakarta table:
// R below G always, so only six of the nine variant combinations occur.
var rgByChakra = [6]variantPair{
	{R1, G1},
	{R1, G2},
	{R1, G3},
	{R2, G2},
	{R2, G3},
	{R3, G3},
}

// dnByPosition fixes the dhaivata/nishada pair for each position within
// a chakra, mirroring the R/G progression an octave up.
var dnByPosition = [6]variantPair{
	{D1, N1},
	{D1, N2},
	{D1, N3},
	{D2, N2},
	{D2, N3},
	{D3, N3},
}

// FromIndex returns the canonical scale structure of the Melakarta with
// the given index. The derivation is pure and total on [1, Count];
// anything outside that range yields ErrIndexOutOfRange.
func FromIndex(index int) (Structure, error) {
	if index < 1 || index > Count {
		return Structure{}, fmt.Errorf("melakarta: index %d: %w", index, ErrIndexOutOfRange)
	}

	madhyama := M1
	adjusted := index
	if index > 36 {
		madhyama = M2
		adjusted = index - 36
	}

	chakra := (adjusted-1)/6 + 1
	position := (adjusted-1)%6 + 1

	rg := rgByChakra[chakra-1]
	dn := dnByPosition[position-1]

	swaras := []Swara{Sa, rg.lower, rg.upper, madhyama, Pa, dn.lower, dn.upper}
	intervals := make([]int, len(swaras))
	for i, s := range swaras {
		intervals[i] = s.Interval()
	}

	if index > 36 {
		chakra += 6
	}

	return Structure{
		Index:     index,
		Name:      melakartaNames[index-1],
		Swaras:    swaras,
		Intervals: intervals,
		Chakra:    chakra,
		Position:  position,
	}, nil
}

// All returns the structures of all 72 Melakartas in index order.
func All() []Structure {
	structures := make([]Structure, 0, Count)
	for i := 1; i <= Count; i++ {
		st, err := FromIndex(i)
		if err != nil {
			// Unreachable: i is always in domain
			panic(err)
		}
		structures = append(structures, st)
	}
	return structures
}
