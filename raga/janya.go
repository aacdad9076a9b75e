package raga

import "github.com/RyanBlaney/raga-sonar/algorithms/melakarta"

// janyaProfiles are derived (janya) ragas with fewer than seven swaras.
// They cannot be generated from the Melakarta rules and are declared
// statically, appended to the store after the 72 parent scales.
var janyaProfiles = []Profile{
	{
		Name:        "Mohanam",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.G3, melakarta.Pa, melakarta.D2},
		Intervals:   []int{0, 2, 4, 7, 9},
		Description: "Janya of Harikambhoji, pentatonic, all suddha swaras",
	},
	{
		Name:        "Hamsadhwani",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.G3, melakarta.Pa, melakarta.N3},
		Intervals:   []int{0, 2, 4, 7, 11},
		Description: "Janya of Dheerasankarabharanam, pentatonic",
	},
	{
		Name:        "Hindolam",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.G2, melakarta.M1, melakarta.D1, melakarta.N2},
		Intervals:   []int{0, 3, 5, 8, 10},
		Description: "Janya of Natabhairavi, pentatonic",
	},
	{
		Name:        "Madhyamavati",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.M1, melakarta.Pa, melakarta.N2},
		Intervals:   []int{0, 2, 5, 7, 10},
		Description: "Janya of Kharaharapriya, pentatonic",
	},
	{
		Name:        "Suddha Saveri",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.M1, melakarta.Pa, melakarta.D2},
		Intervals:   []int{0, 2, 5, 7, 9},
		Description: "Janya of Dheerasankarabharanam, pentatonic",
	},
	{
		Name:        "Abhogi",
		Swaras:      []melakarta.Swara{melakarta.Sa, melakarta.R2, melakarta.G2, melakarta.M1, melakarta.D2},
		Intervals:   []int{0, 2, 3, 5, 9},
		Description: "Janya of Kharaharapriya, pentatonic",
	},
}
