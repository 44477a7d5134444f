package exercise

// CurriculumExercise is one assignment within a curriculum stage.
type CurriculumExercise struct {
	Type        string
	Name        string
	Description string
	Difficulty  int
	Keys        []string
	TempoRange  [2]float64
	MidiRange   [2]int
}

// CurriculumStage groups exercises of one difficulty level.
type CurriculumStage struct {
	Stage       int
	Name        string
	Description string
	Exercises   []CurriculumExercise
}

// Curriculum returns the four-stage practice progression from first
// tones to the full two-octave range. Every exercise type referenced
// here is generatable via Generate.
func Curriculum() []CurriculumStage {
	return []CurriculumStage{
		{
			Stage:       1,
			Name:        "Beginner",
			Description: "Build fundamentals: tone production and simple melodies (C4-G4)",
			Exercises: []CurriculumExercise{
				{
					Type:        TypeLongTones,
					Name:        "Long Tones",
					Description: "Sustain each note with steady tone",
					Difficulty:  1,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{60, 80},
					MidiRange:   [2]int{60, 67},
				},
				{
					Type:        TypeMajorScale,
					Name:        "C Major Scale",
					Description: "Play the C major scale slowly and evenly",
					Difficulty:  1,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{60, 80},
					MidiRange:   [2]int{60, 67},
				},
			},
		},
		{
			Stage:       2,
			Name:        "Early Beginner",
			Description: "Expand range and flexibility (C4-C5)",
			Exercises: []CurriculumExercise{
				{
					Type:        TypeMajorScale,
					Name:        "Scales in C, F, G",
					Description: "Practice major scales in three keys",
					Difficulty:  2,
					Keys:        []string{"C4", "F4", "G4"},
					TempoRange:  [2]float64{70, 90},
					MidiRange:   [2]int{60, 72},
				},
				{
					Type:        TypeLipSlurs,
					Name:        "Simple Lip Slurs",
					Description: "Smooth transitions between harmonics",
					Difficulty:  2,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{70, 90},
					MidiRange:   [2]int{60, 72},
				},
				{
					Type:        TypeChromatic,
					Name:        "Chromatic Scale",
					Description: "Half steps through one octave",
					Difficulty:  2,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{70, 90},
					MidiRange:   [2]int{60, 72},
				},
				{
					Type:        TypeLongTones,
					Name:        "Extended Long Tones",
					Description: "Sustain notes across the full octave",
					Difficulty:  2,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{60, 80},
					MidiRange:   [2]int{60, 72},
				},
			},
		},
		{
			Stage:       3,
			Name:        "Intermediate",
			Description: "All keys, intervals, and arpeggios (C4-G5)",
			Exercises: []CurriculumExercise{
				{
					Type:        TypeMajorScale,
					Name:        "Scales in All Keys",
					Description: "Major scales in all 12 keys",
					Difficulty:  3,
					Keys: []string{
						"C4", "Db4", "D4", "Eb4", "E4", "F4",
						"F#4", "G4", "Ab4", "A4", "Bb4", "B4",
					},
					TempoRange: [2]float64{80, 120},
					MidiRange:  [2]int{60, 79},
				},
				{
					Type:        TypeIntervals,
					Name:        "Interval Training",
					Description: "Practice 3rds, 4ths, 5ths, and octaves",
					Difficulty:  3,
					Keys:        []string{"C4", "F4", "G4"},
					TempoRange:  [2]float64{80, 120},
					MidiRange:   [2]int{60, 79},
				},
				{
					Type:        TypeArpeggios,
					Name:        "Arpeggios",
					Description: "Major and minor arpeggios",
					Difficulty:  3,
					Keys:        []string{"C4", "F4", "G4"},
					TempoRange:  [2]float64{80, 120},
					MidiRange:   [2]int{60, 79},
				},
				{
					Type:        TypeLipSlurs,
					Name:        "Advanced Lip Slurs",
					Description: "Extended harmonic patterns",
					Difficulty:  3,
					Keys:        []string{"C4", "F4"},
					TempoRange:  [2]float64{80, 110},
					MidiRange:   [2]int{60, 79},
				},
				{
					Type:        TypeBrokenThirds,
					Name:        "Broken Thirds",
					Description: "Scale in thirds: C-E, D-F, E-G...",
					Difficulty:  3,
					Keys:        []string{"C4", "F4", "G4"},
					TempoRange:  [2]float64{80, 110},
					MidiRange:   [2]int{60, 79},
				},
			},
		},
		{
			Stage:       4,
			Name:        "Advanced",
			Description: "Full range, complex patterns, speed (C4-C6)",
			Exercises: []CurriculumExercise{
				{
					Type:        TypeTonguing,
					Name:        "Tonguing Patterns",
					Description: "Repeated notes with varying rhythms for articulation",
					Difficulty:  4,
					Keys:        []string{"C4", "G4", "C5"},
					TempoRange:  [2]float64{100, 160},
					MidiRange:   [2]int{60, 84},
				},
				{
					Type:        TypeOctaveStudies,
					Name:        "Octave Studies",
					Description: "Octave jumps on the same pitch class",
					Difficulty:  4,
					Keys:        []string{"C4", "F4", "G4"},
					TempoRange:  [2]float64{100, 140},
					MidiRange:   [2]int{60, 84},
				},
				{
					Type:        TypeBrokenThirds,
					Name:        "Fast Broken Thirds",
					Description: "Broken thirds at speed across full range",
					Difficulty:  4,
					Keys:        []string{"C4", "D4", "Eb4", "F4", "G4", "A4", "Bb4"},
					TempoRange:  [2]float64{110, 160},
					MidiRange:   [2]int{60, 84},
				},
				{
					Type:        TypeChromatic,
					Name:        "Extended Chromatic",
					Description: "Chromatic runs across two octaves",
					Difficulty:  4,
					Keys:        []string{"C4"},
					TempoRange:  [2]float64{100, 150},
					MidiRange:   [2]int{60, 84},
				},
				{
					Type:        TypeArpeggios,
					Name:        "Extended Arpeggios",
					Description: "Arpeggios across full range in all keys",
					Difficulty:  4,
					Keys:        []string{"C4", "D4", "Eb4", "F4", "G4", "Ab4", "Bb4"},
					TempoRange:  [2]float64{100, 140},
					MidiRange:   [2]int{60, 84},
				},
			},
		},
	}
}
