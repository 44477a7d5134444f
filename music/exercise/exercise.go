// Package exercise generates practice scores procedurally. Each
// generator produces a deterministic single-voice score in 4/4 from a
// root note and tempo, suitable for the same analysis pipeline as
// parsed repertoire.
package exercise

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-trainer/music"
)

// ErrUnknownType is returned by Generate for an unregistered exercise
// type.
var ErrUnknownType = errors.New("exercise: unknown exercise type")

// Exercise type names accepted by Generate.
const (
	TypeLongTones     = "long_tones"
	TypeMajorScale    = "major_scale"
	TypeChromatic     = "chromatic"
	TypeLipSlurs      = "lip_slurs"
	TypeIntervals     = "intervals"
	TypeArpeggios     = "arpeggios"
	TypeBrokenThirds  = "broken_thirds"
	TypeOctaveStudies = "octave_studies"
	TypeTonguing      = "tonguing"
)

var generators = map[string]func(rootMidi int, tempo float64) *music.Score{
	TypeLongTones:     longTones,
	TypeMajorScale:    majorScale,
	TypeChromatic:     chromatic,
	TypeLipSlurs:      lipSlurs,
	TypeIntervals:     intervals,
	TypeArpeggios:     arpeggios,
	TypeBrokenThirds:  brokenThirds,
	TypeOctaveStudies: octaveStudies,
	TypeTonguing:      tonguing,
}

// Types returns the registered exercise type names in sorted order.
func Types() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Generate builds the named exercise rooted at the given key, e.g.
// ("major_scale", "Bb3", 90). The key accepts the note-name syntax of
// music.ParseKey.
func Generate(exerciseType, key string, tempo float64) (*music.Score, error) {
	rootMidi, err := music.ParseKey(key)
	if err != nil {
		return nil, err
	}

	gen, ok := generators[exerciseType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, exerciseType)
	}

	return gen(rootMidi, tempo), nil
}

// builder accumulates notes at a running beat cursor and derives the
// measure table on finish. All exercises are written in 4/4.
type builder struct {
	notes []music.NoteEvent
	beat  float64
}

func (b *builder) measure() int {
	return int(b.beat/4) + 1
}

func (b *builder) note(durationBeats float64, midi int) {
	noteType := "quarter"

	switch durationBeats {
	case 4:
		noteType = "whole"
	case 2:
		noteType = "half"
	}

	b.notes = append(b.notes, music.NoteEvent{
		StartBeat:     b.beat,
		DurationBeats: durationBeats,
		Midi:          midi,
		MeasureNumber: b.measure(),
		NoteType:      noteType,
	})

	b.beat += durationBeats
}

func (b *builder) rest(durationBeats float64) {
	b.notes = append(b.notes, music.NoteEvent{
		StartBeat:     b.beat,
		DurationBeats: durationBeats,
		Midi:          music.RestMidi,
		IsRest:        true,
		MeasureNumber: b.measure(),
		NoteType:      "quarter",
	})

	b.beat += durationBeats
}

func (b *builder) score(tempo float64) *music.Score {
	var totalBeats float64

	for _, n := range b.notes {
		totalBeats = math.Max(totalBeats, n.StartBeat+n.DurationBeats)
	}

	numMeasures := int(math.Ceil(totalBeats / 4))
	measures := make([]music.MeasureInfo, numMeasures)

	for i := range measures {
		measures[i] = music.MeasureInfo{
			Number:        i + 1,
			StartBeat:     float64(i) * 4,
			DurationBeats: 4,
			TimeSigNum:    4,
			TimeSigDen:    4,
		}
	}

	return &music.Score{
		Tempo:      tempo,
		Notes:      b.notes,
		Measures:   measures,
		TotalBeats: totalBeats,
	}
}

// longTones sustains every chromatic step from the root up an octave
// and back, one whole note per measure.
func longTones(rootMidi int, tempo float64) *music.Score {
	var b builder

	for i := 0; i <= 12; i++ {
		b.note(4, rootMidi+i)
	}

	for i := 11; i >= 0; i-- {
		b.note(4, rootMidi+i)
	}

	return b.score(tempo)
}

var majorScaleSteps = [8]int{0, 2, 4, 5, 7, 9, 11, 12}

// majorScale runs the scale up, back down, and ends on a whole-note
// root: 16 notes total.
func majorScale(rootMidi int, tempo float64) *music.Score {
	var b builder

	for _, step := range majorScaleSteps {
		b.note(1, rootMidi+step)
	}

	for i := 6; i >= 0; i-- {
		b.note(1, rootMidi+majorScaleSteps[i])
	}

	b.note(4, rootMidi)

	return b.score(tempo)
}

// chromatic walks every half step up an octave and back, ending on a
// half-note root.
func chromatic(rootMidi int, tempo float64) *music.Score {
	var b builder

	for i := 0; i <= 12; i++ {
		b.note(1, rootMidi+i)
	}

	for i := 11; i >= 0; i-- {
		b.note(1, rootMidi+i)
	}

	b.note(2, rootMidi)

	return b.score(tempo)
}

// lipSlurs moves between harmonics of a single fingering: root, fifth,
// and octave patterns with a breath rest between patterns.
func lipSlurs(rootMidi int, tempo float64) *music.Score {
	patterns := [][]int{
		{0, 7, 12, 7},
		{0, 12, 0, 12},
		{2, 9, 14, 9},
		{0, 7, 12, 7, 0},
	}

	var b builder

	for _, pattern := range patterns {
		for _, interval := range pattern {
			b.note(1, rootMidi+interval)
		}

		b.rest(1)
	}

	return b.score(tempo)
}

// intervals drills minor third, major third, fourth, fifth, and octave
// jumps, each ascending then descending.
func intervals(rootMidi int, tempo float64) *music.Score {
	sizes := []int{3, 4, 5, 7, 12}

	var b builder

	for _, size := range sizes {
		b.note(1, rootMidi)
		b.note(1, rootMidi+size)
		b.note(1, rootMidi+size)
		b.note(1, rootMidi)
	}

	return b.score(tempo)
}

// arpeggios plays the major then the minor triad up and down, with a
// breath rest between them.
func arpeggios(rootMidi int, tempo float64) *music.Score {
	patterns := [][]int{
		{0, 4, 7, 12, 7, 4, 0},
		{0, 3, 7, 12, 7, 3, 0},
	}

	var b builder

	for _, pattern := range patterns {
		for _, interval := range pattern {
			b.note(1, rootMidi+interval)
		}

		b.rest(1)
	}

	return b.score(tempo)
}

// brokenThirds climbs the major scale in thirds (C-E, D-F, E-G, ...)
// through the octave and ends on a whole-note root.
func brokenThirds(rootMidi int, tempo float64) *music.Score {
	steps := []int{0, 2, 4, 5, 7, 9, 11, 12, 14, 16}

	var b builder

	for i := 0; i+2 < len(steps); i++ {
		b.note(1, rootMidi+steps[i])
		b.note(1, rootMidi+steps[i+2])
	}

	b.note(4, rootMidi)

	return b.score(tempo)
}

// octaveStudies jumps between the low and high octave of each scale
// degree up to the fifth, one measure per degree with a breath rest.
func octaveStudies(rootMidi int, tempo float64) *music.Score {
	degrees := []int{0, 2, 4, 5, 7}

	var b builder

	for _, degree := range degrees {
		low := rootMidi + degree

		b.note(1, low)
		b.note(1, low+12)
		b.note(1, low)
		b.rest(1)
	}

	return b.score(tempo)
}

// tonguing articulates repeated notes: a measure of quarters and a
// measure of eighths on the root, the same on the fifth, then a
// whole-note root.
func tonguing(rootMidi int, tempo float64) *music.Score {
	var b builder

	for _, interval := range []int{0, 7} {
		midi := rootMidi + interval

		for i := 0; i < 4; i++ {
			b.note(1, midi)
		}

		for i := 0; i < 8; i++ {
			b.note(0.5, midi)
		}
	}

	b.note(4, rootMidi)

	return b.score(tempo)
}
