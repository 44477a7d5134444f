// Package music defines the in-memory score model shared by the pitch
// detector, the performance analyzer, the MusicXML loader, and the
// exercise generators, together with the pitch arithmetic that connects
// MIDI note numbers, note names, and frequencies.
package music

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RestMidi is the MIDI value carried by rest events.
const RestMidi = -1

// NoteEvent is a single note or rest in a score.
//
// Midi is RestMidi if and only if IsRest is true.
type NoteEvent struct {
	StartBeat     float64
	DurationBeats float64
	Midi          int
	IsRest        bool
	MeasureNumber int
	NoteType      string
}

// MeasureInfo describes one measure of a score.
type MeasureInfo struct {
	Number        int
	StartBeat     float64
	DurationBeats float64
	TimeSigNum    int
	TimeSigDen    int
}

// TransposeInfo holds the transposition of a written part relative to
// concert pitch, as found in a MusicXML transpose element. For a Bb
// trumpet Chromatic is -2: written C4 (60) sounds as concert Bb3 (58).
type TransposeInfo struct {
	Chromatic int
	Diatonic  int
}

// Score is an ordered single-voice score.
type Score struct {
	Tempo      float64
	Notes      []NoteEvent
	Measures   []MeasureInfo
	KeyFifths  int
	Transpose  *TransposeInfo
	Title      string
	TotalBeats float64
}

// TargetNotes returns the non-rest notes of the score in order. These are
// the notes a performance is matched against.
func (s *Score) TargetNotes() []NoteEvent {
	targets := make([]NoteEvent, 0, len(s.Notes))

	for _, n := range s.Notes {
		if !n.IsRest {
			targets = append(targets, n)
		}
	}

	return targets
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MidiName returns the scientific pitch name of a MIDI note number,
// e.g. 60 -> "C4", 58 -> "A#3". Negative values continue the scientific
// octave numbering below MIDI 0 (C-1), so -1 names "B-2". No real score
// reaches that range; RestMidi events are never named.
func MidiName(midi int) string {
	pc := midi % 12
	if pc < 0 {
		pc += 12
	}

	octave := midi/12 - 1
	if midi < 0 && midi%12 != 0 {
		octave--
	}

	return noteNames[pc] + strconv.Itoa(octave)
}

// MidiFromPitch converts a MusicXML-style pitch (step letter, chromatic
// alteration, octave) to a MIDI note number. Unknown steps map to C.
func MidiFromPitch(step byte, alter, octave int) int {
	var base int

	switch step {
	case 'C':
		base = 0
	case 'D':
		base = 2
	case 'E':
		base = 4
	case 'F':
		base = 5
	case 'G':
		base = 7
	case 'A':
		base = 9
	case 'B':
		base = 11
	}

	return (octave+1)*12 + base + alter
}

// ParseKey parses a note name like "C4", "Bb3", or "F#4" into a MIDI note
// number. The octave may be omitted and defaults to 4.
func ParseKey(key string) (int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, fmt.Errorf("music: empty key")
	}

	step := key[0]
	rest := key[1:]

	alter := 0

	switch {
	case strings.HasPrefix(rest, "#"):
		alter = 1
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		alter = -1
		rest = rest[1:]
	}

	octave := 4

	if rest != "" {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return 0, fmt.Errorf("music: invalid octave in key %q", key)
		}

		octave = v
	}

	return MidiFromPitch(step, alter, octave), nil
}

// MidiToHz returns the equal-temperament frequency of a fractional MIDI
// note number (A4 = MIDI 69 = 440 Hz).
func MidiToHz(midi float64) float64 {
	return 440 * math.Pow(2, (midi-69)/12)
}

// HzToMidi returns the fractional MIDI note number of a frequency.
// Returns 0 for non-positive frequencies.
func HzToMidi(hz float64) float64 {
	if hz <= 0 {
		return 0
	}

	return 69 + 12*math.Log2(hz/440)
}
