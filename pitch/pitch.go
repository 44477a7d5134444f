// Package pitch defines the estimate type shared by the pitch detectors.
package pitch

import "github.com/cwbudde/algo-trainer/music"

// Estimate is one pitch measurement for a single audio frame.
//
// Hz == 0 together with Confidence == 0 denotes silence or an unpitched
// frame. Detectors return estimates by value; an Estimate is never
// mutated after it is produced.
type Estimate struct {
	Hz         float64
	Confidence float64 // 0..1, higher means a clearer periodicity
	MidiFloat  float64 // fractional MIDI note number, 0 for silence
}

// Silence is the sentinel estimate for frames without a detectable pitch.
// Absence of pitch is a routine condition for a live microphone stream,
// so detectors report it as a value rather than an error.
func Silence() Estimate {
	return Estimate{}
}

// IsSilence reports whether the estimate is the silence sentinel.
func (e Estimate) IsSilence() bool {
	return e.Hz == 0 && e.Confidence == 0
}

// FromHz builds an estimate from a frequency and confidence, deriving the
// fractional MIDI value. Non-positive frequencies yield the silence
// sentinel.
func FromHz(hz, confidence float64) Estimate {
	if hz <= 0 {
		return Silence()
	}

	return Estimate{
		Hz:         hz,
		Confidence: confidence,
		MidiFloat:  music.HzToMidi(hz),
	}
}
