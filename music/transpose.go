package music

// ConcertToWritten converts a concert-pitch MIDI note to the written
// pitch for a transposing instrument. For a Bb trumpet (Chromatic -2)
// concert Bb3 (58) becomes written C4 (60).
func ConcertToWritten(midiConcert int, t TransposeInfo) int {
	return midiConcert - t.Chromatic
}

// WrittenToConcert converts a written-pitch MIDI note to concert pitch.
// Inverse of [ConcertToWritten] for all inputs.
func WrittenToConcert(midiWritten int, t TransposeInfo) int {
	return midiWritten + t.Chromatic
}

// HzToWrittenMidi converts a detected concert-pitch frequency to the
// written-pitch fractional MIDI value for display.
func HzToWrittenMidi(hz float64, t TransposeInfo) float64 {
	return HzToMidi(hz) - float64(t.Chromatic)
}
