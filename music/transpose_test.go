package music

import (
	"math"
	"testing"
)

func bbTrumpet() TransposeInfo {
	return TransposeInfo{Chromatic: -2, Diatonic: -1}
}

func TestConcertToWritten(t *testing.T) {
	tr := bbTrumpet()

	if got := ConcertToWritten(58, tr); got != 60 {
		t.Errorf("concert Bb3: got %d, want 60", got)
	}

	if got := ConcertToWritten(69, tr); got != 71 {
		t.Errorf("concert A4: got %d, want 71", got)
	}
}

func TestWrittenToConcert(t *testing.T) {
	tr := bbTrumpet()

	if got := WrittenToConcert(60, tr); got != 58 {
		t.Errorf("written C4: got %d, want 58", got)
	}

	if got := WrittenToConcert(71, tr); got != 69 {
		t.Errorf("written B4: got %d, want 69", got)
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	tr := bbTrumpet()

	for midi := 48; midi <= 84; midi++ {
		if got := ConcertToWritten(WrittenToConcert(midi, tr), tr); got != midi {
			t.Fatalf("round trip at %d: got %d", midi, got)
		}
	}
}

func TestNoTransposition(t *testing.T) {
	tr := TransposeInfo{}

	if got := ConcertToWritten(60, tr); got != 60 {
		t.Errorf("ConcertToWritten: got %d, want 60", got)
	}

	if got := WrittenToConcert(60, tr); got != 60 {
		t.Errorf("WrittenToConcert: got %d, want 60", got)
	}
}

func TestHzToWrittenMidi(t *testing.T) {
	// A4 = 440 Hz, concert MIDI 69, written MIDI 71 on a Bb instrument.
	written := HzToWrittenMidi(440, bbTrumpet())
	if math.Abs(written-71) > 0.01 {
		t.Errorf("HzToWrittenMidi(440): got %g, want 71", written)
	}
}
