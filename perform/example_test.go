package perform_test

import (
	"fmt"

	"github.com/cwbudde/algo-trainer/music"
	"github.com/cwbudde/algo-trainer/perform"
)

func ExampleAnalyze() {
	score := &music.Score{
		Tempo: 120,
		Notes: []music.NoteEvent{
			{StartBeat: 0, DurationBeats: 1, Midi: 60},
			{StartBeat: 1, DurationBeats: 1, Midi: 62},
			{StartBeat: 2, DurationBeats: 1, Midi: 64},
		},
		TotalBeats: 4,
	}

	played := []perform.PlayedNote{
		{OnsetBeat: 0.02, MidiFloat: 60.05, MidiRounded: 60, Confidence: 0.95},
		{OnsetBeat: 1.01, MidiFloat: 62.10, MidiRounded: 62, Confidence: 0.95},
		{OnsetBeat: 2.05, MidiFloat: 63.95, MidiRounded: 64, Confidence: 0.95},
	}

	analysis := perform.Analyze(score, played, perform.Config{})

	fmt.Printf("%d/%d correct\n", analysis.NotesCorrect, analysis.TotalNotes)
	fmt.Printf("pitch: %s, timing: %s\n", analysis.PitchTendency, analysis.TimingTendency)
	fmt.Println(analysis.Feedback[0])
	// Output:
	// 3/3 correct
	// pitch: accurate, timing: on_time
	// Excellent! You nailed 100% of the notes.
}
