package perform

import (
	"fmt"
	"math"
)

// buildFeedback renders the diagnostic sentences in fixed order: overall
// banding, missed notes, sustained pitch bias, sustained timing bias,
// then one line per problem interval, worst first.
func buildFeedback(a *Analysis, pitchErrors, timingErrors []float64) []string {
	var feedback []string

	pct := float64(a.NotesCorrect) / float64(a.TotalNotes) * 100

	switch {
	case pct >= 90:
		feedback = append(feedback, fmt.Sprintf("Excellent! You nailed %.0f%% of the notes.", pct))
	case pct >= 70:
		feedback = append(feedback, fmt.Sprintf("Good job! You got %.0f%% of the notes right.", pct))
	case pct >= 50:
		feedback = append(feedback, fmt.Sprintf("Keep practicing! You hit %.0f%% of the notes correctly.", pct))
	default:
		feedback = append(feedback, fmt.Sprintf("This one's tough! You got %.0f%% correct. Try slowing down the tempo.", pct))
	}

	if a.NotesMissed > 0 {
		plural := "s"
		if a.NotesMissed == 1 {
			plural = ""
		}

		feedback = append(feedback, fmt.Sprintf(
			"You missed %d note%s. Make sure to play through the whole piece.", a.NotesMissed, plural))
	}

	if len(pitchErrors) > 0 && meanAbs(pitchErrors) > 30 {
		switch {
		case a.AvgPitchErrorCents > 10:
			feedback = append(feedback, fmt.Sprintf(
				"Your pitch is consistently %.0f cents sharp. Try relaxing your embouchure slightly.",
				a.AvgPitchErrorCents))
		case a.AvgPitchErrorCents < -10:
			feedback = append(feedback, fmt.Sprintf(
				"Your pitch is consistently %.0f cents flat. Try firming up your embouchure and using more air support.",
				math.Abs(a.AvgPitchErrorCents)))
		}
	}

	if len(timingErrors) > 0 && meanAbs(timingErrors) > 0.15 {
		switch {
		case a.AvgTimingErrorBeats > 0.1:
			feedback = append(feedback,
				"You tend to come in late. Try anticipating the beat and starting your air a bit earlier.")
		case a.AvgTimingErrorBeats < -0.1:
			feedback = append(feedback,
				"You tend to rush ahead. Try listening to the beat and holding back slightly.")
		}
	}

	for _, problem := range a.ProblemIntervals {
		dirWord := "descending"
		if problem.Direction == DirectionUp {
			dirWord = "ascending"
		}

		if problem.AvgErrorCents > 0 {
			feedback = append(feedback, fmt.Sprintf(
				"You overshoot when going %s from %s to %s (avg +%.0f cents). Try less pressure on the jump.",
				dirWord, problem.FromNote, problem.ToNote, problem.AvgErrorCents))
		} else {
			feedback = append(feedback, fmt.Sprintf(
				"You undershoot when going %s from %s to %s (avg %.0f cents). Use more air support on the jump.",
				dirWord, problem.FromNote, problem.ToNote, problem.AvgErrorCents))
		}
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Play with the mic active to get feedback!")
	}

	return feedback
}
