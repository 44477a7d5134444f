package perform

import (
	"math"
	"testing"
)

// steadyTrail samples a constant pitch across a note at 0.1-beat spacing.
func steadyTrail(startBeat, durationBeats, midiFloat float64) []PitchTrailPoint {
	var points []PitchTrailPoint

	for beat := startBeat; beat < startBeat+durationBeats-1e-9; beat += 0.1 {
		points = append(points, PitchTrailPoint{Beat: beat, MidiFloat: midiFloat})
	}

	return points
}

func TestTechniqueMetricsWithTrail(t *testing.T) {
	score := makeScore([3]float64{0, 2, 60}, [3]float64{2, 2, 62})
	played := []PlayedNote{playedAt(0, 60), playedAt(2, 62)}

	trail := steadyTrail(0, 2, 60)
	trail = append(trail, steadyTrail(2, 2, 62)...)

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.PitchStability == nil {
		t.Fatal("PitchStability is nil")
	}

	if *a.PitchStability > 1 {
		t.Errorf("PitchStability on a steady tone: got %g cents, want ~0", *a.PitchStability)
	}

	if a.AttackQuality == nil {
		t.Fatal("AttackQuality is nil")
	}

	if *a.AttackQuality < 0.99 {
		t.Errorf("AttackQuality on instant centering: got %g, want ~1", *a.AttackQuality)
	}

	if a.BreathSupport == nil {
		t.Fatal("BreathSupport is nil")
	}

	if *a.BreathSupport < 0.99 {
		t.Errorf("BreathSupport with no drift: got %g, want ~1", *a.BreathSupport)
	}

	if len(a.TechniqueFeedback) != 0 {
		t.Errorf("clean run should not draw technique feedback: %q", a.TechniqueFeedback)
	}
}

func TestNilTrailSkipsTechnique(t *testing.T) {
	score := makeScore([3]float64{0, 2, 60})
	played := []PlayedNote{playedAt(0, 60)}

	a := Analyze(score, played, Config{})

	if a.PitchStability != nil || a.AttackQuality != nil || a.BreathSupport != nil || a.EnduranceDelta != nil {
		t.Error("technique metrics must stay nil without a trail")
	}

	if len(a.TechniqueFeedback) != 0 {
		t.Errorf("TechniqueFeedback: %q", a.TechniqueFeedback)
	}
}

func TestSparseTrailLeavesMetricsNil(t *testing.T) {
	score := makeScore([3]float64{0, 1, 60})
	played := []PlayedNote{playedAt(0, 60)}
	trail := []PitchTrailPoint{{Beat: 0, MidiFloat: 60}, {Beat: 0.5, MidiFloat: 60}}

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.PitchStability != nil || a.AttackQuality != nil || a.BreathSupport != nil {
		t.Error("two trail points per note must not produce within-note metrics")
	}
}

func TestWobblyToneDrawsStabilityFeedback(t *testing.T) {
	score := makeScore([3]float64{0, 2, 60})
	played := []PlayedNote{playedAt(0, 60)}

	// Alternate +-40 cents around the target, std dev 40 cents.
	var trail []PitchTrailPoint

	for i := 0; i < 20; i++ {
		offset := 0.4
		if i%2 == 1 {
			offset = -0.4
		}

		trail = append(trail, PitchTrailPoint{Beat: float64(i) * 0.1, MidiFloat: 60 + offset})
	}

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.PitchStability == nil {
		t.Fatal("PitchStability is nil")
	}

	if math.Abs(*a.PitchStability-40) > 1 {
		t.Errorf("PitchStability: got %g cents, want ~40", *a.PitchStability)
	}

	found := false

	for _, line := range a.TechniqueFeedback {
		if line == "Your pitch wobbles on sustained notes. Focus on steady airflow." {
			found = true
		}
	}

	if !found {
		t.Errorf("stability line missing: %q", a.TechniqueFeedback)
	}
}

func TestSlowAttackLowersQuality(t *testing.T) {
	score := makeScore([3]float64{0, 2, 60})
	played := []PlayedNote{playedAt(0, 60)}

	// First half of the note scoops up from a semitone below.
	var trail []PitchTrailPoint

	for i := 0; i < 20; i++ {
		midi := 60.0
		if i < 10 {
			midi = 59.0 + float64(i)*0.1
		}

		trail = append(trail, PitchTrailPoint{Beat: float64(i) * 0.1, MidiFloat: midi})
	}

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.AttackQuality == nil {
		t.Fatal("AttackQuality is nil")
	}

	if *a.AttackQuality > attackFeedbackFloor {
		t.Errorf("AttackQuality: got %g, want <= %g", *a.AttackQuality, attackFeedbackFloor)
	}

	found := false

	for _, line := range a.TechniqueFeedback {
		if line == "Your note attacks are slow to center. Try a firmer tongue stroke." {
			found = true
		}
	}

	if !found {
		t.Errorf("attack line missing: %q", a.TechniqueFeedback)
	}
}

func TestSaggingLongNoteLowersBreathSupport(t *testing.T) {
	score := makeScore([3]float64{0, 4, 60})
	played := []PlayedNote{playedAt(0, 60)}

	// Pitch sags 40 cents between the first and second half of the note.
	var trail []PitchTrailPoint

	for i := 0; i < 40; i++ {
		midi := 60.0
		if i >= 20 {
			midi = 59.6
		}

		trail = append(trail, PitchTrailPoint{Beat: float64(i) * 0.1, MidiFloat: midi})
	}

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.BreathSupport == nil {
		t.Fatal("BreathSupport is nil")
	}

	if *a.BreathSupport > breathFeedbackFloor {
		t.Errorf("BreathSupport: got %g, want <= %g", *a.BreathSupport, breathFeedbackFloor)
	}

	found := false

	for _, line := range a.TechniqueFeedback {
		if line == "Your pitch drops through long notes. Practice deep breathing." {
			found = true
		}
	}

	if !found {
		t.Errorf("breath line missing: %q", a.TechniqueFeedback)
	}
}

func TestShortNoteSkipsBreathSupport(t *testing.T) {
	score := makeScore([3]float64{0, 1, 60})
	played := []PlayedNote{playedAt(0, 60)}
	trail := steadyTrail(0, 1, 60)

	a := AnalyzeWithTrail(score, played, trail, Config{})
	if a.BreathSupport != nil {
		t.Error("BreathSupport must stay nil for notes shorter than two beats")
	}
}

func TestEnduranceDelta(t *testing.T) {
	// Eight targets: first half perfect, second half entirely missed.
	var (
		targets [][3]float64
		played  []PlayedNote
	)

	for i := 0; i < 8; i++ {
		targets = append(targets, [3]float64{float64(i), 1, 60})

		if i < 4 {
			played = append(played, playedAt(float64(i), 60))
		}
	}

	score := makeScore(targets...)
	trail := steadyTrail(0, 4, 60)

	a := AnalyzeWithTrail(score, played, trail, Config{})

	if a.EnduranceDelta == nil {
		t.Fatal("EnduranceDelta is nil")
	}

	if math.Abs(*a.EnduranceDelta-100) > 1e-9 {
		t.Errorf("EnduranceDelta: got %g, want 100", *a.EnduranceDelta)
	}

	found := false

	for _, line := range a.TechniqueFeedback {
		if line == "Your accuracy drops later in the piece. Build endurance with long tones." {
			found = true
		}
	}

	if !found {
		t.Errorf("endurance line missing: %q", a.TechniqueFeedback)
	}
}

func TestEnduranceNeedsEnoughNotes(t *testing.T) {
	score := makeScore([3]float64{0, 2, 60}, [3]float64{2, 2, 62}, [3]float64{4, 2, 64})
	played := []PlayedNote{playedAt(0, 60), playedAt(2, 62), playedAt(4, 64)}
	trail := steadyTrail(0, 2, 60)

	a := AnalyzeWithTrail(score, played, trail, Config{})
	if a.EnduranceDelta != nil {
		t.Error("EnduranceDelta must stay nil below four results")
	}
}
