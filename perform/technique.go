package perform

import (
	"math"

	"github.com/cwbudde/algo-trainer/music"
)

const (
	// Notes with fewer trail points lack the resolution for any
	// within-note statistics.
	minTrailPointsPerNote = 3

	// A trail point counts as settled once it is within this many cents
	// of the target.
	attackWindowCents = 20.0

	// Breath support is only meaningful on held notes.
	minBreathNoteBeats = 2.0

	// Endurance comparison needs enough notes for both halves to mean
	// something.
	minEnduranceNotes = 4

	stabilityFeedbackCents  = 15.0
	attackFeedbackFloor     = 0.7
	breathFeedbackFloor     = 0.7
	enduranceFeedbackPoints = 15.0
)

// applyTechnique fills the four technique metrics and their feedback
// lines from the dense pitch trail. Metrics that cannot be measured stay
// nil; an unmeasured metric is not a perfect one.
func applyTechnique(a *Analysis, targets []music.NoteEvent, trail []PitchTrailPoint) {
	if len(trail) == 0 || len(targets) == 0 {
		return
	}

	var (
		stabilityValues []float64
		attackRatios    []float64
		sustainDrifts   []float64
	)

	for _, target := range targets {
		noteEnd := target.StartBeat + target.DurationBeats

		var points []PitchTrailPoint

		for _, p := range trail {
			if p.Beat >= target.StartBeat && p.Beat < noteEnd {
				points = append(points, p)
			}
		}

		if len(points) < minTrailPointsPerNote {
			continue
		}

		targetMidi := float64(target.Midi)

		// Pitch stability: std dev in cents relative to the target.
		cents := make([]float64, len(points))
		for i, p := range points {
			cents[i] = (p.MidiFloat - targetMidi) * 100
		}

		meanCents := meanOf(cents)

		var variance float64
		for _, c := range cents {
			d := c - meanCents
			variance += d * d
		}

		variance /= float64(len(cents))
		stabilityValues = append(stabilityValues, math.Sqrt(variance))

		// Attack quality: leading points outside the window before the
		// pitch first settles.
		attackCount := 0

		for _, c := range cents {
			if math.Abs(c) <= attackWindowCents {
				break
			}

			attackCount++
		}

		attackRatios = append(attackRatios, float64(attackCount)/float64(len(points)))

		// Breath support: pitch drift between the halves of a held note.
		if target.DurationBeats >= minBreathNoteBeats {
			mid := len(points) / 2
			if mid > 0 {
				var firstSum, secondSum float64

				for _, p := range points[:mid] {
					firstSum += p.MidiFloat
				}

				for _, p := range points[mid:] {
					secondSum += p.MidiFloat
				}

				firstAvg := firstSum / float64(mid)
				secondAvg := secondSum / float64(len(points)-mid)

				sustainDrifts = append(sustainDrifts, math.Abs(secondAvg-firstAvg)*100)
			}
		}
	}

	if len(stabilityValues) > 0 {
		v := meanOf(stabilityValues)
		a.PitchStability = &v
	}

	if len(attackRatios) > 0 {
		// 0 = never settles, 1 = instant; invert the settle fraction.
		v := math.Max(0, 1-meanOf(attackRatios))
		a.AttackQuality = &v
	}

	if len(sustainDrifts) > 0 {
		// 50 cents of drift or more scores zero.
		v := math.Max(0, 1-math.Min(meanOf(sustainDrifts)/50, 1))
		a.BreathSupport = &v
	}

	if len(a.NoteResults) >= minEnduranceNotes {
		mid := len(a.NoteResults) / 2
		first := correctFraction(a.NoteResults[:mid])
		second := correctFraction(a.NoteResults[mid:])

		v := (first - second) * 100
		a.EnduranceDelta = &v
	}

	var technique []string

	if a.PitchStability != nil && *a.PitchStability > stabilityFeedbackCents {
		technique = append(technique, "Your pitch wobbles on sustained notes. Focus on steady airflow.")
	}

	if a.AttackQuality != nil && *a.AttackQuality < attackFeedbackFloor {
		technique = append(technique, "Your note attacks are slow to center. Try a firmer tongue stroke.")
	}

	if a.BreathSupport != nil && *a.BreathSupport < breathFeedbackFloor {
		technique = append(technique, "Your pitch drops through long notes. Practice deep breathing.")
	}

	if a.EnduranceDelta != nil && *a.EnduranceDelta > enduranceFeedbackPoints {
		technique = append(technique, "Your accuracy drops later in the piece. Build endurance with long tones.")
	}

	a.TechniqueFeedback = technique
}

func correctFraction(results []NoteResult) float64 {
	if len(results) == 0 {
		return 0
	}

	correct := 0

	for _, r := range results {
		if r.Status == StatusCorrect {
			correct++
		}
	}

	return float64(correct) / float64(len(results))
}
