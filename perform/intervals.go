package perform

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-trainer/music"
)

const (
	// A jump counts as a problem pattern only when it recurs; a one-off
	// slip is noise.
	minIntervalOccurrences = 2
	minIntervalMeanCents   = 20.0
	maxProblemIntervals    = 3
)

// analyzeIntervals finds melodic jumps the performer repeatedly lands
// wrong on. For each consecutive pair of matched results whose second
// note missed by more than half the tolerance, the error accumulates
// under the (from, to) pitch pair. Pairs seen at least twice with a mean
// absolute error above 20 cents are reported, worst first, top 3.
func (a *Analyzer) analyzeIntervals(results []NoteResult) []IntervalProblem {
	type intervalKey struct {
		from, to int
	}

	intervalErrors := make(map[intervalKey][]float64)

	for i := 1; i < len(results); i++ {
		prev := results[i-1]
		curr := results[i]

		if !prev.Matched() || !curr.Matched() {
			continue
		}

		if math.Abs(curr.PitchErrorCents) > a.cfg.ToleranceCents*0.5 {
			key := intervalKey{from: prev.TargetMidi, to: curr.TargetMidi}
			intervalErrors[key] = append(intervalErrors[key], curr.PitchErrorCents)
		}
	}

	problems := make([]IntervalProblem, 0, len(intervalErrors))

	for key, errs := range intervalErrors {
		if len(errs) < minIntervalOccurrences {
			continue
		}

		avg := meanOf(errs)
		if math.Abs(avg) <= minIntervalMeanCents {
			continue
		}

		direction := DirectionDown
		if key.to > key.from {
			direction = DirectionUp
		}

		problems = append(problems, IntervalProblem{
			FromMidi:      key.from,
			ToMidi:        key.to,
			FromNote:      music.MidiName(key.from),
			ToNote:        music.MidiName(key.to),
			Direction:     direction,
			AvgErrorCents: avg,
			Count:         len(errs),
		})
	}

	// Severity order, with a fixed pitch-pair tie-break so the report is
	// identical for identical inputs regardless of map iteration order.
	sort.Slice(problems, func(i, j int) bool {
		ai := math.Abs(problems[i].AvgErrorCents)
		aj := math.Abs(problems[j].AvgErrorCents)

		if ai != aj {
			return ai > aj
		}

		if problems[i].FromMidi != problems[j].FromMidi {
			return problems[i].FromMidi < problems[j].FromMidi
		}

		return problems[i].ToMidi < problems[j].ToMidi
	})

	if len(problems) > maxProblemIntervals {
		problems = problems[:maxProblemIntervals]
	}

	return problems
}
