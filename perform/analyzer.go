package perform

import (
	"math"

	"github.com/cwbudde/algo-trainer/music"
)

// Analyzer matches performances against scores under fixed tolerances.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given tolerances.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze is a one-shot analysis without a pitch trail.
func Analyze(score *music.Score, played []PlayedNote, cfg Config) Analysis {
	return NewAnalyzer(cfg).Analyze(score, played)
}

// AnalyzeWithTrail is a one-shot analysis with technique diagnostics.
func AnalyzeWithTrail(score *music.Score, played []PlayedNote, trail []PitchTrailPoint, cfg Config) Analysis {
	return NewAnalyzer(cfg).AnalyzeWithTrail(score, played, trail)
}

// Analyze matches the played notes against the score and aggregates
// pitch and timing diagnostics. Technique metrics are left unmeasured.
func (a *Analyzer) Analyze(score *music.Score, played []PlayedNote) Analysis {
	return a.AnalyzeWithTrail(score, played, nil)
}

// AnalyzeWithTrail additionally derives technique metrics from a dense
// pitch trail. A nil or empty trail skips technique analysis.
//
// The function is pure: identical inputs yield the identical report.
func (a *Analyzer) AnalyzeWithTrail(score *music.Score, played []PlayedNote, trail []PitchTrailPoint) Analysis {
	targets := score.TargetNotes()
	totalNotes := len(targets)

	if totalNotes == 0 {
		return Analysis{
			Feedback: []string{"No notes in score to analyze."},
		}
	}

	results := a.matchNotes(targets, played)

	var (
		pitchErrors  []float64
		timingErrors []float64
	)

	notesCorrect := 0
	notesWrongPitch := 0
	notesMissed := 0

	for _, r := range results {
		switch r.Status {
		case StatusCorrect:
			notesCorrect++
		case StatusWrongPitch:
			notesWrongPitch++
		case StatusMissed:
			notesMissed++
		}

		if r.Matched() {
			pitchErrors = append(pitchErrors, r.PitchErrorCents)
			timingErrors = append(timingErrors, r.TimingErrorBeats)
		}
	}

	avgPitchError := meanOf(pitchErrors)
	avgTimingError := meanOf(timingErrors)

	pitchTendency := TendencyAccurate

	switch {
	case avgPitchError > 10:
		pitchTendency = TendencySharp
	case avgPitchError < -10:
		pitchTendency = TendencyFlat
	}

	timingTendency := TimingOnTime

	switch {
	case avgTimingError > 0.1:
		timingTendency = TimingLate
	case avgTimingError < -0.1:
		timingTendency = TimingEarly
	}

	problems := a.analyzeIntervals(results)

	analysis := Analysis{
		TotalNotes:          totalNotes,
		NotesCorrect:        notesCorrect,
		NotesWrongPitch:     notesWrongPitch,
		NotesMissed:         notesMissed,
		AvgPitchErrorCents:  avgPitchError,
		AvgTimingErrorBeats: avgTimingError,
		PitchTendency:       pitchTendency,
		TimingTendency:      timingTendency,
		ProblemIntervals:    problems,
		NoteResults:         results,
		OverallScore:        overallScore(notesCorrect, notesWrongPitch, totalNotes, pitchErrors),
	}

	analysis.Feedback = buildFeedback(&analysis, pitchErrors, timingErrors)

	if len(trail) > 0 {
		applyTechnique(&analysis, targets, trail)
	}

	return analysis
}

// matchNotes performs the greedy score-order assignment. For each target,
// in ascending start-beat order, the unused played note with the smallest
// onset distance within the timing tolerance wins; ties go to the first
// candidate found (strict < comparison), and a consumed played note is
// never reconsidered for a later target. Deliberately not a globally
// optimal assignment: onsets of a real single-line performance are
// roughly monotonic with the score, and the stable greedy pass keeps the
// result order-deterministic.
func (a *Analyzer) matchNotes(targets []music.NoteEvent, played []PlayedNote) []NoteResult {
	results := make([]NoteResult, 0, len(targets))
	used := make([]bool, len(played))

	for _, target := range targets {
		bestIdx := -1
		bestDist := math.MaxFloat64

		for i, p := range played {
			if used[i] {
				continue
			}

			dist := math.Abs(p.OnsetBeat - target.StartBeat)
			if dist <= a.cfg.TimingToleranceBeats && dist < bestDist {
				bestDist = dist
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			results = append(results, NoteResult{
				TargetMidi: target.Midi,
				TargetBeat: target.StartBeat,
				Status:     StatusMissed,
			})

			continue
		}

		used[bestIdx] = true
		p := played[bestIdx]

		centError := (p.MidiFloat - float64(target.Midi)) * 100

		status := StatusCorrect
		if math.Abs(centError) > a.cfg.ToleranceCents {
			status = StatusWrongPitch
		}

		results = append(results, NoteResult{
			TargetMidi:       target.Midi,
			TargetBeat:       target.StartBeat,
			Status:           status,
			PlayedMidi:       p.MidiFloat,
			PitchErrorCents:  centError,
			TimingErrorBeats: p.OnsetBeat - target.StartBeat,
		})
	}

	return results
}

// overallScore weights getting the right note over being merely close:
// correct rate 60 points, hit rate (attempted regardless of accuracy) 20
// points, mean-absolute-cent pitch quality up to 20 points.
func overallScore(notesCorrect, notesWrongPitch, totalNotes int, pitchErrors []float64) float64 {
	hitRate := float64(notesCorrect+notesWrongPitch) / float64(totalNotes)
	correctRate := float64(notesCorrect) / float64(totalNotes)

	pitchScore := 0.0
	if len(pitchErrors) > 0 {
		pitchScore = (1 - math.Min(meanAbs(pitchErrors)/100, 1)) * 100
	}

	return math.Min(100, correctRate*60+hitRate*20+pitchScore*0.2)
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func meanAbs(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += math.Abs(v)
	}

	return sum / float64(len(values))
}
