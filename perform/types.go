// Package perform aligns a detected-note stream against a reference score
// and derives pitch, timing, and technique diagnostics.
package perform

// Status classifies the outcome of one target note.
type Status int

// Note outcome values.
const (
	StatusCorrect Status = iota
	StatusWrongPitch
	StatusMissed
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusWrongPitch:
		return "wrong_pitch"
	case StatusMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// PitchTendency is the aggregate intonation bias of a performance.
type PitchTendency int

// Pitch tendency values.
const (
	TendencyAccurate PitchTendency = iota
	TendencySharp
	TendencyFlat
)

// String returns the wire name of the tendency.
func (p PitchTendency) String() string {
	switch p {
	case TendencySharp:
		return "sharp"
	case TendencyFlat:
		return "flat"
	default:
		return "accurate"
	}
}

// TimingTendency is the aggregate timing bias of a performance.
type TimingTendency int

// Timing tendency values.
const (
	TimingOnTime TimingTendency = iota
	TimingLate
	TimingEarly
)

// String returns the wire name of the tendency.
func (t TimingTendency) String() string {
	switch t {
	case TimingLate:
		return "late"
	case TimingEarly:
		return "early"
	default:
		return "on_time"
	}
}

// Direction is the melodic direction of an interval.
type Direction int

// Interval direction values.
const (
	DirectionUp Direction = iota
	DirectionDown
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}

	return "up"
}

// PlayedNote is one detected onset of the performance, produced upstream
// by note segmentation over the pitch detector output.
type PlayedNote struct {
	OnsetBeat   float64
	MidiFloat   float64
	MidiRounded int
	Confidence  float64
}

// PitchTrailPoint is one sample of the continuously tracked pitch,
// independent of discrete note boundaries.
type PitchTrailPoint struct {
	Beat      float64
	MidiFloat float64
}

// NoteResult is the outcome for one target note, in score order.
//
// PlayedMidi, PitchErrorCents, and TimingErrorBeats are meaningful only
// when the note was matched, i.e. Status != StatusMissed.
type NoteResult struct {
	TargetMidi       int
	TargetBeat       float64
	Status           Status
	PlayedMidi       float64
	PitchErrorCents  float64
	TimingErrorBeats float64
}

// Matched reports whether a played note was assigned to this target.
func (r NoteResult) Matched() bool {
	return r.Status != StatusMissed
}

// IntervalProblem is a recurring mis-execution of a specific melodic jump.
type IntervalProblem struct {
	FromMidi      int
	ToMidi        int
	FromNote      string
	ToNote        string
	Direction     Direction
	AvgErrorCents float64
	Count         int
}

// Analysis is the aggregate report for one performance. It is a value
// snapshot; nothing in it is shared or mutated after construction.
//
// The four technique metrics are nil when no pitch trail was supplied or
// when the trail carried too little data; a nil metric is "not measured",
// never "perfect".
type Analysis struct {
	TotalNotes      int
	NotesCorrect    int
	NotesWrongPitch int
	NotesMissed     int

	AvgPitchErrorCents  float64
	AvgTimingErrorBeats float64
	PitchTendency       PitchTendency
	TimingTendency      TimingTendency

	ProblemIntervals []IntervalProblem
	Feedback         []string
	OverallScore     float64 // 0..100
	NoteResults      []NoteResult

	PitchStability    *float64 // avg std dev of in-note pitch, cents
	AttackQuality     *float64 // 0..1, higher settles faster
	BreathSupport     *float64 // 0..1, higher holds pitch through long notes
	EnduranceDelta    *float64 // accuracy drop first half vs second, points
	TechniqueFeedback []string
}

const (
	defaultToleranceCents       = 50.0
	defaultTimingToleranceBeats = 0.25
)

// Config holds analyzer tolerances. Zero values select the defaults
// (50 cents, 0.25 beats).
type Config struct {
	ToleranceCents       float64
	TimingToleranceBeats float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.ToleranceCents <= 0 {
		cfg.ToleranceCents = defaultToleranceCents
	}

	if cfg.TimingToleranceBeats <= 0 {
		cfg.TimingToleranceBeats = defaultTimingToleranceBeats
	}

	return cfg
}
