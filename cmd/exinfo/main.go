// Command exinfo prints generated practice exercises and the practice
// curriculum.
//
// Usage:
//
//	exinfo [flags] [exercise-type ...]
//
// Without arguments it prints a summary of all exercise types.
//
// Examples:
//
//	exinfo major_scale
//	exinfo -key Bb3 -tempo 90 major_scale arpeggios
//	exinfo -notes chromatic
//	exinfo -curriculum
//	exinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-trainer/music"
	"github.com/cwbudde/algo-trainer/music/exercise"
)

func main() {
	key := flag.String("key", "C4", "root note, e.g. C4, Bb3, F#4")
	tempo := flag.Float64("tempo", 100, "tempo in beats per minute")
	notes := flag.Bool("notes", false, "print every note instead of a summary")
	curriculum := flag.Bool("curriculum", false, "print the practice curriculum")
	list := flag.Bool("list", false, "list available exercise types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: exinfo [flags] [exercise-type ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints generated practice exercises and the practice curriculum.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a summary of all exercise types.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  exinfo major_scale\n")
		fmt.Fprintf(os.Stderr, "  exinfo -key Bb3 -tempo 90 major_scale arpeggios\n")
		fmt.Fprintf(os.Stderr, "  exinfo -curriculum\n")
		fmt.Fprintf(os.Stderr, "  exinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range exercise.Types() {
			fmt.Println(name)
		}

		return
	}

	if *curriculum {
		printCurriculum()
		return
	}

	types := flag.Args()
	if len(types) == 0 {
		types = exercise.Types()
	}

	if *notes {
		for _, exerciseType := range types {
			printNotes(exerciseType, *key, *tempo)
		}

		return
	}

	printSummary(types, *key, *tempo)
}

func printSummary(types []string, key string, tempo float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Exercise\tKey\tTempo\tNotes\tRests\tBeats\tMeasures\tRange\n")
	fmt.Fprintf(tw, "--------\t---\t-----\t-----\t-----\t-----\t--------\t-----\n")

	for _, exerciseType := range types {
		exerciseType = strings.ToLower(strings.TrimSpace(exerciseType))

		score, err := exercise.Generate(exerciseType, key, tempo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}

		pitched := 0
		rests := 0
		low, high := 0, 0

		for _, n := range score.Notes {
			if n.IsRest {
				rests++
				continue
			}

			if pitched == 0 || n.Midi < low {
				low = n.Midi
			}

			if pitched == 0 || n.Midi > high {
				high = n.Midi
			}

			pitched++
		}

		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%d\t%d\t%.0f\t%d\t%s-%s\n",
			exerciseType,
			key,
			tempo,
			pitched,
			rests,
			score.TotalBeats,
			len(score.Measures),
			music.MidiName(low),
			music.MidiName(high),
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printNotes(exerciseType, key string, tempo float64) {
	score, err := exercise.Generate(exerciseType, key, tempo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
		return
	}

	fmt.Printf("%s in %s at %.0f bpm (%.0f beats, %d measures)\n",
		exerciseType, key, tempo, score.TotalBeats, len(score.Measures))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Beat\tDur\tNote\tMIDI\tType\tMeasure\n")

	for _, n := range score.Notes {
		name := "rest"
		midi := "-"

		if !n.IsRest {
			name = music.MidiName(n.Midi)
			midi = fmt.Sprintf("%d", n.Midi)
		}

		fmt.Fprintf(tw, "%.1f\t%.1f\t%s\t%s\t%s\t%d\n",
			n.StartBeat, n.DurationBeats, name, midi, n.NoteType, n.MeasureNumber)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	fmt.Println()
}

func printCurriculum() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for _, stage := range exercise.Curriculum() {
		fmt.Fprintf(tw, "Stage %d: %s\t%s\n", stage.Stage, stage.Name, stage.Description)

		for _, ex := range stage.Exercises {
			fmt.Fprintf(tw, "  %s\t%s: %s (keys %s, %.0f-%.0f bpm, %s-%s)\n",
				ex.Type,
				ex.Name,
				ex.Description,
				strings.Join(ex.Keys, " "),
				ex.TempoRange[0],
				ex.TempoRange[1],
				music.MidiName(ex.MidiRange[0]),
				music.MidiName(ex.MidiRange[1]),
			)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
