// Package musicxml loads single-part MusicXML documents into the score
// model. It reads the token stream of encoding/xml directly instead of
// unmarshalling a document tree, so scores stream through in one pass
// with a fixed-size parser state.
//
// The subset understood is the one practice scores need: divisions,
// key, time signature, tempo (metronome per-minute and sound tempo
// attributes), transposition, titles, and notes with pitch, duration,
// chord, rest, and type. Unknown elements are skipped.
package musicxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-trainer/music"
)

// Structural errors. A pitched note without a step or octave cannot be
// placed on any staff, so the whole document is rejected.
var (
	ErrMissingStep   = errors.New("musicxml: note missing pitch step")
	ErrMissingOctave = errors.New("musicxml: note missing pitch octave")
)

// Parse reads a MusicXML document and returns the score it describes.
func Parse(r io.Reader) (*music.Score, error) {
	p := newParser()

	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("musicxml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.startElement(t)
		case xml.CharData:
			p.charData(t)
		case xml.EndElement:
			if err := p.endElement(t); err != nil {
				return nil, err
			}
		}
	}

	return p.finish(), nil
}

// ParseString is Parse on an in-memory document.
func ParseString(doc string) (*music.Score, error) {
	return Parse(strings.NewReader(doc))
}

// noteState collects the children of one note element until its end tag.
type noteState struct {
	isRest       bool
	isChord      bool
	durationDivs float64
	hasDuration  bool
	step         byte
	hasStep      bool
	alter        int
	octave       int
	hasOctave    bool
	noteType     string
}

// parser is the accumulated document state. Each element handler reads
// and writes these fields; nothing lives in loop-local variables, so the
// control flow of the token loop stays flat.
type parser struct {
	divisions float64
	tempo     float64

	notes    []music.NoteEvent
	measures []music.MeasureInfo

	currentBeat      float64
	lastNoteStart    float64
	lastNoteDuration float64

	inNote bool
	note   noteState

	measureNumber    int
	measureStartBeat float64

	keyFifths  int
	timeSigNum int
	timeSigDen int
	title      string

	transpose          *music.TransposeInfo
	inTranspose        bool
	transposeChromatic int
	transposeDiatonic  int

	// Leaf-element text accumulates here between start and end tags.
	capturing bool
	text      strings.Builder
}

func newParser() *parser {
	return &parser{
		divisions:  1,
		tempo:      120,
		timeSigNum: 4,
		timeSigDen: 4,
	}
}

// leafElements are the elements whose character data carries a value.
var leafElements = map[string]bool{
	"divisions":      true,
	"duration":       true,
	"step":           true,
	"alter":          true,
	"octave":         true,
	"per-minute":     true,
	"fifths":         true,
	"beats":          true,
	"beat-type":      true,
	"chromatic":      true,
	"diatonic":       true,
	"type":           true,
	"movement-title": true,
	"work-title":     true,
}

func (p *parser) startElement(e xml.StartElement) {
	switch e.Name.Local {
	case "measure":
		p.finishMeasure()

		if v, ok := intAttr(e, "number"); ok {
			p.measureNumber = v
		}

		p.measureStartBeat = p.currentBeat

	case "note":
		p.inNote = true
		p.note = noteState{}

	case "rest":
		if p.inNote {
			p.note.isRest = true
		}

	case "chord":
		if p.inNote {
			p.note.isChord = true
		}

	case "transpose":
		p.inTranspose = true
		p.transposeChromatic = 0
		p.transposeDiatonic = 0

	case "sound":
		for _, attr := range e.Attr {
			if attr.Name.Local != "tempo" {
				continue
			}

			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				p.tempo = v
			}
		}

	default:
		if leafElements[e.Name.Local] {
			p.capturing = true
			p.text.Reset()
		}
	}
}

func (p *parser) charData(data xml.CharData) {
	if p.capturing {
		p.text.Write(data)
	}
}

func (p *parser) endElement(e xml.EndElement) error {
	name := e.Name.Local

	switch name {
	case "note":
		if p.inNote {
			p.inNote = false

			return p.finishNote()
		}

		return nil

	case "transpose":
		p.inTranspose = false
		p.transpose = &music.TransposeInfo{
			Chromatic: p.transposeChromatic,
			Diatonic:  p.transposeDiatonic,
		}

		return nil
	}

	if !leafElements[name] || !p.capturing {
		return nil
	}

	text := strings.TrimSpace(p.text.String())
	p.capturing = false

	switch name {
	case "divisions":
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			p.divisions = v
		}

	case "per-minute":
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			p.tempo = v
		}

	case "duration":
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			p.note.durationDivs = v
			p.note.hasDuration = true
		}

	case "step":
		if text != "" {
			p.note.step = text[0]
			p.note.hasStep = true
		}

	case "alter":
		if v, err := strconv.Atoi(text); err == nil {
			p.note.alter = v
		}

	case "octave":
		if v, err := strconv.Atoi(text); err == nil {
			p.note.octave = v
			p.note.hasOctave = true
		}

	case "fifths":
		if v, err := strconv.Atoi(text); err == nil {
			p.keyFifths = v
		}

	case "beats":
		if v, err := strconv.Atoi(text); err == nil {
			p.timeSigNum = v
		}

	case "beat-type":
		if v, err := strconv.Atoi(text); err == nil {
			p.timeSigDen = v
		}

	case "chromatic":
		if p.inTranspose {
			if v, err := strconv.Atoi(text); err == nil {
				p.transposeChromatic = v
			}
		}

	case "diatonic":
		if p.inTranspose {
			if v, err := strconv.Atoi(text); err == nil {
				p.transposeDiatonic = v
			}
		}

	case "type":
		if p.inNote {
			p.note.noteType = text
		}

	case "movement-title", "work-title":
		if p.title == "" {
			p.title = text
		}
	}

	return nil
}

// finishNote appends the collected note and advances the beat cursor.
// Chord notes reuse the onset of the previous note and do not advance
// the cursor.
func (p *parser) finishNote() error {
	durationBeats := p.note.durationDivs / p.divisions

	startBeat := p.currentBeat
	if p.note.isChord {
		startBeat = p.lastNoteStart
	}

	midi := music.RestMidi

	if !p.note.isRest {
		if !p.note.hasStep {
			return ErrMissingStep
		}

		if !p.note.hasOctave {
			return ErrMissingOctave
		}

		midi = music.MidiFromPitch(p.note.step, p.note.alter, p.note.octave)
	}

	noteType := p.note.noteType
	if noteType == "" {
		noteType = "quarter"
	}

	p.notes = append(p.notes, music.NoteEvent{
		StartBeat:     startBeat,
		DurationBeats: durationBeats,
		Midi:          midi,
		IsRest:        p.note.isRest,
		MeasureNumber: p.measureNumber,
		NoteType:      noteType,
	})

	if !p.note.isChord {
		p.lastNoteStart = startBeat
		p.lastNoteDuration = durationBeats
		p.currentBeat += durationBeats
	} else if p.lastNoteDuration == 0 {
		p.lastNoteDuration = durationBeats
	}

	return nil
}

// finishMeasure closes the measure in progress, if any.
func (p *parser) finishMeasure() {
	if p.measureNumber == 0 {
		return
	}

	p.measures = append(p.measures, music.MeasureInfo{
		Number:        p.measureNumber,
		StartBeat:     p.measureStartBeat,
		DurationBeats: p.currentBeat - p.measureStartBeat,
		TimeSigNum:    p.timeSigNum,
		TimeSigDen:    p.timeSigDen,
	})
}

func (p *parser) finish() *music.Score {
	p.finishMeasure()

	return &music.Score{
		Tempo:      p.tempo,
		Notes:      p.notes,
		Measures:   p.measures,
		KeyFifths:  p.keyFifths,
		Transpose:  p.transpose,
		Title:      p.title,
		TotalBeats: p.currentBeat,
	}
}

func intAttr(e xml.StartElement, name string) (int, bool) {
	for _, attr := range e.Attr {
		if attr.Name.Local != name {
			continue
		}

		if v, err := strconv.Atoi(attr.Value); err == nil {
			return v, true
		}
	}

	return 0, false
}
