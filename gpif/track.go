package gpif

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jsphweid/gptab/model"
	"github.com/jsphweid/gptab/pitch"
)

// defaultTuningMidi is standard six-string tuning, low-to-high in GPIF's
// own string numbering: E2 A2 D3 G3 B3 E4.
var defaultTuningMidi = []int{40, 45, 50, 55, 59, 64}

var capoFreeTextRe = regexp.MustCompile(`(?i)capo\s+(\d+)`)

var dynamicOrder = []string{"PPP", "PP", "P", "MP", "MF", "F", "FF", "FFF", "FFFF", "FFFFF"}

func dynamicToInt(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range dynamicOrder {
		if name == s {
			return i - 4, true
		}
	}
	return 0, false
}

// rawBeat is a Beat's XML-resolved fields before pitch-class computation
// and string-axis reversal.
type rawBeat struct {
	notes    []rawNote
	duration model.Duration
	tuplet   *model.Tuplet
	dotted   int
	dynamic  *int
	tempo    int
	freeText string
}

type rawBar struct {
	timeSig     model.TimeSignature
	keySig      *model.KeySignature
	section     *model.Section
	repeatStart bool
	repeatEnd   bool
	repeatCount int
	beats       []rawBeat
}

// buildTrack resolves one track's full timeline against the global
// entity indexes and tempo map.
func buildTrack(trackEl *etree.Element, trackIndex int, masterBars []*etree.Element, idx entityIndexes, tempoAutomations []tempoAutomation) model.Track {
	tuningMidi, capoFret := resolveTuningAndCapo(trackEl)

	rawBars := buildRawBars(trackEl, trackIndex, masterBars, idx, tempoAutomations)

	if capoFret == 0 {
		if found, ok := scanCapoFreeText(rawBars); ok {
			capoFret = found
		}
	}

	bars, reversedTuningMidi := convertBars(rawBars, tuningMidi, capoFret)

	tuning := make([]pitch.Note, len(reversedTuningMidi))
	for i, midi := range reversedTuningMidi {
		tuning[i] = pitch.NoteFromPitchClass(pitch.MidiToPitchClass(midi), false)
	}

	instrument, instrumentName := resolveInstrument(trackEl)

	return model.Track{
		ID:             trackEl.SelectAttrValue("id", strconv.Itoa(trackIndex)),
		Name:           childText(trackEl, "Name"),
		ShortName:      childText(trackEl, "ShortName"),
		Instrument:     instrument,
		InstrumentName: instrumentName,
		Tuning:         tuning,
		TuningMidi:     reversedTuningMidi,
		CapoFret:       capoFret,
		Bars:           bars,
	}
}

func resolveTuningAndCapo(trackEl *etree.Element) ([]int, int) {
	tuningMidi, capoFret := readTuningAndCapo(trackEl.SelectElement("Properties"))

	if tuningMidi == nil || capoFret == 0 {
		if staves := trackEl.SelectElement("Staves"); staves != nil {
			for _, staff := range staves.SelectElements("Staff") {
				fallbackTuning, fallbackCapo := readTuningAndCapo(staff.SelectElement("Properties"))
				if tuningMidi == nil {
					tuningMidi = fallbackTuning
				}
				if capoFret == 0 {
					capoFret = fallbackCapo
				}
				if tuningMidi != nil && capoFret != 0 {
					break
				}
			}
		}
	}

	if tuningMidi == nil {
		tuningMidi = append([]int(nil), defaultTuningMidi...)
	}
	return tuningMidi, capoFret
}

func readTuningAndCapo(props *etree.Element) ([]int, int) {
	if props == nil {
		return nil, 0
	}
	var tuningMidi []int
	if prop := findProperty(props, "Tuning"); prop != nil {
		if pitchesEl := prop.SelectElement("Pitches"); pitchesEl != nil {
			for _, field := range strings.Fields(pitchesEl.Text()) {
				v, err := strconv.Atoi(field)
				if err != nil {
					tuningMidi = nil
					break
				}
				tuningMidi = append(tuningMidi, v)
			}
		}
	}
	capoFret, _ := propertyInt(props, "CapoFret")
	return tuningMidi, capoFret
}

// resolveInstrument reads the MIDI program number from
// Sounds/Sound/MIDI/Program, falling back to the older GeneralMidi
// element some GPIF-exporting versions emit instead.
func resolveInstrument(trackEl *etree.Element) (*int, string) {
	var instrument *int
	if programEl := trackEl.FindElement("./Sounds/Sound/MIDI/Program"); programEl != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(programEl.Text())); err == nil {
			instrument = &v
		}
	}
	if instrument == nil {
		if midiEl := trackEl.FindElement("./GeneralMidi"); midiEl != nil {
			if v, err := strconv.Atoi(midiEl.SelectAttrValue("program", "")); err == nil {
				instrument = &v
			}
		}
	}
	return instrument, childText(trackEl, "InstrumentName")
}

func pickPositionalBarID(masterBarEl *etree.Element, trackIndex int) string {
	barsEl := masterBarEl.SelectElement("Bars")
	if barsEl == nil {
		return ""
	}
	tokens := splitIDs(barsEl.Text())
	if len(tokens) == 0 {
		return ""
	}
	if trackIndex < len(tokens) {
		return tokens[trackIndex]
	}
	return tokens[0]
}

func buildRawBars(trackEl *etree.Element, trackIndex int, masterBars []*etree.Element, idx entityIndexes, tempoAutomations []tempoAutomation) []rawBar {
	bars := make([]rawBar, 0, len(masterBars))
	for barPos, masterBarEl := range masterBars {
		tempo := resolveTempoAt(tempoAutomations, barPos)
		bar := rawBar{
			timeSig:     parseTimeSignature(masterBarEl),
			keySig:      parseKeySignature(masterBarEl),
			section:     parseSection(masterBarEl),
			repeatStart: false,
			repeatEnd:   false,
		}
		bar.repeatStart, bar.repeatEnd, bar.repeatCount = parseRepeat(masterBarEl)

		barID := pickPositionalBarID(masterBarEl, trackIndex)
		if barEl := idx.bars[barID]; barEl != nil {
			bar.beats = buildRawBeatsForBar(barEl, idx, tempo)
		}
		bars = append(bars, bar)
	}
	return bars
}

func buildRawBeatsForBar(barEl *etree.Element, idx entityIndexes, tempo int) []rawBeat {
	voicesEl := barEl.SelectElement("Voices")
	if voicesEl == nil {
		return nil
	}
	voiceTokens := splitIDs(voicesEl.Text())
	if len(voiceTokens) == 0 {
		return nil
	}
	voiceEl := idx.voices[voiceTokens[0]]
	if voiceEl == nil {
		return nil
	}
	beatsEl := voiceEl.SelectElement("Beats")
	if beatsEl == nil {
		return nil
	}

	var beats []rawBeat
	for _, beatID := range splitIDs(beatsEl.Text()) {
		beatEl := idx.beats[beatID]
		if beatEl == nil {
			continue
		}
		beats = append(beats, buildRawBeat(beatEl, idx, tempo))
	}
	return beats
}

func buildRawBeat(beatEl *etree.Element, idx entityIndexes, tempo int) rawBeat {
	var notes []rawNote
	if notesEl := beatEl.SelectElement("Notes"); notesEl != nil {
		for _, id := range splitIDs(notesEl.Text()) {
			if noteEl := idx.notes[id]; noteEl != nil {
				notes = append(notes, resolveNote(noteEl))
			}
		}
	}

	duration, tuplet, dots := model.Quarter, (*model.Tuplet)(nil), 0
	if rhythmRefEl := beatEl.SelectElement("Rhythm"); rhythmRefEl != nil {
		ref := rhythmRefEl.SelectAttrValue("ref", "")
		if rhythmEl := idx.rhythms[ref]; rhythmEl != nil {
			duration, tuplet, dots = resolveRhythm(rhythmEl)
		}
	}

	var dynamic *int
	if dynText := childText(beatEl, "Dynamic"); dynText != "" {
		if v, ok := dynamicToInt(dynText); ok {
			dynamic = &v
		}
	}

	return rawBeat{
		notes:    notes,
		duration: duration,
		tuplet:   tuplet,
		dotted:   dots,
		dynamic:  dynamic,
		tempo:    tempo,
		freeText: childText(beatEl, "FreeText"),
	}
}

func scanCapoFreeText(bars []rawBar) (int, bool) {
	for _, bar := range bars {
		for _, beat := range bar.beats {
			if beat.freeText == "" {
				continue
			}
			m := capoFreeTextRe.FindStringSubmatch(beat.freeText)
			if m == nil {
				continue
			}
			v, err := strconv.Atoi(m[1])
			if err != nil || v < 1 || v > 24 {
				continue
			}
			return v, true
		}
	}
	return 0, false
}

// convertBars resolves pitch classes (using the track's settled capo
// fret) and reverses the string axis: GPIF numbers strings low-to-high,
// the output model numbers them high-to-low.
func convertBars(rawBars []rawBar, tuningMidi []int, capoFret int) ([]model.Bar, []int) {
	stringCount := len(tuningMidi)
	globalBeatIndex := 0

	bars := make([]model.Bar, 0, len(rawBars))
	for barIdx, rb := range rawBars {
		beats := make([]model.Beat, 0, len(rb.beats))
		for _, rbeat := range rb.beats {
			notes := make([]model.Note, 0, len(rbeat.notes))
			for _, rn := range rbeat.notes {
				openMidi := 0
				if rn.stringIdx >= 0 && rn.stringIdx < len(tuningMidi) {
					openMidi = tuningMidi[rn.stringIdx]
				}
				pitchClass := pitch.FrettedPitchClass(openMidi, capoFret, rn.fret)
				notes = append(notes, model.Note{
					String:     stringCount - 1 - rn.stringIdx,
					Fret:       rn.fret,
					PitchClass: pitchClass,
					NoteName:   pitch.NoteName(pitchClass, false),
					Slide:      rn.slide,
					Harmonic:   rn.harmonic,
					Bend:       rn.bend,
					PalmMute:   rn.palmMute,
					Muted:      rn.muted,
					LetRing:    rn.letRing,
					Vibrato:    rn.vibrato,
					HammerOn:   rn.hammerOn,
					PullOff:    rn.pullOff,
					Tapped:     rn.tapped,
					Accent:     rn.accent,
					Tie:        rn.tie,
				})
			}
			beats = append(beats, model.Beat{
				Index:    globalBeatIndex,
				BarIndex: barIdx,
				Notes:    notes,
				Duration: rbeat.duration,
				Tuplet:   rbeat.tuplet,
				Dotted:   rbeat.dotted,
				IsRest:   len(notes) == 0,
				Dynamic:  rbeat.dynamic,
				Tempo:    rbeat.tempo,
			})
			globalBeatIndex++
		}
		bars = append(bars, model.Bar{
			Index:         barIdx,
			TimeSignature: rb.timeSig,
			KeySignature:  rb.keySig,
			Section:       rb.section,
			Beats:         beats,
			RepeatStart:   rb.repeatStart,
			RepeatEnd:     rb.repeatEnd,
			RepeatCount:   rb.repeatCount,
		})
	}

	reversed := make([]int, stringCount)
	for i, v := range tuningMidi {
		reversed[stringCount-1-i] = v
	}
	return bars, reversed
}

func parseTimeSignature(masterBarEl *etree.Element) model.TimeSignature {
	num, den := 4, 4
	parts := strings.SplitN(childText(masterBarEl, "Time"), "/", 2)
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			num = n
		}
		if d, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			den = d
		}
	}
	return model.TimeSignature{Numerator: num, Denominator: den}
}

func parseKeySignature(masterBarEl *etree.Element) *model.KeySignature {
	keyEl := masterBarEl.SelectElement("Key")
	if keyEl == nil {
		return nil
	}
	count, _ := strconv.Atoi(strings.TrimSpace(childText(keyEl, "AccidentalCount")))
	mode := model.Major
	if strings.EqualFold(strings.TrimSpace(childText(keyEl, "Mode")), "minor") {
		mode = model.Minor
	}
	return &model.KeySignature{AccidentalCount: count, Mode: mode}
}

func parseSection(masterBarEl *etree.Element) *model.Section {
	sectionEl := masterBarEl.SelectElement("Section")
	if sectionEl == nil {
		return nil
	}
	letter := childText(sectionEl, "Letter")
	text := childText(sectionEl, "Text")
	if letter == "" && text == "" {
		return nil
	}
	return &model.Section{Letter: letter, Text: text}
}

func parseRepeat(masterBarEl *etree.Element) (bool, bool, int) {
	repEl := masterBarEl.SelectElement("Repeat")
	if repEl == nil {
		return false, false, 0
	}
	start := repEl.SelectAttrValue("start", "false") == "true"
	end := repEl.SelectAttrValue("end", "false") == "true"
	count, _ := strconv.Atoi(repEl.SelectAttrValue("count", "0"))
	return start, end, count
}
