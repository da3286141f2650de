package gp3

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
	"github.com/jsphweid/gptab/pitch"
)

// Decode parses a GP3 file: gp5's layout trimmed to a single voice per
// measure, no lyrics/RSE/page-setup/directions blocks, and single-byte
// beat/note effects.
func Decode(data []byte) (*model.Song, error) {
	c := cursor.New(data)

	major, _, err := readVersion(c)
	if err != nil {
		return nil, err
	}
	if err := requireMajor3(major); err != nil {
		return nil, err
	}

	info, err := readScoreInfo(c)
	if err != nil {
		return nil, err
	}

	if _, err := c.Bool(); err != nil { // triplet feel
		return nil, err
	}
	tempo, err := c.I32()
	if err != nil {
		return nil, err
	}
	if _, err := c.I32(); err != nil { // key
		return nil, err
	}

	if _, err := readMidiChannels(c); err != nil {
		return nil, err
	}

	measureCount, err := c.I32()
	if err != nil {
		return nil, err
	}
	trackCount, err := c.I32()
	if err != nil {
		return nil, err
	}

	measureHeaders, err := readMeasureHeaders(c, int(measureCount))
	if err != nil {
		return nil, err
	}
	trackHeaders, err := readTrackHeaders(c, int(trackCount))
	if err != nil {
		return nil, err
	}
	if err := c.Skip(2); err != nil {
		return nil, err
	}

	trackBars, err := readMeasures(c, measureHeaders, trackHeaders)
	if err != nil {
		return nil, err
	}

	song := &model.Song{
		Title:  info.title,
		Artist: info.artist,
		Album:  info.album,
		Tempo:  int(tempo),
	}

	for i, th := range trackHeaders {
		song.Tracks = append(song.Tracks, buildTrack(th, trackBars[i], int(tempo)))
	}

	return song, nil
}

// buildTrack mirrors gp5's: GP3's tuning array is already highest-string-
// first, so no string-axis reversal is needed.
func buildTrack(th trackHeader, bars []rawBar, tempo int) model.Track {
	tuning := make([]pitch.Note, len(th.tuningMidi))
	for i, midi := range th.tuningMidi {
		tuning[i] = pitch.NoteFromPitchClass(midi, false)
	}

	track := model.Track{
		Name:         th.name,
		Tuning:       tuning,
		TuningMidi:   th.tuningMidi,
		CapoFret:     th.capoFret,
		SourceFormat: "gp3",
	}

	globalBeatIndex := 0
	for barIndex, rb := range bars {
		bar := model.Bar{
			Index:         barIndex,
			TimeSignature: rb.timeSig,
			KeySignature:  rb.keySig,
			Section:       rb.section,
			RepeatStart:   rb.repeatStart,
			RepeatEnd:     rb.repeatEnd,
			RepeatCount:   rb.repeatCount,
		}
		for _, rbeat := range rb.beats {
			beat := model.Beat{
				Index:    globalBeatIndex,
				BarIndex: barIndex,
				Duration: rbeat.duration,
				Tuplet:   rbeat.tuplet,
				Dotted:   rbeat.dotted,
				IsRest:   rbeat.isRest,
				Tempo:    tempo,
			}
			for _, rn := range rbeat.notes {
				beat.Notes = append(beat.Notes, convertNote(rn, th.tuningMidi, th.capoFret))
			}
			bar.Beats = append(bar.Beats, beat)
			globalBeatIndex++
		}
		track.Bars = append(track.Bars, bar)
	}

	return track
}

// convertNote computes a note's pitch class from the track's tuning and
// capo. PullOff always reads false: GP3's single hammerPull flag can't
// distinguish direction, so HammerOn absorbs it, same as gp5.
func convertNote(rn rawNote, tuningMidi []int, capoFret int) model.Note {
	openMidi := 0
	if rn.stringIdx >= 0 && rn.stringIdx < len(tuningMidi) {
		openMidi = tuningMidi[rn.stringIdx]
	}
	pc := pitch.FrettedPitchClass(openMidi, capoFret, rn.fret)

	return model.Note{
		String:     rn.stringIdx,
		Fret:       rn.fret,
		PitchClass: pc,
		NoteName:   pitch.NoteName(pc, false),
		Slide:      rn.effects.slide,
		Harmonic:   nil,
		Bend:       rn.effects.bend,
		Muted:      rn.dead,
		LetRing:    rn.effects.letRing,
		HammerOn:   rn.effects.hammerPull,
		PullOff:    false,
		Accent:     rn.accent,
		HeavyAccent: rn.heavy,
		Tie:        model.Tie{Destination: rn.tied},
	}
}
