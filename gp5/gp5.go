package gp5

import (
	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/model"
	"github.com/jsphweid/gptab/pitch"
)

// Decode parses a GP5 file: a flat sequential binary layout of score
// metadata, MIDI channels, measure headers, track headers, and
// row-major measures of beats and notes.
func Decode(data []byte) (*model.Song, error) {
	c := cursor.New(data)

	major, minor, err := readVersion(c)
	if err != nil {
		return nil, err
	}
	if err := requireMajor5(major); err != nil {
		return nil, err
	}

	info, err := readScoreInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipLyrics(c); err != nil {
		return nil, err
	}
	if err := skipRSEMaster(c); err != nil {
		return nil, err
	}
	if err := skipPageSetup(c); err != nil {
		return nil, err
	}

	_, tempo, err := readTempo(c, minor)
	if err != nil {
		return nil, err
	}

	if _, err := c.I8(); err != nil { // key
		return nil, err
	}
	if _, err := c.I32(); err != nil { // octave
		return nil, err
	}

	if _, err := readMidiChannels(c); err != nil {
		return nil, err
	}

	if err := c.Skip(19 * 2); err != nil { // directions
		return nil, err
	}
	if _, err := c.I32(); err != nil { // master reverb
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
	trackHeaders, err := readTrackHeaders(c, int(trackCount), minor)
	if err != nil {
		return nil, err
	}

	if minor > 0 {
		if err := c.Skip(1); err != nil {
			return nil, err
		}
	} else {
		if err := c.Skip(2); err != nil {
			return nil, err
		}
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

// buildTrack converts a track header and its raw bars into a model.Track.
// GP5's tuning array is already stored highest-string-first, matching
// model's convention directly, so (unlike the GPIF path) no string-axis
// reversal is needed here.
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
		SourceFormat: "gp5",
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
// capo and carries over its effect flags. PullOff always reads false for
// GP5 input: the format's single hammerPull flag can't distinguish the
// two directions, so HammerOn absorbs it.
func convertNote(rn rawNote, tuningMidi []int, capoFret int) model.Note {
	openMidi := 0
	if rn.stringIdx >= 0 && rn.stringIdx < len(tuningMidi) {
		openMidi = tuningMidi[rn.stringIdx]
	}
	pc := pitch.FrettedPitchClass(openMidi, capoFret, rn.fret)

	return model.Note{
		String:      rn.stringIdx,
		Fret:        rn.fret,
		PitchClass:  pc,
		NoteName:    pitch.NoteName(pc, false),
		Slide:       rn.effects.slide,
		Harmonic:    rn.effects.harmonic,
		Bend:        rn.effects.bend,
		PalmMute:    rn.effects.palmMute,
		Muted:       rn.dead,
		LetRing:     rn.effects.letRing,
		Vibrato:     rn.effects.vibrato,
		HammerOn:    rn.effects.hammerPull,
		PullOff:     false,
		Accent:      rn.accent,
		HeavyAccent: rn.heavy,
		Tie:         model.Tie{Destination: rn.tied},
	}
}
