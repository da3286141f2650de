package gp5

import (
	"strconv"
	"strings"

	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

// readVersion parses the fixed 30-byte version banner (e.g. "FICHIER
// GUITAR PRO v5.10") into a major/minor pair.
func readVersion(c *cursor.ByteCursor) (major, minor int, err error) {
	raw, err := c.ByteSizeString(30)
	if err != nil {
		return 0, 0, err
	}
	verPart := raw
	if i := strings.LastIndexByte(raw, 'v'); i >= 0 {
		verPart = raw[i+1:]
	}
	verPart = strings.TrimSpace(verPart)
	parts := strings.SplitN(verPart, ".", 2)
	major, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		minor, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return major, minor, nil
}

type scoreInfo struct {
	title, subtitle, artist, album       string
	words, music, copyright              string
	tab, instructions                    string
	notices                              []string
}

func readScoreInfo(c *cursor.ByteCursor) (scoreInfo, error) {
	var info scoreInfo
	fields := make([]string, 9)
	for i := range fields {
		s, err := c.IntByteSizeString()
		if err != nil {
			return info, err
		}
		fields[i] = s
	}
	info.title, info.subtitle, info.artist, info.album = fields[0], fields[1], fields[2], fields[3]
	info.words, info.music, info.copyright = fields[4], fields[5], fields[6]
	info.tab, info.instructions = fields[7], fields[8]

	noticeCount, err := c.I32()
	if err != nil {
		return info, err
	}
	for i := 0; i < int(noticeCount); i++ {
		s, err := c.IntByteSizeString()
		if err != nil {
			return info, err
		}
		info.notices = append(info.notices, s)
	}
	return info, nil
}

// skipLyrics consumes the lyrics block: a track index and 5 verses, each
// a start-bar int32 and an IntString. Nothing in model.Song carries lyrics.
func skipLyrics(c *cursor.ByteCursor) error {
	if _, err := c.I32(); err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		if _, err := c.I32(); err != nil {
			return err
		}
		if _, err := c.IntString(); err != nil {
			return err
		}
	}
	return nil
}

// skipRSEMaster consumes the RSE master effect block: 2 int32 plus 11
// signed bytes of master EQ/gain, none of which model.Song represents.
func skipRSEMaster(c *cursor.ByteCursor) error {
	if _, err := c.I32(); err != nil {
		return err
	}
	if _, err := c.I32(); err != nil {
		return err
	}
	for i := 0; i < 11; i++ {
		if _, err := c.I8(); err != nil {
			return err
		}
	}
	return nil
}

// skipPageSetup consumes page layout: 7 int32, an int16 flags word, and
// 10 IntByteSizeStrings (header/footer templates). Layout isn't modeled.
func skipPageSetup(c *cursor.ByteCursor) error {
	for i := 0; i < 7; i++ {
		if _, err := c.I32(); err != nil {
			return err
		}
	}
	if _, err := c.I16(); err != nil {
		return err
	}
	for i := 0; i < 10; i++ {
		if _, err := c.IntByteSizeString(); err != nil {
			return err
		}
	}
	return nil
}

// readTempo reads the name + BPM; MINOR > 0 adds a trailing hide-tempo bool.
func readTempo(c *cursor.ByteCursor, minor int) (name string, tempo int32, err error) {
	name, err = c.IntByteSizeString()
	if err != nil {
		return "", 0, err
	}
	tempo, err = c.I32()
	if err != nil {
		return "", 0, err
	}
	if minor > 0 {
		if _, err = c.Bool(); err != nil {
			return "", 0, err
		}
	}
	return name, tempo, nil
}

type midiChannel struct {
	instrument int32
	volume, pan, chorus, reverb, phaser, tremolo uint8
}

// readMidiChannels reads the fixed 64-entry MIDI channel table.
func readMidiChannels(c *cursor.ByteCursor) ([64]midiChannel, error) {
	var channels [64]midiChannel
	for i := range channels {
		instrument, err := c.I32()
		if err != nil {
			return channels, err
		}
		var params [6]uint8
		for j := range params {
			v, err := c.U8()
			if err != nil {
				return channels, err
			}
			params[j] = v
		}
		if err := c.Skip(2); err != nil {
			return channels, err
		}
		channels[i] = midiChannel{
			instrument: instrument,
			volume:     params[0],
			pan:        params[1],
			chorus:     params[2],
			reverb:     params[3],
			phaser:     params[4],
			tremolo:    params[5],
		}
	}
	return channels, nil
}

func requireMajor5(major int) error {
	if major != 5 {
		return gperr.Newf(gperr.UnsupportedVersion, "gp5 decoder requires major version 5, got %d", major)
	}
	return nil
}
