package gp3

import (
	"strconv"
	"strings"

	"github.com/jsphweid/gptab/cursor"
	"github.com/jsphweid/gptab/gperr"
)

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

func requireMajor3(major int) error {
	if major != 3 {
		return gperr.Newf(gperr.UnsupportedVersion, "gp3 decoder requires major version 3, got %d", major)
	}
	return nil
}

type scoreInfo struct {
	title, subtitle, artist, album string
	words, music, copyright        string
	instructions                   string
	notices                        []string
}

// readScoreInfo reads GP3's score info block: one fewer field than GP5's
// (no separate "tab" credit field).
func readScoreInfo(c *cursor.ByteCursor) (scoreInfo, error) {
	var info scoreInfo
	fields := make([]string, 8)
	for i := range fields {
		s, err := c.IntByteSizeString()
		if err != nil {
			return info, err
		}
		fields[i] = s
	}
	info.title, info.subtitle, info.artist, info.album = fields[0], fields[1], fields[2], fields[3]
	info.words, info.music, info.copyright = fields[4], fields[5], fields[6]
	info.instructions = fields[7]

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

type midiChannel struct {
	instrument                                    int32
	volume, pan, chorus, reverb, phaser, tremolo uint8
}

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
