package gpif

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/jsphweid/gptab/gperr"
	"github.com/jsphweid/gptab/model"
)

type entityIndexes struct {
	notes   map[string]*etree.Element
	beats   map[string]*etree.Element
	voices  map[string]*etree.Element
	bars    map[string]*etree.Element
	rhythms map[string]*etree.Element
}

// Decode parses a GPIF XML document and builds a Song. SourceFormat on
// each returned Track is left blank for the caller (gpx or archive's
// format) to fill in.
func Decode(xmlBytes []byte) (*model.Song, error) {
	utf8Bytes, err := normalizeToUTF8(xmlBytes)
	if err != nil {
		return nil, gperr.Wrap(gperr.BadXML, "detecting GPIF document encoding", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(utf8Bytes); err != nil {
		return nil, gperr.Wrap(gperr.BadXML, "parsing GPIF document", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "GPIF" {
		return nil, gperr.New(gperr.BadContainer, "document has no <GPIF> root element")
	}

	song := &model.Song{Tempo: 120}
	if scoreEl := root.SelectElement("Score"); scoreEl != nil {
		song.Title = childText(scoreEl, "Title")
		song.Artist = childText(scoreEl, "Artist")
		song.Album = childText(scoreEl, "Album")
	}

	tempoAutomations := parseTempoAutomations(root)
	if len(tempoAutomations) > 0 {
		song.Tempo = tempoAutomations[0].value
	}

	idx := entityIndexes{
		notes:   buildIndex(root.SelectElement("Notes"), "Note"),
		beats:   buildIndex(root.SelectElement("Beats"), "Beat"),
		voices:  buildIndex(root.SelectElement("Voices"), "Voice"),
		bars:    buildIndex(root.SelectElement("Bars"), "Bar"),
		rhythms: buildIndex(root.SelectElement("Rhythms"), "Rhythm"),
	}

	var masterBars []*etree.Element
	if mbsEl := root.SelectElement("MasterBars"); mbsEl != nil {
		masterBars = mbsEl.SelectElements("MasterBar")
	}

	var trackEls []*etree.Element
	if tracksEl := root.SelectElement("Tracks"); tracksEl != nil {
		trackEls = tracksEl.SelectElements("Track")
	}

	for trackIndex, trackEl := range trackEls {
		song.Tracks = append(song.Tracks, buildTrack(trackEl, trackIndex, masterBars, idx, tempoAutomations))
	}

	return song, nil
}

var xmlEncodingDecl = regexp.MustCompile(`(?i)<\?xml[^>]*\bencoding\s*=\s*["']([^"']+)["']`)

// normalizeToUTF8 reads the XML declaration's encoding attribute (GPIF
// documents have been seen declaring ISO-8859-1) and transcodes to
// UTF-8 so etree never has to guess. A document with no declared
// encoding, or one already declaring utf-8, passes through untouched.
func normalizeToUTF8(xmlBytes []byte) ([]byte, error) {
	m := xmlEncodingDecl.FindSubmatch(xmlBytes)
	if m == nil {
		return xmlBytes, nil
	}
	label := string(m[1])
	if strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "us-ascii") {
		return xmlBytes, nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(xmlBytes))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
