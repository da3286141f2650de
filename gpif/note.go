package gpif

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/jsphweid/gptab/model"
)

// rawNote is a Note's XML-resolved fields before the final string-axis
// reversal and pitch-class computation, both of which need the track's
// settled capo fret.
type rawNote struct {
	stringIdx int
	fret      int

	slide    *int
	harmonic *model.HarmonicType
	bend     *model.Bend

	palmMute bool
	muted    bool
	letRing  bool
	vibrato  bool
	hammerOn bool
	pullOff  bool
	tapped   bool
	accent   bool

	tie model.Tie
}

var harmonicTypeByName = map[string]model.HarmonicType{
	"natural":    model.HarmonicNatural,
	"artificial": model.HarmonicArtificial,
	"tapped":     model.HarmonicTapped,
	"pinch":      model.HarmonicPinch,
	"semi":       model.HarmonicSemi,
}

func resolveNote(noteEl *etree.Element) rawNote {
	var n rawNote
	props := noteEl.SelectElement("Properties")

	n.stringIdx, _ = propertyInt(props, "String")
	n.fret, _ = propertyInt(props, "Fret")

	if v, ok := propertyInt(props, "Slide"); ok {
		n.slide = &v
	}

	if h, ok := propertyHType(props, "HarmonicType"); ok {
		if mapped, ok := harmonicTypeByName[strings.ToLower(h)]; ok {
			n.harmonic = &mapped
		}
	}

	if propertyEnabled(props, "Bended") {
		origin, _ := propertyFloat(props, "BendOriginValue")
		middle, _ := propertyFloat(props, "BendMiddleValue")
		dest, _ := propertyFloat(props, "BendDestinationValue")
		n.bend = &model.Bend{Origin: origin, Destination: dest, Middle: middle}
	}

	n.palmMute = propertyEnabled(props, "PalmMuted")
	n.muted = propertyEnabled(props, "Muted")
	n.tapped = propertyEnabled(props, "Tapped")
	n.hammerOn = propertyEnabled(props, "HopoOrigin")
	n.pullOff = propertyEnabled(props, "HopoDestination")

	n.letRing = noteEl.SelectElement("LetRing") != nil
	n.vibrato = noteEl.SelectElement("Vibrato") != nil
	n.accent = noteEl.SelectElement("Accent") != nil

	if tieEl := noteEl.SelectElement("Tie"); tieEl != nil {
		n.tie.Origin = tieEl.SelectAttrValue("origin", "false") == "true"
		n.tie.Destination = tieEl.SelectAttrValue("destination", "false") == "true"
	}

	return n
}
