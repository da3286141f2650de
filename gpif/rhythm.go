package gpif

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jsphweid/gptab/model"
)

var noteValueByName = map[string]model.Duration{
	"whole":   model.Whole,
	"half":    model.Half,
	"quarter": model.Quarter,
	"eighth":  model.Eighth,
	"16th":    model.Sixteenth,
	"32nd":    model.ThirtySecond,
	"64th":    model.SixtyFourth,
	"128th":   model.HundredTwentyEighth,
}

// resolveRhythm reads a <Rhythm> element's duration, tuplet, and
// augmentation-dot count. A missing or unrecognised element defaults to a
// quarter note with no tuplet and no dots.
func resolveRhythm(rhythmEl *etree.Element) (model.Duration, *model.Tuplet, int) {
	if rhythmEl == nil {
		return model.Quarter, nil, 0
	}

	duration := model.Quarter
	if name := strings.ToLower(strings.TrimSpace(childText(rhythmEl, "NoteValue"))); name != "" {
		if d, ok := noteValueByName[name]; ok {
			duration = d
		}
	}

	var tuplet *model.Tuplet
	if t := rhythmEl.SelectElement("PrimaryTuplet"); t != nil {
		num, _ := strconv.Atoi(t.SelectAttrValue("num", "1"))
		den, _ := strconv.Atoi(t.SelectAttrValue("den", "1"))
		if num != 0 && den != 0 && (num != 1 || den != 1) {
			tuplet = &model.Tuplet{Num: num, Den: den}
		}
	}

	dots := 0
	if d := rhythmEl.SelectElement("AugmentationDot"); d != nil {
		dots, _ = strconv.Atoi(d.SelectAttrValue("count", "0"))
	}

	return duration, tuplet, dots
}
