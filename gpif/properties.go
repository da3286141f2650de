package gpif

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// findProperty returns the <Property name="name"> child of el, if any.
func findProperty(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, prop := range el.SelectElements("Property") {
		if prop.SelectAttrValue("name", "") == name {
			return prop
		}
	}
	return nil
}

// propertyEnabled reports whether name is present and carries an <Enable>
// child, the GPIF convention for boolean flags.
func propertyEnabled(el *etree.Element, name string) bool {
	prop := findProperty(el, name)
	if prop == nil {
		return false
	}
	return prop.SelectElement("Enable") != nil
}

// propertyText returns name's direct text content, trimmed, for simple
// scalar properties that carry their value as bare text.
func propertyText(el *etree.Element, name string) (string, bool) {
	prop := findProperty(el, name)
	if prop == nil {
		return "", false
	}
	text := strings.TrimSpace(prop.Text())
	if text == "" {
		return "", false
	}
	return text, true
}

// propertyInt reads name's <Flags> child, falling back to bare text.
func propertyInt(el *etree.Element, name string) (int, bool) {
	prop := findProperty(el, name)
	if prop == nil {
		return 0, false
	}
	var raw string
	if flags := prop.SelectElement("Flags"); flags != nil {
		raw = strings.TrimSpace(flags.Text())
	} else {
		raw = strings.TrimSpace(prop.Text())
	}
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// propertyFloat reads name's <Float> child, falling back to bare text.
func propertyFloat(el *etree.Element, name string) (float64, bool) {
	prop := findProperty(el, name)
	if prop == nil {
		return 0, false
	}
	var raw string
	if f := prop.SelectElement("Float"); f != nil {
		raw = strings.TrimSpace(f.Text())
	} else {
		raw = strings.TrimSpace(prop.Text())
	}
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// propertyHType reads name's <HType> child text.
func propertyHType(el *etree.Element, name string) (string, bool) {
	prop := findProperty(el, name)
	if prop == nil {
		return "", false
	}
	h := prop.SelectElement("HType")
	if h == nil {
		return "", false
	}
	text := strings.TrimSpace(h.Text())
	if text == "" {
		return "", false
	}
	return text, true
}
