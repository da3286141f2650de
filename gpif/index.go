// Package gpif transforms a parsed GPIF XML document into a model.Song.
// The GPIF dialect links entities by id: containers such as <Notes>,
// <Beats>, <Voices>, <Bars>, and <Rhythms> each hold children carrying
// an id attribute, and other elements reference them by that id.
package gpif

import (
	"strings"

	"github.com/beevik/etree"
)

// buildIndex maps each itemTag child of container's id attribute to its
// element. A nil container yields an empty index.
func buildIndex(container *etree.Element, itemTag string) map[string]*etree.Element {
	index := make(map[string]*etree.Element)
	if container == nil {
		return index
	}
	for _, el := range container.SelectElements(itemTag) {
		if id := el.SelectAttrValue("id", ""); id != "" {
			index[id] = el
		}
	}
	return index
}

// splitIDs splits a space-separated id list, discarding empty tokens.
func splitIDs(text string) []string {
	return strings.Fields(text)
}

// childText returns the trimmed text of el's first direct child named
// tag, or "" if absent.
func childText(el *etree.Element, tag string) string {
	if el == nil {
		return ""
	}
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
