package gpif

import (
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

type tempoAutomation struct {
	barIndex int
	value    int
}

// parseTempoAutomations reads MasterTrack/Automations/Automation entries
// whose <Type> is "tempo", sorted ascending by bar index.
func parseTempoAutomations(root *etree.Element) []tempoAutomation {
	var automations []tempoAutomation
	if root == nil {
		return automations
	}
	container := root.FindElement("./MasterTrack/Automations")
	if container == nil {
		return automations
	}
	for _, autoEl := range container.SelectElements("Automation") {
		if !strings.EqualFold(strings.TrimSpace(childText(autoEl, "Type")), "tempo") {
			continue
		}
		barIndex, _ := strconv.Atoi(strings.TrimSpace(childText(autoEl, "Bar")))
		value := firstIntToken(childText(autoEl, "Value"))
		automations = append(automations, tempoAutomation{barIndex: barIndex, value: value})
	}
	sort.Slice(automations, func(i, j int) bool { return automations[i].barIndex < automations[j].barIndex })
	return automations
}

// firstIntToken parses the first whitespace-separated token of text as an
// integer; a tempo <Value> sometimes carries a trailing curve-type code
// alongside the BPM.
func firstIntToken(text string) int {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.Atoi(fields[0])
	return v
}

// resolveTempoAt returns the tempo in effect at barIndex: the most recent
// automation at or before it, else the first automation, else 120.
func resolveTempoAt(automations []tempoAutomation, barIndex int) int {
	tempo := 0
	found := false
	for _, a := range automations {
		if a.barIndex <= barIndex {
			tempo = a.value
			found = true
		}
	}
	if found {
		return tempo
	}
	if len(automations) > 0 {
		return automations[0].value
	}
	return 120
}
