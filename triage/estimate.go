package triage

import (
	"strings"

	"saferoute/types"
)

// EstimatePeople guesses how many people a description involves. Returns
// nil when the text gives no hint.
func EstimatePeople(description string) *int {
	desc := strings.ToLower(description)

	count := func(n int) *int { return &n }

	switch {
	case strings.Contains(desc, "many"),
		strings.Contains(desc, "multiple"),
		strings.Contains(desc, "crowd"):
		return count(10)
	case strings.Contains(desc, "group"):
		return count(5)
	case strings.Contains(desc, "two"),
		strings.Contains(desc, "couple"),
		strings.Contains(desc, "pair"):
		return count(2)
	case strings.Contains(desc, "person"),
		strings.Contains(desc, "someone"),
		strings.Contains(desc, "individual"):
		return count(1)
	}
	return nil
}

var typicalDurations = map[types.IncidentType]string{
	types.Construction: "2-8 hours",
	types.Traffic:      "30 minutes - 2 hours",
	types.Accident:     "1-4 hours",
	types.TreeFall:     "2-6 hours",
	types.PowerIssue:   "1-12 hours",
	types.Violence:     "15-60 minutes",
	types.Flood:        "6-72 hours",
	types.Fire:         "2-6 hours",
}

// EstimateDuration returns the typical resolution window for a type,
// empty string when the type is unknown.
func EstimateDuration(incidentType types.IncidentType) string {
	return typicalDurations[incidentType]
}
