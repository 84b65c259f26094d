package triage

import "saferoute/types"

// CriticalDirective is always element 0 of the suggestion list when the
// severity is CRITICAL.
const CriticalDirective = "CRITICAL: Take immediate action for safety"

var safetySuggestions = map[types.IncidentType][]string{
	types.Construction: {
		"Avoid the area if possible",
		"Use alternate routes",
		"Check construction hours",
		"Be cautious of equipment",
	},
	types.Traffic: {
		"Plan alternate route",
		"Allow extra travel time",
		"Stay updated on traffic flow",
		"Use GPS navigation",
	},
	types.Accident: {
		"Stay clear of accident area",
		"Emergency services have been notified",
		"Do not approach the accident",
		"Use alternate routes immediately",
	},
	types.TreeFall: {
		"Avoid the location",
		"Power lines may be down - stay clear",
		"Do not touch fallen tree or wires",
		"Report to authorities",
	},
	types.PowerIssue: {
		"Do not touch power lines",
		"Evacuation may be necessary",
		"Stay indoors if possible",
		"Emergency services notified",
	},
	types.Violence: {
		"Move to safety immediately",
		"Lock doors and windows",
		"Call emergency services",
		"Alert nearby people to danger",
	},
	types.Flood: {
		"Move to higher ground",
		"Evacuate area immediately",
		"Do not attempt to cross water",
		"Emergency services en route",
	},
	types.Fire: {
		"Evacuate immediately",
		"Alert nearby residents",
		"Use stairs, not elevators",
		"Move upwind if outdoors",
	},
}

var genericSuggestions = []string{
	"Stay alert and aware",
	"Report to authorities if needed",
}

// Suggestions returns the ordered safety actions for an incident. The
// returned slice is always a fresh copy, callers may append freely.
func Suggestions(incidentType types.IncidentType, severity types.Severity) []string {
	base, ok := safetySuggestions[incidentType]
	if !ok {
		base = genericSuggestions
	}

	var out []string
	if severity == types.Critical {
		out = make([]string, 0, len(base)+1)
		out = append(out, CriticalDirective)
	} else {
		out = make([]string, 0, len(base))
	}
	return append(out, base...)
}
