package triage

import (
	"strings"

	"saferoute/types"
)

// escalationRule escalates severity when its keyword appears in the
// description. Rules are applied in order, and only ever move the
// severity up.
type escalationRule struct {
	keyword  string
	severity types.Severity
}

// defaultSeverityByType is the baseline severity before any keyword is
// considered. Types missing from this table fall back to MEDIUM.
var defaultSeverityByType = map[types.IncidentType]types.Severity{
	types.Construction: types.Medium,
	types.Traffic:      types.Low,
	types.Accident:     types.High,
	types.TreeFall:     types.Medium,
	types.PowerIssue:   types.High,
	types.Violence:     types.Critical,
	types.Flood:        types.High,
	types.Fire:         types.Critical,
}

var escalationRulesByType = map[types.IncidentType][]escalationRule{
	types.Construction: {
		{"blocking", types.High},
		{"emergency", types.High},
	},
	types.Traffic: {
		{"jam", types.Medium},
		{"accident", types.High},
	},
	types.Accident: {
		{"injured", types.Critical},
		{"fatality", types.Critical},
	},
	types.TreeFall: {
		{"power", types.Critical},
		{"car", types.High},
	},
	types.PowerIssue: {
		{"live", types.Critical},
		{"widespread", types.High},
	},
	types.Violence: {
		{"weapon", types.Critical},
		{"ongoing", types.Critical},
	},
	types.Flood: {
		{"rising", types.Critical},
		{"evacuation", types.Critical},
	},
	types.Fire: {
		{"spreading", types.Critical},
		{"residential", types.Critical},
	},
}

// globalCriticalKeywords force CRITICAL regardless of incident type or
// any prior match. Deliberate safety-first bias: over-escalating a minor
// report is acceptable, missing a fatality is not.
var globalCriticalKeywords = []string{
	"death", "dead", "fatality", "weapon", "shooting", "trapped", "bleeding",
}

// Classify maps an incident type and free-text description to a severity
// level. Escalation is monotonic within a single pass.
func Classify(incidentType types.IncidentType, description string) types.Severity {
	severity, ok := defaultSeverityByType[incidentType]
	if !ok {
		severity = types.Medium
	}

	desc := strings.ToLower(description)

	for _, rule := range escalationRulesByType[incidentType] {
		if strings.Contains(desc, rule.keyword) {
			severity = types.MaxSeverity(severity, rule.severity)
		}
	}

	for _, word := range globalCriticalKeywords {
		if strings.Contains(desc, word) {
			return types.Critical
		}
	}

	return severity
}
