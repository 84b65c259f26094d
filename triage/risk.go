package triage

import (
	"strings"

	"saferoute/types"
)

var riskBaseBySeverity = map[types.Severity]float64{
	types.Low:      20,
	types.Medium:   50,
	types.High:     75,
	types.Critical: 95,
}

// riskKeywords add a flat bonus when the description mentions harm to
// people. Overlaps with the classifier's global list on purpose: the
// same report both escalates and scores higher.
var riskKeywords = []string{"death", "dead", "injured", "bleeding", "unconscious"}

// RiskScore computes a bounded risk score in [0,100]. The base comes from
// the severity the caller settled on after all escalation, so a report the
// global override pushed to CRITICAL scores from the CRITICAL base.
// Clamping happens once, after every additive term.
func RiskScore(severity types.Severity, description string, hasPhotos, hasVideo bool) float64 {
	score, ok := riskBaseBySeverity[severity]
	if !ok {
		score = 50
	}

	if hasPhotos {
		score += 5
	}
	if hasVideo {
		score += 10
	}

	desc := strings.ToLower(description)
	for _, word := range riskKeywords {
		if strings.Contains(desc, word) {
			score += 10
			break
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
