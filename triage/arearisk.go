package triage

import (
	"time"

	"saferoute/geo"
	"saferoute/types"
)

// Per-incident weight of a nearby active incident on the area score.
var areaWeightBySeverity = map[types.Severity]float64{
	types.Low:      3,
	types.Medium:   8,
	types.High:     15,
	types.Critical: 25,
}

const (
	TrendIncreasing = "INCREASING"
	TrendStable     = "STABLE"
	TrendDecreasing = "DECREASING"
)

// AssessArea scores the risk around a point from the incidents actually on
// record, using the proximity filter. Deterministic: the same store state
// and query always produce the same assessment.
func AssessArea(originLat, originLng, radiusKM float64, incidents []types.IncidentData, now time.Time) types.AreaRiskAssessment {
	nearby := geo.Nearby(originLat, originLng, radiusKM, incidents)

	var score float64
	var activeCount, recentCount, priorCount int
	for _, res := range nearby {
		inc := res.Record
		if inc.Status != types.StatusActive {
			continue
		}
		activeCount++
		score += areaWeightBySeverity[inc.Severity]

		if t, err := time.Parse(time.RFC3339, inc.ReportedAt); err == nil {
			age := now.Sub(t)
			switch {
			case age <= 24*time.Hour:
				recentCount++
			case age <= 48*time.Hour:
				priorCount++
			}
		}
	}
	if score > 100 {
		score = 100
	}

	level := riskLevelFor(score)

	trend := TrendStable
	if recentCount > priorCount {
		trend = TrendIncreasing
	} else if recentCount < priorCount {
		trend = TrendDecreasing
	}

	return types.AreaRiskAssessment{
		RiskScore:       score,
		RiskLevel:       level,
		PredictedTrend:  trend,
		Recommendations: areaRecommendations(level),
		IncidentCount:   activeCount,
	}
}

func riskLevelFor(score float64) types.Severity {
	switch {
	case score < 30:
		return types.Low
	case score < 60:
		return types.Medium
	case score < 80:
		return types.High
	default:
		return types.Critical
	}
}

func areaRecommendations(level types.Severity) []string {
	switch level {
	case types.Critical:
		return []string{
			"AVOID THIS AREA - critical incidents reported",
			"Use alternate routes",
			"Real-time alerts active - subscribe for updates",
		}
	case types.High:
		return []string{
			"Proceed with caution in this area",
			"Multiple incidents reported - stay aware",
			"Have emergency numbers ready",
		}
	default:
		return []string{
			"Standard precautions recommended",
			"Area relatively safe",
		}
	}
}
