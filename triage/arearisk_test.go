package triage

import (
	"testing"
	"time"

	"saferoute/types"
)

func activeIncident(lat, lng float64, sev types.Severity, reportedAt time.Time) types.IncidentData {
	return types.IncidentData{
		Type:       types.Traffic,
		Severity:   sev,
		Status:     types.StatusActive,
		Location:   types.GeoPoint{Lat: lat, Lng: lng},
		ReportedAt: reportedAt.Format(time.RFC3339),
	}
}

func TestAssessArea_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	incidents := []types.IncidentData{
		activeIncident(12.97, 77.59, types.Critical, now.Add(-2*time.Hour)),
		activeIncident(12.98, 77.60, types.High, now.Add(-30*time.Hour)),
	}

	first := AssessArea(12.97, 77.59, 10, incidents, now)
	second := AssessArea(12.97, 77.59, 10, incidents, now)

	if first.RiskScore != second.RiskScore || first.PredictedTrend != second.PredictedTrend {
		t.Errorf("assessment not deterministic: %+v vs %+v", first, second)
	}
	if first.RiskScore != 40 { // critical 25 + high 15
		t.Errorf("riskScore = %v, want 40", first.RiskScore)
	}
	if first.RiskLevel != types.Medium {
		t.Errorf("riskLevel = %v, want MEDIUM", first.RiskLevel)
	}
	if first.IncidentCount != 2 {
		t.Errorf("incidentCount = %d, want 2", first.IncidentCount)
	}
}

func TestAssessArea_EmptyAreaIsLow(t *testing.T) {
	now := time.Now().UTC()
	got := AssessArea(0.5, 0.5, 5, nil, now)

	if got.RiskScore != 0 || got.RiskLevel != types.Low || got.IncidentCount != 0 {
		t.Errorf("empty area assessment = %+v, want zero score, LOW", got)
	}
	if got.PredictedTrend != TrendStable {
		t.Errorf("trend = %v, want STABLE", got.PredictedTrend)
	}
}

func TestAssessArea_IgnoresResolvedAndDistant(t *testing.T) {
	now := time.Now().UTC()
	resolved := activeIncident(12.97, 77.59, types.Critical, now)
	resolved.Status = types.StatusResolved

	incidents := []types.IncidentData{
		resolved,
		activeIncident(48.85, 2.35, types.Critical, now), // Paris, way outside radius
	}

	got := AssessArea(12.97, 77.59, 10, incidents, now)
	if got.RiskScore != 0 {
		t.Errorf("riskScore = %v, want 0 (resolved and distant incidents ignored)", got.RiskScore)
	}
}

func TestAssessArea_CountMatchesScoredIncidents(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	resolved := activeIncident(12.97, 77.59, types.Critical, now)
	resolved.Status = types.StatusResolved
	expired := activeIncident(12.98, 77.60, types.High, now)
	expired.Status = types.StatusExpired

	incidents := []types.IncidentData{
		activeIncident(12.97, 77.59, types.Medium, now.Add(-1*time.Hour)),
		resolved,
		expired,
	}

	got := AssessArea(12.97, 77.59, 10, incidents, now)
	if got.IncidentCount != 1 {
		t.Errorf("incidentCount = %d, want 1 (only active incidents counted)", got.IncidentCount)
	}
	if got.RiskScore != 8 {
		t.Errorf("riskScore = %v, want 8 (single active MEDIUM)", got.RiskScore)
	}
}

func TestAssessArea_Trend(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		incidents []types.IncidentData
		want      string
	}{
		{
			"more recent than prior is increasing",
			[]types.IncidentData{
				activeIncident(10, 10, types.Low, now.Add(-1*time.Hour)),
				activeIncident(10, 10, types.Low, now.Add(-2*time.Hour)),
				activeIncident(10, 10, types.Low, now.Add(-30*time.Hour)),
			},
			TrendIncreasing,
		},
		{
			"more prior than recent is decreasing",
			[]types.IncidentData{
				activeIncident(10, 10, types.Low, now.Add(-30*time.Hour)),
				activeIncident(10, 10, types.Low, now.Add(-40*time.Hour)),
				activeIncident(10, 10, types.Low, now.Add(-1*time.Hour)),
			},
			TrendDecreasing,
		},
		{
			"balanced is stable",
			[]types.IncidentData{
				activeIncident(10, 10, types.Low, now.Add(-1*time.Hour)),
				activeIncident(10, 10, types.Low, now.Add(-30*time.Hour)),
			},
			TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessArea(10, 10, 5, tt.incidents, now)
			if got.PredictedTrend != tt.want {
				t.Errorf("trend = %v, want %v", got.PredictedTrend, tt.want)
			}
		})
	}
}
