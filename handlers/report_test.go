package handlers

import (
	"testing"
	"time"

	"saferoute/types"
)

func TestBuildIncident_CarriesAllMediaFlags(t *testing.T) {
	req := reportRequest{
		Type:        types.Accident,
		Description: "collision at the junction",
		HasPhotos:   true,
		HasVideo:    false,
		HasVoice:    true,
		ReporterID:  "user-7",
		Reporter:    "Priya",
	}
	result := types.TriageResult{
		Severity:          types.High,
		RiskScore:         85,
		Suggestions:       []string{"Move to a safe location"},
		EstimatedDuration: "1-2 hours",
	}
	location := types.GeoPoint{Lat: 12.97, Lng: 77.59}
	now := time.Now().UTC().Format(time.RFC3339)

	incident := buildIncident(req, result, location, now)

	if incident.ID == "" {
		t.Error("incident has no generated ID")
	}
	if incident.Status != types.StatusActive {
		t.Errorf("status = %v, want active", incident.Status)
	}
	if !incident.HasPhotos || incident.HasVideo || !incident.HasVoice {
		t.Errorf("media flags = photos:%v video:%v voice:%v, want true/false/true",
			incident.HasPhotos, incident.HasVideo, incident.HasVoice)
	}
	if incident.Severity != types.High || incident.RiskScore != 85 {
		t.Errorf("triage snapshot = %v/%v, want HIGH/85", incident.Severity, incident.RiskScore)
	}
	if incident.ReporterName != "Priya" {
		t.Errorf("reporterName = %q, want Priya", incident.ReporterName)
	}
	if incident.ReportedAt != now {
		t.Errorf("reportedAt = %q, want %q", incident.ReportedAt, now)
	}
}

func TestBuildIncident_AnonymousReporter(t *testing.T) {
	incident := buildIncident(reportRequest{Type: types.Traffic, Description: "jam"},
		types.TriageResult{Severity: types.Low}, types.GeoPoint{Lat: 1, Lng: 1},
		time.Now().UTC().Format(time.RFC3339))

	if incident.ReporterName != "Anonymous" {
		t.Errorf("reporterName = %q, want Anonymous", incident.ReporterName)
	}
}
