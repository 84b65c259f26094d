package triage

import (
	"testing"

	"saferoute/types"
)

func TestRiskScore_Bases(t *testing.T) {
	tests := []struct {
		severity types.Severity
		want     float64
	}{
		{types.Low, 20},
		{types.Medium, 50},
		{types.High, 75},
		{types.Critical, 95},
		{types.Severity("bogus"), 50},
	}

	for _, tt := range tests {
		got := RiskScore(tt.severity, "calm report", false, false)
		if got != tt.want {
			t.Errorf("RiskScore(%v) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

func TestRiskScore_EvidenceBonuses(t *testing.T) {
	base := RiskScore(types.Low, "calm report", false, false)

	if got := RiskScore(types.Low, "calm report", true, false); got != base+5 {
		t.Errorf("photo bonus: got %v, want %v", got, base+5)
	}
	if got := RiskScore(types.Low, "calm report", false, true); got != base+10 {
		t.Errorf("video bonus: got %v, want %v", got, base+10)
	}
	if got := RiskScore(types.Low, "calm report", true, true); got != base+15 {
		t.Errorf("photo+video bonus: got %v, want %v", got, base+15)
	}
}

func TestRiskScore_KeywordBonusAppliedOnce(t *testing.T) {
	// Two matching words still add a single +10.
	got := RiskScore(types.Low, "injured and unconscious person", false, false)
	if got != 30 {
		t.Errorf("keyword bonus: got %v, want 30", got)
	}
}

func TestRiskScore_ClampIsLastStep(t *testing.T) {
	// CRITICAL base 95 + photos 5 + video 10 + keyword 10 = 120, clamped once.
	got := RiskScore(types.Critical, "people injured and bleeding", true, true)
	if got != 100 {
		t.Errorf("clamped score = %v, want 100", got)
	}
}

func TestRiskScore_AlwaysInBounds(t *testing.T) {
	severities := []types.Severity{types.Low, types.Medium, types.High, types.Critical, types.Severity("")}
	descriptions := []string{"", "quiet street", "dead person, injured crowd, bleeding everywhere"}

	for _, sev := range severities {
		for _, desc := range descriptions {
			for _, photos := range []bool{false, true} {
				for _, video := range []bool{false, true} {
					got := RiskScore(sev, desc, photos, video)
					if got < 0 || got > 100 {
						t.Errorf("RiskScore(%v, %q, %v, %v) = %v out of [0,100]", sev, desc, photos, video, got)
					}
				}
			}
		}
	}
}
