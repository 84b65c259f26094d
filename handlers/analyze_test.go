package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"saferoute/llm"
	"saferoute/types"
)

func analyzeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze", func(c *gin.Context) {
		AnalyzeIncident(c, llm.Disabled{})
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeIncident_FullResponse(t *testing.T) {
	r := analyzeRouter()

	w := postJSON(t, r, "/analyze", `{
		"type": "accident",
		"description": "multiple people injured, one unconscious",
		"hasPhotos": false,
		"hasVideo": false
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var result types.TriageResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response not a TriageResult: %v", err)
	}

	if result.Classification != types.Accident {
		t.Errorf("classification = %v, want accident", result.Classification)
	}
	if result.Severity != types.Critical {
		t.Errorf("severity = %v, want CRITICAL", result.Severity)
	}
	if !result.EmergencyDetected {
		t.Error("emergencyDetected = false, want true")
	}
	if result.RiskScore < 0 || result.RiskScore > 100 {
		t.Errorf("riskScore = %v out of bounds", result.RiskScore)
	}
}

func TestAnalyzeIncident_MissingFields(t *testing.T) {
	r := analyzeRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing type", `{"description": "a thing happened"}`},
		{"missing description", `{"type": "traffic"}`},
		{"empty body", `{}`},
		{"malformed json", `{"type": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/analyze", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestAnalyzeIncident_UnknownTypeStillSucceeds(t *testing.T) {
	r := analyzeRouter()

	w := postJSON(t, r, "/analyze", `{"type": "pothole", "description": "small pothole"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var result types.TriageResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response not a TriageResult: %v", err)
	}
	if result.Severity != types.Medium {
		t.Errorf("severity = %v, want MEDIUM default", result.Severity)
	}
	if len(result.Authorities) != 0 {
		t.Errorf("authorities = %v, want none for unmapped type", result.Authorities)
	}
}
