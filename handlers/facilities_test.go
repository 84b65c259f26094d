package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func seedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/facilities/seed", func(c *gin.Context) {
		SeedFacilities(c, nil)
	})
	return r
}

func TestSeedFacilities_RejectsBadInput(t *testing.T) {
	r := seedRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty list", `{"facilities": []}`},
		{"nameless facility", `{"facilities": [{"type": "hospital", "lat": 12.9, "lng": 77.6}]}`},
		{"malformed json", `{"facilities": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/facilities/seed", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}
}
