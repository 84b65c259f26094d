package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saferoute/authority"
	"saferoute/types"
)

type notifyRequest struct {
	IncidentID    string `json:"incidentId"`
	AuthorityType string `json:"authorityType,omitempty"`
	Incident      struct {
		Type        types.IncidentType `json:"type"`
		Severity    types.Severity     `json:"severity"`
		Location    types.GeoPoint     `json:"location"`
		Description string             `json:"description"`
		ReporterID  string             `json:"reporterId,omitempty"`
	} `json:"incident"`
}

// NotifyAuthorities routes an incident to its authority set and fans the
// notification out. Partial delivery failure comes back as per-authority
// data, the request itself succeeds with a complete report.
func NotifyAuthorities(c *gin.Context, dispatcher *authority.Dispatcher) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IncidentID == "" || req.Incident.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incidentId and incident.type are required"})
		return
	}

	plan := authority.Route(req.Incident.Type)

	// Optional narrowing to one authority, e.g. re-sending after a failure.
	// A name not in the plan is a caller error, not an empty fan-out.
	if req.AuthorityType != "" {
		narrowed := make(types.NotificationPlan, 0, 1)
		for _, p := range plan {
			if p.Authority == req.AuthorityType {
				narrowed = append(narrowed, p)
			}
		}
		if len(narrowed) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("authority %q is not applicable for incident type %q", req.AuthorityType, req.Incident.Type),
			})
			return
		}
		plan = narrowed
	}

	payload := types.NotificationPayload{
		IncidentType: req.Incident.Type,
		Severity:     req.Incident.Severity,
		Location:     req.Incident.Location,
		Description:  req.Incident.Description,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Source:       "SafeRoute",
	}

	report := dispatcher.Dispatch(c.Request.Context(), plan, payload)

	c.JSON(http.StatusOK, gin.H{
		"status":             "notified",
		"incidentId":         req.IncidentID,
		"authorityResponses": report,
		"totalAuthorities":   len(report),
		"successful":         report.Successful(),
	})
}
