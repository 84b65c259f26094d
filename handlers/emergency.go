package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saferoute/authority"
	"saferoute/db"
	"saferoute/triage"
	"saferoute/types"
)

type emergencyRequest struct {
	Type        types.IncidentType `json:"type"`
	Description string             `json:"description"`
	Location    *types.GeoPoint    `json:"location"`
	UserID      string             `json:"userId,omitempty"`
	Injured     int                `json:"injuredCount,omitempty"`
}

// Step-by-step guidance read out to the reporter while help is on the way.
var emergencyGuidance = map[types.IncidentType][]string{
	types.Accident: {
		"Check for injuries",
		"Move to safety if possible and safe",
		"Turn off engine",
		"Turn on hazard lights",
		"Emergency services en route",
	},
	types.Violence: {
		"Move to a safe location immediately",
		"Lock doors and windows",
		"Do not confront the attacker",
		"Police dispatched",
		"Nearby users alerted",
	},
	types.Fire: {
		"Evacuate immediately",
		"Stay low to avoid smoke",
		"Do not use elevators",
		"Fire services dispatched",
	},
	types.Flood: {
		"Move to higher ground now",
		"Do not attempt to cross moving water",
		"Rescue services dispatched",
	},
}

var genericEmergencyGuidance = []string{
	"Ensure your safety first",
	"Move away from immediate danger",
	"Alert nearby people to danger",
	"Help is on the way",
}

// EmergencySOS is the one-tap panic path. The report is forced CRITICAL,
// authorities are notified immediately, and the caller gets guidance to
// follow until responders arrive.
func EmergencySOS(c *gin.Context, firestoreClient *firestore.Client, dispatcher *authority.Dispatcher) {
	var req emergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Location == nil || req.Location.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required for emergency"})
		return
	}

	incidentType := req.Type
	if incidentType == "" {
		incidentType = types.Accident
	}
	description := req.Description
	if description == "" {
		description = "EMERGENCY SOS - Immediate assistance needed"
	}

	ctx := c.Request.Context()
	now := time.Now().UTC()
	sosID := fmt.Sprintf("SOS-%d", now.UnixMilli())

	plan := authority.Route(incidentType)
	report := dispatcher.Dispatch(ctx, plan, types.NotificationPayload{
		IncidentType: incidentType,
		Severity:     types.Critical,
		Location:     *req.Location,
		Description:  "EMERGENCY SOS: " + description,
		Timestamp:    now.Format(time.RFC3339),
		Source:       "SafeRoute",
	})

	incident := types.IncidentData{
		ID:           uuid.NewString(),
		Type:         incidentType,
		Description:  description,
		Severity:     types.Critical,
		Status:       types.StatusActive,
		Location:     *req.Location,
		ReporterID:   req.UserID,
		IsEmergency:  true,
		SosID:        sosID,
		RiskScore:    triage.RiskScore(types.Critical, description, false, false),
		Suggestions:  triage.Suggestions(incidentType, types.Critical),
		AuthorityLog: report,
		ReportedAt:   now.Format(time.RFC3339),
	}
	if err := db.SaveIncident(ctx, firestoreClient, incident); err != nil {
		// The SOS already went out, a storage failure must not look like
		// help is not coming.
		log.Printf("Failed to save SOS incident %s: %v", incident.ID, err)
	}

	guidance, ok := emergencyGuidance[incidentType]
	if !ok {
		guidance = genericEmergencyGuidance
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":            "active",
		"sosId":             sosID,
		"incidentId":        incident.ID,
		"guidance":          guidance,
		"authorityStatus":   report,
		"totalAuthorities":  len(report),
		"successful":        report.Successful(),
		"estimatedResponse": "5-15 minutes",
	})
}
