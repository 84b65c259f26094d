package handlers

import (
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saferoute/authority"
	"saferoute/db"
	"saferoute/geocode"
	"saferoute/llm"
	"saferoute/nlp"
	"saferoute/triage"
	"saferoute/types"
)

type reportRequest struct {
	Type        types.IncidentType `json:"type"`
	Description string             `json:"description"`
	Location    *types.GeoPoint    `json:"location,omitempty"`
	HasPhotos   bool               `json:"hasPhotos"`
	HasVideo    bool               `json:"hasVideo"`
	HasVoice    bool               `json:"hasVoice"`
	TimeOfDay   string             `json:"timeOfDay,omitempty"`
	ReporterID  string             `json:"reporterId,omitempty"`
	Reporter    string             `json:"reporterName,omitempty"`
}

// ReportIncident is the full intake flow: validate, locate, triage,
// persist, notify. Notification failures are reported as data in the
// response, never as a request failure.
func ReportIncident(
	c *gin.Context,
	firestoreClient *firestore.Client,
	langClient *language.Client,
	classifier llm.Classifier,
	dispatcher *authority.Dispatcher,
) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Type == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and description are required"})
		return
	}

	// At least one photo or video backs every report. Keeps the incident
	// map from filling up with unverifiable claims.
	if !req.HasPhotos && !req.HasVideo {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "please provide at least one photo or video of the incident for verification",
			"mediaRequired": true,
		})
		return
	}

	ctx := c.Request.Context()

	location := types.GeoPoint{}
	if req.Location != nil {
		location = *req.Location
	} else {
		location = locateFromDescription(c, langClient, req.Description)
	}
	if location.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required and could not be derived from the description"})
		return
	}

	report := types.IncidentReport{
		Type:        req.Type,
		Description: req.Description,
		Location:    &location,
		HasPhotos:   req.HasPhotos,
		HasVideo:    req.HasVideo,
		HasVoice:    req.HasVoice,
		TimeOfDay:   req.TimeOfDay,
	}
	result := triage.Analyze(ctx, classifier, report)

	now := time.Now().UTC().Format(time.RFC3339)
	incident := buildIncident(req, result, location, now)

	// High and critical reports go straight to the authorities.
	var notifyReport types.NotificationReport
	if result.Severity == types.High || result.Severity == types.Critical {
		plan := authority.Route(req.Type)
		notifyReport = dispatcher.Dispatch(ctx, plan, types.NotificationPayload{
			IncidentType: req.Type,
			Severity:     result.Severity,
			Location:     location,
			Description:  req.Description,
			Timestamp:    now,
			Source:       "SafeRoute",
		})
		incident.AuthorityLog = notifyReport
	}

	if err := db.SaveIncident(ctx, firestoreClient, incident); err != nil {
		log.Printf("Failed to save incident %s: %v", incident.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save incident"})
		return
	}

	resp := gin.H{
		"success":    true,
		"incidentId": incident.ID,
		"incident":   incident,
		"analysis":   result,
	}
	if notifyReport != nil {
		resp["authorityResponses"] = notifyReport
		resp["notifiedAuthorities"] = len(notifyReport)
		resp["successfulNotifications"] = notifyReport.Successful()
	}
	c.JSON(http.StatusCreated, resp)
}

// buildIncident assembles the persisted form of a new report. Every media
// flag the reporter attached is stored alongside the triage snapshot.
func buildIncident(req reportRequest, result types.TriageResult, location types.GeoPoint, now string) types.IncidentData {
	return types.IncidentData{
		ID:                uuid.NewString(),
		Type:              req.Type,
		Description:       req.Description,
		Severity:          result.Severity,
		Status:            types.StatusActive,
		Location:          location,
		ReporterID:        req.ReporterID,
		ReporterName:      reporterOrAnonymous(req.Reporter),
		HasPhotos:         req.HasPhotos,
		HasVideo:          req.HasVideo,
		HasVoice:          req.HasVoice,
		RiskScore:         result.RiskScore,
		Suggestions:       result.Suggestions,
		EstimatedDuration: result.EstimatedDuration,
		ReportedAt:        now,
	}
}

// locateFromDescription extracts a place name via the language API and
// geocodes it. Either capability being absent just yields no location.
func locateFromDescription(c *gin.Context, langClient *language.Client, description string) types.GeoPoint {
	if langClient == nil {
		return types.GeoPoint{}
	}

	places, err := nlp.ExtractPlaces(c.Request.Context(), langClient, description)
	if err != nil {
		log.Printf("Place extraction failed: %v", err)
		return types.GeoPoint{}
	}
	if len(places) == 0 {
		return types.GeoPoint{}
	}

	point, err := geocode.LocatePlace(c.Request.Context(), places[0])
	if err != nil {
		log.Printf("Geocoding %q failed: %v", places[0], err)
		return types.GeoPoint{}
	}
	return point
}

func reporterOrAnonymous(name string) string {
	if name == "" {
		return "Anonymous"
	}
	return name
}
