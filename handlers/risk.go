package handlers

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"saferoute/db"
	"saferoute/triage"
)

// AreaRisk scores the risk around a point from the incidents on record.
// The assessment is recomputed on every request, never cached.
func AreaRisk(c *gin.Context, firestoreClient *firestore.Client) {
	originLat, originLng, ok := parseOrigin(c)
	if !ok {
		return
	}
	radius := parseRadius(c)

	incidents, err := db.GetActiveIncidents(c.Request.Context(), firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	assessment := triage.AssessArea(originLat, originLng, radius, incidents, time.Now().UTC())
	c.JSON(http.StatusOK, assessment)
}
