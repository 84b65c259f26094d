package handlers

import (
	"errors"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"saferoute/db"
)

// GetIncident fetches one incident by document ID.
func GetIncident(c *gin.Context, firestoreClient *firestore.Client) {
	incident, err := db.GetIncidentByID(c.Request.Context(), firestoreClient, c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "incident": incident})
}

type resolveRequest struct {
	ResolvedBy string `json:"resolvedBy"`
	Notes      string `json:"resolutionNotes,omitempty"`
}

// ResolveIncident marks an incident resolved.
func ResolveIncident(c *gin.Context, firestoreClient *firestore.Client) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := db.ResolveIncident(c.Request.Context(), firestoreClient, c.Param("id"), req.ResolvedBy, req.Notes)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "incident resolved"})
}
