package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"saferoute/db"
	"saferoute/types"
)

type seedFacilitiesRequest struct {
	Facilities []types.FacilityData `json:"facilities"`
}

// SeedFacilities loads a batch of facility records into the store, feeding
// the nearby lookup. Entries without an ID get one assigned.
func SeedFacilities(c *gin.Context, firestoreClient *firestore.Client) {
	var req seedFacilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Facilities) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilities list is required"})
		return
	}
	for i := range req.Facilities {
		if req.Facilities[i].Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every facility needs a name"})
			return
		}
		if req.Facilities[i].ID == "" {
			req.Facilities[i].ID = uuid.NewString()
		}
	}

	if err := db.SaveFacilities(c.Request.Context(), firestoreClient, req.Facilities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"seeded":  len(req.Facilities),
	})
}
