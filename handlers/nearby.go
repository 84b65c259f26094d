package handlers

import (
	"math"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"saferoute/db"
	"saferoute/geo"
	"saferoute/types"
)

const defaultRadiusKM = 10.0

type nearbyIncident struct {
	types.IncidentData
	DistanceKM float64 `json:"distanceKm"`
}

// NearbyIncidents returns active incidents within a radius of the query
// point, annotated with distance, closest first. Optional type and
// severity filters narrow the set before the proximity scan.
func NearbyIncidents(c *gin.Context, firestoreClient *firestore.Client) {
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

	typeFilter := c.Query("type")
	severityFilter := c.Query("severity")
	filtered := incidents[:0]
	for _, inc := range incidents {
		if typeFilter != "" && string(inc.Type) != typeFilter {
			continue
		}
		if severityFilter != "" && string(inc.Severity) != severityFilter {
			continue
		}
		filtered = append(filtered, inc)
	}

	results := geo.Nearby(originLat, originLng, radius, filtered)

	out := make([]nearbyIncident, 0, len(results))
	for _, res := range results {
		out = append(out, nearbyIncident{
			IncidentData: res.Record,
			DistanceKM:   roundKM(res.DistanceKM),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(out),
		"incidents": out,
	})
}

type nearbyFacility struct {
	types.FacilityData
	DistanceKM float64 `json:"distanceKm"`
}

// NearbyFacilities is the same read path over the facility store.
func NearbyFacilities(c *gin.Context, firestoreClient *firestore.Client) {
	originLat, originLng, ok := parseOrigin(c)
	if !ok {
		return
	}
	radius := parseRadius(c)

	facilities, err := db.GetAllFacilities(c.Request.Context(), firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if typeFilter := c.Query("type"); typeFilter != "" {
		filtered := facilities[:0]
		for _, f := range facilities {
			if f.Type == typeFilter {
				filtered = append(filtered, f)
			}
		}
		facilities = filtered
	}

	results := geo.Nearby(originLat, originLng, radius, facilities)

	out := make([]nearbyFacility, 0, len(results))
	for _, res := range results {
		out = append(out, nearbyFacility{
			FacilityData: res.Record,
			DistanceKM:   roundKM(res.DistanceKM),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(out),
		"facilities": out,
	})
}

// parseOrigin reads lat/lng query params, writing the 400 itself when
// they are missing or malformed.
func parseOrigin(c *gin.Context) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return 0, 0, false
	}
	return lat, lng, true
}

func parseRadius(c *gin.Context) float64 {
	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil || radius <= 0 {
		return defaultRadiusKM
	}
	return radius
}

func roundKM(km float64) float64 {
	return math.Round(km*100) / 100
}
