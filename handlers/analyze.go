package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saferoute/llm"
	"saferoute/triage"
	"saferoute/types"
)

// AnalyzeIncident classifies a report without persisting anything.
// Missing type or description is the one failure surfaced to the caller;
// everything downstream degrades to rule-based output instead of erroring.
func AnalyzeIncident(c *gin.Context, classifier llm.Classifier) {
	var report types.IncidentReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if report.Type == "" || report.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and description are required"})
		return
	}

	result := triage.Analyze(c.Request.Context(), classifier, report)
	c.JSON(http.StatusOK, result)
}
