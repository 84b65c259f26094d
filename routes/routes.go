package routes

import (
	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"saferoute/authority"
	"saferoute/handlers"
	"saferoute/llm"
)

func SetupRouter(
	firestoreClient *firestore.Client,
	langClient *language.Client,
	classifier llm.Classifier,
	dispatcher *authority.Dispatcher,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to SafeRoute!",
		})
	})

	// api routes, clients injected into handlers
	api := r.Group("/api/saferoute")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeIncident(c, classifier)
		})
		api.POST("/notify", func(c *gin.Context) {
			handlers.NotifyAuthorities(c, dispatcher)
		})
		api.POST("/emergency", func(c *gin.Context) {
			handlers.EmergencySOS(c, firestoreClient, dispatcher)
		})

		api.POST("/incidents", func(c *gin.Context) {
			handlers.ReportIncident(c, firestoreClient, langClient, classifier, dispatcher)
		})
		api.GET("/incidents/nearby", func(c *gin.Context) {
			handlers.NearbyIncidents(c, firestoreClient)
		})
		api.GET("/incidents/:id", func(c *gin.Context) {
			handlers.GetIncident(c, firestoreClient)
		})
		api.POST("/incidents/:id/resolve", func(c *gin.Context) {
			handlers.ResolveIncident(c, firestoreClient)
		})

		api.GET("/facilities/nearby", func(c *gin.Context) {
			handlers.NearbyFacilities(c, firestoreClient)
		})
		api.POST("/facilities/seed", func(c *gin.Context) {
			handlers.SeedFacilities(c, firestoreClient)
		})
		api.GET("/risk", func(c *gin.Context) {
			handlers.AreaRisk(c, firestoreClient)
		})
	}

	return r
}
