package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"panpath-guardian/gateway"
	"panpath-guardian/handlers"
	"panpath-guardian/prefs"
	"panpath-guardian/socialfeed"
)

// SetupRouter wires the HTTP surface. Any of the injected collaborators
// may be nil/unconfigured; the handlers degrade instead of failing.
func SetupRouter(
	gw *gateway.Gateway,
	firestoreClient *firestore.Client,
	prefStore *prefs.Store,
	chatRegistry *handlers.ChatRegistry,
	feed *socialfeed.Service,
) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to PanPath Guardian!",
		})
	})

	// api routes
	api := r.Group("/api/panpath")
	{
		api.GET("/events", func(c *gin.Context) {
			handlers.GetEvents(c, gw)
		})
		api.GET("/events/:eventId", func(c *gin.Context) {
			handlers.GetEventByID(c, gw)
		})
		api.GET("/alerts", func(c *gin.Context) {
			handlers.GetAlerts(c, gw)
		})
		api.GET("/mappins", func(c *gin.Context) {
			handlers.GetMapPins(c, gw)
		})
		api.GET("/stats", func(c *gin.Context) {
			handlers.GetStats(c, gw)
		})
		api.GET("/feed", func(c *gin.Context) {
			handlers.GetLiveFeed(c, feed)
		})

		api.POST("/signals", func(c *gin.Context) {
			handlers.UploadSignalData(c, gw)
		})
		api.POST("/anomaly", func(c *gin.Context) {
			handlers.TriggerAnomaly(c, gw)
		})
		api.POST("/synthesize", func(c *gin.Context) {
			handlers.TriggerSynthesis(c, gw)
		})
		api.POST("/search", func(c *gin.Context) {
			handlers.SearchLocation(c, gw)
		})
		api.POST("/alert", func(c *gin.Context) {
			handlers.DispatchAlert(c, gw)
		})

		api.POST("/chat", chatRegistry.SendMessage)
		api.GET("/chat/:sessionId", chatRegistry.GetTranscript)

		api.POST("/survey", func(c *gin.Context) {
			handlers.SubmitSurvey(c, firestoreClient)
		})

		api.GET("/preferences/theme", func(c *gin.Context) {
			handlers.GetTheme(c, prefStore)
		})
		api.PUT("/preferences/theme", func(c *gin.Context) {
			handlers.SetTheme(c, prefStore)
		})
	}

	return r
}
