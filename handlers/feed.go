package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"panpath-guardian/socialfeed"
)

// GetLiveFeed serves the dashboard's social activity panel. An
// unconfigured or failing social integration degrades to the demo feed.
func GetLiveFeed(c *gin.Context, feed *socialfeed.Service) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if feed == nil {
		c.JSON(http.StatusOK, gin.H{"entries": socialfeed.MockEntries(), "source": "demo"})
		return
	}

	entries, err := feed.Fetch(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Warning: social feed unavailable, serving demo entries: %v", err)
		c.JSON(http.StatusOK, gin.H{"entries": socialfeed.MockEntries(), "source": "demo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "source": "live"})
}
