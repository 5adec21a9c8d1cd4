package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panpath-guardian/prefs"
)

// GetTheme returns the persisted dark-mode preference.
func GetTheme(c *gin.Context, store *prefs.Store) {
	c.JSON(http.StatusOK, gin.H{"darkMode": store.DarkMode()})
}

// SetTheme persists the dark-mode preference.
func SetTheme(c *gin.Context, store *prefs.Store) {
	var req struct {
		DarkMode *bool `json:"darkMode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DarkMode == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "darkMode boolean is required"})
		return
	}

	if err := store.SetDarkMode(*req.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"darkMode": *req.DarkMode})
}
