package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"panpath-guardian/gateway"
	"panpath-guardian/types"
)

// UploadSignalData accepts an admin data upload and forwards it to the
// workflow webhook. Bad payloads are rejected before anything leaves the
// process.
func UploadSignalData(c *gin.Context, gw *gateway.Gateway) {
	var payload types.UploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := gw.UploadSignalData(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": string(payload.SignalType) + " data uploaded successfully",
	})
}

// TriggerAnomaly injects a synthetic anomaly for response-protocol testing.
func TriggerAnomaly(c *gin.Context, gw *gateway.Gateway) {
	var req types.AnomalyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gw.TriggerAnomaly(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "synthetic anomaly injected for " + req.Location,
	})
}

// TriggerSynthesis asks the automation service to run event synthesis.
func TriggerSynthesis(c *gin.Context, gw *gateway.Gateway) {
	if err := gw.TriggerEventSynthesis(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event synthesis triggered"})
}

// DispatchAlert forwards an alert to the automation service, which owns
// the actual notification fan-out.
func DispatchAlert(c *gin.Context, gw *gateway.Gateway) {
	var alert types.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gw.DispatchAlert(alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert dispatched"})
}

// SearchLocation resolves a place query for the dashboard search box.
func SearchLocation(c *gin.Context, gw *gateway.Gateway) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locations, err := gw.SearchLocation(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": locations})
}
