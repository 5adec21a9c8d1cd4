package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"panpath-guardian/gateway"
	"panpath-guardian/mapproj"
	"panpath-guardian/signalfilter"
	"panpath-guardian/types"
)

// parseSignalFilters reads the optional `signals` query parameter, a comma
// separated list of channels. Unknown channels are a 400.
func parseSignalFilters(c *gin.Context) ([]types.SignalType, bool) {
	raw := c.Query("signals")
	if raw == "" {
		return nil, true
	}

	var active []types.SignalType
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st, err := types.ParseSignalType(part)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		active = append(active, st)
	}
	return active, true
}

// GetEvents serves the event feed, optionally filtered by signal channel.
func GetEvents(c *gin.Context, gw *gateway.Gateway) {
	active, ok := parseSignalFilters(c)
	if !ok {
		return
	}

	events := signalfilter.Events(gw.Events(), active)
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// GetEventByID serves one event's detail view.
func GetEventByID(c *gin.Context, gw *gateway.Gateway) {
	id := c.Param("eventId")
	event, found := gw.EventByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found: " + id})
		return
	}

	// Fire-and-forget: viewing an event counts as a map refresh upstream.
	go gw.NotifyMapUpdate(id)

	c.JSON(http.StatusOK, event)
}

// GetAlerts serves the alerts list, optionally restricted to active ones.
func GetAlerts(c *gin.Context, gw *gateway.Gateway) {
	alerts := gw.Alerts()

	if c.Query("active") == "true" {
		filtered := make([]types.Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.Active {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}

// GetMapPins serves projected map markers, filtered by signal channel. The
// optional `hover` parameter marks one pin as hovered in the rendered
// output.
func GetMapPins(c *gin.Context, gw *gateway.Gateway) {
	active, ok := parseSignalFilters(c)
	if !ok {
		return
	}

	pins := signalfilter.Pins(gw.MapPins(), active)

	var board mapproj.MarkerBoard
	if hover := c.Query("hover"); hover != "" {
		board.Enter(hover)
	}

	c.JSON(http.StatusOK, gin.H{
		"markers": board.Render(pins),
		"canvas":  gin.H{"width": mapproj.CanvasWidth, "height": mapproj.CanvasHeight},
	})
}

// GetStats serves the dashboard headline figures.
func GetStats(c *gin.Context, gw *gateway.Gateway) {
	c.JSON(http.StatusOK, gw.Stats())
}
