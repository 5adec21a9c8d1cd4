package chat

import "strings"

// Intent is the recognized subject of a user message. The fallback reply
// path classifies into one of these rather than string-matching ad hoc.
type Intent string

const (
	IntentHotspots Intent = "hotspots"
	IntentUpload   Intent = "upload"
	IntentAnomaly  Intent = "anomaly"
	IntentStatus   Intent = "status"
	IntentGeneral  Intent = "general"
)

// keyword sets per intent, checked in order. First hit wins.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentHotspots, []string{"hotspot", "outbreak"}},
	{IntentUpload, []string{"upload", "data"}},
	{IntentAnomaly, []string{"anomaly", "test"}},
	{IntentStatus, []string{"status", "system"}},
}

// ClassifyIntent maps a user message to an intent by keyword match.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}
	return IntentGeneral
}

// cannedResponses are the offline replies used when no completion backend
// is reachable.
var cannedResponses = map[Intent]string{
	IntentHotspots: "Based on current data, we're monitoring elevated signals in Mumbai, São Paulo, and Mexico City. Mexico City shows the highest risk level with multiple signal convergence. Would you like detailed analysis of any specific location?",
	IntentUpload:   "To upload signal data, navigate to the Admin panel and select your data format (CSV or JSON). Make sure to specify the signal type (wastewater, pharmacy, wearable, etc.). Need help with data formatting?",
	IntentAnomaly:  "You can trigger synthetic anomalies from the Admin panel for testing purposes. Specify the location, intensity (10-100%), and affected signal types. This is useful for validating response protocols.",
	IntentStatus:   "All systems are operational! We're monitoring 2,847 active sites across 89 countries with 156K+ live signals. Current alert level: Normal with 2 active warnings. Need specific system metrics?",
	IntentGeneral:  "I'm here to help with PanPath Guardian! I can assist with navigation, data interpretation, outbreak analysis, and system operations. What would you like to know more about?",
}

// CannedResponse returns the offline reply for a message.
func CannedResponse(message string) string {
	return cannedResponses[ClassifyIntent(message)]
}
