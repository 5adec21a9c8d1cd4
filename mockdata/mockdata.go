// Package mockdata holds the static demo datasets the dashboard falls back
// to whenever the external datastore is unreachable or unconfigured.
package mockdata

import "panpath-guardian/types"

var events = []types.Event{
	{
		ID:        "evt-001",
		Title:     "Multi-Signal Convergence Detected",
		Location:  types.Location{Name: "Mexico City, Mexico", Lat: 19.4326, Long: -99.1332},
		RiskLevel: types.RiskCritical,
		Signals: []types.SignalReading{
			{Type: types.Wastewater, Strength: 89},
			{Type: types.Pharmacy, Strength: 76},
			{Type: types.Syndromic, Strength: 82},
			{Type: types.Wearable, Strength: 67},
		},
		ConfidenceScore:    0.94,
		Timestamp:          "2025-06-14T14:30:00Z",
		AffectedPopulation: 21800000,
		ResponseTeams:      []string{"Rapid Response Alpha", "Epidemiology Unit 3"},
		Recommendation:     "Immediate deployment of mobile testing units to affected districts. Activate hospital surge protocols.",
	},
	{
		ID:        "evt-002",
		Title:     "Wastewater Viral Load Spike",
		Location:  types.Location{Name: "Mumbai, India", Lat: 19.076, Long: 72.8777},
		RiskLevel: types.RiskHigh,
		Signals: []types.SignalReading{
			{Type: types.Wastewater, Strength: 91},
			{Type: types.Pharmacy, Strength: 58},
		},
		ConfidenceScore:    0.87,
		Timestamp:          "2025-06-14T12:15:00Z",
		AffectedPopulation: 12400000,
		ResponseTeams:      []string{"Water Quality Taskforce"},
		Recommendation:     "Increase sampling frequency across treatment plants. Cross-reference with pharmacy sales data.",
	},
	{
		ID:        "evt-003",
		Title:     "Acoustic Cough Pattern Anomaly",
		Location:  types.Location{Name: "São Paulo, Brazil", Lat: -23.5505, Long: -46.6333},
		RiskLevel: types.RiskHigh,
		Signals: []types.SignalReading{
			{Type: types.Acoustic, Strength: 78},
			{Type: types.Syndromic, Strength: 64},
			{Type: types.Social, Strength: 55},
		},
		ConfidenceScore:    0.81,
		Timestamp:          "2025-06-14T11:45:00Z",
		AffectedPopulation: 8900000,
		Recommendation:     "Deploy additional acoustic sensors in transit hubs. Monitor clinic intake reports.",
	},
	{
		ID:        "evt-004",
		Title:     "Wearable Resting Heart Rate Deviation",
		Location:  types.Location{Name: "Lagos, Nigeria", Lat: 6.5244, Long: 3.3792},
		RiskLevel: types.RiskMedium,
		Signals: []types.SignalReading{
			{Type: types.Wearable, Strength: 71},
			{Type: types.Social, Strength: 43},
		},
		ConfidenceScore: 0.72,
		Timestamp:       "2025-06-14T10:20:00Z",
		Recommendation:  "Continue passive monitoring. Flag for review if trend persists 48 hours.",
	},
	{
		ID:        "evt-005",
		Title:     "Pharmacy Antiviral Sales Uptick",
		Location:  types.Location{Name: "London, United Kingdom", Lat: 51.5074, Long: -0.1278},
		RiskLevel: types.RiskMedium,
		Signals: []types.SignalReading{
			{Type: types.Pharmacy, Strength: 62},
			{Type: types.Syndromic, Strength: 48},
		},
		ConfidenceScore: 0.68,
		Timestamp:       "2025-06-14T09:30:00Z",
	},
	{
		ID:        "evt-006",
		Title:     "Baseline Syndromic Variation",
		Location:  types.Location{Name: "Tokyo, Japan", Lat: 35.6762, Long: 139.6503},
		RiskLevel: types.RiskLow,
		Signals: []types.SignalReading{
			{Type: types.Syndromic, Strength: 34},
		},
		ConfidenceScore: 0.55,
		Timestamp:       "2025-06-14T08:10:00Z",
	},
}

var alerts = []types.Alert{
	{
		ID:        "alert-001",
		Title:     "Critical Signal Convergence - Mexico City",
		Level:     types.AlertCritical,
		Message:   "Four independent signal types show simultaneous elevation. Probability of emerging outbreak: 94%.",
		Timestamp: "2025-06-14T14:30:00Z",
		Location:  "Mexico City, Mexico",
		Active:    true,
		Priority:  1,
		ResponseActions: []string{
			"Notify national health authority",
			"Activate mobile testing deployment",
			"Issue clinician advisory",
		},
	},
	{
		ID:        "alert-002",
		Title:     "Wastewater Threshold Exceeded - Mumbai",
		Level:     types.AlertWarning,
		Message:   "Viral load in municipal wastewater exceeded the warning threshold for the third consecutive sampling window.",
		Timestamp: "2025-06-14T12:15:00Z",
		Location:  "Mumbai, India",
		Active:    true,
		Priority:  2,
		ResponseActions: []string{
			"Increase sampling cadence",
			"Cross-check pharmacy signals",
		},
	},
	{
		ID:        "alert-003",
		Title:     "Acoustic Anomaly Under Review - São Paulo",
		Level:     types.AlertWarning,
		Message:   "Cough-pattern classifiers report sustained deviation in transit-hub sensors.",
		Timestamp: "2025-06-14T11:45:00Z",
		Location:  "São Paulo, Brazil",
		Active:    true,
		Priority:  3,
	},
	{
		ID:        "alert-004",
		Title:     "Weekly System Health Check Complete",
		Level:     types.AlertInfo,
		Message:   "All 2,847 monitoring sites reported within the expected window. No data gaps detected.",
		Timestamp: "2025-06-14T09:30:00Z",
		Active:    false,
		Priority:  5,
	},
}

var mapPins = []types.MapPin{
	{
		ID: "pin-001", Lat: 19.4326, Long: -99.1332,
		RiskLevel: types.RiskCritical, Location: "Mexico City, Mexico",
		SignalCount: 4, LastUpdate: "2025-06-14T14:30:00Z",
		AffectedPopulation: 21800000,
		SignalTypes:        []types.SignalType{types.Wastewater, types.Pharmacy, types.Syndromic, types.Wearable},
	},
	{
		ID: "pin-002", Lat: 19.076, Long: 72.8777,
		RiskLevel: types.RiskHigh, Location: "Mumbai, India",
		SignalCount: 2, LastUpdate: "2025-06-14T12:15:00Z",
		AffectedPopulation: 12400000,
		SignalTypes:        []types.SignalType{types.Wastewater, types.Pharmacy},
	},
	{
		ID: "pin-003", Lat: -23.5505, Long: -46.6333,
		RiskLevel: types.RiskHigh, Location: "São Paulo, Brazil",
		SignalCount: 3, LastUpdate: "2025-06-14T11:45:00Z",
		AffectedPopulation: 8900000,
		SignalTypes:        []types.SignalType{types.Acoustic, types.Syndromic, types.Social},
	},
	{
		ID: "pin-004", Lat: 6.5244, Long: 3.3792,
		RiskLevel: types.RiskMedium, Location: "Lagos, Nigeria",
		SignalCount: 2, LastUpdate: "2025-06-14T10:20:00Z",
		SignalTypes: []types.SignalType{types.Wearable, types.Social},
	},
	{
		ID: "pin-005", Lat: 51.5074, Long: -0.1278,
		RiskLevel: types.RiskMedium, Location: "London, United Kingdom",
		SignalCount: 2, LastUpdate: "2025-06-14T09:30:00Z",
		SignalTypes: []types.SignalType{types.Pharmacy, types.Syndromic},
	},
	{
		ID: "pin-006", Lat: 35.6762, Long: 139.6503,
		RiskLevel: types.RiskLow, Location: "Tokyo, Japan",
		SignalCount: 1, LastUpdate: "2025-06-14T08:10:00Z",
		SignalTypes: []types.SignalType{types.Syndromic},
	},
}

var stats = types.SystemStats{
	ActiveMonitors: 2847,
	LiveSignals:    156400,
	RiskEvents:     len(events),
	ActiveAlerts:   3,
	GlobalCoverage: 89,
	LastUpdated:    "2025-06-14T14:30:00Z",
}

// Events returns a copy of the demo event set. Nested slices are copied
// too, so callers can mutate the result freely.
func Events() []types.Event {
	out := make([]types.Event, len(events))
	for i, e := range events {
		out[i] = copyEvent(e)
	}
	return out
}

// Alerts returns a copy of the demo alert set.
func Alerts() []types.Alert {
	out := make([]types.Alert, len(alerts))
	for i, a := range alerts {
		a.ResponseActions = append([]string(nil), a.ResponseActions...)
		out[i] = a
	}
	return out
}

// MapPins returns a copy of the demo pin set.
func MapPins() []types.MapPin {
	out := make([]types.MapPin, len(mapPins))
	for i, p := range mapPins {
		p.SignalTypes = append([]types.SignalType(nil), p.SignalTypes...)
		out[i] = p
	}
	return out
}

// Stats returns the demo headline figures.
func Stats() types.SystemStats {
	return stats
}

// EventByID looks up a demo event by identifier.
func EventByID(id string) (types.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return copyEvent(e), true
		}
	}
	return types.Event{}, false
}

func copyEvent(e types.Event) types.Event {
	e.Signals = append([]types.SignalReading(nil), e.Signals...)
	e.ResponseTeams = append([]string(nil), e.ResponseTeams...)
	return e
}
