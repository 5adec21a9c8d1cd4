package types

// AlertLevel is the severity band of a dispatched alert.
type AlertLevel string

const (
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// Alert is a notification record. Alerts are created upstream and displayed
// read-only; the client filters them but never transitions their state.
type Alert struct {
	ID              string     `firestore:"-" json:"id"`
	Title           string     `firestore:"title" json:"title"`
	Level           AlertLevel `firestore:"level" json:"level"`
	Message         string     `firestore:"message" json:"message"`
	Timestamp       string     `firestore:"timestamp" json:"timestamp"`
	Location        string     `firestore:"location,omitempty" json:"location,omitempty"`
	Active          bool       `firestore:"active" json:"active"`
	Priority        int        `firestore:"priority" json:"priority"` // lower = more urgent
	ResponseActions []string   `firestore:"responseActions,omitempty" json:"responseActions,omitempty"`
}

// MapPin is the denormalized view of an event used for map rendering.
type MapPin struct {
	ID                 string       `firestore:"-" json:"id"`
	Lat                float64      `firestore:"lat" json:"lat"`
	Long               float64      `firestore:"long" json:"long"`
	RiskLevel          RiskLevel    `firestore:"riskLevel" json:"riskLevel"`
	Location           string       `firestore:"location" json:"location"`
	SignalCount        int          `firestore:"signalCount" json:"signalCount"`
	LastUpdate         string       `firestore:"lastUpdate" json:"lastUpdate"`
	AffectedPopulation int          `firestore:"affectedPopulation,omitempty" json:"affectedPopulation,omitempty"`
	SignalTypes        []SignalType `firestore:"signalTypes" json:"signalTypes"`
}

// SystemStats is the headline figures block on the dashboard.
type SystemStats struct {
	ActiveMonitors int    `json:"activeMonitors"`
	LiveSignals    int    `json:"liveSignals"`
	RiskEvents     int    `json:"riskEvents"`
	ActiveAlerts   int    `json:"activeAlerts"`
	GlobalCoverage int    `json:"globalCoverage"` // countries covered
	LastUpdated    string `json:"lastUpdated"`
}
