package types

// RiskLevel orders event risk from low to critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// riskRank gives RiskLevel its ordering. Unknown levels rank below low.
var riskRank = map[RiskLevel]int{
	RiskLow:      1,
	RiskMedium:   2,
	RiskHigh:     3,
	RiskCritical: 4,
}

// AtLeast reports whether r is at or above the given level.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskRank[r] >= riskRank[other]
}

// Location is a named point on the globe.
type Location struct {
	Name string  `firestore:"name" json:"name"`
	Lat  float64 `firestore:"lat" json:"lat"`
	Long float64 `firestore:"long" json:"long"`
}

// Event is a detected signal-convergence event shown on the dashboard.
type Event struct {
	ID                 string          `firestore:"-" json:"id"`
	Title              string          `firestore:"title" json:"title"`
	Location           Location        `firestore:"location" json:"location"`
	RiskLevel          RiskLevel       `firestore:"riskLevel" json:"riskLevel"`
	Signals            []SignalReading `firestore:"signals" json:"signals"`
	ConfidenceScore    float64         `firestore:"confidenceScore" json:"confidenceScore"`
	Timestamp          string          `firestore:"timestamp" json:"timestamp"`
	AffectedPopulation int             `firestore:"affectedPopulation,omitempty" json:"affectedPopulation,omitempty"`
	ResponseTeams      []string        `firestore:"responseTeams,omitempty" json:"responseTeams,omitempty"`
	Recommendation     string          `firestore:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// SignalTypes derives the set of contributing channels from the readings.
func (e Event) SignalTypes() []SignalType {
	out := make([]SignalType, 0, len(e.Signals))
	for _, s := range e.Signals {
		out = append(out, s.Type)
	}
	return out
}

// SignalStrength returns the strength recorded for a channel, if present.
func (e Event) SignalStrength(t SignalType) (int, bool) {
	for _, s := range e.Signals {
		if s.Type == t {
			return s.Strength, true
		}
	}
	return 0, false
}
