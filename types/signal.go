package types

import "fmt"

// SignalType identifies one of the surveillance channels feeding the platform.
type SignalType string

const (
	Wastewater SignalType = "wastewater"
	Pharmacy   SignalType = "pharmacy"
	Wearable   SignalType = "wearable"
	Acoustic   SignalType = "acoustic"
	Social     SignalType = "social"
	Syndromic  SignalType = "syndromic"
)

// AllSignalTypes lists every recognized signal channel in display order.
var AllSignalTypes = []SignalType{
	Wastewater, Pharmacy, Wearable, Acoustic, Social, Syndromic,
}

// ParseSignalType validates a raw string against the closed set of channels.
func ParseSignalType(s string) (SignalType, error) {
	st := SignalType(s)
	for _, known := range AllSignalTypes {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown signal type: %q", s)
}

// SignalReading is one channel's contribution to an event. Strength is a
// 0-100 reading. Keeping type and strength together avoids the drift that
// comes from tracking a type list and a strength map separately.
type SignalReading struct {
	Type     SignalType `firestore:"type" json:"type"`
	Strength int        `firestore:"strength" json:"strength"`
}
