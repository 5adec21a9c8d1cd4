// Package signalfilter selects dashboard entities whose signal channels
// intersect an active filter set.
package signalfilter

import "panpath-guardian/types"

// Apply returns the items whose signal-type set intersects active. An empty
// active set means no filtering and returns every item: the dashboard should
// never be blank on first load. Input order is preserved.
func Apply[T any](items []T, active []types.SignalType, signalsOf func(T) []types.SignalType) []T {
	if len(active) == 0 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	activeSet := make(map[types.SignalType]bool, len(active))
	for _, t := range active {
		activeSet[t] = true
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if intersects(signalsOf(item), activeSet) {
			out = append(out, item)
		}
	}
	return out
}

func intersects(signals []types.SignalType, active map[types.SignalType]bool) bool {
	for _, s := range signals {
		if active[s] {
			return true
		}
	}
	return false
}

// Events filters events by their contributing signal channels.
func Events(events []types.Event, active []types.SignalType) []types.Event {
	return Apply(events, active, func(e types.Event) []types.SignalType {
		return e.SignalTypes()
	})
}

// Pins filters map pins by their signal channels.
func Pins(pins []types.MapPin, active []types.SignalType) []types.MapPin {
	return Apply(pins, active, func(p types.MapPin) []types.SignalType {
		return p.SignalTypes
	})
}
