package mapproj

import "panpath-guardian/types"

// Marker is a projected map pin plus its current visual state.
type Marker struct {
	Pin     types.MapPin `json:"pin"`
	At      Point        `json:"at"`
	Hovered bool         `json:"hovered"`
	Pulsing bool         `json:"pulsing"`
}

// MarkerBoard tracks hover state across the rendered pins. At most one pin
// is hovered at a time; entering a pin displaces any previous hover.
type MarkerBoard struct {
	hovered string // pin ID, empty when nothing is hovered
}

// Enter marks the given pin as hovered, replacing any prior hover.
func (b *MarkerBoard) Enter(pinID string) {
	b.hovered = pinID
}

// Leave clears the hover if it belongs to the given pin. Leaving a pin that
// is not the hovered one changes nothing.
func (b *MarkerBoard) Leave(pinID string) {
	if b.hovered == pinID {
		b.hovered = ""
	}
}

// Hovered returns the currently hovered pin ID, empty when none.
func (b *MarkerBoard) Hovered() string {
	return b.hovered
}

// Render projects each pin onto the canvas and attaches visual state. High
// and critical pins pulse; the halo is decorative, not a data signal.
func (b *MarkerBoard) Render(pins []types.MapPin) []Marker {
	markers := make([]Marker, 0, len(pins))
	for _, pin := range pins {
		markers = append(markers, Marker{
			Pin:     pin,
			At:      Project(pin.Long, pin.Lat),
			Hovered: b.hovered == pin.ID,
			Pulsing: pin.RiskLevel.AtLeast(types.RiskHigh),
		})
	}
	return markers
}
