// Package mapproj places geographic coordinates on the dashboard's logical
// map canvas and tracks per-pin hover state for the rendered markers.
package mapproj

// Logical canvas the dashboard map renders into.
const (
	CanvasWidth  = 1000.0
	CanvasHeight = 500.0
)

// Point is a position on the logical canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps longitude/latitude to canvas coordinates using a plain
// equirectangular projection. Area distortion grows toward the poles, which
// is fine here: the map is for coarse visual placement, not cartography.
func Project(long, lat float64) Point {
	return Point{
		X: (long + 180) / 360 * CanvasWidth,
		Y: (90 - lat) / 180 * CanvasHeight,
	}
}
