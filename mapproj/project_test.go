package mapproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panpath-guardian/types"
)

func TestProjectBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		long  float64
		lat   float64
		wantX float64
		wantY float64
	}{
		{"west edge", -180, 0, 0, 250},
		{"east edge", 180, 0, 1000, 250},
		{"north pole", 0, 90, 500, 0},
		{"south pole", 0, -90, 500, 500},
		{"origin", 0, 0, 500, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.long, tt.lat)
			assert.InDelta(t, tt.wantX, p.X, 1e-9)
			assert.InDelta(t, tt.wantY, p.Y, 1e-9)
		})
	}
}

func TestProjectMonotonic(t *testing.T) {
	// Increasing longitude strictly increases x at fixed latitude.
	prev := Project(-180, 40)
	for long := -179.0; long <= 180; long++ {
		p := Project(long, 40)
		assert.Greater(t, p.X, prev.X, "x not increasing at long=%v", long)
		prev = p
	}

	// Increasing latitude strictly decreases y at fixed longitude.
	prev = Project(10, -90)
	for lat := -89.0; lat <= 90; lat++ {
		p := Project(10, lat)
		assert.Less(t, p.Y, prev.Y, "y not decreasing at lat=%v", lat)
		prev = p
	}
}

func TestMarkerBoardExclusiveHover(t *testing.T) {
	var board MarkerBoard
	assert.Empty(t, board.Hovered())

	board.Enter("pin-001")
	assert.Equal(t, "pin-001", board.Hovered())

	// Entering another pin displaces the first.
	board.Enter("pin-002")
	assert.Equal(t, "pin-002", board.Hovered())

	// Leaving a pin that is not hovered is a no-op.
	board.Leave("pin-001")
	assert.Equal(t, "pin-002", board.Hovered())

	board.Leave("pin-002")
	assert.Empty(t, board.Hovered())
}

func TestRenderAttachesState(t *testing.T) {
	pins := []types.MapPin{
		{ID: "a", Lat: 19.4326, Long: -99.1332, RiskLevel: types.RiskCritical},
		{ID: "b", Lat: 51.5074, Long: -0.1278, RiskLevel: types.RiskMedium},
		{ID: "c", Lat: -23.5505, Long: -46.6333, RiskLevel: types.RiskHigh},
	}

	var board MarkerBoard
	board.Enter("b")

	markers := board.Render(pins)
	require.Len(t, markers, 3)

	assert.False(t, markers[0].Hovered)
	assert.True(t, markers[0].Pulsing)

	assert.True(t, markers[1].Hovered)
	assert.False(t, markers[1].Pulsing)

	assert.False(t, markers[2].Hovered)
	assert.True(t, markers[2].Pulsing)

	for _, m := range markers {
		assert.GreaterOrEqual(t, m.At.X, 0.0)
		assert.LessOrEqual(t, m.At.X, CanvasWidth)
		assert.GreaterOrEqual(t, m.At.Y, 0.0)
		assert.LessOrEqual(t, m.At.Y, CanvasHeight)
	}
}
