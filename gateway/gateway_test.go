package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panpath-guardian/mockdata"
	"panpath-guardian/tabular"
	"panpath-guardian/types"
	"panpath-guardian/webhook"
)

func newTestGateway(storeURL, hookURL string, geo Geocoder) *Gateway {
	var store *tabular.Client
	if storeURL == "" {
		store = tabular.New("", "")
	} else {
		store = tabular.New(storeURL, "test-token")
	}
	return New(store, webhook.New(hookURL), geo)
}

func TestReadsFallBackToDemoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, "", nil)

	events := g.Events()
	assert.Len(t, events, len(mockdata.Events()))

	alerts := g.Alerts()
	assert.Len(t, alerts, len(mockdata.Alerts()))

	pins := g.MapPins()
	assert.Len(t, pins, len(mockdata.MapPins()))
}

func TestUnconfiguredStoreServesDemoData(t *testing.T) {
	g := newTestGateway("", "", nil)
	assert.NotEmpty(t, g.Events())
	assert.NotEmpty(t, g.Alerts())
	assert.NotEmpty(t, g.MapPins())
}

func TestEventByIDFallsBack(t *testing.T) {
	g := newTestGateway("", "", nil)

	e, ok := g.EventByID("evt-001")
	require.True(t, ok)
	assert.Equal(t, "Multi-Signal Convergence Detected", e.Title)

	_, ok = g.EventByID("no-such-event")
	assert.False(t, ok)
}

func TestStatsDerivedFromServedData(t *testing.T) {
	g := newTestGateway("", "", nil)
	stats := g.Stats()
	assert.Equal(t, len(mockdata.Events()), stats.RiskEvents)
	assert.Equal(t, 3, stats.ActiveAlerts)
	assert.NotEmpty(t, stats.LastUpdated)
}

func TestEmptyUploadMakesZeroNetworkCalls(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway("", srv.URL, nil)

	err := g.UploadSignalData(types.UploadPayload{
		Type:       types.FormatJSON,
		SignalType: types.Wastewater,
		Data:       "   ",
	})
	assert.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestInvalidJSONUploadRejectedBeforeDispatch(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway("", srv.URL, nil)

	err := g.UploadSignalData(types.UploadPayload{
		Type:       types.FormatJSON,
		SignalType: types.Pharmacy,
		Data:       `{"rows": [`,
	})
	assert.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestValidUploadDispatchesOnce(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/signals", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway("", srv.URL, nil)

	err := g.UploadSignalData(types.UploadPayload{
		Type:       types.FormatJSON,
		SignalType: types.Wastewater,
		Data:       `{"reading": 42}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestUploadFailureSurfacesGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway("", srv.URL, nil)

	err := g.UploadSignalData(types.UploadPayload{
		Type:       types.FormatCSV,
		SignalType: types.Acoustic,
		Data:       "site,reading\nA,12",
	})
	require.Error(t, err)
	assert.Equal(t, "upload failed", err.Error())
}

func TestAnomalyValidation(t *testing.T) {
	g := newTestGateway("", "", nil)

	tests := []struct {
		name string
		req  types.AnomalyRequest
	}{
		{"missing location", types.AnomalyRequest{Intensity: 50, SignalTypes: []types.SignalType{types.Social}}},
		{"intensity too low", types.AnomalyRequest{Location: "Mumbai", Intensity: 5, SignalTypes: []types.SignalType{types.Social}}},
		{"intensity too high", types.AnomalyRequest{Location: "Mumbai", Intensity: 150, SignalTypes: []types.SignalType{types.Social}}},
		{"no signal types", types.AnomalyRequest{Location: "Mumbai", Intensity: 50}},
		{"unknown signal type", types.AnomalyRequest{Location: "Mumbai", Intensity: 50, SignalTypes: []types.SignalType{"telepathy"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, g.TriggerAnomaly(tt.req))
		})
	}

	// Unconfigured webhook degrades to a no-op, not an error.
	assert.NoError(t, g.TriggerAnomaly(types.AnomalyRequest{
		Location:    "Mumbai",
		Intensity:   60,
		SignalTypes: []types.SignalType{types.Wastewater},
	}))
}

func TestDispatchAlert(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := newTestGateway("", srv.URL, nil)

	err := g.DispatchAlert(types.Alert{
		Title: "Threshold Exceeded", Level: types.AlertWarning, Active: true, Priority: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "/alert", gotPath)

	assert.Error(t, g.DispatchAlert(types.Alert{Level: types.AlertInfo}))
	assert.Error(t, g.DispatchAlert(types.Alert{Title: "x", Level: "panic"}))
}

type stubGeocoder struct {
	locations []types.Location
	err       error
}

func (s *stubGeocoder) Search(ctx context.Context, query string) ([]types.Location, error) {
	return s.locations, s.err
}

func TestSearchPrefersGeocoder(t *testing.T) {
	geo := &stubGeocoder{locations: []types.Location{{Name: "Lagos, Nigeria", Lat: 6.5244, Long: 3.3792}}}
	g := newTestGateway("", "", geo)

	got, err := g.SearchLocation(context.Background(), "Lagos")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lagos, Nigeria", got[0].Name)
}

func TestSearchFallsBackToWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		w.Write([]byte(`{"results":[{"name":"London, United Kingdom","lat":51.5074,"long":-0.1278}]}`))
	}))
	defer srv.Close()

	geo := &stubGeocoder{err: errors.New("quota exceeded")}
	g := newTestGateway("", srv.URL, geo)

	got, err := g.SearchLocation(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "London, United Kingdom", got[0].Name)
	assert.InDelta(t, 51.5074, got[0].Lat, 1e-9)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	g := newTestGateway("", "", nil)
	_, err := g.SearchLocation(context.Background(), "  ")
	assert.Error(t, err)
}

func TestRefreshSnapshotServesRemoteData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Events":
			w.Write([]byte(`{"records":[{"id":"r1","fields":{
				"Title":"Remote Event","RiskLevel":"high","SignalTypes":"social"}}]}`))
		case "/Alerts":
			w.Write([]byte(`{"records":[{"id":"a1","fields":{"Title":"Remote Alert","Level":"info","Active":true}}]}`))
		case "/MapPins":
			w.Write([]byte(`{"records":[]}`))
		}
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, "", nil)
	require.NoError(t, g.RefreshSnapshot())

	events := g.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Remote Event", events[0].Title)

	stats := g.Stats()
	assert.Equal(t, 1, stats.RiskEvents)
	assert.Equal(t, 1, stats.ActiveAlerts)
}

func TestRefreshSnapshotUnconfigured(t *testing.T) {
	g := newTestGateway("", "", nil)
	assert.Error(t, g.RefreshSnapshot())
}
