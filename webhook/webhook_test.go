package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchPostsOperationBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	d := New(srv.URL)
	resp, err := d.Dispatch(OpSignalUpload, map[string]interface{}{
		"signalType": "wastewater",
	})
	require.NoError(t, err)

	assert.Equal(t, "/signals", gotPath)
	assert.Equal(t, OpSignalUpload, gotBody["type"])
	assert.Equal(t, "wastewater", gotBody["signalType"])
	assert.NotEmpty(t, gotBody["timestamp"])
	assert.Equal(t, true, resp["ok"])
}

func TestDispatchUnconfiguredIsNoOp(t *testing.T) {
	d := New("")
	resp, err := d.Dispatch(OpSyntheticAnomaly, map[string]interface{}{"location": "Mumbai"})
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestDispatchSurfacesServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := New(srv.URL)
	_, err := d.Dispatch(OpSignalUpload, nil)
	assert.Error(t, err)
}

func TestDispatchUnknownOperation(t *testing.T) {
	d := New("http://example.invalid")
	_, err := d.Dispatch("not_an_op", nil)
	assert.Error(t, err)
}

func TestEndpointSuffixes(t *testing.T) {
	want := map[string]string{
		OpSignalUpload:     "/signals",
		OpEventSynthesis:   "/synthesize",
		OpLocationSearch:   "/search",
		OpMapUpdate:        "/map-update",
		OpAlertDispatch:    "/alert",
		OpChatMessage:      "/chat",
		OpSyntheticAnomaly: "/anomaly",
	}
	assert.Equal(t, want, endpoints)
}
