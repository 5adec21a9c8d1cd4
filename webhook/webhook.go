// Package webhook forwards platform operations to the external workflow
// automation service as JSON POSTs, one endpoint suffix per operation.
package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

// Operation tags carried in the webhook body. The automation service routes
// on these.
const (
	OpSignalUpload     = "signal_upload"
	OpEventSynthesis   = "event_synthesis"
	OpLocationSearch   = "location_search"
	OpMapUpdate        = "map_update"
	OpAlertDispatch    = "alert_dispatch"
	OpChatMessage      = "chat_message"
	OpSyntheticAnomaly = "synthetic_anomaly"
)

// endpoint suffix per operation tag.
var endpoints = map[string]string{
	OpSignalUpload:     "/signals",
	OpEventSynthesis:   "/synthesize",
	OpLocationSearch:   "/search",
	OpMapUpdate:        "/map-update",
	OpAlertDispatch:    "/alert",
	OpChatMessage:      "/chat",
	OpSyntheticAnomaly: "/anomaly",
}

// ErrNotConfigured is returned by Send when no base URL is set. Dispatch
// treats it as a no-op rather than a failure.
var ErrNotConfigured = errors.New("webhook base URL not configured")

// Dispatcher posts operation payloads to the configured automation service.
type Dispatcher struct {
	BaseURL string
	Client  *http.Client
}

// New returns a dispatcher for the given base URL. An empty URL degrades
// every dispatch to a logged no-op.
func New(baseURL string) *Dispatcher {
	return &Dispatcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Dispatch sends one operation to the automation service. The body is the
// operation tag, an ISO-8601 timestamp, and the caller's fields. A missing
// base URL logs a warning and succeeds; a transport or status failure is
// returned to the caller with no retry.
func (d *Dispatcher) Dispatch(op string, fields map[string]interface{}) (map[string]interface{}, error) {
	resp, err := d.send(op, fields)
	if errors.Is(err, ErrNotConfigured) {
		log.Printf("Warning: webhook not configured, skipping %s dispatch", op)
		return nil, nil
	}
	return resp, err
}

func (d *Dispatcher) send(op string, fields map[string]interface{}) (map[string]interface{}, error) {
	if d.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	suffix, ok := endpoints[op]
	if !ok {
		return nil, errors.New("unknown webhook operation: " + op)
	}

	body := map[string]interface{}{
		"type":      op,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range fields {
		body[k] = v
	}

	payloadBytes, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, d.BaseURL+suffix, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New("webhook returned status: " + resp.Status)
	}

	// No response schema is enforced beyond expecting JSON.
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
