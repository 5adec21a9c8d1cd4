// Package tabular reads dashboard entities from the external spreadsheet
// style datastore over its REST API. Rows come back as loosely typed field
// maps and are mapped column-by-column into the domain types.
package tabular

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"panpath-guardian/types"
)

// Table names in the external base.
const (
	TableEvents  = "Events"
	TableAlerts  = "Alerts"
	TableMapPins = "MapPins"
)

// Client talks to one configured base, bearer-token authenticated.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New returns a client for the given base URL and API token.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether both the base URL and token are present.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != "" && c.Token != ""
}

type record struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

type recordList struct {
	Records []record `json:"records"`
}

func (c *Client) fetchRecords(table string) ([]record, error) {
	if !c.Configured() {
		return nil, errors.New("tabular datastore not configured")
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/"+table, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datastore returned status %s for table %s", resp.Status, table)
	}

	var list recordList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding %s records: %w", table, err)
	}
	return list.Records, nil
}

// FetchEvents reads and maps the Events table.
func (c *Client) FetchEvents() ([]types.Event, error) {
	records, err := c.fetchRecords(TableEvents)
	if err != nil {
		return nil, err
	}

	events := make([]types.Event, 0, len(records))
	for _, rec := range records {
		f := fields(rec.Fields)
		e := types.Event{
			ID:    rec.ID,
			Title: f.str("Title"),
			Location: types.Location{
				Name: f.str("Location"),
				Lat:  f.num("Lat"),
				Long: f.num("Long"),
			},
			RiskLevel:          types.RiskLevel(strings.ToLower(f.str("RiskLevel"))),
			ConfidenceScore:    f.num("ConfidenceScore"),
			Timestamp:          f.str("Timestamp"),
			AffectedPopulation: int(f.num("AffectedPopulation")),
			ResponseTeams:      f.list("ResponseTeams"),
			Recommendation:     f.str("Recommendation"),
		}
		// Signal channels arrive as a comma-separated list, strengths as one
		// numeric column per channel. A listed channel with no strength
		// column maps to a zero-strength reading.
		for _, raw := range f.list("SignalTypes") {
			st, err := types.ParseSignalType(raw)
			if err != nil {
				continue
			}
			e.Signals = append(e.Signals, types.SignalReading{
				Type:     st,
				Strength: int(f.num(raw)),
			})
		}
		events = append(events, e)
	}
	return events, nil
}

// FetchAlerts reads and maps the Alerts table.
func (c *Client) FetchAlerts() ([]types.Alert, error) {
	records, err := c.fetchRecords(TableAlerts)
	if err != nil {
		return nil, err
	}

	alerts := make([]types.Alert, 0, len(records))
	for _, rec := range records {
		f := fields(rec.Fields)
		alerts = append(alerts, types.Alert{
			ID:              rec.ID,
			Title:           f.str("Title"),
			Level:           types.AlertLevel(strings.ToLower(f.str("Level"))),
			Message:         f.str("Message"),
			Timestamp:       f.str("Timestamp"),
			Location:        f.str("Location"),
			Active:          f.boolean("Active"),
			Priority:        int(f.num("Priority")),
			ResponseActions: f.list("ResponseActions"),
		})
	}
	return alerts, nil
}

// FetchMapPins reads and maps the MapPins table.
func (c *Client) FetchMapPins() ([]types.MapPin, error) {
	records, err := c.fetchRecords(TableMapPins)
	if err != nil {
		return nil, err
	}

	pins := make([]types.MapPin, 0, len(records))
	for _, rec := range records {
		f := fields(rec.Fields)
		pin := types.MapPin{
			ID:                 rec.ID,
			Lat:                f.num("Lat"),
			Long:               f.num("Long"),
			RiskLevel:          types.RiskLevel(strings.ToLower(f.str("RiskLevel"))),
			Location:           f.str("Location"),
			SignalCount:        int(f.num("SignalCount")),
			LastUpdate:         f.str("LastUpdate"),
			AffectedPopulation: int(f.num("AffectedPopulation")),
		}
		for _, raw := range f.list("SignalTypes") {
			if st, err := types.ParseSignalType(raw); err == nil {
				pin.SignalTypes = append(pin.SignalTypes, st)
			}
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

// fields wraps the loosely typed column map with forgiving accessors.
type fields map[string]interface{}

func (f fields) str(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

func (f fields) num(key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (f fields) boolean(key string) bool {
	if v, ok := f[key].(bool); ok {
		return v
	}
	return false
}

// list splits a comma-separated column into trimmed values.
func (f fields) list(key string) []string {
	raw := f.str(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
