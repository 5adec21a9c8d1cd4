// Package gateway is the shim between the dashboard and its external
// collaborators. Reads fall back to the static demo datasets on any
// failure; writes are dispatched once and surface their failures.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"panpath-guardian/mockdata"
	"panpath-guardian/tabular"
	"panpath-guardian/types"
	"panpath-guardian/webhook"
)

// Geocoder resolves a free-text place query to candidate locations.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]types.Location, error)
}

// Gateway bundles the external datastore, the workflow webhook and the
// optional geocoder behind one API.
type Gateway struct {
	store    *tabular.Client
	hook     *webhook.Dispatcher
	geocoder Geocoder

	mu       sync.RWMutex
	snapshot *snapshot
}

// snapshot is the cached remote dashboard dataset, refreshed by the cron
// job. Nil means serve mock data.
type snapshot struct {
	events    []types.Event
	alerts    []types.Alert
	pins      []types.MapPin
	refreshed time.Time
}

// New wires a gateway. Any of the collaborators may be unconfigured; the
// corresponding operations degrade rather than fail.
func New(store *tabular.Client, hook *webhook.Dispatcher, geocoder Geocoder) *Gateway {
	return &Gateway{store: store, hook: hook, geocoder: geocoder}
}

// Events returns the remote event set, or the demo set when the datastore
// is unreachable. Read failures never propagate.
func (g *Gateway) Events() []types.Event {
	if snap := g.currentSnapshot(); snap != nil {
		out := make([]types.Event, len(snap.events))
		copy(out, snap.events)
		return out
	}
	events, err := g.store.FetchEvents()
	if err != nil {
		log.Printf("Warning: falling back to demo events: %v", err)
		return mockdata.Events()
	}
	return events
}

// EventByID returns one event, falling back to the demo set.
func (g *Gateway) EventByID(id string) (types.Event, bool) {
	for _, e := range g.Events() {
		if e.ID == id {
			return e, true
		}
	}
	return mockdata.EventByID(id)
}

// Alerts returns the remote alert set, or the demo set on failure.
func (g *Gateway) Alerts() []types.Alert {
	if snap := g.currentSnapshot(); snap != nil {
		out := make([]types.Alert, len(snap.alerts))
		copy(out, snap.alerts)
		return out
	}
	alerts, err := g.store.FetchAlerts()
	if err != nil {
		log.Printf("Warning: falling back to demo alerts: %v", err)
		return mockdata.Alerts()
	}
	return alerts
}

// MapPins returns the remote pin set, or the demo set on failure.
func (g *Gateway) MapPins() []types.MapPin {
	if snap := g.currentSnapshot(); snap != nil {
		out := make([]types.MapPin, len(snap.pins))
		copy(out, snap.pins)
		return out
	}
	pins, err := g.store.FetchMapPins()
	if err != nil {
		log.Printf("Warning: falling back to demo map pins: %v", err)
		return mockdata.MapPins()
	}
	return pins
}

// Stats derives the headline figures from whatever dataset is being served.
func (g *Gateway) Stats() types.SystemStats {
	stats := mockdata.Stats()
	events := g.Events()
	alerts := g.Alerts()

	stats.RiskEvents = len(events)
	active := 0
	for _, a := range alerts {
		if a.Active {
			active++
		}
	}
	stats.ActiveAlerts = active
	stats.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return stats
}

// UploadSignalData validates an admin upload and forwards it to the
// workflow webhook. Validation failures abort before any network call.
func (g *Gateway) UploadSignalData(p types.UploadPayload) error {
	if strings.TrimSpace(p.Data) == "" {
		return errors.New("no data provided")
	}
	if p.Type != types.FormatCSV && p.Type != types.FormatJSON {
		return errors.New("upload format must be csv or json")
	}
	if _, err := types.ParseSignalType(string(p.SignalType)); err != nil {
		return err
	}
	if p.Type == types.FormatJSON && !json.Valid([]byte(p.Data)) {
		return errors.New("payload is not valid JSON")
	}

	_, err := g.hook.Dispatch(webhook.OpSignalUpload, map[string]interface{}{
		"format":     p.Type,
		"signalType": p.SignalType,
		"data":       p.Data,
	})
	if err != nil {
		log.Printf("Signal upload dispatch failed: %v", err)
		return errors.New("upload failed")
	}
	return nil
}

// TriggerAnomaly forwards a synthetic anomaly injection to the webhook.
func (g *Gateway) TriggerAnomaly(req types.AnomalyRequest) error {
	if strings.TrimSpace(req.Location) == "" {
		return errors.New("anomaly location is required")
	}
	if req.Intensity < 10 || req.Intensity > 100 {
		return errors.New("anomaly intensity must be between 10 and 100")
	}
	if len(req.SignalTypes) == 0 {
		return errors.New("at least one signal type is required")
	}
	for _, st := range req.SignalTypes {
		if _, err := types.ParseSignalType(string(st)); err != nil {
			return err
		}
	}

	_, err := g.hook.Dispatch(webhook.OpSyntheticAnomaly, map[string]interface{}{
		"location":    req.Location,
		"intensity":   req.Intensity,
		"signalTypes": req.SignalTypes,
	})
	if err != nil {
		log.Printf("Anomaly dispatch failed: %v", err)
		return errors.New("anomaly injection failed")
	}
	return nil
}

// TriggerEventSynthesis asks the automation service to synthesize events.
func (g *Gateway) TriggerEventSynthesis() error {
	_, err := g.hook.Dispatch(webhook.OpEventSynthesis, nil)
	if err != nil {
		log.Printf("Event synthesis dispatch failed: %v", err)
		return errors.New("event synthesis failed")
	}
	return nil
}

// DispatchAlert forwards an alert record to the automation service for
// downstream notification fan-out.
func (g *Gateway) DispatchAlert(alert types.Alert) error {
	if strings.TrimSpace(alert.Title) == "" {
		return errors.New("alert title is required")
	}
	if alert.Level != types.AlertInfo && alert.Level != types.AlertWarning && alert.Level != types.AlertCritical {
		return errors.New("alert level must be info, warning or critical")
	}

	_, err := g.hook.Dispatch(webhook.OpAlertDispatch, map[string]interface{}{
		"alert": alert,
	})
	if err != nil {
		log.Printf("Alert dispatch failed: %v", err)
		return errors.New("alert dispatch failed")
	}
	return nil
}

// NotifyMapUpdate tells the automation service a map refresh happened for
// the given event. Fire and forget.
func (g *Gateway) NotifyMapUpdate(eventID string) {
	if _, err := g.hook.Dispatch(webhook.OpMapUpdate, map[string]interface{}{
		"eventId": eventID,
	}); err != nil {
		log.Printf("Map update dispatch failed for %s: %v", eventID, err)
	}
}

// SearchLocation resolves a place query. The geocoder is preferred when
// configured; otherwise the query goes to the automation service.
func (g *Gateway) SearchLocation(ctx context.Context, query string) ([]types.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query is required")
	}

	if g.geocoder != nil {
		locations, err := g.geocoder.Search(ctx, query)
		if err == nil {
			return locations, nil
		}
		log.Printf("Warning: geocoder failed for %q, trying webhook: %v", query, err)
	}

	resp, err := g.hook.Dispatch(webhook.OpLocationSearch, map[string]interface{}{
		"query": query,
	})
	if err != nil {
		return nil, errors.New("location search failed")
	}

	return locationsFromWebhook(resp), nil
}

// locationsFromWebhook pulls whatever location records the automation
// service chose to return out of its untyped response.
func locationsFromWebhook(resp map[string]interface{}) []types.Location {
	raw, ok := resp["results"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]types.Location, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		loc := types.Location{}
		if name, ok := m["name"].(string); ok {
			loc.Name = name
		}
		if lat, ok := m["lat"].(float64); ok {
			loc.Lat = lat
		}
		if long, ok := m["long"].(float64); ok {
			loc.Long = long
		}
		out = append(out, loc)
	}
	return out
}

// RefreshSnapshot pulls all three tables and swaps the cached dataset. A
// partial failure keeps the previous snapshot.
func (g *Gateway) RefreshSnapshot() error {
	if !g.store.Configured() {
		return errors.New("tabular datastore not configured")
	}

	events, err := g.store.FetchEvents()
	if err != nil {
		return err
	}
	alerts, err := g.store.FetchAlerts()
	if err != nil {
		return err
	}
	pins, err := g.store.FetchMapPins()
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.snapshot = &snapshot{
		events:    events,
		alerts:    alerts,
		pins:      pins,
		refreshed: time.Now(),
	}
	g.mu.Unlock()

	log.Printf("Dashboard snapshot refreshed: %d events, %d alerts, %d pins",
		len(events), len(alerts), len(pins))
	return nil
}

func (g *Gateway) currentSnapshot() *snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshot
}
