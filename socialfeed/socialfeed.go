// Package socialfeed pulls recent public posts mentioning health-signal
// topics over the Bluesky xrpc API. The posts feed the dashboard's live
// activity panel; they are display-only and never enter the filter engine.
package socialfeed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
)

const (
	feedMethod   = "app.bsky.feed.getFeed"
	publicAPI    = "https://public.api.bsky.app"
	defaultLimit = 10
)

// Entry is one social post shown in the live feed.
type Entry struct {
	Author    string `json:"author"`
	Handle    string `json:"handle"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// feedResponse mirrors the slice of the getFeed response we consume.
type feedResponse struct {
	Feed []struct {
		Post struct {
			Author struct {
				DisplayName string `json:"displayName"`
				Handle      string `json:"handle"`
			} `json:"author"`
			Record struct {
				Text      string `json:"text"`
				CreatedAt string `json:"createdAt"`
			} `json:"record"`
		} `json:"post"`
	} `json:"feed"`
}

// Service fetches one configured feed generator.
type Service struct {
	client  *xrpc.Client
	feedURI string
}

// NewService returns a feed service, or nil when no feed URI is configured
// so callers fall back to the demo activity entries.
func NewService(feedURI string) *Service {
	if feedURI == "" {
		return nil
	}
	return &Service{
		client: &xrpc.Client{
			Client: &http.Client{Timeout: 10 * time.Second},
			Host:   publicAPI,
		},
		feedURI: feedURI,
	}
}

// Fetch returns up to limit recent posts from the configured feed.
func (s *Service) Fetch(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	params := map[string]interface{}{
		"feed":  s.feedURI,
		"limit": limit,
	}

	var out feedResponse
	if err := s.client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching social feed: %w", err)
	}

	entries := make([]Entry, 0, len(out.Feed))
	for _, item := range out.Feed {
		entries = append(entries, Entry{
			Author:    item.Post.Author.DisplayName,
			Handle:    item.Post.Author.Handle,
			Content:   item.Post.Record.Text,
			Timestamp: item.Post.Record.CreatedAt,
		})
	}
	return entries, nil
}

// MockEntries is the demo activity feed served when the social integration
// is unconfigured or unreachable.
func MockEntries() []Entry {
	return []Entry{
		{Author: "PanPath Ops", Handle: "ops.panpath", Content: "High-risk signal cluster detected in Mumbai", Timestamp: "2025-06-14T14:30:00Z"},
		{Author: "PanPath Ops", Handle: "ops.panpath", Content: "Acoustic monitoring active in São Paulo", Timestamp: "2025-06-14T12:15:00Z"},
		{Author: "PanPath Ops", Handle: "ops.panpath", Content: "Wearable data sync completed for Lagos region", Timestamp: "2025-06-14T11:45:00Z"},
		{Author: "PanPath Ops", Handle: "ops.panpath", Content: "Wastewater surveillance updated for London", Timestamp: "2025-06-14T10:20:00Z"},
		{Author: "PanPath Ops", Handle: "ops.panpath", Content: "System health check completed successfully", Timestamp: "2025-06-14T09:30:00Z"},
	}
}
