package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"panpath-guardian/types"
)

const transcriptsCollection = "transcripts"

// SaveTranscript stores a chat session's transcript under its session ID,
// overwriting any previous snapshot of the same session. With no client
// configured the write is skipped.
func SaveTranscript(client *firestore.Client, sessionID string, messages []types.ChatMessage) error {
	if client == nil {
		return nil
	}

	ctx := context.Background()
	_, err := client.Collection(transcriptsCollection).Doc(sessionID).Set(ctx, map[string]interface{}{
		"messages": messages,
	})
	if err != nil {
		return fmt.Errorf("saving transcript %s: %w", sessionID, err)
	}
	return nil
}

// GetTranscript retrieves a session's stored transcript, nil when absent.
func GetTranscript(client *firestore.Client, sessionID string) ([]types.ChatMessage, error) {
	if client == nil {
		return nil, nil
	}

	ctx := context.Background()
	doc, err := client.Collection(transcriptsCollection).Doc(sessionID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting transcript %s: %w", sessionID, err)
	}

	var stored struct {
		Messages []types.ChatMessage `firestore:"messages"`
	}
	if err := doc.DataTo(&stored); err != nil {
		log.Printf("Warning: malformed transcript doc %s: %v", sessionID, err)
		return nil, err
	}
	return stored.Messages, nil
}
