// Package db persists user-generated records (survey submissions, chat
// transcripts) to Firestore. Dashboard data itself is never stored here;
// that lives with the external datastore and the demo fallback.
package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go"
	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
	initErr    error
)

// InitFirestore initializes and returns a Firestore client. A missing
// FIREBASE_CREDENTIALS env var is not fatal: the service runs with
// persistence disabled and survey/chat writes become logged no-ops.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		if encodedCreds == "" {
			log.Println("Warning: FIREBASE_CREDENTIALS not set, persistence disabled")
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("decoding Firestore credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = fmt.Errorf("initializing Firebase app: %w", err)
			return
		}

		client, initErr = app.Firestore(context.Background())
	})
	return client, initErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
