package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"panpath-guardian/types"
)

const surveysCollection = "surveys"

// SaveSurveySubmission stores one completed onboarding survey. With no
// client configured the submission is logged and dropped.
func SaveSurveySubmission(client *firestore.Client, sub types.SurveySubmission) error {
	if client == nil {
		log.Printf("Persistence disabled, discarding survey submission from %q", sub.Location)
		return nil
	}

	ctx := context.Background()
	docID := uuid.NewString()
	if _, err := client.Collection(surveysCollection).Doc(docID).Set(ctx, sub); err != nil {
		return fmt.Errorf("saving survey submission: %w", err)
	}

	log.Printf("Saved survey submission %s", docID)
	return nil
}

// GetSurveySubmissions retrieves every stored survey submission.
func GetSurveySubmissions(client *firestore.Client) ([]types.SurveySubmission, error) {
	if client == nil {
		return nil, nil
	}

	ctx := context.Background()
	var submissions []types.SurveySubmission

	iter := client.Collection(surveysCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating surveys collection: %w", err)
		}

		var sub types.SurveySubmission
		if err := doc.DataTo(&sub); err != nil {
			log.Printf("Warning: skipping malformed survey doc %s: %v", doc.Ref.ID, err)
			continue
		}
		submissions = append(submissions, sub)
	}
	return submissions, nil
}
