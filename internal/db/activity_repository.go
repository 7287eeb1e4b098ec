package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"photoevent-admin-go/internal/models"
)

const userDashboardCollection = "userDashboard"

// firestoreActivityRepository implements ActivityRepository using Firestore.
type firestoreActivityRepository struct {
	client *firestore.Client
}

// NewFirestoreActivityRepository creates a new firestoreActivityRepository.
func NewFirestoreActivityRepository(client *firestore.Client) ActivityRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ActivityRepository.")
	}
	return &firestoreActivityRepository{client: client}
}

// GetByUserID retrieves the activity rollup for one user. The gallery
// service keys these documents by its own ids, so the lookup goes through
// the userId field. ErrNotFound when the user has no rollup yet.
func (r *firestoreActivityRepository) GetByUserID(ctx context.Context, userID string) (*models.UserActivity, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByUserID operation")
	}
	snaps, err := fetchDocs(ctx, r.client.Collection(userDashboardCollection).
		Where("userId", "==", userID).
		Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity for user '%s': %w", userID, err)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("no activity recorded for user '%s': %w", userID, ErrNotFound)
	}
	return models.ActivityFromDoc(snaps[0].Ref.ID, snaps[0].Data()), nil
}
