package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"photoevent-admin-go/internal/models"
)

const guestUsersCollection = "guestUsers"

// firestoreGuestUserRepository implements GuestUserRepository using Firestore.
type firestoreGuestUserRepository struct {
	client *firestore.Client
}

// NewFirestoreGuestUserRepository creates a new firestoreGuestUserRepository.
func NewFirestoreGuestUserRepository(client *firestore.Client) GuestUserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for GuestUserRepository.")
	}
	return &firestoreGuestUserRepository{client: client}
}

// ListByEvent retrieves the guest sessions recorded against one event.
func (r *firestoreGuestUserRepository) ListByEvent(ctx context.Context, eventID string) ([]*models.GuestUser, error) {
	if eventID == "" {
		return nil, errors.New("eventID cannot be empty for ListByEvent operation")
	}
	snaps, err := fetchOrdered(ctx, r.client.Collection(guestUsersCollection).Where("eventId", "==", eventID), "createdAt")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest users for event '%s': %w", eventID, err)
	}

	guests := make([]*models.GuestUser, 0, len(snaps))
	for _, snap := range snaps {
		guests = append(guests, models.GuestUserFromDoc(snap.Ref.ID, snap.Data()))
	}
	return guests, nil
}

// Count returns the total number of guest user documents.
func (r *firestoreGuestUserRepository) Count(ctx context.Context) (int, error) {
	count, err := countDocs(ctx, r.client.Collection(guestUsersCollection).Query)
	if err != nil {
		return 0, fmt.Errorf("failed to count guest users: %w", err)
	}
	return count, nil
}
