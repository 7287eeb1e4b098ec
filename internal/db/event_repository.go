package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"photoevent-admin-go/internal/models"
)

const eventsCollection = "events"

// firestoreEventRepository implements EventRepository using Firestore.
type firestoreEventRepository struct {
	client *firestore.Client
}

// NewFirestoreEventRepository creates a new firestoreEventRepository.
func NewFirestoreEventRepository(client *firestore.Client) EventRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for EventRepository.")
	}
	return &firestoreEventRepository{client: client}
}

func (r *firestoreEventRepository) collection() firestore.Query {
	return r.client.Collection(eventsCollection).Query
}

func (r *firestoreEventRepository) listQuery(ctx context.Context, base firestore.Query, what string) ([]*models.Event, error) {
	snaps, err := fetchOrdered(ctx, base, "createdAt")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}

	events := make([]*models.Event, 0, len(snaps))
	for _, snap := range snaps {
		events = append(events, models.EventFromDoc(snap.Ref.ID, snap.Data()))
	}
	return events, nil
}

// List retrieves all events, newest first.
func (r *firestoreEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	return r.listQuery(ctx, r.collection(), "events")
}

// ListByUser retrieves events owned by a specific user.
func (r *firestoreEventRepository) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUser operation")
	}
	return r.listQuery(ctx, r.collection().Where("userId", "==", userID), "events by user")
}

// ListByType retrieves events of one event type.
func (r *firestoreEventRepository) ListByType(ctx context.Context, eventType string) ([]*models.Event, error) {
	if eventType == "" {
		return nil, errors.New("eventType cannot be empty for ListByType operation")
	}
	return r.listQuery(ctx, r.collection().Where("eventType", "==", eventType), "events by type")
}

// ListByUploader retrieves events uploaded by a specific account.
func (r *firestoreEventRepository) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.Event, error) {
	if uploadedBy == "" {
		return nil, errors.New("uploadedBy cannot be empty for ListByUploader operation")
	}
	return r.listQuery(ctx, r.collection().Where("uploaded_by", "==", uploadedBy), "events by uploader")
}

// ListPublic retrieves publicly visible events.
func (r *firestoreEventRepository) ListPublic(ctx context.Context) ([]*models.Event, error) {
	return r.listQuery(ctx, r.collection().Where("isPublic", "==", true), "public events")
}

// ListRecent retrieves the most recently created events.
func (r *firestoreEventRepository) ListRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit <= 0 {
		limit = 5
	}
	snaps, err := fetchDocs(ctx, r.collection().OrderBy("createdAt", firestore.Desc).Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent events: %w", err)
	}

	events := make([]*models.Event, 0, len(snaps))
	for _, snap := range snaps {
		events = append(events, models.EventFromDoc(snap.Ref.ID, snap.Data()))
	}
	return events, nil
}

// ListSince retrieves events created at or after the given instant, newest
// first.
func (r *firestoreEventRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Event, error) {
	return r.listQuery(ctx, r.collection().Where("createdAt", ">=", since), "events since")
}

// GetByID retrieves one event. Missing documents surface as ErrNotFound so
// callers can render a not-found state instead of an error page.
func (r *firestoreEventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	if eventID == "" {
		return nil, errors.New("eventID cannot be empty for GetByID operation")
	}
	snap, err := r.client.Collection(eventsCollection).Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("event with ID '%s' not found: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event with ID '%s': %w", eventID, err)
	}
	return models.EventFromDoc(snap.Ref.ID, snap.Data()), nil
}

// Update writes the given fields plus a server-assigned upload_timestamp,
// mirroring the upload pipeline's own update stamping.
func (r *firestoreEventRepository) Update(ctx context.Context, eventID string, fields map[string]interface{}) error {
	if eventID == "" {
		return errors.New("eventID cannot be empty for Update operation")
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "upload_timestamp", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(eventsCollection).Doc(eventID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("event with ID '%s' not found for update: %w", eventID, ErrNotFound)
		}
		return fmt.Errorf("failed to update event with ID '%s': %w", eventID, err)
	}
	return nil
}

// Delete removes an event document. Hard delete; the uploaded images in
// object storage are cleaned up by the upload pipeline, not here.
func (r *firestoreEventRepository) Delete(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("eventID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(eventsCollection).Doc(eventID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event with ID '%s': %w", eventID, err)
	}
	return nil
}

// Count returns the total number of event documents.
func (r *firestoreEventRepository) Count(ctx context.Context) (int, error) {
	count, err := countDocs(ctx, r.collection())
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
