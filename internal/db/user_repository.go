package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"photoevent-admin-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements UserRepository using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) listQuery(ctx context.Context, base firestore.Query, what string) ([]*models.User, error) {
	snaps, err := fetchOrdered(ctx, base, "createdAt")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}

	users := make([]*models.User, 0, len(snaps))
	for _, snap := range snaps {
		users = append(users, models.UserFromDoc(snap.Ref.ID, snap.Data()))
	}
	return users, nil
}

// List retrieves all users, newest first.
func (r *firestoreUserRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.listQuery(ctx, r.client.Collection(usersCollection).Query, "users")
}

// ListByPlan retrieves users whose subscription snapshot names one plan.
func (r *firestoreUserRepository) ListByPlan(ctx context.Context, planName string) ([]*models.User, error) {
	if planName == "" {
		return nil, errors.New("planName cannot be empty for ListByPlan operation")
	}
	return r.listQuery(ctx, r.client.Collection(usersCollection).Where("subscription.planName", "==", planName), "users by plan")
}

// ListByProvider retrieves users who signed up through one auth provider.
func (r *firestoreUserRepository) ListByProvider(ctx context.Context, provider string) ([]*models.User, error) {
	if provider == "" {
		return nil, errors.New("provider cannot be empty for ListByProvider operation")
	}
	return r.listQuery(ctx, r.client.Collection(usersCollection).Where("provider", "==", provider), "users by provider")
}

// ListByCountry retrieves users from one country code.
func (r *firestoreUserRepository) ListByCountry(ctx context.Context, country string) ([]*models.User, error) {
	if country == "" {
		return nil, errors.New("country cannot be empty for ListByCountry operation")
	}
	return r.listQuery(ctx, r.client.Collection(usersCollection).Where("country", "==", country), "users by country")
}

// GetByID retrieves one user document by its ID.
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	snap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}
	return models.UserFromDoc(snap.Ref.ID, snap.Data()), nil
}

// GetByUID retrieves a user by their Firebase Auth UID field. Returns
// ErrNotFound when no document matches.
func (r *firestoreUserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByUID operation")
	}
	snaps, err := fetchDocs(ctx, r.client.Collection(usersCollection).Where("uid", "==", uid).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to query user by uid '%s': %w", uid, err)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("user with uid '%s' not found: %w", uid, ErrNotFound)
	}
	return models.UserFromDoc(snaps[0].Ref.ID, snaps[0].Data()), nil
}

// Update writes the given fields plus a server-assigned updatedAt stamp.
func (r *firestoreUserRepository) Update(ctx context.Context, userID string, fields map[string]interface{}) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Update operation")
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found for update: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("failed to update user with ID '%s': %w", userID, err)
	}
	return nil
}

// Delete removes a user document. Hard delete, matching the dashboard's
// semantics; the Firebase Auth account itself is not touched here.
func (r *firestoreUserRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user with ID '%s': %w", userID, err)
	}
	return nil
}

// Count returns the total number of user documents.
func (r *firestoreUserRepository) Count(ctx context.Context) (int, error) {
	count, err := countDocs(ctx, r.client.Collection(usersCollection).Query)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
