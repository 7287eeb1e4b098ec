package db

import (
	"context"
	"time"

	"photoevent-admin-go/internal/models"
)

// EventRepository defines storage operations for event documents.
type EventRepository interface {
	List(ctx context.Context) ([]*models.Event, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Event, error)
	ListByType(ctx context.Context, eventType string) ([]*models.Event, error)
	ListByUploader(ctx context.Context, uploadedBy string) ([]*models.Event, error)
	ListPublic(ctx context.Context) ([]*models.Event, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Event, error)
	ListSince(ctx context.Context, since time.Time) ([]*models.Event, error)
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	Update(ctx context.Context, eventID string, fields map[string]interface{}) error
	Delete(ctx context.Context, eventID string) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines storage operations for user documents.
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	ListByPlan(ctx context.Context, planName string) ([]*models.User, error)
	ListByProvider(ctx context.Context, provider string) ([]*models.User, error)
	ListByCountry(ctx context.Context, country string) ([]*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, userID string, fields map[string]interface{}) error
	Delete(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
}

// PlanRepository defines storage operations for subscription plan documents.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) (string, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Plan, error)
	ListByDuration(ctx context.Context, duration string) ([]*models.Plan, error)
	GetByID(ctx context.Context, planID string) (*models.Plan, error)
	GetMostPopular(ctx context.Context) (*models.Plan, error)
	Update(ctx context.Context, planID string, fields map[string]interface{}) error
	SetActive(ctx context.Context, planID string, active bool) error
	Delete(ctx context.Context, planID string) error
}

// PaymentRepository defines storage operations for payment documents.
// Payments are written by the payment-gateway callback; read-only here.
type PaymentRepository interface {
	List(ctx context.Context) ([]*models.Payment, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Payment, error)
	Count(ctx context.Context) (int, error)
}

// GuestUserRepository defines storage operations for guest user documents.
type GuestUserRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]*models.GuestUser, error)
	Count(ctx context.Context) (int, error)
}

// ActivityRepository defines storage operations for the per-user activity
// rollups in the userDashboard collection.
type ActivityRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserActivity, error)
}

// Authenticator abstracts the hosted identity provider: password sign-in for
// the admin login flow, and session revocation when access is denied.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error)
	RevokeSessions(ctx context.Context, uid string) error
}

// AuthResult is the subset of the identity provider's sign-in response the
// dashboard cares about.
type AuthResult struct {
	UID     string
	Email   string
	IDToken string
}
