package core

import (
	"context"

	"photoevent-admin-go/internal/models"
)

// StatsService builds the dashboard aggregate.
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// PlanService manages subscription plans.
type PlanService interface {
	List(ctx context.Context, activeOnly bool) ([]*models.Plan, error)
	ListByDuration(ctx context.Context, duration string) ([]*models.Plan, error)
	GetByID(ctx context.Context, planID string) (*models.Plan, error)
	MostPopular(ctx context.Context) (*models.Plan, error)
	Create(ctx context.Context, input models.PlanInput) models.MutationResult
	Update(ctx context.Context, planID string, input models.PlanUpdate) models.MutationResult
	SetActive(ctx context.Context, planID string, active bool) models.MutationResult
	Delete(ctx context.Context, planID string) models.MutationResult
	DeleteMany(ctx context.Context, planIDs []string) models.MutationResult
}

// UserService manages registered user accounts.
type UserService interface {
	List(ctx context.Context, activeOnly bool) ([]*models.User, error)
	ListByPlan(ctx context.Context, planName string) ([]*models.User, error)
	ListByProvider(ctx context.Context, provider string) ([]*models.User, error)
	ListByCountry(ctx context.Context, country string) ([]*models.User, error)
	ListExpiring(ctx context.Context, days int) ([]*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	Activity(ctx context.Context, userID string) (*models.UserActivity, error)
	Statistics(ctx context.Context) (*models.UserStatistics, error)
	Update(ctx context.Context, userID string, input models.UserUpdate) models.MutationResult
	Delete(ctx context.Context, userID string) models.MutationResult
	DeleteMany(ctx context.Context, userIDs []string) models.MutationResult
}

// EventService manages photo events.
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	ListPublic(ctx context.Context) ([]*models.Event, error)
	ListByType(ctx context.Context, eventType string) ([]*models.Event, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Event, error)
	ListByUploader(ctx context.Context, uploadedBy string) ([]*models.Event, error)
	ListRecent(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	Guests(ctx context.Context, eventID string) ([]*models.GuestUser, error)
	Statistics(ctx context.Context) (*models.EventStatistics, error)
	Update(ctx context.Context, eventID string, input models.EventUpdate) models.MutationResult
	Delete(ctx context.Context, eventID string) models.MutationResult
	DeleteMany(ctx context.Context, eventIDs []string) models.MutationResult
}

// LoginResult is the outcome of an admin login attempt. Message carries the
// generic rejection text on failure; Token and Email are set on success.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Email   string `json:"email,omitempty"`
}

// AuthService implements the admin login gate.
type AuthService interface {
	Login(ctx context.Context, email, password string) LoginResult
	Logout(ctx context.Context) models.MutationResult
}
