package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"photoevent-admin-go/internal/models"
)

const plansCollection = "subscriptions"

// firestorePlanRepository implements PlanRepository using Firestore.
type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a new firestorePlanRepository.
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PlanRepository.")
	}
	return &firestorePlanRepository{client: client}
}

// Create adds a new plan document with an auto-generated ID and
// server-assigned createdAt/updatedAt stamps.
func (r *firestorePlanRepository) Create(ctx context.Context, plan *models.Plan) (string, error) {
	docRef := r.client.Collection(plansCollection).NewDoc()
	plan.ID = docRef.ID

	_, err := docRef.Create(ctx, map[string]interface{}{
		"name":        plan.Name,
		"price":       plan.Price,
		"duration":    plan.Duration,
		"ideal":       plan.Ideal,
		"storage":     plan.Storage,
		"features":    plan.Features,
		"mostPopular": plan.MostPopular,
		"isActive":    plan.IsActive,
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subscription plan: %w", err)
	}
	return docRef.ID, nil
}

// List retrieves plans, newest first, optionally restricted to active ones.
func (r *firestorePlanRepository) List(ctx context.Context, activeOnly bool) ([]*models.Plan, error) {
	base := r.client.Collection(plansCollection).Query
	if activeOnly {
		base = base.Where("isActive", "==", true)
	}
	snaps, err := fetchOrdered(ctx, base, "createdAt")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription plans: %w", err)
	}

	plans := make([]*models.Plan, 0, len(snaps))
	for _, snap := range snaps {
		plans = append(plans, models.PlanFromDoc(snap.Ref.ID, snap.Data()))
	}
	return plans, nil
}

// ListByDuration retrieves active plans of one billing duration, cheapest
// first. Falls back to client-side ordering when the composite index for
// the duration+price combination is still provisioning.
func (r *firestorePlanRepository) ListByDuration(ctx context.Context, duration string) ([]*models.Plan, error) {
	if duration == "" {
		return nil, errors.New("duration cannot be empty for ListByDuration operation")
	}

	base := r.client.Collection(plansCollection).
		Where("duration", "==", models.CanonicalDuration(duration)).
		Where("isActive", "==", true)

	snaps, err := fetchDocs(ctx, base.OrderBy("price", firestore.Asc))
	if err != nil {
		if status.Code(err) != codes.FailedPrecondition {
			return nil, fmt.Errorf("failed to fetch plans by duration '%s': %w", duration, err)
		}
		snaps, err = fetchDocs(ctx, base)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch plans by duration '%s': %w", duration, err)
		}
	}

	plans := make([]*models.Plan, 0, len(snaps))
	for _, snap := range snaps {
		plans = append(plans, models.PlanFromDoc(snap.Ref.ID, snap.Data()))
	}
	sortPlansByPrice(plans)
	return plans, nil
}

// GetByID retrieves one plan document.
func (r *firestorePlanRepository) GetByID(ctx context.Context, planID string) (*models.Plan, error) {
	if planID == "" {
		return nil, errors.New("planID cannot be empty for GetByID operation")
	}
	snap, err := r.client.Collection(plansCollection).Doc(planID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("subscription plan with ID '%s' not found: %w", planID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscription plan with ID '%s': %w", planID, err)
	}
	return models.PlanFromDoc(snap.Ref.ID, snap.Data()), nil
}

// GetMostPopular retrieves the active plan flagged mostPopular, or
// ErrNotFound when none is flagged.
func (r *firestorePlanRepository) GetMostPopular(ctx context.Context) (*models.Plan, error) {
	snaps, err := fetchDocs(ctx, r.client.Collection(plansCollection).
		Where("mostPopular", "==", true).
		Where("isActive", "==", true).
		Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch most popular plan: %w", err)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("no plan is flagged most popular: %w", ErrNotFound)
	}
	return models.PlanFromDoc(snaps[0].Ref.ID, snaps[0].Data()), nil
}

// Update writes the given fields plus a server-assigned updatedAt stamp.
func (r *firestorePlanRepository) Update(ctx context.Context, planID string, fields map[string]interface{}) error {
	if planID == "" {
		return errors.New("planID cannot be empty for Update operation")
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	_, err := r.client.Collection(plansCollection).Doc(planID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("subscription plan with ID '%s' not found for update: %w", planID, ErrNotFound)
		}
		return fmt.Errorf("failed to update subscription plan with ID '%s': %w", planID, err)
	}
	return nil
}

// SetActive toggles the isActive flag. The write touches only the flag and
// the updatedAt stamp to keep the write surface minimal.
func (r *firestorePlanRepository) SetActive(ctx context.Context, planID string, active bool) error {
	if planID == "" {
		return errors.New("planID cannot be empty for SetActive operation")
	}
	_, err := r.client.Collection(plansCollection).Doc(planID).Update(ctx, []firestore.Update{
		{Path: "isActive", Value: active},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("subscription plan with ID '%s' not found for status toggle: %w", planID, ErrNotFound)
		}
		return fmt.Errorf("failed to toggle subscription plan '%s': %w", planID, err)
	}
	return nil
}

// Delete removes a plan document. Hard delete.
func (r *firestorePlanRepository) Delete(ctx context.Context, planID string) error {
	if planID == "" {
		return errors.New("planID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(plansCollection).Doc(planID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete subscription plan with ID '%s': %w", planID, err)
	}
	return nil
}

func sortPlansByPrice(plans []*models.Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Price < plans[j].Price
	})
}
