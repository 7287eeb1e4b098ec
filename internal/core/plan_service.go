package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/listquery"
	"photoevent-admin-go/internal/models"
)

// ErrPlanNotFound is returned when a subscription plan is not found.
var ErrPlanNotFound = errors.New("subscription plan not found")

// planService implements PlanService.
type planService struct {
	planRepo db.PlanRepository
	logger   *zap.Logger
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(planRepo db.PlanRepository, logger *zap.Logger) PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &planService{planRepo: planRepo, logger: logger}
}

// List retrieves subscription plans, optionally active ones only.
func (s *planService) List(ctx context.Context, activeOnly bool) ([]*models.Plan, error) {
	plans, err := s.planRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription plans: %w", err)
	}
	return plans, nil
}

// ListByDuration retrieves active plans of one canonical billing duration.
func (s *planService) ListByDuration(ctx context.Context, duration string) ([]*models.Plan, error) {
	plans, err := s.planRepo.ListByDuration(ctx, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans by duration: %w", err)
	}
	return plans, nil
}

// GetByID retrieves one plan; ErrPlanNotFound when it does not exist, so the
// caller can render a not-found state and navigate away.
func (s *planService) GetByID(ctx context.Context, planID string) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrPlanNotFound, planID)
		}
		return nil, fmt.Errorf("failed to fetch subscription plan '%s': %w", planID, err)
	}
	return plan, nil
}

// MostPopular retrieves the plan flagged most popular, or ErrPlanNotFound.
func (s *planService) MostPopular(ctx context.Context) (*models.Plan, error) {
	plan, err := s.planRepo.GetMostPopular(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to fetch most popular plan: %w", err)
	}
	return plan, nil
}

// Create validates and persists a new subscription plan. Empty feature
// entries are trimmed out before persistence; at least one must remain.
func (s *planService) Create(ctx context.Context, input models.PlanInput) models.MutationResult {
	features := models.TrimFeatures(input.Features)
	if len(features) == 0 {
		return models.MutationFail("At least one feature is required")
	}

	plan := &models.Plan{
		Name:        input.Name,
		Price:       input.Price,
		Duration:    models.CanonicalDuration(input.Duration),
		Ideal:       input.Ideal,
		Storage:     input.Storage,
		Features:    features,
		MostPopular: input.MostPopular,
		IsActive:    input.IsActive,
	}

	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		s.logger.Error("Failed to create subscription plan", zap.Error(err))
		return models.MutationFail("Failed to create subscription plan")
	}
	return models.MutationOK("Subscription plan created successfully", id)
}

// Update applies a partial update; only the submitted fields are written.
func (s *planService) Update(ctx context.Context, planID string, input models.PlanUpdate) models.MutationResult {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Duration != nil {
		fields["duration"] = models.CanonicalDuration(*input.Duration)
	}
	if input.Ideal != nil {
		fields["ideal"] = *input.Ideal
	}
	if input.Storage != nil {
		fields["storage"] = *input.Storage
	}
	if input.Features != nil {
		features := models.TrimFeatures(*input.Features)
		if len(features) == 0 {
			return models.MutationFail("At least one feature is required")
		}
		fields["features"] = features
	}
	if input.MostPopular != nil {
		fields["mostPopular"] = *input.MostPopular
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	if len(fields) == 0 {
		return models.MutationFail("No fields to update")
	}

	if err := s.planRepo.Update(ctx, planID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.MutationFail("Subscription plan not found")
		}
		s.logger.Error("Failed to update subscription plan", zap.String("planId", planID), zap.Error(err))
		return models.MutationFail("Failed to update subscription plan")
	}
	return models.MutationOK("Subscription plan updated successfully", planID)
}

// SetActive toggles a plan's active flag. Repeating the call with the same
// target value has no effect beyond refreshing the updatedAt stamp.
func (s *planService) SetActive(ctx context.Context, planID string, active bool) models.MutationResult {
	if err := s.planRepo.SetActive(ctx, planID, active); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.MutationFail("Subscription plan not found")
		}
		s.logger.Error("Failed to toggle subscription plan status", zap.String("planId", planID), zap.Error(err))
		return models.MutationFail("Failed to update subscription status")
	}
	if active {
		return models.MutationOK("Subscription plan activated successfully", planID)
	}
	return models.MutationOK("Subscription plan deactivated successfully", planID)
}

// Delete removes one plan. Hard delete.
func (s *planService) Delete(ctx context.Context, planID string) models.MutationResult {
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		s.logger.Error("Failed to delete subscription plan", zap.String("planId", planID), zap.Error(err))
		return models.MutationFail("Failed to delete subscription plan")
	}
	return models.MutationOK("Subscription plan deleted successfully", planID)
}

// DeleteMany removes the selected plans, deduplicating the selection first.
// Reports failure as soon as any delete fails; earlier deletes stand.
func (s *planService) DeleteMany(ctx context.Context, planIDs []string) models.MutationResult {
	selection := listquery.NewSelection(planIDs...)
	if selection.Len() == 0 {
		return models.MutationFail("No subscription plans selected")
	}
	for _, id := range selection.IDs() {
		if result := s.Delete(ctx, id); !result.Success {
			return models.MutationFail(fmt.Sprintf("Failed to delete subscription plan '%s'", id))
		}
	}
	return models.MutationOK(fmt.Sprintf("Deleted %d subscription plan(s)", selection.Len()), "")
}
