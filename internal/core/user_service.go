package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/listquery"
	"photoevent-admin-go/internal/models"
	"photoevent-admin-go/internal/timeutil"
)

// ErrUserNotFound is returned when a user account is not found.
var ErrUserNotFound = errors.New("user not found")

// userService implements UserService.
type userService struct {
	userRepo     db.UserRepository
	activityRepo db.ActivityRepository
	logger       *zap.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, activityRepo db.ActivityRepository, logger *zap.Logger) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userService{userRepo: userRepo, activityRepo: activityRepo, logger: logger}
}

// List retrieves user accounts. With activeOnly, only users whose own
// subscription snapshot has not expired are returned; the expiry check is
// computed here since the documents carry no precomputed flag.
func (s *userService) List(ctx context.Context, activeOnly bool) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	if !activeOnly {
		return users, nil
	}

	now := time.Now()
	active := make([]*models.User, 0, len(users))
	for _, user := range users {
		if user.SubscriptionActive(now) {
			active = append(active, user)
		}
	}
	return active, nil
}

// ListByPlan retrieves users subscribed to one plan.
func (s *userService) ListByPlan(ctx context.Context, planName string) ([]*models.User, error) {
	users, err := s.userRepo.ListByPlan(ctx, planName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users on plan '%s': %w", planName, err)
	}
	return users, nil
}

// ListByProvider retrieves users who signed up through one auth provider.
func (s *userService) ListByProvider(ctx context.Context, provider string) ([]*models.User, error) {
	users, err := s.userRepo.ListByProvider(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users for provider '%s': %w", provider, err)
	}
	return users, nil
}

// ListByCountry retrieves users from one country code.
func (s *userService) ListByCountry(ctx context.Context, country string) ([]*models.User, error) {
	users, err := s.userRepo.ListByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users in country '%s': %w", country, err)
	}
	return users, nil
}

// ListExpiring retrieves users whose subscription expires within the next
// given number of days (default 7): expiry must lie between now and the
// threshold, inclusive. Snapshots with no parseable expiry never qualify.
func (s *userService) ListExpiring(ctx context.Context, days int) ([]*models.User, error) {
	if days <= 0 {
		days = 7
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	now := time.Now()
	threshold := now.AddDate(0, 0, days)
	expiring := make([]*models.User, 0)
	for _, user := range users {
		if user.Subscription.ExpiresAt == "" {
			continue
		}
		expiry, ok := timeutil.ParseString(user.Subscription.ExpiresAt)
		if !ok {
			continue
		}
		if !expiry.Before(now) && !expiry.After(threshold) {
			expiring = append(expiring, user)
		}
	}
	return expiring, nil
}

// GetByID retrieves one user by document id.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to fetch user '%s': %w", userID, err)
	}
	return user, nil
}

// GetByUID retrieves one user by auth uid.
func (s *userService) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrUserNotFound, uid)
		}
		return nil, fmt.Errorf("failed to fetch user by uid '%s': %w", uid, err)
	}
	return user, nil
}

// Activity retrieves the per-user activity rollup. A user with no rollup
// document yet gets an empty rollup, not an error.
func (s *userService) Activity(ctx context.Context, userID string) (*models.UserActivity, error) {
	activity, err := s.activityRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.UserActivity{
				UserID:             userID,
				DailyGalleryVisits: map[string]int{},
				DailyMatches:       map[string]int{},
				DailyUploads:       map[string]int{},
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch activity for user '%s': %w", userID, err)
	}
	return activity, nil
}

// Statistics computes the user breakdown over the full collection: totals,
// active/expired subscription split from each user's own expiry snapshot, and
// per-plan, per-country and per-provider counts. Users without a plan are
// grouped under "No Plan"; missing country or provider under "Unknown".
func (s *userService) Statistics(ctx context.Context) (*models.UserStatistics, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users for statistics: %w", err)
	}

	now := time.Now()
	stats := &models.UserStatistics{
		UsersByPlan:     map[string]int{},
		UsersByCountry:  map[string]int{},
		UsersByProvider: map[string]int{},
	}
	for _, user := range users {
		stats.TotalUsers++

		planName := user.Subscription.PlanName
		if planName == "" {
			planName = "No Plan"
		}
		stats.UsersByPlan[planName]++

		country := user.Country
		if country == "" {
			country = "Unknown"
		}
		stats.UsersByCountry[country]++

		provider := user.Provider
		if provider == "" {
			provider = "Unknown"
		}
		stats.UsersByProvider[provider]++

		if user.SubscriptionActive(now) {
			stats.ActiveUsers++
		} else {
			stats.ExpiredUsers++
		}
	}
	return stats, nil
}

// Update applies a partial profile update; only the submitted fields are
// written. Email, uid and provider are owned by the signup flow and cannot
// be edited here.
func (s *userService) Update(ctx context.Context, userID string, input models.UserUpdate) models.MutationResult {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.PhoneNumber != nil {
		fields["phoneNumber"] = *input.PhoneNumber
	}
	if input.PhotoURL != nil {
		fields["photoURL"] = *input.PhotoURL
	}
	if input.City != nil {
		fields["city"] = *input.City
	}
	if input.State != nil {
		fields["state"] = *input.State
	}
	if input.Country != nil {
		fields["country"] = *input.Country
	}
	if input.CompanyName != nil {
		fields["companyName"] = *input.CompanyName
	}
	if input.Industry != nil {
		fields["industry"] = *input.Industry
	}
	if input.IndustryAreas != nil {
		fields["industryAreas"] = *input.IndustryAreas
	}
	if input.Subscription != nil {
		fields["subscription"] = map[string]interface{}{
			"planName":    input.Subscription.PlanName,
			"billing":     input.Subscription.Billing,
			"activatedAt": input.Subscription.ActivatedAt,
			"expires_at":  input.Subscription.ExpiresAt,
		}
	}
	if len(fields) == 0 {
		return models.MutationFail("No fields to update")
	}

	if err := s.userRepo.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.MutationFail("User not found")
		}
		s.logger.Error("Failed to update user", zap.String("userId", userID), zap.Error(err))
		return models.MutationFail("Failed to update user")
	}
	return models.MutationOK("User updated successfully", userID)
}

// Delete removes one user document. The auth account and the user's events
// live in other systems and are untouched.
func (s *userService) Delete(ctx context.Context, userID string) models.MutationResult {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.logger.Error("Failed to delete user", zap.String("userId", userID), zap.Error(err))
		return models.MutationFail("Failed to delete user")
	}
	return models.MutationOK("User deleted successfully", userID)
}

// DeleteMany removes the selected users, deduplicating the selection first.
func (s *userService) DeleteMany(ctx context.Context, userIDs []string) models.MutationResult {
	selection := listquery.NewSelection(userIDs...)
	if selection.Len() == 0 {
		return models.MutationFail("No users selected")
	}
	for _, id := range selection.IDs() {
		if result := s.Delete(ctx, id); !result.Success {
			return models.MutationFail(fmt.Sprintf("Failed to delete user '%s'", id))
		}
	}
	return models.MutationOK(fmt.Sprintf("Deleted %d user(s)", selection.Len()), "")
}
