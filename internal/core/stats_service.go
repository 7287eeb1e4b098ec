package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/models"
	"photoevent-admin-go/internal/timeutil"
)

// recentSampleSize is how many recent events/payments the dashboard shows.
const recentSampleSize = 5

// dailyWindowDays is the length of the trailing daily series.
const dailyWindowDays = 30

// statsService implements StatsService over the four entity repositories.
type statsService struct {
	userRepo    db.UserRepository
	eventRepo   db.EventRepository
	guestRepo   db.GuestUserRepository
	paymentRepo db.PaymentRepository
	logger      *zap.Logger
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(
	userRepo db.UserRepository,
	eventRepo db.EventRepository,
	guestRepo db.GuestUserRepository,
	paymentRepo db.PaymentRepository,
	logger *zap.Logger,
) StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &statsService{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		guestRepo:   guestRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetDashboardStats assembles the dashboard aggregate from concurrent reads
// of the four collections. Failure handling is two-tier: each read degrades
// independently to a zero/empty contribution (one broken collection must not
// blank the whole dashboard), while a failure of the aggregation itself
// bubbles up so the caller can show a full-page retry state.
func (s *statsService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.userRepo == nil || s.eventRepo == nil || s.guestRepo == nil || s.paymentRepo == nil {
		return nil, fmt.Errorf("stats service repositories not initialized")
	}

	stats := &models.DashboardStats{
		RecentEvents:             []*models.Event{},
		RecentPayments:           []*models.Payment{},
		MonthlyRevenue:           map[string]float64{},
		EventTypeDistribution:    map[string]int{},
		SubscriptionDistribution: map[string]int{},
		DailyStats:               map[string]*models.DailyStat{},
	}

	var (
		allPayments []*models.Payment
		allEvents   []*models.Event
		allUsers    []*models.User
	)

	// Fan out the independent reads; no read blocks or cancels another.
	var wg sync.WaitGroup
	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.logger.Warn("Dashboard read degraded to empty", zap.String("source", name), zap.Error(err))
			}
		}()
	}

	run("userCount", func() error {
		count, err := s.userRepo.Count(ctx)
		stats.TotalUsers = count
		return err
	})
	run("eventCount", func() error {
		count, err := s.eventRepo.Count(ctx)
		stats.TotalEvents = count
		return err
	})
	run("guestUserCount", func() error {
		count, err := s.guestRepo.Count(ctx)
		stats.TotalGuestUsers = count
		return err
	})
	run("paymentCount", func() error {
		count, err := s.paymentRepo.Count(ctx)
		stats.TotalPayments = count
		return err
	})
	run("recentEvents", func() error {
		events, err := s.eventRepo.ListRecent(ctx, recentSampleSize)
		if events != nil {
			stats.RecentEvents = events
		}
		return err
	})
	run("recentPayments", func() error {
		payments, err := s.paymentRepo.ListRecent(ctx, recentSampleSize)
		if payments != nil {
			stats.RecentPayments = payments
		}
		return err
	})
	run("allPayments", func() error {
		payments, err := s.paymentRepo.List(ctx)
		allPayments = payments
		return err
	})
	run("allEvents", func() error {
		events, err := s.eventRepo.List(ctx)
		allEvents = events
		return err
	})
	run("allUsers", func() error {
		users, err := s.userRepo.List(ctx)
		allUsers = users
		return err
	})
	wg.Wait()

	now := time.Now()

	// Revenue and the active/expired split come from the payment records.
	// Note the split reflects each payment's is_active flag, not a
	// recomputed expiry check against the user's expires_at.
	for _, payment := range allPayments {
		if payment.Completed() {
			stats.TotalRevenue += payment.Amount
		}
		if payment.IsActive {
			stats.ActiveSubscriptions++
		} else {
			stats.ExpiredSubscriptions++
		}
	}

	// Monthly revenue buckets, keyed YYYY-MM in local time. Payments whose
	// created_at cannot be resolved are skipped, not fatal.
	for _, payment := range allPayments {
		if !payment.Completed() {
			continue
		}
		created, ok := resolvePaymentDate(payment.CreatedAt, now)
		if !ok {
			continue
		}
		monthKey := created.Format("2006-01")
		stats.MonthlyRevenue[monthKey] += payment.Amount
	}

	// Daily series: pre-seed all 30 day keys ending today so the chart is
	// always a contiguous 30-point series, then accumulate revenue into
	// existing keys only.
	for i := 0; i < dailyWindowDays; i++ {
		dayKey := now.AddDate(0, 0, -i).Format("2006-01-02")
		stats.DailyStats[dayKey] = &models.DailyStat{}
	}
	for _, payment := range allPayments {
		if !payment.Completed() {
			continue
		}
		created, ok := resolvePaymentDate(payment.CreatedAt, now)
		if !ok {
			continue
		}
		if day, ok := stats.DailyStats[created.Format("2006-01-02")]; ok {
			day.Revenue += payment.Amount
		}
	}

	for _, event := range allEvents {
		eventType := event.EventType
		if eventType == "" {
			eventType = "Other"
		}
		stats.EventTypeDistribution[eventType]++
	}

	for _, user := range allUsers {
		planName := user.Subscription.PlanName
		if planName == "" {
			planName = "No Plan"
		}
		stats.SubscriptionDistribution[planName]++
	}

	return stats, nil
}

// resolvePaymentDate turns a stored created_at value into a concrete time:
// strings are parsed (unparseable ones are discarded), timestamp shapes go
// through timeutil, and any other present-but-unrecognized value falls back
// to now so legacy documents still land in a bucket. One resolution policy
// covers both the monthly and the daily series; a now-fallback in the daily
// path simply lands in today's pre-seeded key.
func resolvePaymentDate(raw interface{}, now time.Time) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case string:
		if v == "" {
			return time.Time{}, false
		}
		return timeutil.ParseString(v)
	default:
		if t, ok := timeutil.Parse(raw); ok {
			return t, true
		}
		return now, true
	}
}
