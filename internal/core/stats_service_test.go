package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photoevent-admin-go/internal/models"
)

// Fake repositories returning canned data; an err field fails every method.

type fakeUserRepo struct {
	users []*models.User
	err   error
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) { return f.users, f.err }
func (f *fakeUserRepo) ListByPlan(ctx context.Context, planName string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := []*models.User{}
	for _, u := range f.users {
		if u.Subscription.PlanName == planName {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
func (f *fakeUserRepo) ListByProvider(ctx context.Context, provider string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := []*models.User{}
	for _, u := range f.users {
		if u.Provider == provider {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
func (f *fakeUserRepo) ListByCountry(ctx context.Context, country string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := []*models.User{}
	for _, u := range f.users {
		if u.Country == country {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, f.err
}
func (f *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return nil, f.err
}
func (f *fakeUserRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return f.err
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return f.err }
func (f *fakeUserRepo) Count(ctx context.Context) (int, error)      { return len(f.users), f.err }

type fakeEventRepo struct {
	events    []*models.Event
	err       error
	lastSince time.Time
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*models.Event, error) { return f.events, f.err }
func (f *fakeEventRepo) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	return nil, f.err
}
func (f *fakeEventRepo) ListByType(ctx context.Context, eventType string) ([]*models.Event, error) {
	return nil, f.err
}
func (f *fakeEventRepo) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.Event, error) {
	return nil, f.err
}
func (f *fakeEventRepo) ListPublic(ctx context.Context) ([]*models.Event, error) {
	return nil, f.err
}
func (f *fakeEventRepo) ListRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.events) {
		limit = len(f.events)
	}
	return f.events[:limit], nil
}
func (f *fakeEventRepo) ListSince(ctx context.Context, since time.Time) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastSince = since
	matched := []*models.Event{}
	for _, e := range f.events {
		if !e.CreatedAt.Before(since) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return nil, f.err
}
func (f *fakeEventRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return f.err
}
func (f *fakeEventRepo) Delete(ctx context.Context, id string) error { return f.err }
func (f *fakeEventRepo) Count(ctx context.Context) (int, error)      { return len(f.events), f.err }

type fakeGuestRepo struct {
	count int
	err   error
}

func (f *fakeGuestRepo) ListByEvent(ctx context.Context, eventID string) ([]*models.GuestUser, error) {
	return nil, f.err
}
func (f *fakeGuestRepo) Count(ctx context.Context) (int, error) { return f.count, f.err }

type fakePaymentRepo struct {
	payments []*models.Payment
	err      error
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	return f.payments, f.err
}
func (f *fakePaymentRepo) ListRecent(ctx context.Context, limit int) ([]*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.payments) {
		limit = len(f.payments)
	}
	return f.payments[:limit], nil
}
func (f *fakePaymentRepo) Count(ctx context.Context) (int, error) { return len(f.payments), f.err }

func newTestStatsService(users *fakeUserRepo, events *fakeEventRepo, guests *fakeGuestRepo, payments *fakePaymentRepo) StatsService {
	return NewStatsService(users, events, guests, payments, zap.NewNop())
}

func TestDashboardRevenueCountsOnlyCompleted(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "1", Amount: 100, PaymentStatus: "completed", IsActive: true},
		{ID: "2", Amount: 200, PaymentStatus: "completed", IsActive: false},
		{ID: "3", Amount: 300, PaymentStatus: "pending", IsActive: true},
		{ID: "4", Amount: 400, PaymentStatus: "Completed", IsActive: false}, // wrong case
	}}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{}, &fakeGuestRepo{}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(300), stats.TotalRevenue)
	assert.Equal(t, 2, stats.ActiveSubscriptions)
	assert.Equal(t, 2, stats.ExpiredSubscriptions)
	assert.Equal(t, 4, stats.TotalPayments)
}

func TestDashboardMonthlyRevenueBuckets(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "1", Amount: 100, PaymentStatus: "completed", CreatedAt: "2024-03-10T00:00:00Z"},
		{ID: "2", Amount: 50, PaymentStatus: "completed", CreatedAt: "2024-03-25"},
		{ID: "3", Amount: 75, PaymentStatus: "completed", CreatedAt: "2024-04-01"},
		{ID: "4", Amount: 999, PaymentStatus: "pending", CreatedAt: "2024-03-11"},
	}}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{}, &fakeGuestRepo{}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(150), stats.MonthlyRevenue["2024-03"])
	assert.Equal(t, float64(75), stats.MonthlyRevenue["2024-04"])
}

func TestDashboardSecondsMapTimestampLandsInBucket(t *testing.T) {
	created := map[string]interface{}{"seconds": int64(1700000000)}
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "1", Amount: 250, PaymentStatus: "completed", CreatedAt: created},
	}}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{}, &fakeGuestRepo{}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	wantKey := time.Unix(1700000000, 0).Format("2006-01")
	assert.Equal(t, float64(250), stats.MonthlyRevenue[wantKey])
	assert.Equal(t, float64(250), stats.TotalRevenue)
}

func TestDashboardUnparseableDateCountsTowardRevenueOnly(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "1", Amount: 100, PaymentStatus: "completed", CreatedAt: "not-a-date"},
	}}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{}, &fakeGuestRepo{}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(100), stats.TotalRevenue)
	assert.Empty(t, stats.MonthlyRevenue, "unparseable dates are skipped, not bucketed")
}

func TestDashboardDailyStatsPreSeeded(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{ID: "1", Amount: 120, PaymentStatus: "completed", CreatedAt: time.Now().Format(time.RFC3339)},
		// Far outside the window: must not create a 31st key.
		{ID: "2", Amount: 50, PaymentStatus: "completed", CreatedAt: "2001-01-01"},
	}}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{}, &fakeGuestRepo{}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.DailyStats, 30)
	for i := 0; i < 30; i++ {
		key := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		require.Contains(t, stats.DailyStats, key, "window must be contiguous")
	}
	assert.Equal(t, float64(120), stats.DailyStats[today].Revenue)
	assert.NotContains(t, stats.DailyStats, "2001-01-01")
}

func TestDashboardDistributions(t *testing.T) {
	events := &fakeEventRepo{events: []*models.Event{
		{ID: "1", EventType: "Wedding"},
		{ID: "2", EventType: "Wedding"},
		{ID: "3", EventType: ""},
	}}
	users := &fakeUserRepo{users: []*models.User{
		{ID: "u1", Subscription: models.SubscriptionSnapshot{PlanName: "Pro"}},
		{ID: "u2"},
	}}
	svc := newTestStatsService(users, events, &fakeGuestRepo{count: 7}, &fakePaymentRepo{})

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.EventTypeDistribution["Wedding"])
	assert.Equal(t, 1, stats.EventTypeDistribution["Other"])
	assert.Equal(t, 1, stats.SubscriptionDistribution["Pro"])
	assert.Equal(t, 1, stats.SubscriptionDistribution["No Plan"])
	assert.Equal(t, 7, stats.TotalGuestUsers)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.TotalUsers)
}

func TestDashboardDegradedReadDoesNotFailAggregate(t *testing.T) {
	// Payments broken: its contributions degrade to zero/empty while the
	// rest of the dashboard still populates.
	payments := &fakePaymentRepo{err: errors.New("index missing")}
	events := &fakeEventRepo{events: []*models.Event{{ID: "1", EventType: "Wedding"}}}
	svc := newTestStatsService(&fakeUserRepo{}, events, &fakeGuestRepo{count: 3}, payments)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.TotalRevenue)
	assert.Equal(t, 0, stats.TotalPayments)
	assert.NotNil(t, stats.RecentPayments)
	assert.Empty(t, stats.RecentPayments)
	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 3, stats.TotalGuestUsers)
	assert.Len(t, stats.DailyStats, 30, "window is pre-seeded even with no payments")
}

func TestDashboardRecentSamples(t *testing.T) {
	var events []*models.Event
	for i := 0; i < 8; i++ {
		events = append(events, &models.Event{ID: string(rune('a' + i))})
	}
	svc := newTestStatsService(&fakeUserRepo{}, &fakeEventRepo{events: events}, &fakeGuestRepo{}, &fakePaymentRepo{})

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.RecentEvents, 5)
}
