package models

// DailyStat is one day's bucket in the trailing-30-day dashboard series.
type DailyStat struct {
	Users   int     `json:"users"`
	Events  int     `json:"events"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the derived aggregate behind the dashboard screen.
// It is recomputed on every request and never persisted.
type DashboardStats struct {
	TotalUsers               int                   `json:"totalUsers"`
	TotalEvents              int                   `json:"totalEvents"`
	TotalGuestUsers          int                   `json:"totalGuestUsers"`
	TotalPayments            int                   `json:"totalPayments"`
	TotalRevenue             float64               `json:"totalRevenue"`
	ActiveSubscriptions      int                   `json:"activeSubscriptions"`
	ExpiredSubscriptions     int                   `json:"expiredSubscriptions"`
	RecentEvents             []*Event              `json:"recentEvents"`
	RecentPayments           []*Payment            `json:"recentPayments"`
	MonthlyRevenue           map[string]float64    `json:"monthlyRevenue"`
	EventTypeDistribution    map[string]int        `json:"eventTypeDistribution"`
	SubscriptionDistribution map[string]int        `json:"subscriptionDistribution"`
	DailyStats               map[string]*DailyStat `json:"dailyStats"`
}

// UserStatistics is the per-entity rollup for the users screen. Active and
// expired are computed from each user's own subscription snapshot, unlike the
// dashboard aggregate which partitions by payment flag.
type UserStatistics struct {
	TotalUsers      int            `json:"totalUsers"`
	ActiveUsers     int            `json:"activeUsers"`
	ExpiredUsers    int            `json:"expiredUsers"`
	UsersByPlan     map[string]int `json:"usersByPlan"`
	UsersByCountry  map[string]int `json:"usersByCountry"`
	UsersByProvider map[string]int `json:"usersByProvider"`
}

// EventStatistics is the per-entity rollup for the events screen.
type EventStatistics struct {
	TotalEvents   int            `json:"totalEvents"`
	PublicEvents  int            `json:"publicEvents"`
	PrivateEvents int            `json:"privateEvents"`
	EventsByType  map[string]int `json:"eventsByType"`
	EventsByUser  map[string]int `json:"eventsByUser"`
}
