package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photoevent-admin-go/internal/models"
)

func TestEventStatisticsBreakdown(t *testing.T) {
	events := &fakeEventRepo{events: []*models.Event{
		{ID: "1", EventType: "Wedding", IsPublic: true, UploadedBy: "anna"},
		{ID: "2", EventType: "Wedding", IsPublic: false, UploadedBy: "anna"},
		{ID: "3", EventType: "Birthday", IsPublic: true, UploadedBy: "bob"},
		{ID: "4", EventType: "", IsPublic: false, UploadedBy: ""},
	}}
	svc := NewEventService(events, &fakeGuestRepo{}, zap.NewNop())

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalEvents)
	assert.Equal(t, 2, stats.PublicEvents)
	assert.Equal(t, 2, stats.PrivateEvents)
	assert.Equal(t, 2, stats.EventsByType["Wedding"])
	assert.Equal(t, 1, stats.EventsByType["Other"])
	assert.Equal(t, 2, stats.EventsByUser["anna"])
	assert.Equal(t, 1, stats.EventsByUser["Unknown"])
}

func TestEventListRecentUsesTrailingThirtyDays(t *testing.T) {
	now := time.Now()
	events := &fakeEventRepo{events: []*models.Event{
		{ID: "fresh", CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "edge", CreatedAt: now.AddDate(0, 0, -29)},
		{ID: "stale", CreatedAt: now.AddDate(0, 0, -45)},
	}}
	svc := NewEventService(events, &fakeGuestRepo{}, zap.NewNop())

	recent, err := svc.ListRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "fresh", recent[0].ID)
	assert.Equal(t, "edge", recent[1].ID)

	// The cutoff handed to the repository sits 30 days back.
	assert.WithinDuration(t, now.Add(-30*24*time.Hour), events.lastSince, time.Minute)
}

func TestEventUpdatePartialFields(t *testing.T) {
	// The fake repo accepts updates for any id without recording fields, so
	// this only exercises the result contract.
	events := &fakeEventRepo{}
	svc := NewEventService(events, &fakeGuestRepo{}, zap.NewNop())

	name := "Renamed"
	result := svc.Update(context.Background(), "ev1", models.EventUpdate{EventName: &name})
	assert.True(t, result.Success)

	empty := svc.Update(context.Background(), "ev1", models.EventUpdate{})
	assert.False(t, empty.Success)
	assert.Equal(t, "No fields to update", empty.Message)
}

func TestEventDeleteManyDeduplicates(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewEventService(events, &fakeGuestRepo{}, zap.NewNop())

	result := svc.DeleteMany(context.Background(), []string{"a", "a", "b"})
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "2")

	none := svc.DeleteMany(context.Background(), []string{})
	assert.False(t, none.Success)
}
