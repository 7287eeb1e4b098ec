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
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// recentEventWindow is how far back the "recent events" listing reaches.
const recentEventWindow = 30 * 24 * time.Hour

// eventService implements EventService.
type eventService struct {
	eventRepo db.EventRepository
	guestRepo db.GuestUserRepository
	logger    *zap.Logger
}

// NewEventService creates a new EventService instance.
func NewEventService(eventRepo db.EventRepository, guestRepo db.GuestUserRepository, logger *zap.Logger) EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &eventService{eventRepo: eventRepo, guestRepo: guestRepo, logger: logger}
}

// List retrieves all events, newest first.
func (s *eventService) List(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

// ListPublic retrieves only the publicly visible events.
func (s *eventService) ListPublic(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public events: %w", err)
	}
	return events, nil
}

// ListByType retrieves events of one type.
func (s *eventService) ListByType(ctx context.Context, eventType string) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByType(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events of type '%s': %w", eventType, err)
	}
	return events, nil
}

// ListByUser retrieves the events owned by one user.
func (s *eventService) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for user '%s': %w", userID, err)
	}
	return events, nil
}

// ListByUploader retrieves the events attributed to one uploader name.
func (s *eventService) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByUploader(ctx, uploadedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events uploaded by '%s': %w", uploadedBy, err)
	}
	return events, nil
}

// ListRecent retrieves the events created within the trailing 30 days,
// newest first.
func (s *eventService) ListRecent(ctx context.Context) ([]*models.Event, error) {
	since := time.Now().Add(-recentEventWindow)
	events, err := s.eventRepo.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent events: %w", err)
	}
	return events, nil
}

// GetByID retrieves one event.
func (s *eventService) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to fetch event '%s': %w", eventID, err)
	}
	return event, nil
}

// Guests retrieves the guest users who joined one event's gallery.
func (s *eventService) Guests(ctx context.Context, eventID string) ([]*models.GuestUser, error) {
	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests for event '%s': %w", eventID, err)
	}
	return guests, nil
}

// Statistics computes the event breakdown over the full collection: totals,
// public/private split, and per-type and per-uploader counts. Uploaders with
// no recorded name are grouped under "Unknown".
func (s *eventService) Statistics(ctx context.Context) (*models.EventStatistics, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for statistics: %w", err)
	}

	stats := &models.EventStatistics{
		EventsByType: map[string]int{},
		EventsByUser: map[string]int{},
	}
	for _, event := range events {
		stats.TotalEvents++
		if event.IsPublic {
			stats.PublicEvents++
		} else {
			stats.PrivateEvents++
		}

		eventType := event.EventType
		if eventType == "" {
			eventType = "Other"
		}
		stats.EventsByType[eventType]++

		uploader := event.UploadedBy
		if uploader == "" {
			uploader = "Unknown"
		}
		stats.EventsByUser[uploader]++
	}
	return stats, nil
}

// Update applies a partial update; only the submitted fields are written.
// Image attachments and ownership are managed by the upload pipeline and
// cannot be edited here.
func (s *eventService) Update(ctx context.Context, eventID string, input models.EventUpdate) models.MutationResult {
	fields := map[string]interface{}{}
	if input.EventName != nil {
		fields["eventName"] = *input.EventName
	}
	if input.EventType != nil {
		fields["eventType"] = *input.EventType
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.CoverImage != nil {
		fields["coverImage"] = *input.CoverImage
	}
	if input.IsPublic != nil {
		fields["isPublic"] = *input.IsPublic
	}
	if input.CompressRate != nil {
		fields["compress_rate"] = *input.CompressRate
	}
	if len(fields) == 0 {
		return models.MutationFail("No fields to update")
	}

	if err := s.eventRepo.Update(ctx, eventID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.MutationFail("Event not found")
		}
		s.logger.Error("Failed to update event", zap.String("eventId", eventID), zap.Error(err))
		return models.MutationFail("Failed to update event")
	}
	return models.MutationOK("Event updated successfully", eventID)
}

// Delete removes one event document. Stored images are owned by the upload
// pipeline and are not touched.
func (s *eventService) Delete(ctx context.Context, eventID string) models.MutationResult {
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		s.logger.Error("Failed to delete event", zap.String("eventId", eventID), zap.Error(err))
		return models.MutationFail("Failed to delete event")
	}
	return models.MutationOK("Event deleted successfully", eventID)
}

// DeleteMany removes the selected events, deduplicating the selection first.
func (s *eventService) DeleteMany(ctx context.Context, eventIDs []string) models.MutationResult {
	selection := listquery.NewSelection(eventIDs...)
	if selection.Len() == 0 {
		return models.MutationFail("No events selected")
	}
	for _, id := range selection.IDs() {
		if result := s.Delete(ctx, id); !result.Success {
			return models.MutationFail(fmt.Sprintf("Failed to delete event '%s'", id))
		}
	}
	return models.MutationOK(fmt.Sprintf("Deleted %d event(s)", selection.Len()), "")
}
