package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/listquery"
	"photoevent-admin-go/internal/models"
)

// EventHandler handles the photo event endpoints.
type EventHandler struct {
	eventService core.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es core.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// mapEventErrorToStatus maps errors from core.EventService to HTTP status codes.
func mapEventErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrEventNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /events with the table pipeline. Optional pre-filters
// narrow the collection before the pipeline: ?public=true, ?recent=true
// (trailing 30 days), ?type=, ?userId=, ?uploadedBy= (first match wins, in
// that order).
func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var events []*models.Event
	var err error
	switch {
	case c.Query("public") == "true":
		events, err = h.eventService.ListPublic(ctx)
	case c.Query("recent") == "true":
		events, err = h.eventService.ListRecent(ctx)
	case c.Query("type") != "":
		events, err = h.eventService.ListByType(ctx, c.Query("type"))
	case c.Query("userId") != "":
		events, err = h.eventService.ListByUser(ctx, c.Query("userId"))
	case c.Query("uploadedBy") != "":
		events, err = h.eventService.ListByUploader(ctx, c.Query("uploadedBy"))
	default:
		events, err = h.eventService.List(ctx)
	}
	if err != nil {
		mapEventErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, listquery.Apply(events, listParams(c), models.EventSearchFields, models.EventSortKey))
}

// Statistics handles GET /events/statistics.
func (h *EventHandler) Statistics(c *gin.Context) {
	stats, err := h.eventService.Statistics(c.Request.Context())
	if err != nil {
		mapEventErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get handles GET /events/:eventId.
func (h *EventHandler) Get(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Event ID is required"})
		return
	}
	event, err := h.eventService.GetByID(c.Request.Context(), eventID)
	if err != nil {
		mapEventErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Guests handles GET /events/:eventId/guests.
func (h *EventHandler) Guests(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Event ID is required"})
		return
	}
	guests, err := h.eventService.Guests(c.Request.Context(), eventID)
	if err != nil {
		mapEventErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// Update handles PUT /events/:eventId.
func (h *EventHandler) Update(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Event ID is required"})
		return
	}
	var req models.EventUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.eventService.Update(c.Request.Context(), eventID, req))
}

// Delete handles DELETE /events/:eventId.
func (h *EventHandler) Delete(c *gin.Context) {
	eventID := c.Param("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Event ID is required"})
		return
	}
	c.JSON(http.StatusOK, h.eventService.Delete(c.Request.Context(), eventID))
}

// BulkDelete handles POST /events/bulk-delete.
func (h *EventHandler) BulkDelete(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.eventService.DeleteMany(c.Request.Context(), req.IDs))
}
