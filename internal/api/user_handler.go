package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/listquery"
	"photoevent-admin-go/internal/models"
)

// UserHandler handles the registered-user endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// mapUserErrorToStatus maps errors from core.UserService to HTTP status codes.
func mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /users with the table pipeline. Optional pre-filters
// narrow the collection before the pipeline: ?active=true, ?plan=,
// ?provider=, ?country=, ?expiring=<days> (first match wins, in that order).
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var users []*models.User
	var err error
	switch {
	case c.Query("active") == "true":
		users, err = h.userService.List(ctx, true)
	case c.Query("plan") != "":
		users, err = h.userService.ListByPlan(ctx, c.Query("plan"))
	case c.Query("provider") != "":
		users, err = h.userService.ListByProvider(ctx, c.Query("provider"))
	case c.Query("country") != "":
		users, err = h.userService.ListByCountry(ctx, c.Query("country"))
	case c.Query("expiring") != "":
		// Non-numeric values fall through to the service's default window.
		days, _ := strconv.Atoi(c.Query("expiring"))
		users, err = h.userService.ListExpiring(ctx, days)
	default:
		users, err = h.userService.List(ctx, false)
	}
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, listquery.Apply(users, listParams(c), models.UserSearchFields, models.UserSortKey))
}

// Statistics handles GET /users/statistics.
func (h *UserHandler) Statistics(c *gin.Context) {
	stats, err := h.userService.Statistics(c.Request.Context())
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get handles GET /users/:userId. ?by=uid looks up by auth uid instead of
// document id.
func (h *UserHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}

	var user *models.User
	var err error
	if c.Query("by") == "uid" {
		user, err = h.userService.GetByUID(c.Request.Context(), userID)
	} else {
		user, err = h.userService.GetByID(c.Request.Context(), userID)
	}
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Activity handles GET /users/:userId/activity.
func (h *UserHandler) Activity(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}
	activity, err := h.userService.Activity(c.Request.Context(), userID)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// Update handles PUT /users/:userId.
func (h *UserHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.userService.Update(c.Request.Context(), userID, req))
}

// Delete handles DELETE /users/:userId.
func (h *UserHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}
	c.JSON(http.StatusOK, h.userService.Delete(c.Request.Context(), userID))
}

// BulkDelete handles POST /users/bulk-delete.
func (h *UserHandler) BulkDelete(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.userService.DeleteMany(c.Request.Context(), req.IDs))
}
