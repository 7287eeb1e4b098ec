package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/models"
	"photoevent-admin-go/internal/session"
)

// AuthHandler handles the admin login, logout and session endpoints.
type AuthHandler struct {
	authService core.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: as, sessions: sessions}
}

// Login handles POST /auth/login. A rejected login is a 401 with the same
// generic message for every failure mode.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	result := h.authService.Logout(c.Request.Context())
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Session handles GET /auth/session, reporting the reconciled session state
// so the frontend can decide between the dashboard and the login screen.
func (h *AuthHandler) Session(c *gin.Context) {
	if !h.sessions.Evaluate() {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"email":         h.sessions.Email(),
	})
}
