package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photoevent-admin-go/internal/session"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(
		session.NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		zap.NewNop(),
	)
	mw := &AuthMiddleware{sessions: sessions}

	router := gin.New()
	router.GET("/api/v1/dashboard/stats", mw.RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, sessions
}

func TestRequireSessionRejectsUnauthenticated(t *testing.T) {
	router, _ := newGuardedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body loginRedirect
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/login", body.Redirect)
	assert.Equal(t, "/api/v1/dashboard/stats", body.From)
}

func TestRequireSessionAllowsAuthenticated(t *testing.T) {
	router, sessions := newGuardedRouter(t)
	require.NoError(t, sessions.Establish("tok", "admin@example.com"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	// Minted when absent.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	minted := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, minted)
	assert.Equal(t, minted, w.Body.String())

	// Honored when supplied.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	router.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", w.Header().Get("X-Request-ID"))
}
