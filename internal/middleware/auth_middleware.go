package middleware

import (
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"photoevent-admin-go/internal/session"
)

// ErrorResponse mirrors the one in internal/api/dto_models.go to avoid an
// import cycle between the middleware and api packages.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// loginRedirect is the payload of every 401 from the session guard: the
// login route plus the path the caller was trying to reach, so the frontend
// can return there after a successful login.
type loginRedirect struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
	From     string `json:"from"`
}

// AuthMiddleware guards the admin routes with two layers: the reconciled
// server-side session, and an optional bearer ID token pinned to the admin
// account.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	sessions           *session.Manager
	adminEmail         string
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(fbAuthClient *auth.Client, sessions *session.Manager, adminEmail string) *AuthMiddleware {
	if fbAuthClient == nil {
		log.Fatal("CRITICAL_ERROR: Firebase Auth client is not initialized for AuthMiddleware. Ensure db.InitFirestore() succeeds before initializing middleware.")
	}
	if sessions == nil {
		log.Fatal("CRITICAL_ERROR: session manager is not initialized for AuthMiddleware.")
	}
	return &AuthMiddleware{
		firebaseAuthClient: fbAuthClient,
		sessions:           sessions,
		adminEmail:         strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// RequireSession re-evaluates the session on every request. Reconciliation
// happens inside Evaluate: stale or half-cleared state is wiped there, and
// the denied caller is pointed at the login route along with the path they
// came from.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessions.Evaluate() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, loginRedirect{
				Error:    "Authentication required",
				Redirect: "/login",
				From:     c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}

// VerifyToken validates a bearer Firebase ID token and requires its email
// claim to be the admin account. Used when the frontend calls with its own
// token instead of relying on the server-side session.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("AuthMiddleware: Error verifying Firebase ID token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		if !strings.EqualFold(email, m.adminEmail) {
			log.Printf("AuthMiddleware: token for '%s' is not the admin account", email)
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}

		c.Set("userID", token.UID)
		c.Set("userEmail", email)
		c.Next()
	}
}
