package core

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/models"
	"photoevent-admin-go/internal/session"
)

// invalidCredentialsMessage is the single rejection message for every login
// failure. It never distinguishes a wrong password from a non-admin account,
// so the login form leaks nothing about which addresses are privileged.
const invalidCredentialsMessage = "Invalid email or password"

// authService implements the admin login gate: credentials are verified
// against the identity provider, then the authenticated email is checked
// against the admin allow-list.
type authService struct {
	authenticator db.Authenticator
	sessions      *session.Manager
	adminEmail    string
	logger        *zap.Logger

	mu      sync.Mutex
	lastUID string // uid of the current session, for logout revocation
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(authenticator db.Authenticator, sessions *session.Manager, adminEmail string, logger *zap.Logger) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		authenticator: authenticator,
		sessions:      sessions,
		adminEmail:    strings.ToLower(strings.TrimSpace(adminEmail)),
		logger:        logger,
	}
}

// Login verifies the credentials and the allow-list, in that order. The
// pre-check on the submitted email short-circuits without hitting the
// identity provider; the post-auth check guards against the provider
// returning a canonicalized address that no longer matches, and revokes the
// freshly minted session so the non-admin token cannot be replayed.
func (s *authService) Login(ctx context.Context, email, password string) LoginResult {
	submitted := strings.ToLower(strings.TrimSpace(email))
	if submitted == "" || password == "" {
		return LoginResult{Success: false, Message: invalidCredentialsMessage}
	}

	if submitted != s.adminEmail {
		s.logger.Warn("Login rejected for non-admin email", zap.String("email", submitted))
		return LoginResult{Success: false, Message: invalidCredentialsMessage}
	}

	result, err := s.authenticator.SignInWithPassword(ctx, email, password)
	if err != nil {
		if !errors.Is(err, db.ErrInvalidCredentials) {
			s.logger.Error("Identity provider sign-in failed", zap.Error(err))
		}
		return LoginResult{Success: false, Message: invalidCredentialsMessage}
	}

	if !strings.EqualFold(result.Email, s.adminEmail) {
		s.logger.Warn("Authenticated email is not the admin account, revoking sessions",
			zap.String("email", result.Email))
		if err := s.authenticator.RevokeSessions(ctx, result.UID); err != nil {
			s.logger.Error("Failed to revoke non-admin sessions", zap.Error(err))
		}
		if err := s.sessions.Clear(); err != nil {
			s.logger.Warn("Failed to clear session after denied login", zap.Error(err))
		}
		return LoginResult{Success: false, Message: invalidCredentialsMessage}
	}

	if err := s.sessions.Establish(result.IDToken, result.Email); err != nil {
		s.logger.Error("Failed to persist session markers", zap.Error(err))
		return LoginResult{Success: false, Message: "Failed to establish session"}
	}

	s.mu.Lock()
	s.lastUID = result.UID
	s.mu.Unlock()

	s.logger.Info("Admin login successful", zap.String("email", result.Email))
	return LoginResult{
		Success: true,
		Message: "Login successful",
		Token:   result.IDToken,
		Email:   result.Email,
	}
}

// Logout revokes the identity provider session when its uid is known, then
// clears both session layers. Clearing an absent session succeeds; a failed
// revocation is logged but does not block the local logout.
func (s *authService) Logout(ctx context.Context) models.MutationResult {
	s.mu.Lock()
	uid := s.lastUID
	s.lastUID = ""
	s.mu.Unlock()

	if uid != "" {
		if err := s.authenticator.RevokeSessions(ctx, uid); err != nil {
			s.logger.Warn("Failed to revoke sessions on logout", zap.Error(err))
		}
	}

	if err := s.sessions.Clear(); err != nil {
		s.logger.Error("Failed to clear session", zap.Error(err))
		return models.MutationFail("Failed to log out")
	}
	s.logger.Info("Admin logged out")
	return models.MutationOK("Logged out successfully", "")
}
