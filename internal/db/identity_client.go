package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// ErrInvalidCredentials is returned for any sign-in rejection from the
// identity provider. Callers present one generic message regardless of the
// underlying reason.
var ErrInvalidCredentials = errors.New("invalid email or password")

// identityClient implements Authenticator against the Firebase Identity
// Toolkit REST API (the Admin SDK has no password sign-in) plus the Admin
// Auth client for session revocation.
type identityClient struct {
	apiKey     string
	httpClient *http.Client
	authClient *auth.Client
}

// NewIdentityClient creates a new identityClient.
func NewIdentityClient(apiKey string, authClient *auth.Client) Authenticator {
	if apiKey == "" {
		log.Fatal("Firebase Web API key is not configured for the identity client.")
	}
	if authClient == nil {
		log.Fatal("Firebase Auth client is not initialized for the identity client.")
	}
	return &identityClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		authClient: authClient,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword exchanges email/password credentials for an ID token.
// Rejections map to ErrInvalidCredentials; transport failures are wrapped
// and surface as-is.
func (c *identityClient) SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	var parsed signInResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// The toolkit reports INVALID_PASSWORD, EMAIL_NOT_FOUND, etc.
		// Log server-side; the caller gets one generic rejection.
		if parsed.Error != nil {
			log.Printf("Identity Toolkit rejected sign-in for '%s': %s", email, parsed.Error.Message)
		}
		return nil, ErrInvalidCredentials
	}

	return &AuthResult{
		UID:     parsed.LocalID,
		Email:   parsed.Email,
		IDToken: parsed.IDToken,
	}, nil
}

// RevokeSessions invalidates all refresh tokens for a user, forcing every
// outstanding session to re-authenticate.
func (c *identityClient) RevokeSessions(ctx context.Context, uid string) error {
	if uid == "" {
		return errors.New("uid cannot be empty for RevokeSessions operation")
	}
	if err := c.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke sessions for uid '%s': %w", uid, err)
	}
	return nil
}
