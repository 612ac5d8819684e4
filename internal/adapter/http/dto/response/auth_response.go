package response

import (
	"time"

	"agencyops/internal/usecase"
)

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   SessionResponse `json:"session"`
}

type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{UserID: s.UserID, Email: s.Email, Role: s.Role, ExpiresAt: s.ExpiresAt}
}

func FromAuthToken(t usecase.AuthToken) LoginResponse {
	return LoginResponse{Token: t.Token, ExpiresAt: t.ExpiresAt, Session: FromSession(t.Session)}
}

// AcknowledgedResponse is returned by webhooks and other fire-and-forget endpoints.
type AcknowledgedResponse struct {
	Received bool `json:"received"`
}
