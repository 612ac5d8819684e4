package middleware

import (
	"strings"

	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionParser is the part of the auth use case the middleware needs.
type SessionParser interface {
	ParseToken(token string) (usecase.Session, error)
}

// RequireSession rejects requests without a valid admin bearer token with
// 401 SESSION_INVALID, the signal clients use to drop their stored token.
func RequireSession(auth SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := parseSession(c, auth)
		if !ok {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// LoadSession stores the session when a valid token is present and never aborts.
func LoadSession(auth SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s, ok := parseSession(c, auth); ok {
			c.Set(sessionKey, s)
		}
		c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession or LoadSession.
func SessionFrom(c *gin.Context) (usecase.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return usecase.Session{}, false
	}
	s, ok := v.(usecase.Session)
	return s, ok
}

func parseSession(c *gin.Context, auth SessionParser) (usecase.Session, bool) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		return usecase.Session{}, false
	}
	s, err := auth.ParseToken(token)
	if err != nil {
		return usecase.Session{}, false
	}
	return s, true
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
