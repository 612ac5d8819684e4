package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("session invalid")
	ErrAuthNotConfigured  = errors.New("admin auth not configured")
)

const (
	RoleAdmin       = "admin"
	tokenIssuer     = "agencyops"
	defaultTokenTTL = 12 * time.Hour
)

// Session is the authenticated admin identity carried by a request.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	Session   Session
}

// IAuthUseCase issues and validates admin session tokens.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthToken, error)
	ParseToken(token string) (Session, error)
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminEmail        string
	AdminPasswordHash string
}

type AuthUseCase struct {
	cfg AuthConfig
	log *zap.Logger
	now func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg AuthConfig, logger *zap.Logger) *AuthUseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthUseCase{cfg: cfg, log: componentLogger(logger, "auth_usecase"), now: utcNow}
}

func (u *AuthUseCase) Login(_ context.Context, email, password string) (AuthToken, error) {
	if u.cfg.JWTSecret == "" || u.cfg.AdminEmail == "" || u.cfg.AdminPasswordHash == "" {
		return AuthToken{}, ErrAuthNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(u.cfg.AdminEmail))) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(u.cfg.AdminPasswordHash), []byte(password))
	if !emailOK || passErr != nil {
		u.log.Warn("admin login rejected", zap.String("email", email))
		return AuthToken{}, ErrInvalidCredentials
	}

	now := u.now()
	exp := now.Add(u.cfg.TokenTTL)
	claims := JWTClaims{
		UserID: email,
		Email:  email,
		Role:   RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   email,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return AuthToken{}, err
	}
	u.log.Info("admin login", zap.String("email", email))
	return AuthToken{
		Token:     signed,
		ExpiresAt: exp,
		Session:   Session{UserID: email, Email: email, Role: RoleAdmin, ExpiresAt: exp},
	}, nil
}

// ParseToken validates signature, issuer and expiry. Every failure maps to ErrSessionInvalid.
func (u *AuthUseCase) ParseToken(token string) (Session, error) {
	if u.cfg.JWTSecret == "" || strings.TrimSpace(token) == "" {
		return Session{}, ErrSessionInvalid
	}
	parsed, err := jwt.ParseWithClaims(token, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil {
		return Session{}, ErrSessionInvalid
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid || claims.Role != RoleAdmin {
		return Session{}, ErrSessionInvalid
	}
	s := Session{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// HashPassword produces the bcrypt hash expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
