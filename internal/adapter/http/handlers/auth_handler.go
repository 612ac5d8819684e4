package handlers

import (
	"errors"
	"net/http"

	request "agencyops/internal/adapter/http/dto/request"
	response "agencyops/internal/adapter/http/dto/response"
	"agencyops/internal/adapter/http/middleware"
	"agencyops/internal/usecase"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	tok, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthToken(tok))
}

// Me returns the session of the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		respondError(c, pkg.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionInvalid):
		return pkg.ErrUnauthorized
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		return pkg.NewDomainError("AUTH_NOT_CONFIGURED", "Admin login is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewInternalError(err)
	}
}
