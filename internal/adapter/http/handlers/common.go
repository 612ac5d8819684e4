package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
	"agencyops/pkg"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 500

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errVersionConflict   = pkg.NewDomainErrorSimple("VERSION_CONFLICT", "The record was changed by someone else; reload and try again", http.StatusConflict)
	errStatusConflict    = pkg.NewDomainErrorSimple("STATUS_CONFLICT", "The record status changed while saving; reload and try again", http.StatusConflict)
	errInvalidListOption = pkg.NewDomainErrorSimple("INVALID_LIST_OPTIONS", "Invalid sort or limit", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Internal != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// listOptions reads ?sort=-created_date&search=&limit= from the query string.
func listOptions(c *gin.Context) (interfaces.ListOptions, error) {
	opts := interfaces.ListOptions{
		Sort:   strings.TrimSpace(c.Query("sort")),
		Search: strings.TrimSpace(c.Query("search")),
	}
	switch strings.TrimPrefix(opts.Sort, "-") {
	case "", "created_date", "updated_date":
	default:
		return opts, errors.New("unsupported sort")
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, errors.New("invalid limit")
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		opts.Limit = n
	}
	return opts, nil
}

// commonError maps errors shared by every resource; ok is false when err is not one of them.
func commonError(err error) (*pkg.AppError, bool) {
	if errors.Is(err, entities.ErrVersionConflict) {
		return errVersionConflict, true
	}
	if errors.Is(err, entities.ErrStatusConflict) {
		return errStatusConflict, true
	}
	return nil, false
}
