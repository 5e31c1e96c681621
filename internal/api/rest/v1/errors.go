package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	var validationErr *validators.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domains.ErrTooManyNameservers),
		errors.Is(err, domains.ErrContactNotRegistered):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, users.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, users.ErrInactive):
		return http.StatusForbidden
	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, contacts.ErrNotFound),
		errors.Is(err, domains.ErrNotFound),
		errors.Is(err, checkouts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrUsernameTaken),
		errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, domains.ErrAlreadyExists),
		errors.Is(err, domains.ErrNotPending),
		errors.Is(err, contacts.ErrInUse),
		errors.Is(err, checkouts.ErrAlreadySucceeded):
		return http.StatusConflict
	}
	if _, ok := registrar.AsAPIError(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorMessage is the text shown to clients. Internal failures are not detailed.
func errorMessage(status int, err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return strings.Join(validationErr.Messages, "; ")
	}
	if apiErr, ok := registrar.AsAPIError(err); ok {
		return "registrar error: " + apiErr.Description
	}
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// respondError writes the ErrorResponse for err and records it on the context
func respondError(ctx *gin.Context, err error) {
	status := errorStatus(err)
	_ = ctx.Error(err)
	ctx.JSON(status, ErrorResponse{Message: errorMessage(status, err)})
}

// respondBadRequest writes a 400 for malformed input
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
