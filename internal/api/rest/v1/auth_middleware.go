package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/users"
)

const currentUserKey = "currentUser"

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the authenticated user on the context
func AuthMiddleware(userService users.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		user, err := userService.ValidateToken(ctx.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			ctx.AbortWithStatusJSON(errorStatus(err), ErrorResponse{Message: errorMessage(errorStatus(err), err)})
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// currentUser returns the user stored by AuthMiddleware
func currentUser(ctx *gin.Context) (*users.User, bool) {
	value, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok && user != nil
}

// requireUser writes a 401 and reports false when no user is authenticated
func requireUser(ctx *gin.Context) (*users.User, bool) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: users.ErrUnauthorized.Error()})
		return nil, false
	}
	return user, true
}
