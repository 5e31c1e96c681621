package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/users"
)

// UserHandler defines the interface for account related requests
type UserHandler interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// Signup handles the POST request creating an account
// @Summary Create an account
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body SignupRequest true "Account data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /signup [post]
func (handler *userHandler) Signup(ctx *gin.Context) {
	var request SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid signup data: %v", err))
		return
	}

	user, err := handler.userService.Register(ctx.Request.Context(), request.Username, request.Email, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles the POST request exchanging credentials for a token
// @Summary Log in
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (handler *userHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid login data: %v", err))
		return
	}

	session, err := handler.userService.Authenticate(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// Me handles the GET request returning the authenticated user
// @Summary Current user
// @Tags User
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /me [get]
func (handler *userHandler) Me(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}
