package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/pkg/httputil"
)

// CheckoutHandler defines the interface for the payment flow of pending domains
type CheckoutHandler interface {
	Start(ctx *gin.Context)
	List(ctx *gin.Context)
	Success(ctx *gin.Context)
	Failure(ctx *gin.Context)
}

type checkoutHandler struct {
	checkoutService checkouts.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService checkouts.CheckoutService) CheckoutHandler {
	return &checkoutHandler{checkoutService: checkoutService}
}

// Start handles the POST request opening a checkout for a pending domain
// @Summary Start a checkout
// @Tags Checkout
// @Produce json
// @Param id path int true "Domain ID"
// @Success 201 {object} CheckoutResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /domains/{id}/checkout [post]
func (handler *checkoutHandler) Start(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	domainID, err := httputil.ParseID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	checkout, err := handler.checkoutService.Start(ctx.Request.Context(), user.ID, domainID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newCheckoutResponse(checkout))
}

// List handles the GET request listing the user's checkouts
// @Summary List checkouts
// @Tags Checkout
// @Produce json
// @Success 200 {array} CheckoutResponse
// @Router /checkouts [get]
func (handler *checkoutHandler) List(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	list, err := handler.checkoutService.List(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]CheckoutResponse, 0, len(list))
	for _, checkout := range list {
		response = append(response, newCheckoutResponse(checkout))
	}
	ctx.JSON(http.StatusOK, response)
}

// Success handles the POST request confirming a payment
// @Summary Checkout succeeded
// @Tags Checkout
// @Produce json
// @Param id path int true "Checkout ID"
// @Success 200 {object} CheckoutResponse
// @Failure 404 {object} ErrorResponse
// @Router /checkout/{id}/success [post]
func (handler *checkoutHandler) Success(ctx *gin.Context) {
	handler.finish(ctx, handler.checkoutService.Succeed)
}

// Failure handles the POST request reporting a failed payment
// @Summary Checkout failed
// @Tags Checkout
// @Produce json
// @Param id path int true "Checkout ID"
// @Success 200 {object} CheckoutResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/{id}/failure [post]
func (handler *checkoutHandler) Failure(ctx *gin.Context) {
	handler.finish(ctx, handler.checkoutService.Fail)
}

type checkoutTransition func(ctx context.Context, ownerID, checkoutID uint) (*checkouts.Checkout, error)

func (handler *checkoutHandler) finish(ctx *gin.Context, transition checkoutTransition) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	checkoutID, err := httputil.ParseID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	checkout, err := transition(ctx.Request.Context(), user.ID, checkoutID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCheckoutResponse(checkout))
}
