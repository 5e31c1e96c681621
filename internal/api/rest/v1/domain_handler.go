package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/pkg/httputil"
)

// DomainHandler defines the interface for domain related requests
type DomainHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Check(ctx *gin.Context)
}

type domainHandler struct {
	domainService domains.DomainService
}

// NewDomainHandler creates a new DomainHandler
func NewDomainHandler(domainService domains.DomainService) DomainHandler {
	return &domainHandler{domainService: domainService}
}

// Create handles the POST request registering a domain
// @Summary Register a domain
// @Description Registers the domain for one year with the given contact for all roles. The domain stays pending until its checkout succeeds.
// @Tags Domain
// @Accept json
// @Produce json
// @Param requestBody body DomainRequest true "Domain data"
// @Success 201 {object} DomainResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /domains [post]
func (handler *domainHandler) Create(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var request DomainRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid domain data: %v", err))
		return
	}

	domain, err := handler.domainService.Create(ctx.Request.Context(), &domains.CreateRequest{
		OwnerID:     user.ID,
		ContactID:   request.ContactID,
		Name:        request.Name,
		Nameservers: request.Nameservers,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newDomainResponse(domain))
}

// List handles the GET request listing the user's domains. It also serves the index route.
// @Summary List domains
// @Tags Domain
// @Produce json
// @Success 200 {array} DomainResponse
// @Router /domains [get]
func (handler *domainHandler) List(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	list, err := handler.domainService.List(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]DomainResponse, 0, len(list))
	for _, domain := range list {
		response = append(response, newDomainResponse(domain))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for one domain
// @Summary Get a domain
// @Tags Domain
// @Produce json
// @Param id path int true "Domain ID"
// @Success 200 {object} DomainResponse
// @Failure 404 {object} ErrorResponse
// @Router /domains/{id} [get]
func (handler *domainHandler) GetByID(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, err := httputil.ParseID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	domain, err := handler.domainService.GetByID(ctx.Request.Context(), user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDomainResponse(domain))
}

// Check handles the GET request asking the registrar whether a name is free
// @Summary Check availability
// @Tags Domain
// @Produce json
// @Param name query string true "Domain name"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /domains/check [get]
func (handler *domainHandler) Check(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		respondBadRequest(ctx, "query parameter name is required")
		return
	}

	availability, err := handler.domainService.CheckAvailability(ctx.Request.Context(), name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, AvailabilityResponse{
		Name:      availability.Name,
		Available: availability.Available,
		Reason:    availability.Reason,
	})
}
