package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/pkg/httputil"
)

// ContactHandler defines the interface for contact related requests
type ContactHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type contactHandler struct {
	contactService contacts.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService contacts.ContactService) ContactHandler {
	return &contactHandler{contactService: contactService}
}

// Create handles the POST request adding a contact and creating it at the registrar
// @Summary Add a contact
// @Tags Contact
// @Accept json
// @Produce json
// @Param requestBody body ContactRequest true "Contact data"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /contacts [post]
func (handler *contactHandler) Create(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var request ContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid contact data: %v", err))
		return
	}

	contact, err := handler.contactService.Create(ctx.Request.Context(), request.toContact(user.ID))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newContactResponse(contact))
}

// List handles the GET request listing the user's contacts
// @Summary List contacts
// @Tags Contact
// @Produce json
// @Success 200 {array} ContactResponse
// @Router /contacts [get]
func (handler *contactHandler) List(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	list, err := handler.contactService.List(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ContactResponse, 0, len(list))
	for _, contact := range list {
		response = append(response, newContactResponse(contact))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for one contact
// @Summary Get a contact
// @Tags Contact
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} ContactResponse
// @Failure 404 {object} ErrorResponse
// @Router /contacts/{id} [get]
func (handler *contactHandler) GetByID(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, err := httputil.ParseID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	contact, err := handler.contactService.GetByID(ctx.Request.Context(), user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newContactResponse(contact))
}

// DeleteByID handles the DELETE request for a contact no domain uses
// @Summary Delete a contact
// @Tags Contact
// @Param id path int true "Contact ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /contacts/{id} [delete]
func (handler *contactHandler) DeleteByID(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, err := httputil.ParseID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	if err := handler.contactService.DeleteByID(ctx.Request.Context(), user.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
