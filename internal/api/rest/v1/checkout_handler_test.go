//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/domains"
)

func TestCheckoutHandler_Start(t *testing.T) {
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCheckoutHandler(mockCheckoutService)

	mockCheckoutService.On("Start", mock.Anything, uint(7), uint(9)).Return(&checkouts.Checkout{
		ID: 1, DomainID: 9, Reference: "4a0f4f6e-2b8e-4c41-9a43-a1c8b3a0d5f1", Status: checkouts.StatusPending, AmountCents: 1500, Currency: "EUR",
	}, nil)
	mockCheckoutService.On("Start", mock.Anything, uint(7), uint(10)).Return(nil, domains.ErrNotPending)

	c, w := newJSONContext(t, "POST", "/domains/9/checkout", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	handler.Start(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"amountCents":1500`)

	c, w = newJSONContext(t, "POST", "/domains/10/checkout", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "10"}}
	handler.Start(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutHandler_SuccessAndFailure(t *testing.T) {
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCheckoutHandler(mockCheckoutService)

	mockCheckoutService.On("Succeed", mock.Anything, uint(7), uint(1)).Return(&checkouts.Checkout{ID: 1, Status: checkouts.StatusSucceeded}, nil)
	mockCheckoutService.On("Fail", mock.Anything, uint(7), uint(1)).Return(nil, checkouts.ErrAlreadySucceeded)
	mockCheckoutService.On("Fail", mock.Anything, uint(7), uint(2)).Return(nil, checkouts.ErrNotFound)

	c, w := newJSONContext(t, "POST", "/checkout/1/success", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Success(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"succeeded"`)

	c, w = newJSONContext(t, "POST", "/checkout/1/failure", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Failure(c)
	assert.Equal(t, http.StatusConflict, w.Code)

	c, w = newJSONContext(t, "POST", "/checkout/2/failure", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "2"}}
	handler.Failure(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutHandler_List(t *testing.T) {
	mockCheckoutService := new(MockCheckoutService)
	handler := NewCheckoutHandler(mockCheckoutService)

	mockCheckoutService.On("List", mock.Anything, uint(7)).Return([]*checkouts.Checkout{{ID: 1, Status: checkouts.StatusFailed}}, nil)

	c, w := newJSONContext(t, "GET", "/checkouts", "")
	withUser(c, 7)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"failed"`)
}
