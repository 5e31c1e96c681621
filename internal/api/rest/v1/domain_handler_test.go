//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tofunames/tofunames/internal/domain/domains"
)

func TestDomainHandler_Create_Success(t *testing.T) {
	mockDomainService := new(MockDomainService)
	handler := NewDomainHandler(mockDomainService)

	mockDomainService.On("Create", mock.Anything, &domains.CreateRequest{
		OwnerID:     7,
		ContactID:   5,
		Name:        "TofuNames.com",
		Nameservers: []string{"ns1.dnsimple.com"},
	}).Return(&domains.Domain{ID: 9, Name: "tofunames.com", ContactID: 5, Nameservers: []string{"ns1.dnsimple.com"}, Pending: true}, nil)

	c, w := newJSONContext(t, "POST", "/domains", `{"name":"TofuNames.com","contactId":5,"nameservers":["ns1.dnsimple.com"]}`)
	withUser(c, 7)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"tofunames.com"`)
	assert.Contains(t, w.Body.String(), `"pending":true`)
	mockDomainService.AssertExpectations(t)
}

func TestDomainHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"already exists", domains.ErrAlreadyExists, http.StatusConflict},
		{"too many nameservers", domains.ErrTooManyNameservers, http.StatusBadRequest},
		{"contact not registered", domains.ErrContactNotRegistered, http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDomainService := new(MockDomainService)
			handler := NewDomainHandler(mockDomainService)
			mockDomainService.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := newJSONContext(t, "POST", "/domains", `{"name":"tofunames.com","contactId":5}`)
			withUser(c, 7)
			handler.Create(c)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestDomainHandler_List(t *testing.T) {
	mockDomainService := new(MockDomainService)
	handler := NewDomainHandler(mockDomainService)

	mockDomainService.On("List", mock.Anything, uint(7)).Return([]*domains.Domain{{ID: 1, Name: "tofunames.com"}}, nil)

	c, w := newJSONContext(t, "GET", "/domains", "")
	withUser(c, 7)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nameservers":[]`)
}

func TestDomainHandler_GetByID_NotFound(t *testing.T) {
	mockDomainService := new(MockDomainService)
	handler := NewDomainHandler(mockDomainService)

	mockDomainService.On("GetByID", mock.Anything, uint(7), uint(4)).Return(nil, domains.ErrNotFound)

	c, w := newJSONContext(t, "GET", "/domains/4", "")
	withUser(c, 7)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"domain not found"}`, w.Body.String())
}

func TestDomainHandler_Check(t *testing.T) {
	mockDomainService := new(MockDomainService)
	handler := NewDomainHandler(mockDomainService)

	mockDomainService.On("CheckAvailability", mock.Anything, "free.com").
		Return(&domains.Availability{Name: "free.com", Available: true, Reason: "Domain name available"}, nil)

	c, w := newJSONContext(t, "GET", "/domains/check?name=free.com", "")
	handler.Check(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"free.com","available":true,"reason":"Domain name available"}`, w.Body.String())

	c, w = newJSONContext(t, "GET", "/domains/check", "")
	handler.Check(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
