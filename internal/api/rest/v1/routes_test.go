//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/users"
)

type routesTest struct {
	router   *gin.Engine
	users    *MockUserService
	contacts *MockContactService
	domains  *MockDomainService
	checkout *MockCheckoutService
}

func newRoutesTest() *routesTest {
	rt := &routesTest{
		router:   gin.New(),
		users:    new(MockUserService),
		contacts: new(MockContactService),
		domains:  new(MockDomainService),
		checkout: new(MockCheckoutService),
	}
	SetupRoutes(rt.router, rt.users, rt.contacts, rt.domains, rt.checkout)
	return rt
}

func (rt *routesTest) do(method, url, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	rt.router.ServeHTTP(w, req)
	return w
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	rt := newRoutesTest()
	rt.users.On("ValidateToken", mock.Anything, "good").Return(&users.User{ID: 7, IsActive: true}, nil)
	rt.users.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, users.ErrUsernameTaken)
	rt.users.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)
	rt.domains.On("List", mock.Anything, uint(7)).Return([]*domains.Domain{}, nil)
	rt.domains.On("CheckAvailability", mock.Anything, "free.com").Return(&domains.Availability{Name: "free.com", Available: true}, nil)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/tn/signup"},
		{"POST", "/api/v1/tn/login"},
		{"GET", "/api/v1/tn/me"},
		{"GET", "/api/v1/tn/"},
		{"GET", "/api/v1/tn/domains"},
		{"GET", "/api/v1/tn/domains/check?name=free.com"},
		{"POST", "/api/v1/tn/contacts"},
		{"GET", "/api/v1/tn/checkouts"},
	}

	rt.contacts.On("Create", mock.Anything, mock.Anything).Return(nil, users.ErrUnauthorized)
	rt.checkout.On("List", mock.Anything, uint(7)).Return(nil, nil)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := rt.do(tt.method, tt.url, "good")
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_RequiresBearerToken(t *testing.T) {
	rt := newRoutesTest()
	rt.users.On("ValidateToken", mock.Anything, "expired").Return(nil, users.ErrUnauthorized)

	w := rt.do("GET", "/api/v1/tn/domains", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing bearer token")

	w = rt.do("GET", "/api/v1/tn/domains", "expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	rt.domains.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestSetupRoutes_IndexListsOwnDomains(t *testing.T) {
	rt := newRoutesTest()
	rt.users.On("ValidateToken", mock.Anything, "good").Return(&users.User{ID: 7, IsActive: true}, nil)
	rt.domains.On("List", mock.Anything, uint(7)).Return([]*domains.Domain{{ID: 1, Name: "tofunames.com"}}, nil)

	w := rt.do("GET", "/api/v1/tn/", "good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tofunames.com")
}

func TestSetupRoutes_DeleteContactReturnsNoContent(t *testing.T) {
	rt := newRoutesTest()
	rt.users.On("ValidateToken", mock.Anything, "good").Return(&users.User{ID: 7, IsActive: true}, nil)
	rt.contacts.On("DeleteByID", mock.Anything, uint(7), uint(2)).Return(nil)

	w := rt.do("DELETE", "/api/v1/tn/contacts/2", "good")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
