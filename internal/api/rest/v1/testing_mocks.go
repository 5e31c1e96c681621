//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, email, password string) (*users.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) CreateStaff(ctx context.Context, username, email, password string) (*users.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*users.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockUserService) ValidateToken(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Create(ctx context.Context, contact *contacts.Contact) (*contacts.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, ownerID uint) ([]*contacts.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contacts.Contact), args.Error(1)
}

func (m *MockContactService) GetByID(ctx context.Context, ownerID, id uint) (*contacts.Contact, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactService) DeleteByID(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockContactService) ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.ImportReport), args.Error(1)
}

// MockDomainService is a mock implementation of DomainService
type MockDomainService struct {
	mock.Mock
}

func (m *MockDomainService) Create(ctx context.Context, req *domains.CreateRequest) (*domains.Domain, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domains.Domain), args.Error(1)
}

func (m *MockDomainService) List(ctx context.Context, ownerID uint) ([]*domains.Domain, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domains.Domain), args.Error(1)
}

func (m *MockDomainService) ListAll(ctx context.Context) ([]*domains.Domain, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domains.Domain), args.Error(1)
}

func (m *MockDomainService) GetByID(ctx context.Context, ownerID, id uint) (*domains.Domain, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domains.Domain), args.Error(1)
}

func (m *MockDomainService) CheckAvailability(ctx context.Context, name string) (*domains.Availability, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domains.Availability), args.Error(1)
}

func (m *MockDomainService) ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.ImportReport), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Start(ctx context.Context, ownerID, domainID uint) (*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkouts.Checkout), args.Error(1)
}

func (m *MockCheckoutService) Succeed(ctx context.Context, ownerID, checkoutID uint) (*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkouts.Checkout), args.Error(1)
}

func (m *MockCheckoutService) Fail(ctx context.Context, ownerID, checkoutID uint) (*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkouts.Checkout), args.Error(1)
}

func (m *MockCheckoutService) List(ctx context.Context, ownerID uint) ([]*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkouts.Checkout), args.Error(1)
}
