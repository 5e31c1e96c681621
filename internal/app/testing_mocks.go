//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *contacts.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *contacts.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, ownerID, id uint) (*contacts.Contact, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactRepository) GetByAPIID(ctx context.Context, ownerID uint, apiID string) (*contacts.Contact, error) {
	args := m.Called(ctx, ownerID, apiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contacts.Contact), args.Error(1)
}

func (m *MockContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*contacts.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contacts.Contact), args.Error(1)
}

func (m *MockContactRepository) ListAll(ctx context.Context) ([]*contacts.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contacts.Contact), args.Error(1)
}

func (m *MockContactRepository) DeleteByID(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockDomainRepository is a mock implementation of DomainRepository
type MockDomainRepository struct {
	mock.Mock
}

func (m *MockDomainRepository) Create(ctx context.Context, domain *domains.Domain) error {
	args := m.Called(ctx, domain)
	return args.Error(0)
}

func (m *MockDomainRepository) Update(ctx context.Context, domain *domains.Domain) error {
	args := m.Called(ctx, domain)
	return args.Error(0)
}

func (m *MockDomainRepository) GetByID(ctx context.Context, ownerID, id uint) (*domains.Domain, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domains.Domain), args.Error(1)
}

func (m *MockDomainRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockDomainRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*domains.Domain, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domains.Domain), args.Error(1)
}

func (m *MockDomainRepository) ListAll(ctx context.Context) ([]*domains.Domain, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domains.Domain), args.Error(1)
}

func (m *MockDomainRepository) CountByContact(ctx context.Context, contactID uint) (int64, error) {
	args := m.Called(ctx, contactID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCheckoutRepository is a mock implementation of CheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) Create(ctx context.Context, checkout *checkouts.Checkout) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepository) GetByID(ctx context.Context, ownerID, id uint) (*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkouts.Checkout), args.Error(1)
}

func (m *MockCheckoutRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*checkouts.Checkout, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkouts.Checkout), args.Error(1)
}

func (m *MockCheckoutRepository) UpdateStatus(ctx context.Context, checkout *checkouts.Checkout) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepository) MarkSucceeded(ctx context.Context, checkout *checkouts.Checkout) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

// MockConnector is a mock implementation of the registrar Connector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) CreateContact(ctx context.Context, contact registrar.ContactDetails) (*registrar.Result, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.Result), args.Error(1)
}

func (m *MockConnector) RegisterDomain(ctx context.Context, registration registrar.DomainRegistration) (*registrar.Result, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.Result), args.Error(1)
}

func (m *MockConnector) ListContacts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConnector) ContactInfo(ctx context.Context, handle string) (*registrar.ContactInfo, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.ContactInfo), args.Error(1)
}

func (m *MockConnector) ListDomains(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConnector) DomainInfo(ctx context.Context, name string) (*registrar.DomainInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.DomainInfo), args.Error(1)
}

func (m *MockConnector) CheckDomain(ctx context.Context, name string) (*registrar.Availability, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrar.Availability), args.Error(1)
}

func (m *MockConnector) Name() string {
	return "mock"
}

func (m *MockConnector) Close(ctx context.Context) error {
	return nil
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
