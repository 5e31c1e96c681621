//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/testutil"
)

type ContactServiceTest struct {
	repo      *MockContactRepository
	connector *MockConnector
	service   contacts.ContactService
}

func NewContactServiceTest(t *testing.T) *ContactServiceTest {
	t.Helper()
	repo := new(MockContactRepository)
	connector := new(MockConnector)
	service, err := NewContactService(repo, connector, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return &ContactServiceTest{repo: repo, connector: connector, service: service}
}

func newTestContact(ownerID uint) *contacts.Contact {
	return &contacts.Contact{
		OwnerID:   ownerID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Street:    "12 St James's Square",
		City:      "London",
		Postal:    "SW1Y 4JH",
		Country:   "GB",
		Phone:     "+44.2070000000",
		Email:     "ada@example.com",
	}
}

func TestContactService_Create(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()
	contact := newTestContact(1)

	ct.repo.On("Create", ctx, contact).Run(func(args mock.Arguments) {
		args.Get(1).(*contacts.Contact).ID = 11
	}).Return(nil)
	ct.connector.On("CreateContact", ctx, contact.Details()).
		Return(&registrar.Result{APIID: "P-ACX100", Raw: "[RESPONSE]\ncode = 200\n"}, nil)
	ct.repo.On("Update", ctx, contact).Return(nil)

	created, err := ct.service.Create(ctx, contact)
	require.NoError(t, err)
	assert.Equal(t, uint(11), created.ID)
	assert.Equal(t, "P-ACX100", created.APIID)
	require.NotNil(t, created.APILog)
	assert.Contains(t, *created.APILog, "code = 200")
	ct.repo.AssertExpectations(t)
	ct.connector.AssertExpectations(t)
}

func TestContactService_Create_RegistrarRejects(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()
	contact := newTestContact(1)

	apiErr := &registrar.APIError{Provider: "centralnic", Command: "AddContact", Code: 504, Description: "Missing required attribute", Raw: "[RESPONSE]\ncode = 504\n"}
	ct.repo.On("Create", ctx, contact).Return(nil)
	ct.connector.On("CreateContact", ctx, mock.Anything).Return(nil, apiErr)
	ct.repo.On("Update", ctx, mock.MatchedBy(func(c *contacts.Contact) bool {
		return c.APILog != nil && *c.APILog == apiErr.Raw && c.APIID == ""
	})).Return(nil)

	_, err := ct.service.Create(ctx, contact)
	require.Error(t, err)
	got, ok := registrar.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 504, got.Code)
	ct.repo.AssertExpectations(t)
}

func TestContactService_Create_TransportFailureKeepsNoLog(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()
	contact := newTestContact(1)

	ct.repo.On("Create", ctx, contact).Return(nil)
	ct.connector.On("CreateContact", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := ct.service.Create(ctx, contact)
	require.Error(t, err)
	ct.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestContactService_Create_Invalid(t *testing.T) {
	ct := NewContactServiceTest(t)
	contact := newTestContact(1)
	contact.Email = "nope"

	_, err := ct.service.Create(context.Background(), contact)
	require.Error(t, err)
	ct.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ct.connector.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
}

func TestContactService_ImportFromRegistrar(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()

	ct.connector.On("ListContacts", ctx).Return([]string{"P-OLD", "P-NEW", "P-BAD"}, nil)
	ct.repo.On("GetByAPIID", ctx, uint(1), "P-OLD").Return(&contacts.Contact{ID: 3, APIID: "P-OLD"}, nil)
	ct.repo.On("GetByAPIID", ctx, uint(1), "P-NEW").Return(nil, contacts.ErrNotFound)
	ct.repo.On("GetByAPIID", ctx, uint(1), "P-BAD").Return(nil, contacts.ErrNotFound)

	good := newTestContact(1).Details()
	ct.connector.On("ContactInfo", mock.Anything, "P-NEW").Return(&registrar.ContactInfo{Handle: "P-NEW", ContactDetails: good}, nil)
	ct.connector.On("ContactInfo", mock.Anything, "P-BAD").Return(&registrar.ContactInfo{Handle: "P-BAD"}, nil)

	ct.repo.On("Create", ctx, mock.MatchedBy(func(c *contacts.Contact) bool {
		return c.APIID == "P-NEW" && c.OwnerID == 1 && c.FirstName == "Ada"
	})).Return(nil).Once()

	report, err := ct.service.ImportFromRegistrar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &registrar.ImportReport{Listed: 3, Created: 1, Existing: 1, Skipped: 1}, report)
	ct.repo.AssertExpectations(t)
}

func TestContactService_ImportFromRegistrar_FetchError(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()

	ct.connector.On("ListContacts", ctx).Return([]string{"P-NEW"}, nil)
	ct.repo.On("GetByAPIID", ctx, uint(1), "P-NEW").Return(nil, contacts.ErrNotFound)
	ct.connector.On("ContactInfo", mock.Anything, "P-NEW").Return(nil, &registrar.APIError{Code: 545})

	_, err := ct.service.ImportFromRegistrar(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P-NEW")
	ct.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_ImportFromRegistrar_DuplicateHandles(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()

	ct.connector.On("ListContacts", ctx).Return([]string{"P-1", " P-1", "", "P-1"}, nil)
	ct.repo.On("GetByAPIID", ctx, uint(1), "P-1").Return(nil, contacts.ErrNotFound).Once()
	ct.connector.On("ContactInfo", mock.Anything, "P-1").Return(&registrar.ContactInfo{Handle: "P-1", ContactDetails: newTestContact(1).Details()}, nil).Once()
	ct.repo.On("Create", ctx, mock.MatchedBy(func(c *contacts.Contact) bool {
		return c.APIID == "P-1"
	})).Return(nil).Once()

	report, err := ct.service.ImportFromRegistrar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &registrar.ImportReport{Listed: 1, Created: 1}, report)
	ct.repo.AssertNumberOfCalls(t, "Create", 1)
	ct.connector.AssertNumberOfCalls(t, "ContactInfo", 1)
}

func TestContactService_DelegatesToRepository(t *testing.T) {
	ct := NewContactServiceTest(t)
	ctx := context.Background()

	ct.repo.On("ListByOwner", ctx, uint(1)).Return([]*contacts.Contact{{ID: 2}}, nil)
	ct.repo.On("GetByID", ctx, uint(1), uint(2)).Return(nil, contacts.ErrNotFound)
	ct.repo.On("DeleteByID", ctx, uint(1), uint(2)).Return(contacts.ErrInUse)

	list, err := ct.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = ct.service.GetByID(ctx, 1, 2)
	assert.ErrorIs(t, err, contacts.ErrNotFound)

	assert.ErrorIs(t, ct.service.DeleteByID(ctx, 1, 2), contacts.ErrInUse)
}
