//go:build unit
// +build unit

package commands

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/app"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/domain/users"
	"github.com/tofunames/tofunames/internal/pkg/auth"
	"github.com/tofunames/tofunames/internal/pkg/testutil"
)

type commandsTest struct {
	env      *environment
	userRepo *app.MockUserRepository
	contacts *app.MockContactService
	domains  *app.MockDomainService
}

func newCommandsTest(t *testing.T) *commandsTest {
	log := testutil.SetupTestLogger(t)

	userRepo := new(app.MockUserRepository)
	signer, err := auth.NewTokenSigner("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	userService, err := app.NewUserService(userRepo, signer, log)
	require.NoError(t, err)

	ct := &commandsTest{
		userRepo: userRepo,
		contacts: new(app.MockContactService),
		domains:  new(app.MockDomainService),
	}
	syncService, err := app.NewRegistrarSyncService(ct.contacts, ct.domains, log)
	require.NoError(t, err)

	ct.env = &environment{
		logger:   log,
		users:    userService,
		contacts: ct.contacts,
		domains:  ct.domains,
		sync:     syncService,
	}
	return ct
}

func (ct *commandsTest) opener() environmentOpener {
	return func(*cobra.Command, bool) (*environment, error) {
		return ct.env, nil
	}
}

func newTestCommand(t *testing.T, owner string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.Flags().String("owner", owner, "")
	cmd.SetContext(t.Context())
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRegistrarCommands_CheckDomain(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &RegistrarCommandHandler{open: ct.opener()}

	ct.domains.On("CheckAvailability", mock.Anything, "free.com").Return(&domains.Availability{Name: "free.com", Available: true}, nil)
	ct.domains.On("CheckAvailability", mock.Anything, "tofunames.com").Return(&domains.Availability{Name: "tofunames.com", Reason: "Domain name not available"}, nil)
	ct.domains.On("CheckAvailability", mock.Anything, "bad").Return(nil, errors.New("boom"))

	cmd, out := newTestCommand(t, "")
	require.NoError(t, handler.CheckDomainCmd(cmd, []string{"free.com"}))
	assert.Equal(t, "free.com is available\n", out.String())

	cmd, out = newTestCommand(t, "")
	require.NoError(t, handler.CheckDomainCmd(cmd, []string{"tofunames.com"}))
	assert.Equal(t, "tofunames.com is taken (Domain name not available)\n", out.String())

	cmd, _ = newTestCommand(t, "")
	err := handler.CheckDomainCmd(cmd, []string{"bad"})
	assert.ErrorContains(t, err, "failed to check bad: boom")
}

func TestRegistrarCommands_PopulateContacts(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &RegistrarCommandHandler{open: ct.opener()}

	ct.userRepo.On("GetByUsername", mock.Anything, "admin").Return(&users.User{ID: 3, Username: "admin", IsActive: true}, nil)
	ct.contacts.On("ImportFromRegistrar", mock.Anything, uint(3)).Return(&registrar.ImportReport{Listed: 3, Created: 1, Existing: 1, Skipped: 1}, nil)

	cmd, out := newTestCommand(t, "admin")
	require.NoError(t, handler.PopulateContactsCmd(cmd, nil))
	assert.Equal(t, "contacts: 3 listed, 1 created, 1 already present, 1 skipped\n", out.String())
}

func TestRegistrarCommands_PopulateUnknownOwner(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &RegistrarCommandHandler{open: ct.opener()}

	ct.userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrNotFound)

	cmd, _ := newTestCommand(t, "ghost")
	err := handler.PopulateDomainsCmd(cmd, nil)
	assert.ErrorIs(t, err, users.ErrNotFound)
	ct.domains.AssertNotCalled(t, "ImportFromRegistrar", mock.Anything, mock.Anything)
}

func TestRegistrarCommands_PopulateAllStopsOnContactFailure(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &RegistrarCommandHandler{open: ct.opener()}

	ct.userRepo.On("GetByUsername", mock.Anything, "admin").Return(&users.User{ID: 3, Username: "admin", IsActive: true}, nil)
	ct.contacts.On("ImportFromRegistrar", mock.Anything, uint(3)).Return(nil, errors.New("registrar down"))

	cmd, _ := newTestCommand(t, "admin")
	err := handler.PopulateAllCmd(cmd, nil)
	assert.ErrorContains(t, err, "registrar down")
	ct.domains.AssertNotCalled(t, "ImportFromRegistrar", mock.Anything, mock.Anything)
}

func TestListCommands_Domains(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &ListCommandHandler{open: ct.opener()}

	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	ct.domains.On("ListAll", mock.Anything).Return([]*domains.Domain{
		{ID: 2, OwnerID: 3, ContactID: 4, Name: "tofunames.net", Pending: true, CreatedAt: created},
		{ID: 1, OwnerID: 3, ContactID: 4, Name: "tofunames.com", Nameservers: []string{"ns1.dnsimple.com", "ns2.dnsimple-edge.net"}, CreatedAt: created},
	}, nil)

	cmd, out := newTestCommand(t, "")
	require.NoError(t, handler.ListDomainsCmd(cmd, nil))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "NAMESERVERS")
	assert.Contains(t, string(lines[1]), "tofunames.net")
	assert.Contains(t, string(lines[1]), "true")
	assert.Contains(t, string(lines[2]), "ns1.dnsimple.com,ns2.dnsimple-edge.net")
	assert.Contains(t, string(lines[2]), "2024-05-01 12:30")
}

func TestUserCommands_List(t *testing.T) {
	ct := newCommandsTest(t)
	handler := &UserCommandHandler{open: ct.opener()}

	login := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	ct.userRepo.On("List", mock.Anything).Return([]*users.User{
		{ID: 2, Username: "ada", Email: "ada@example.com", IsActive: true, LastLogin: &login},
		{ID: 1, Username: "admin", Email: "admin@example.com", IsStaff: true, IsActive: true},
	}, nil)

	cmd, out := newTestCommand(t, "")
	require.NoError(t, handler.ListUsersCmd(cmd, nil))
	assert.Contains(t, out.String(), "2024-06-02 08:00")
	assert.Contains(t, out.String(), "admin@example.com")
}

func TestReadOnlyConnector(t *testing.T) {
	var conn registrar.Connector = readOnlyConnector{}

	_, err := conn.CheckDomain(t.Context(), "free.com")
	assert.ErrorIs(t, err, errRegistrarDisabled)
	_, err = conn.ListContacts(t.Context())
	assert.ErrorIs(t, err, errRegistrarDisabled)
	assert.NoError(t, conn.Close(t.Context()))
}
