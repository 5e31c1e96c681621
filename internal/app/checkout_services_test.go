//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/testutil"
)

type CheckoutServiceTest struct {
	checkoutRepo *MockCheckoutRepository
	domainRepo   *MockDomainRepository
	service      checkouts.CheckoutService
}

func NewCheckoutServiceTest(t *testing.T) *CheckoutServiceTest {
	t.Helper()
	checkoutRepo := new(MockCheckoutRepository)
	domainRepo := new(MockDomainRepository)
	service, err := NewCheckoutService(checkoutRepo, domainRepo, &config.CheckoutSettings{PriceCents: 1500, Currency: "EUR"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return &CheckoutServiceTest{checkoutRepo: checkoutRepo, domainRepo: domainRepo, service: service}
}

func TestNewCheckoutService_InvalidSettings(t *testing.T) {
	_, err := NewCheckoutService(new(MockCheckoutRepository), new(MockDomainRepository), &config.CheckoutSettings{PriceCents: 1500, Currency: "eur"}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestCheckoutService_Start(t *testing.T) {
	ct := NewCheckoutServiceTest(t)
	ctx := context.Background()

	ct.domainRepo.On("GetByID", ctx, uint(1), uint(3)).Return(&domains.Domain{ID: 3, OwnerID: 1, Pending: true}, nil)
	ct.checkoutRepo.On("Create", ctx, mock.Anything).Return(nil)

	checkout, err := ct.service.Start(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), checkout.DomainID)
	assert.Equal(t, checkouts.StatusPending, checkout.Status)
	assert.Equal(t, int64(1500), checkout.AmountCents)
	assert.Equal(t, "EUR", checkout.Currency)
	_, err = uuid.Parse(checkout.Reference)
	assert.NoError(t, err)
}

func TestCheckoutService_Start_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("active domain", func(t *testing.T) {
		ct := NewCheckoutServiceTest(t)
		ct.domainRepo.On("GetByID", ctx, uint(1), uint(3)).Return(&domains.Domain{ID: 3, Pending: false}, nil)
		_, err := ct.service.Start(ctx, 1, 3)
		assert.ErrorIs(t, err, domains.ErrNotPending)
	})

	t.Run("foreign domain", func(t *testing.T) {
		ct := NewCheckoutServiceTest(t)
		ct.domainRepo.On("GetByID", ctx, uint(2), uint(3)).Return(nil, domains.ErrNotFound)
		_, err := ct.service.Start(ctx, 2, 3)
		assert.ErrorIs(t, err, domains.ErrNotFound)
		ct.checkoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCheckoutService_Succeed(t *testing.T) {
	ct := NewCheckoutServiceTest(t)
	ctx := context.Background()

	checkout := &checkouts.Checkout{ID: 4, DomainID: 3, Status: checkouts.StatusFailed}
	ct.checkoutRepo.On("GetByID", ctx, uint(1), uint(4)).Return(checkout, nil)
	ct.checkoutRepo.On("MarkSucceeded", ctx, checkout).Return(nil).Once()

	got, err := ct.service.Succeed(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, checkouts.StatusSucceeded, got.Status)

	got, err = ct.service.Succeed(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, checkouts.StatusSucceeded, got.Status)
	ct.checkoutRepo.AssertNumberOfCalls(t, "MarkSucceeded", 1)
}

func TestCheckoutService_Fail(t *testing.T) {
	ctx := context.Background()

	t.Run("pending", func(t *testing.T) {
		ct := NewCheckoutServiceTest(t)
		checkout := &checkouts.Checkout{ID: 4, Status: checkouts.StatusPending}
		ct.checkoutRepo.On("GetByID", ctx, uint(1), uint(4)).Return(checkout, nil)
		ct.checkoutRepo.On("UpdateStatus", ctx, checkout).Return(nil)

		got, err := ct.service.Fail(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, checkouts.StatusFailed, got.Status)
	})

	t.Run("already failed", func(t *testing.T) {
		ct := NewCheckoutServiceTest(t)
		ct.checkoutRepo.On("GetByID", ctx, uint(1), uint(4)).Return(&checkouts.Checkout{ID: 4, Status: checkouts.StatusFailed}, nil)

		_, err := ct.service.Fail(ctx, 1, 4)
		require.NoError(t, err)
		ct.checkoutRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("succeeded", func(t *testing.T) {
		ct := NewCheckoutServiceTest(t)
		ct.checkoutRepo.On("GetByID", ctx, uint(1), uint(4)).Return(&checkouts.Checkout{ID: 4, Status: checkouts.StatusSucceeded}, nil)

		_, err := ct.service.Fail(ctx, 1, 4)
		assert.ErrorIs(t, err, checkouts.ErrAlreadySucceeded)
	})
}
