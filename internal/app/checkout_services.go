package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/logger"
)

// checkoutService implements the CheckoutService interface
type checkoutService struct {
	checkoutRepo checkouts.CheckoutRepository
	domainRepo   domains.DomainRepository
	price        config.CheckoutSettings
	logger       logger.Logger
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(checkoutRepo checkouts.CheckoutRepository, domainRepo domains.DomainRepository, settings *config.CheckoutSettings, logger logger.Logger) (checkouts.CheckoutService, error) {
	if checkoutRepo == nil || domainRepo == nil {
		return nil, errors.New("checkout and domain repositories must not be nil")
	}
	if settings == nil {
		return nil, errors.New("checkout settings must not be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		domainRepo:   domainRepo,
		price:        *settings,
		logger:       logger,
	}, nil
}

// Start opens a checkout for one of the owner's pending domains
func (s *checkoutService) Start(ctx context.Context, ownerID, domainID uint) (*checkouts.Checkout, error) {
	domain, err := s.domainRepo.GetByID(ctx, ownerID, domainID)
	if err != nil {
		return nil, err
	}
	if !domain.Pending {
		return nil, domains.ErrNotPending
	}

	checkout := &checkouts.Checkout{
		DomainID:    domain.ID,
		Reference:   uuid.NewString(),
		Status:      checkouts.StatusPending,
		AmountCents: s.price.PriceCents,
		Currency:    s.price.Currency,
	}
	if err := s.checkoutRepo.Create(ctx, checkout); err != nil {
		return nil, fmt.Errorf("failed to start checkout: %w", err)
	}

	s.logger.Info("checkout started", "reference", checkout.Reference, "domain_id", domain.ID)
	return checkout, nil
}

// Succeed marks the checkout paid and activates its domain. Repeating it is a no-op.
func (s *checkoutService) Succeed(ctx context.Context, ownerID, checkoutID uint) (*checkouts.Checkout, error) {
	checkout, err := s.checkoutRepo.GetByID(ctx, ownerID, checkoutID)
	if err != nil {
		return nil, err
	}

	if !checkout.Succeed() {
		return checkout, nil
	}
	if err := s.checkoutRepo.MarkSucceeded(ctx, checkout); err != nil {
		return nil, err
	}

	s.logger.Info("checkout succeeded", "reference", checkout.Reference, "domain_id", checkout.DomainID)
	return checkout, nil
}

// Fail marks the checkout failed; the domain stays pending
func (s *checkoutService) Fail(ctx context.Context, ownerID, checkoutID uint) (*checkouts.Checkout, error) {
	checkout, err := s.checkoutRepo.GetByID(ctx, ownerID, checkoutID)
	if err != nil {
		return nil, err
	}

	changed, err := checkout.Fail()
	if err != nil {
		return nil, err
	}
	if !changed {
		return checkout, nil
	}
	if err := s.checkoutRepo.UpdateStatus(ctx, checkout); err != nil {
		return nil, err
	}

	s.logger.Info("checkout failed", "reference", checkout.Reference, "domain_id", checkout.DomainID)
	return checkout, nil
}

// List returns the owner's checkouts, newest first
func (s *checkoutService) List(ctx context.Context, ownerID uint) ([]*checkouts.Checkout, error) {
	return s.checkoutRepo.ListByOwner(ctx, ownerID)
}
