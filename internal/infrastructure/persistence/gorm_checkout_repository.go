package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/checkouts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence/models"
	"github.com/tofunames/tofunames/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCheckoutRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCheckoutRepository creates a new GORM-based CheckoutRepository implementation
func NewGormCheckoutRepository(db *gorm.DB, logger logger.Logger) (checkouts.CheckoutRepository, error) {
	return &gormCheckoutRepository{
		db:     db,
		logger: logger,
	}, nil
}

// ownedBy restricts a checkout query to checkouts of the owner's domains
func (r *gormCheckoutRepository) ownedBy(ctx context.Context, ownerID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.CheckoutModel{}).
		Select("checkouts.*").
		Joins("JOIN domains ON domains.id = checkouts.domain_id").
		Where("domains.owner_id = ?", ownerID)
}

func (r *gormCheckoutRepository) Create(ctx context.Context, checkout *checkouts.Checkout) error {
	if err := checkout.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CheckoutModel{}
	model.FromDomain(checkout)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create checkout: %w", err)
	}

	checkout.ID = model.ID
	checkout.CreatedAt = model.CreatedAt
	checkout.UpdatedAt = model.UpdatedAt

	r.logger.Info("Created checkout ", checkout.Reference, " for domain id ", checkout.DomainID)
	return nil
}

func (r *gormCheckoutRepository) GetByID(ctx context.Context, ownerID, id uint) (*checkouts.Checkout, error) {
	var model models.CheckoutModel
	if err := r.ownedBy(ctx, ownerID).Where("checkouts.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checkout with ID %d: %w", id, checkouts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch checkout: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCheckoutRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*checkouts.Checkout, error) {
	var modelList []*models.CheckoutModel
	if err := r.ownedBy(ctx, ownerID).Order("checkouts.created_at DESC, checkouts.id DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch checkouts: %w", err)
	}

	domainList := make([]*checkouts.Checkout, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCheckoutRepository) UpdateStatus(ctx context.Context, checkout *checkouts.Checkout) error {
	if err := checkout.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.CheckoutModel{ID: checkout.ID}).
		Update("status", string(checkout.Status))
	if result.Error != nil {
		return fmt.Errorf("failed to update checkout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("checkout with ID %d: %w", checkout.ID, checkouts.ErrNotFound)
	}

	r.logger.Info("checkout status changed", "reference", checkout.Reference, "status", string(checkout.Status))
	return nil
}

func (r *gormCheckoutRepository) MarkSucceeded(ctx context.Context, checkout *checkouts.Checkout) error {
	if checkout.Status != checkouts.StatusSucceeded {
		return fmt.Errorf("checkout %d is %s, not succeeded", checkout.ID, checkout.Status)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CheckoutModel{ID: checkout.ID}).Update("status", string(checkout.Status))
		if result.Error != nil {
			return fmt.Errorf("failed to update checkout: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("checkout with ID %d: %w", checkout.ID, checkouts.ErrNotFound)
		}

		result = tx.Model(&models.DomainModel{ID: checkout.DomainID}).Update("pending", false)
		if result.Error != nil {
			return fmt.Errorf("failed to activate domain: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("domain with ID %d: %w", checkout.DomainID, domains.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("checkout succeeded", "reference", checkout.Reference, "domain_id", checkout.DomainID)
	return nil
}
