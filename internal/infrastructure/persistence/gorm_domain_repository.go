package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence/models"
	"github.com/tofunames/tofunames/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDomainRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDomainRepository creates a new GORM-based DomainRepository implementation
func NewGormDomainRepository(db *gorm.DB, logger logger.Logger) (domains.DomainRepository, error) {
	return &gormDomainRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDomainRepository) Create(ctx context.Context, domain *domains.Domain) error {
	if err := domain.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DomainModel{}
	model.FromDomain(domain)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%s: %w", domain.Name, domains.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create domain: %w", err)
	}

	domain.ID = model.ID
	domain.CreatedAt = model.CreatedAt
	domain.UpdatedAt = model.UpdatedAt

	r.logger.Info("Created domain ", domain.Name, " with id ", domain.ID)
	return nil
}

func (r *gormDomainRepository) Update(ctx context.Context, domain *domains.Domain) error {
	if err := domain.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DomainModel{}
	model.FromDomain(domain)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update domain: %w", err)
	}

	domain.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated domain with id ", domain.ID)
	return nil
}

func (r *gormDomainRepository) GetByID(ctx context.Context, ownerID, id uint) (*domains.Domain, error) {
	var model models.DomainModel
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("domain with ID %d: %w", id, domains.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch domain: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDomainRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DomainModel{}).Where("domain_name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count domains: %w", err)
	}
	return count > 0, nil
}

func (r *gormDomainRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*domains.Domain, error) {
	return r.list(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *gormDomainRepository) ListAll(ctx context.Context) ([]*domains.Domain, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *gormDomainRepository) list(query *gorm.DB) ([]*domains.Domain, error) {
	var modelList []*models.DomainModel
	if err := query.Order("created_at DESC, id DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch domains: %w", err)
	}

	domainList := make([]*domains.Domain, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormDomainRepository) CountByContact(ctx context.Context, contactID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DomainModel{}).Where("contact_id = ?", contactID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count domains: %w", err)
	}
	return count, nil
}
