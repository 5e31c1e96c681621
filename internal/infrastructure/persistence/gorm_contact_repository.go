package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/infrastructure/persistence/models"
	"github.com/tofunames/tofunames/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormContactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContactRepository creates a new GORM-based ContactRepository implementation
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (contacts.ContactRepository, error) {
	return &gormContactRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContactRepository) Create(ctx context.Context, contact *contacts.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactModel{}
	model.FromDomain(contact)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	contact.ID = model.ID
	contact.CreatedAt = model.CreatedAt
	contact.UpdatedAt = model.UpdatedAt

	r.logger.Info("Created contact with id ", contact.ID)
	return nil
}

func (r *gormContactRepository) Update(ctx context.Context, contact *contacts.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactModel{}
	model.FromDomain(contact)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	contact.UpdatedAt = model.UpdatedAt
	r.logger.Info("Updated contact with id ", contact.ID)
	return nil
}

func (r *gormContactRepository) GetByID(ctx context.Context, ownerID, id uint) (*contacts.Contact, error) {
	var model models.ContactModel
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with ID %d: %w", id, contacts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContactRepository) GetByAPIID(ctx context.Context, ownerID uint, apiID string) (*contacts.Contact, error) {
	// unregistered contacts carry an empty handle and must never match
	if apiID == "" {
		return nil, fmt.Errorf("empty contact handle: %w", contacts.ErrNotFound)
	}
	var model models.ContactModel
	err := r.db.WithContext(ctx).Where("api_id = ? AND owner_id = ?", apiID, ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact with handle %s: %w", apiID, contacts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*contacts.Contact, error) {
	return r.list(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *gormContactRepository) ListAll(ctx context.Context) ([]*contacts.Contact, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *gormContactRepository) list(query *gorm.DB) ([]*contacts.Contact, error) {
	var modelList []*models.ContactModel
	if err := query.Order("created_at DESC, id DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	domainList := make([]*contacts.Contact, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormContactRepository) DeleteByID(ctx context.Context, ownerID, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&models.DomainModel{}).Where("contact_id = ? AND owner_id = ?", id, ownerID).Count(&inUse).Error; err != nil {
			return fmt.Errorf("failed to count domains: %w", err)
		}
		if inUse > 0 {
			return contacts.ErrInUse
		}

		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.ContactModel{})
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
				return contacts.ErrInUse
			}
			return fmt.Errorf("failed to delete contact: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("contact with ID %d: %w", id, contacts.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted contact with id ", id)
	return nil
}
