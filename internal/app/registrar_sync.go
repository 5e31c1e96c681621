package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// statusFetchLimit bounds the concurrent per-item registrar lookups during an import
const statusFetchLimit = 4

// fetchAll calls fetch for every key with at most statusFetchLimit calls in
// flight. Results keep the order of keys. The first error cancels the rest.
func fetchAll[T any](ctx context.Context, keys []string, fetch func(ctx context.Context, key string) (T, error)) ([]T, error) {
	results := make([]T, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statusFetchLimit)
	for i, key := range keys {
		g.Go(func() error {
			v, err := fetch(gctx, key)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// registrarSyncService implements the registrar SyncService interface
type registrarSyncService struct {
	contactService contacts.ContactService
	domainService  domains.DomainService
	logger         logger.Logger
}

// NewRegistrarSyncService creates a new instance of SyncService
func NewRegistrarSyncService(contactService contacts.ContactService, domainService domains.DomainService, logger logger.Logger) (registrar.SyncService, error) {
	if contactService == nil || domainService == nil {
		return nil, errors.New("contact and domain services must not be nil")
	}
	return &registrarSyncService{
		contactService: contactService,
		domainService:  domainService,
		logger:         logger,
	}, nil
}

// Sync imports contacts first so that imported domains can be linked to them
func (s *registrarSyncService) Sync(ctx context.Context, ownerID uint) (*registrar.ImportReport, *registrar.ImportReport, error) {
	contactReport, err := s.contactService.ImportFromRegistrar(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to import contacts: %w", err)
	}

	domainReport, err := s.domainService.ImportFromRegistrar(ctx, ownerID)
	if err != nil {
		return contactReport, nil, fmt.Errorf("failed to import domains: %w", err)
	}

	s.logger.Info("registrar sync finished",
		"owner_id", ownerID,
		"contacts_created", contactReport.Created,
		"domains_created", domainReport.Created,
	)
	return contactReport, domainReport, nil
}
