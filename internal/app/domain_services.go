package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/domains"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/logger"
	"github.com/tofunames/tofunames/internal/pkg/validators"
)

// domainService implements the DomainService interface
type domainService struct {
	domainRepo  domains.DomainRepository
	contactRepo contacts.ContactRepository
	connector   registrar.Connector
	logger      logger.Logger
}

// NewDomainService creates a new instance of DomainService
func NewDomainService(domainRepo domains.DomainRepository, contactRepo contacts.ContactRepository, connector registrar.Connector, logger logger.Logger) (domains.DomainService, error) {
	if domainRepo == nil || contactRepo == nil {
		return nil, errors.New("domain and contact repositories must not be nil")
	}
	if connector == nil {
		return nil, errors.New("registrar connector must not be nil")
	}
	return &domainService{
		domainRepo:  domainRepo,
		contactRepo: contactRepo,
		connector:   connector,
		logger:      logger,
	}, nil
}

// Create registers the domain at the registrar and stores it as pending.
// Nothing is stored when the registrar refuses the registration.
func (s *domainService) Create(ctx context.Context, req *domains.CreateRequest) (*domains.Domain, error) {
	name, err := validators.NormalizeDomainName(req.Name)
	if err != nil {
		return nil, validators.NewValidationError("Name: " + err.Error())
	}
	nameservers, err := validators.NormalizeNameservers(req.Nameservers)
	if err != nil {
		return nil, validators.NewValidationError("Nameservers: " + err.Error())
	}
	if len(nameservers) > registrar.MaxNameservers {
		return nil, domains.ErrTooManyNameservers
	}

	contact, err := s.contactRepo.GetByID(ctx, req.OwnerID, req.ContactID)
	if err != nil {
		return nil, err
	}
	if !contact.IsRegistered() {
		return nil, domains.ErrContactNotRegistered
	}

	exists, err := s.domainRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", name, domains.ErrAlreadyExists)
	}

	domain := &domains.Domain{
		OwnerID:     req.OwnerID,
		ContactID:   contact.ID,
		Name:        name,
		Nameservers: nameservers,
		Pending:     true,
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	result, err := s.connector.RegisterDomain(ctx, registrar.DomainRegistration{
		Name:          name,
		ContactHandle: contact.APIID,
		Nameservers:   nameservers,
		PeriodYears:   registrar.DefaultRegistrationPeriod,
	})
	if err != nil {
		s.logger.Warn("registrar rejected domain", "domain", name, "error", err)
		return nil, fmt.Errorf("failed to register domain at registrar: %w", err)
	}

	domain.APIID = result.APIID
	domain.SetAPILog(result.Raw)
	if err := s.domainRepo.Create(ctx, domain); err != nil {
		s.logger.Error("registered domain could not be stored", "domain", name, "error", err)
		return nil, err
	}

	s.logger.Info("domain registered", "domain", domain.Name, "domain_id", domain.ID)
	return domain, nil
}

// List returns the owner's domains, newest first
func (s *domainService) List(ctx context.Context, ownerID uint) ([]*domains.Domain, error) {
	return s.domainRepo.ListByOwner(ctx, ownerID)
}

// ListAll returns every domain, newest first
func (s *domainService) ListAll(ctx context.Context) ([]*domains.Domain, error) {
	return s.domainRepo.ListAll(ctx)
}

// GetByID retrieves one of the owner's domains
func (s *domainService) GetByID(ctx context.Context, ownerID, id uint) (*domains.Domain, error) {
	return s.domainRepo.GetByID(ctx, ownerID, id)
}

// CheckAvailability asks the registrar whether name can be registered
func (s *domainService) CheckAvailability(ctx context.Context, name string) (*domains.Availability, error) {
	normalized, err := validators.NormalizeDomainName(name)
	if err != nil {
		return nil, validators.NewValidationError("Name: " + err.Error())
	}

	availability, err := s.connector.CheckDomain(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}

	return &domains.Availability{
		Name:      normalized,
		Available: availability.Available,
		Reason:    availability.Reason,
	}, nil
}

// ImportFromRegistrar creates local rows for registrar domains that are not
// stored yet. Domains whose owner contact is unknown locally are skipped.
func (s *domainService) ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error) {
	names, err := s.connector.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrar domains: %w", err)
	}
	names = uniqueHandles(registrar.LowerAll(names))

	report := &registrar.ImportReport{Listed: len(names)}

	var missing []string
	for _, name := range names {
		exists, err := s.domainRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			report.Existing++
			continue
		}
		missing = append(missing, name)
	}

	infos, err := fetchAll(ctx, missing, s.connector.DomainInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrar domain: %w", err)
	}

	for i, info := range infos {
		name := missing[i]

		if info.OwnerHandle == "" {
			s.logger.Warn("skipping domain without owner contact", "domain", name)
			report.Skipped++
			continue
		}

		contact, err := s.contactRepo.GetByAPIID(ctx, ownerID, info.OwnerHandle)
		if err != nil {
			if errors.Is(err, contacts.ErrNotFound) {
				s.logger.Warn("skipping domain without local contact", "domain", name, "owner_handle", info.OwnerHandle)
				report.Skipped++
				continue
			}
			return nil, err
		}

		nameservers := registrar.LowerAll(info.Nameservers)
		if len(nameservers) > registrar.MaxNameservers {
			nameservers = nameservers[:registrar.MaxNameservers]
		}

		domain := &domains.Domain{
			OwnerID:     ownerID,
			ContactID:   contact.ID,
			Name:        name,
			Nameservers: nameservers,
		}
		if err := domain.Validate(); err != nil {
			s.logger.Warn("skipping registrar domain", "domain", name, "error", err)
			report.Skipped++
			continue
		}
		if err := s.domainRepo.Create(ctx, domain); err != nil {
			return nil, err
		}
		report.Created++
	}

	s.logger.Info("domains imported", "owner_id", ownerID, "created", report.Created, "existing", report.Existing, "skipped", report.Skipped)
	return report, nil
}
