package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tofunames/tofunames/internal/domain/contacts"
	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/logger"
)

// contactService implements the ContactService interface
type contactService struct {
	contactRepo contacts.ContactRepository
	connector   registrar.Connector
	logger      logger.Logger
}

// NewContactService creates a new instance of ContactService
func NewContactService(contactRepo contacts.ContactRepository, connector registrar.Connector, logger logger.Logger) (contacts.ContactService, error) {
	if contactRepo == nil {
		return nil, errors.New("contact repository must not be nil")
	}
	if connector == nil {
		return nil, errors.New("registrar connector must not be nil")
	}
	return &contactService{
		contactRepo: contactRepo,
		connector:   connector,
		logger:      logger,
	}, nil
}

// Create stores the contact, creates it at the registrar and records the
// registrar handle. A registrar failure leaves the row with its APILog set.
func (s *contactService) Create(ctx context.Context, contact *contacts.Contact) (*contacts.Contact, error) {
	contact.ID = 0
	contact.APIID = ""
	contact.APILog = nil
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	result, err := s.connector.CreateContact(ctx, contact.Details())
	if err != nil {
		if apiErr, ok := registrar.AsAPIError(err); ok && apiErr.Raw != "" {
			contact.SetAPILog(apiErr.Raw)
			if updateErr := s.contactRepo.Update(ctx, contact); updateErr != nil {
				s.logger.Error("failed to store registrar response", "contact_id", contact.ID, "error", updateErr)
			}
		}
		s.logger.Warn("registrar rejected contact", "contact_id", contact.ID, "error", err)
		return nil, fmt.Errorf("failed to create contact at registrar: %w", err)
	}

	contact.APIID = result.APIID
	contact.SetAPILog(result.Raw)
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info("contact created", "contact_id", contact.ID, "api_id", contact.APIID)
	return contact, nil
}

// List returns the owner's contacts, newest first
func (s *contactService) List(ctx context.Context, ownerID uint) ([]*contacts.Contact, error) {
	return s.contactRepo.ListByOwner(ctx, ownerID)
}

// GetByID retrieves one of the owner's contacts
func (s *contactService) GetByID(ctx context.Context, ownerID, id uint) (*contacts.Contact, error) {
	return s.contactRepo.GetByID(ctx, ownerID, id)
}

// DeleteByID deletes one of the owner's contacts unless a domain uses it
func (s *contactService) DeleteByID(ctx context.Context, ownerID, id uint) error {
	if err := s.contactRepo.DeleteByID(ctx, ownerID, id); err != nil {
		return err
	}
	s.logger.Info("contact deleted", "contact_id", id)
	return nil
}

// ImportFromRegistrar creates local rows for registrar contacts the owner does
// not have yet. Running it twice creates nothing the second time.
func (s *contactService) ImportFromRegistrar(ctx context.Context, ownerID uint) (*registrar.ImportReport, error) {
	handles, err := s.connector.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrar contacts: %w", err)
	}

	handles = uniqueHandles(handles)
	report := &registrar.ImportReport{Listed: len(handles)}

	var missing []string
	for _, handle := range handles {
		_, err := s.contactRepo.GetByAPIID(ctx, ownerID, handle)
		switch {
		case err == nil:
			report.Existing++
		case errors.Is(err, contacts.ErrNotFound):
			missing = append(missing, handle)
		default:
			return nil, err
		}
	}

	infos, err := fetchAll(ctx, missing, s.connector.ContactInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrar contact: %w", err)
	}

	for _, info := range infos {
		contact := contacts.FromRegistrar(ownerID, info)
		if err := contact.Validate(); err != nil {
			s.logger.Warn("skipping registrar contact", "api_id", info.Handle, "error", err)
			report.Skipped++
			continue
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, err
		}
		report.Created++
	}

	s.logger.Info("contacts imported", "owner_id", ownerID, "created", report.Created, "existing", report.Existing, "skipped", report.Skipped)
	return report, nil
}

// uniqueHandles drops blank and repeated handles, keeping first occurrence order
func uniqueHandles(handles []string) []string {
	seen := make(map[string]struct{}, len(handles))
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
