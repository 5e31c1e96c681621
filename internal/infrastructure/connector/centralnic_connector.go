package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/logger"
	"github.com/tofunames/tofunames/internal/pkg/metrics"
)

// CentralNicProvider is the provider name reported by the CentralNic connector
const CentralNicProvider = "centralnic"

// RRPproxy CheckDomain result codes
const (
	rrpCodeDomainAvailable = 210
	rrpCodeDomainTaken     = 211
)

const maxResponseBytes = 1 << 20

type centralNicConnector struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	metrics  *metrics.RegistrarMetrics
	logger   logger.Logger
}

// NewCentralNicConnector creates a connector for the RRPproxy command API
func NewCentralNicConnector(settings *config.CentralNicSettings, timeout time.Duration, m *metrics.RegistrarMetrics, logger logger.Logger) (registrar.Connector, error) {
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultCentralNicURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid centralnic base url: %w", err)
	}

	return &centralNicConnector{
		baseURL:  baseURL,
		username: settings.Username,
		password: settings.Password,
		client:   &http.Client{Timeout: timeout},
		metrics:  m,
		logger:   logger,
	}, nil
}

func (c *centralNicConnector) Name() string {
	return CentralNicProvider
}

// Close is a no-op; RRPproxy calls are stateless
func (c *centralNicConnector) Close(_ context.Context) error {
	return nil
}

func (c *centralNicConnector) CreateContact(ctx context.Context, contact registrar.ContactDetails) (*registrar.Result, error) {
	params := url.Values{}
	params.Set("firstname", contact.FirstName)
	params.Set("lastname", contact.LastName)
	params.Set("street0", contact.Street)
	params.Set("city", contact.City)
	params.Set("zip", contact.Postal)
	params.Set("country", contact.Country)
	params.Set("phone", contact.Phone)
	params.Set("email", contact.Email)

	resp, err := c.command(ctx, "AddContact", params)
	if err != nil {
		return nil, err
	}

	handle := resp.First("contact")
	if handle == "" {
		return nil, c.unexpected("AddContact", "missing contact handle", resp.Raw)
	}

	c.logger.Info("created contact", "provider", CentralNicProvider, "handle", handle)
	return &registrar.Result{APIID: handle, Raw: resp.Raw}, nil
}

func (c *centralNicConnector) RegisterDomain(ctx context.Context, reg registrar.DomainRegistration) (*registrar.Result, error) {
	params := url.Values{}
	params.Set("domain", strings.ToLower(reg.Name))
	params.Set("period", strconv.Itoa(reg.Period()))
	params.Set("ownercontact0", reg.ContactHandle)
	params.Set("admincontact0", reg.ContactHandle)
	params.Set("techcontact0", reg.ContactHandle)
	params.Set("billingcontact0", reg.ContactHandle)
	for i, ns := range reg.Nameservers {
		if i >= registrar.MaxNameservers {
			break
		}
		params.Set(fmt.Sprintf("nameserver%d", i), ns)
	}

	resp, err := c.command(ctx, "AddDomain", params)
	if err != nil {
		return nil, err
	}

	c.logger.Info("registered domain", "provider", CentralNicProvider, "domain", reg.Name)
	return &registrar.Result{APIID: resp.First("roid"), Raw: resp.Raw}, nil
}

func (c *centralNicConnector) ListContacts(ctx context.Context) ([]string, error) {
	resp, err := c.command(ctx, "QueryContactList", nil)
	if err != nil {
		return nil, err
	}
	return nonEmpty(resp.Property("contact")), nil
}

func (c *centralNicConnector) ContactInfo(ctx context.Context, handle string) (*registrar.ContactInfo, error) {
	params := url.Values{}
	params.Set("contact", handle)

	resp, err := c.command(ctx, "StatusContact", params)
	if err != nil {
		return nil, err
	}

	return &registrar.ContactInfo{
		Handle: handle,
		ContactDetails: registrar.ContactDetails{
			FirstName: resp.First("first name"),
			LastName:  resp.First("last name"),
			Email:     resp.First("email"),
			Phone:     resp.First("phone"),
			Street:    resp.First("street"),
			City:      resp.First("city"),
			Postal:    resp.First("zip"),
			Country:   resp.First("country"),
		},
	}, nil
}

func (c *centralNicConnector) ListDomains(ctx context.Context) ([]string, error) {
	resp, err := c.command(ctx, "QueryDomainList", nil)
	if err != nil {
		return nil, err
	}
	return nonEmpty(resp.Property("domain")), nil
}

func (c *centralNicConnector) DomainInfo(ctx context.Context, name string) (*registrar.DomainInfo, error) {
	params := url.Values{}
	params.Set("domain", strings.ToLower(name))

	resp, err := c.command(ctx, "StatusDomain", params)
	if err != nil {
		return nil, err
	}

	domainName := resp.First("domain")
	if domainName == "" {
		domainName = name
	}

	return &registrar.DomainInfo{
		Name:        strings.ToLower(domainName),
		OwnerHandle: resp.First("owner contact"),
		Nameservers: registrar.LowerAll(resp.Property("nameserver")),
	}, nil
}

func (c *centralNicConnector) CheckDomain(ctx context.Context, name string) (*registrar.Availability, error) {
	params := url.Values{}
	params.Set("domain", strings.ToLower(name))

	resp, err := c.command(ctx, "CheckDomain", params)
	if err != nil {
		return nil, err
	}

	return &registrar.Availability{
		Name:      strings.ToLower(name),
		Available: resp.Code == rrpCodeDomainAvailable,
		Reason:    resp.Description,
	}, nil
}

// command runs an RRPproxy command and returns the parsed reply. Non-2xx
// result codes are returned as *registrar.APIError.
func (c *centralNicConnector) command(ctx context.Context, command string, params url.Values) (*rrpResponse, error) {
	start := time.Now()

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("s_login", c.username)
	query.Set("s_pw", c.password)
	query.Set("command", command)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build centralnic %s request: %w", command, err)
	}

	httpResp, err := c.client.Do(req)
	if err != nil {
		c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeTransportError, start)
		return nil, fmt.Errorf("centralnic %s request failed: %w", command, err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeTransportError, start)
		return nil, fmt.Errorf("failed to read centralnic %s response: %w", command, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeTransportError, start)
		return nil, fmt.Errorf("centralnic API for %s failed: HTTP status %d", command, httpResp.StatusCode)
	}

	raw := string(body)
	resp, err := parseRRPResponse(raw)
	if err != nil {
		c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeRegistrarError, start)
		return nil, &registrar.APIError{
			Provider:    CentralNicProvider,
			Command:     command,
			Description: err.Error(),
			Raw:         raw,
			Cause:       registrar.ErrUnexpectedResponse,
		}
	}

	if !resp.Success() {
		c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeRegistrarError, start)
		c.logger.Warn("centralnic command rejected", "command", command, "code", resp.Code, "description", resp.Description)
		return nil, &registrar.APIError{
			Provider:    CentralNicProvider,
			Command:     command,
			Code:        resp.Code,
			Description: resp.Description,
			Raw:         raw,
		}
	}

	c.metrics.Observe(CentralNicProvider, command, metrics.OutcomeSuccess, start)
	return resp, nil
}

func (c *centralNicConnector) unexpected(command, description, raw string) error {
	return &registrar.APIError{
		Provider:    CentralNicProvider,
		Command:     command,
		Description: description,
		Raw:         raw,
		Cause:       registrar.ErrUnexpectedResponse,
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
