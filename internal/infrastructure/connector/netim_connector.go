package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tofunames/tofunames/internal/domain/registrar"
	"github.com/tofunames/tofunames/internal/pkg/config"
	"github.com/tofunames/tofunames/internal/pkg/logger"
	"github.com/tofunames/tofunames/internal/pkg/metrics"
)

// NetimProvider is the provider name reported by the Netim connector
const NetimProvider = "netim"

const netimUnknownError = "Unknown error"

// netimConnector keeps one API session open and shares it between callers.
// A 401 on any call drops the session so the next call opens a new one.
type netimConnector struct {
	endpoint string
	userID   string
	secret   string
	language string
	client   *http.Client
	metrics  *metrics.RegistrarMetrics
	logger   logger.Logger

	mu    sync.Mutex
	token string
}

// NewNetimConnector creates a connector for the Netim REST API
func NewNetimConnector(settings *config.NetimSettings, timeout time.Duration, m *metrics.RegistrarMetrics, logger logger.Logger) (registrar.Connector, error) {
	if _, err := url.Parse(settings.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid netim endpoint: %w", err)
	}
	language := strings.ToUpper(settings.Language)
	if language == "" {
		language = "EN"
	}

	return &netimConnector{
		endpoint: strings.TrimSuffix(settings.Endpoint, "/"),
		userID:   settings.UserID,
		secret:   settings.Secret,
		language: language,
		client:   &http.Client{Timeout: timeout},
		metrics:  m,
		logger:   logger,
	}, nil
}

func (c *netimConnector) Name() string {
	return NetimProvider
}

type netimContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BodyForm  string `json:"bodyForm,omitempty"`
	Address1  string `json:"address1"`
	ZipCode   string `json:"zipCode"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Language  string `json:"language,omitempty"`
	IsOwner   int    `json:"isOwner"`
}

type netimContactListItem struct {
	IDContact string `json:"idContact"`
}

type netimDomainInfo struct {
	Domain  string   `json:"domain"`
	IDOwner string   `json:"idOwner"`
	NS      []string `json:"ns"`
}

type netimDomainListItem struct {
	Domain string `json:"domain"`
}

type netimCheckResult struct {
	Domain string `json:"domain"`
	Result string `json:"result"`
	Reason string `json:"reason"`
}

type netimOperation struct {
	OperationID json.Number `json:"operation_id"`
	Status      string      `json:"STATUS"`
	Message     string      `json:"MESSAGE"`
}

func (c *netimConnector) CreateContact(ctx context.Context, contact registrar.ContactDetails) (*registrar.Result, error) {
	body := map[string]interface{}{
		"contact": netimContact{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			BodyForm:  "IND",
			Address1:  contact.Street,
			ZipCode:   contact.Postal,
			City:      contact.City,
			Country:   contact.Country,
			Phone:     contact.Phone,
			Email:     contact.Email,
			Language:  c.language,
			IsOwner:   1,
		},
	}

	var id string
	raw, err := c.call(ctx, "contact.create", http.MethodPost, "contact/", body, &id)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &registrar.APIError{Provider: NetimProvider, Command: "contact.create", Description: "missing contact id", Raw: raw, Cause: registrar.ErrUnexpectedResponse}
	}

	c.logger.Info("created contact", "provider", NetimProvider, "handle", id)
	return &registrar.Result{APIID: id, Raw: raw}, nil
}

func (c *netimConnector) RegisterDomain(ctx context.Context, reg registrar.DomainRegistration) (*registrar.Result, error) {
	name := strings.ToLower(reg.Name)
	body := map[string]interface{}{
		"idOwner":   reg.ContactHandle,
		"idAdmin":   reg.ContactHandle,
		"idTech":    reg.ContactHandle,
		"idBilling": reg.ContactHandle,
		"duration":  reg.Period(),
	}
	for i := 0; i < 5; i++ {
		ns := ""
		if i < len(reg.Nameservers) && i < registrar.MaxNameservers {
			ns = reg.Nameservers[i]
		}
		body["ns"+strconv.Itoa(i+1)] = ns
	}

	resource := "domain/" + url.PathEscape(name) + "/"
	var op netimOperation
	raw, err := c.call(ctx, "domain.create", http.MethodPost, resource, body, &op)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(op.Status, "Failed") {
		return nil, &registrar.APIError{Provider: NetimProvider, Command: "domain.create", Description: op.Message, Raw: raw}
	}

	c.logger.Info("registered domain", "provider", NetimProvider, "domain", name, "status", op.Status)
	return &registrar.Result{APIID: op.OperationID.String(), Raw: raw}, nil
}

func (c *netimConnector) ListContacts(ctx context.Context) ([]string, error) {
	var items []netimContactListItem
	if _, err := c.call(ctx, "contacts.list", http.MethodGet, "contacts/", nil, &items); err != nil {
		return nil, err
	}

	handles := make([]string, 0, len(items))
	for _, item := range items {
		if item.IDContact != "" {
			handles = append(handles, item.IDContact)
		}
	}
	return handles, nil
}

func (c *netimConnector) ContactInfo(ctx context.Context, handle string) (*registrar.ContactInfo, error) {
	var contact netimContact
	if _, err := c.call(ctx, "contact.info", http.MethodGet, "contact/"+url.PathEscape(handle), nil, &contact); err != nil {
		return nil, err
	}

	return &registrar.ContactInfo{
		Handle: handle,
		ContactDetails: registrar.ContactDetails{
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Street:    contact.Address1,
			City:      contact.City,
			Postal:    contact.ZipCode,
			Country:   contact.Country,
			Phone:     contact.Phone,
			Email:     contact.Email,
		},
	}, nil
}

func (c *netimConnector) ListDomains(ctx context.Context) ([]string, error) {
	var items []netimDomainListItem
	if _, err := c.call(ctx, "domains.list", http.MethodGet, "domains/", nil, &items); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Domain != "" {
			names = append(names, strings.ToLower(item.Domain))
		}
	}
	return names, nil
}

func (c *netimConnector) DomainInfo(ctx context.Context, name string) (*registrar.DomainInfo, error) {
	name = strings.ToLower(name)

	var info netimDomainInfo
	if _, err := c.call(ctx, "domain.info", http.MethodGet, "domain/"+url.PathEscape(name)+"/info/", nil, &info); err != nil {
		return nil, err
	}

	domainName := strings.ToLower(info.Domain)
	if domainName == "" {
		domainName = name
	}

	return &registrar.DomainInfo{
		Name:        domainName,
		OwnerHandle: info.IDOwner,
		Nameservers: registrar.LowerAll(info.NS),
	}, nil
}

func (c *netimConnector) CheckDomain(ctx context.Context, name string) (*registrar.Availability, error) {
	name = strings.ToLower(name)
	resource := "domain/" + url.PathEscape(name) + "/check/"

	var results []netimCheckResult
	raw, err := c.call(ctx, "domain.check", http.MethodGet, resource, nil, &results)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &registrar.APIError{Provider: NetimProvider, Command: "domain.check", Description: "empty check result", Raw: raw, Cause: registrar.ErrUnexpectedResponse}
	}

	result := results[0]
	return &registrar.Availability{
		Name:      name,
		Available: strings.EqualFold(result.Result, "AVAILABLE"),
		Reason:    result.Reason,
	}, nil
}

// Close ends the session. A 401 means the session already expired and is not an error.
func (c *netimConnector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" {
		return nil
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint+"/session", nil)
	if err != nil {
		return fmt.Errorf("failed to build netim session close request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		c.metrics.Observe(NetimProvider, "session.close", metrics.OutcomeTransportError, start)
		return err
	}

	switch status {
	case http.StatusOK, http.StatusUnauthorized:
		c.token = ""
		c.metrics.Observe(NetimProvider, "session.close", metrics.OutcomeSuccess, start)
		c.logger.Info("closed netim session")
		return nil
	default:
		c.metrics.Observe(NetimProvider, "session.close", metrics.OutcomeRegistrarError, start)
		return c.apiError("session.close", status, body)
	}
}

// session returns the current session token, opening a session if none is held
func (c *netimConnector) session(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/session", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build netim session request: %w", err)
	}
	req.SetBasicAuth(c.userID, c.secret)
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		c.metrics.Observe(NetimProvider, "session.open", metrics.OutcomeTransportError, start)
		return "", err
	}
	if status != http.StatusOK {
		c.metrics.Observe(NetimProvider, "session.open", metrics.OutcomeRegistrarError, start)
		return "", c.apiError("session.open", status, body)
	}

	var session struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &session); err != nil || session.AccessToken == "" {
		c.metrics.Observe(NetimProvider, "session.open", metrics.OutcomeRegistrarError, start)
		return "", &registrar.APIError{Provider: NetimProvider, Command: "session.open", Description: netimUnknownError, Raw: string(body), Cause: registrar.ErrUnexpectedResponse}
	}

	c.metrics.Observe(NetimProvider, "session.open", metrics.OutcomeSuccess, start)
	c.token = session.AccessToken
	c.logger.Info("opened netim session")
	return c.token, nil
}

// dropSession forgets token unless another caller already replaced it
func (c *netimConnector) dropSession(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == token {
		c.token = ""
	}
}

// call performs an authenticated request and decodes the JSON reply into out.
// It returns the raw reply body. command labels metrics and errors.
func (c *netimConnector) call(ctx context.Context, command, method, resource string, params interface{}, out interface{}) (string, error) {
	token, err := c.session(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	var reader io.Reader
	if params != nil {
		payload, err := json.Marshal(params)
		if err != nil {
			return "", fmt.Errorf("failed to encode netim %s request: %w", resource, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+"/"+resource, reader)
	if err != nil {
		return "", fmt.Errorf("failed to build netim %s request: %w", resource, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		c.metrics.Observe(NetimProvider, command, metrics.OutcomeTransportError, start)
		return "", err
	}
	raw := string(body)

	if !json.Valid(body) {
		c.metrics.Observe(NetimProvider, command, metrics.OutcomeRegistrarError, start)
		if status == http.StatusUnauthorized {
			c.dropSession(token)
		}
		return raw, &registrar.APIError{Provider: NetimProvider, Command: command, Code: status, Description: netimUnknownError, Raw: raw, Cause: registrar.ErrUnexpectedResponse}
	}

	if status < 200 || status > 299 {
		if status == http.StatusUnauthorized {
			c.dropSession(token)
		}
		c.metrics.Observe(NetimProvider, command, metrics.OutcomeRegistrarError, start)
		return raw, c.apiError(command, status, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			c.metrics.Observe(NetimProvider, command, metrics.OutcomeRegistrarError, start)
			return raw, &registrar.APIError{Provider: NetimProvider, Command: command, Code: status, Description: err.Error(), Raw: raw, Cause: registrar.ErrUnexpectedResponse}
		}
	}

	c.metrics.Observe(NetimProvider, command, metrics.OutcomeSuccess, start)
	return raw, nil
}

func (c *netimConnector) do(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("netim %s %s request failed: %w", req.Method, req.URL.Path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read netim %s response: %w", req.URL.Path, err)
	}
	return resp.StatusCode, body, nil
}

// apiError builds an APIError from the "message" field of a JSON error body
func (c *netimConnector) apiError(command string, status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	description := netimUnknownError
	if err := json.Unmarshal(body, &payload); err == nil {
		description = payload.Message
	}
	return &registrar.APIError{
		Provider:    NetimProvider,
		Command:     command,
		Code:        status,
		Description: description,
		Raw:         string(body),
	}
}
