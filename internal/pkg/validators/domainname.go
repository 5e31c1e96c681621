package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/idna"
)

const (
	// MaxDomainNameLength is the DNS limit for a full name in presentation form
	MaxDomainNameLength = 253
	// MaxLabelLength is the DNS limit for a single label
	MaxLabelLength = 63
)

var (
	// ErrEmptyDomainName is returned for blank input
	ErrEmptyDomainName = errors.New("domain name is empty")
	// ErrMissingTLD is returned for single-label names
	ErrMissingTLD = errors.New("domain name has no top level domain")
	// ErrDomainNameTooLong is returned for names over 253 characters
	ErrDomainNameTooLong = errors.New("domain name is longer than 253 characters")
	// ErrLabelLength is returned for empty labels or labels over 63 characters
	ErrLabelLength = errors.New("domain label must be between 1 and 63 characters")
	// ErrNumericTLD is returned when the top level label is all digits
	ErrNumericTLD = errors.New("top level domain cannot be numeric")
)

// NormalizeDomainName converts a user supplied name to its lower-case ASCII
// (punycode) form and checks DNS length and label rules. A single trailing
// dot is accepted and dropped.
func NormalizeDomainName(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return "", ErrEmptyDomainName
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("invalid domain name %q: %w", name, err)
	}
	ascii = strings.ToLower(ascii)

	if len(ascii) > MaxDomainNameLength {
		return "", ErrDomainNameTooLong
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return "", ErrMissingTLD
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > MaxLabelLength {
			return "", ErrLabelLength
		}
	}
	if isNumeric(labels[len(labels)-1]) {
		return "", ErrNumericTLD
	}

	return ascii, nil
}

// NormalizeNameservers normalises each non-empty hostname and drops blanks,
// keeping the given order.
func NormalizeNameservers(hosts []string) ([]string, error) {
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if strings.TrimSpace(h) == "" {
			continue
		}
		n, err := NormalizeDomainName(h)
		if err != nil {
			return nil, fmt.Errorf("nameserver %q: %w", h, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// DomainNameValidation is the validator tag function for "domainname".
// The field must already be in normalised form.
func DomainNameValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	normalized, err := NormalizeDomainName(value)
	return err == nil && normalized == value
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
