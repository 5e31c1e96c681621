package registrar

import "strings"

// DefaultRegistrationPeriod is the number of years a new domain is registered for
const DefaultRegistrationPeriod = 1

// MaxNameservers is the number of nameserver slots kept per domain
const MaxNameservers = 4

// ContactDetails are the fields sent to a registrar when creating a contact
type ContactDetails struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	Postal    string
	Country   string
	Phone     string
	Email     string
}

// ContactInfo is a contact as reported by the registrar
type ContactInfo struct {
	Handle string
	ContactDetails
}

// DomainRegistration is a request to register a domain. ContactHandle is used
// for the owner, admin, tech and billing roles.
type DomainRegistration struct {
	Name          string
	ContactHandle string
	Nameservers   []string
	PeriodYears   int
}

// Period returns the registration period, defaulting to one year
func (r DomainRegistration) Period() int {
	if r.PeriodYears <= 0 {
		return DefaultRegistrationPeriod
	}
	return r.PeriodYears
}

// DomainInfo is a domain as reported by the registrar
type DomainInfo struct {
	Name        string
	OwnerHandle string
	Nameservers []string
}

// Availability is the answer to a domain check
type Availability struct {
	Name      string
	Available bool
	Reason    string
}

// Result is the outcome of a provisioning call: the registrar side
// identifier and the raw response kept for diagnosis.
type Result struct {
	APIID string
	Raw   string
}

// ImportReport summarises a registrar import
type ImportReport struct {
	Listed   int
	Created  int
	Existing int
	Skipped  int
}

// MaxAPILogLength bounds the raw registrar response stored on entities
const MaxAPILogLength = 1000

// TruncateAPILog cuts raw to MaxAPILogLength runes
func TruncateAPILog(raw string) string {
	if len(raw) <= MaxAPILogLength {
		return raw
	}
	runes := []rune(raw)
	if len(runes) <= MaxAPILogLength {
		return raw
	}
	return string(runes[:MaxAPILogLength])
}

// LowerAll returns lower-cased copies of names with blanks removed
func LowerAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
