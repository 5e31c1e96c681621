//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDomainName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "example.com", "example.com"},
		{"upper case", "Example.COM", "example.com"},
		{"surrounding space", "  tofunames.net ", "tofunames.net"},
		{"trailing dot", "example.org.", "example.org"},
		{"subdomain", "ns1.example.com", "ns1.example.com"},
		{"unicode", "münchen.de", "xn--mnchen-3ya.de"},
		{"punycode kept", "xn--mnchen-3ya.de", "xn--mnchen-3ya.de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDomainName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDomainName_Invalid(t *testing.T) {
	longLabel := strings.Repeat("a", 64)
	longName := strings.Repeat(strings.Repeat("a", 60)+".", 5) + "com"

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyDomainName},
		{"blank", "   ", ErrEmptyDomainName},
		{"no tld", "localhost", ErrMissingTLD},
		{"label too long", longLabel + ".com", ErrLabelLength},
		{"name too long", longName, ErrDomainNameTooLong},
		{"numeric tld", "example.123", ErrNumericTLD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeDomainName(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeDomainName_RejectsIllegalCharacters(t *testing.T) {
	for _, input := range []string{"exa_mple.com", "exa mple.com", "-example.com", "example-.com"} {
		_, err := NormalizeDomainName(input)
		assert.Error(t, err, input)
	}
}

func TestNormalizeNameservers(t *testing.T) {
	got, err := NormalizeNameservers([]string{"NS1.Example.com", "", "  ", "ns2.example.com."})
	require.NoError(t, err)
	assert.Equal(t, []string{"ns1.example.com", "ns2.example.com"}, got)

	_, err = NormalizeNameservers([]string{"ns1.example.com", "bad_host.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_host.example.com")
}
