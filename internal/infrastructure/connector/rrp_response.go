package connector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tofunames/tofunames/internal/domain/registrar"
)

const rrpHeader = "[RESPONSE]"

// rrpResponse is a parsed RRPproxy reply:
//
//	[RESPONSE]
//	code = 200
//	description = Command completed successfully
//	property[contact][0] = P-ACX100
//	EOF
type rrpResponse struct {
	Code        int
	Description string
	Raw         string

	fields     map[string]string
	properties map[string][]string
}

// parseRRPResponse reads the key = value lines of a reply. Lines are looked
// up by key, so missing or reordered lines never shift other values.
func parseRRPResponse(raw string) (*rrpResponse, error) {
	resp := &rrpResponse{
		Raw:        raw,
		fields:     map[string]string{},
		properties: map[string][]string{},
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) || strings.TrimSpace(lines[start]) != rrpHeader {
		return nil, fmt.Errorf("missing %s header: %w", rrpHeader, registrar.ErrUnexpectedResponse)
	}

	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if line == "EOF" {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if name, index, ok := parsePropertyKey(key); ok {
			resp.setProperty(name, index, value)
			continue
		}
		resp.fields[key] = value
	}

	codeText, ok := resp.fields["code"]
	if !ok {
		return nil, fmt.Errorf("missing response code: %w", registrar.ErrUnexpectedResponse)
	}
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return nil, fmt.Errorf("invalid response code %q: %w", codeText, registrar.ErrUnexpectedResponse)
	}
	resp.Code = code
	resp.Description = resp.fields["description"]

	return resp, nil
}

// parsePropertyKey splits "property[name][index]"
func parsePropertyKey(key string) (string, int, bool) {
	rest, ok := strings.CutPrefix(key, "property[")
	if !ok {
		return "", 0, false
	}
	name, rest, ok := strings.Cut(rest, "][")
	if !ok {
		return "", 0, false
	}
	indexText, ok := strings.CutSuffix(rest, "]")
	if !ok {
		return "", 0, false
	}
	index, err := strconv.Atoi(indexText)
	if err != nil || index < 0 {
		return "", 0, false
	}
	return name, index, true
}

func (r *rrpResponse) setProperty(name string, index int, value string) {
	values := r.properties[name]
	for len(values) <= index {
		values = append(values, "")
	}
	values[index] = value
	r.properties[name] = values
}

// Success reports a 2xx result code
func (r *rrpResponse) Success() bool {
	return r.Code >= 200 && r.Code < 300
}

// Property returns every value of a property in index order
func (r *rrpResponse) Property(name string) []string {
	return r.properties[strings.ToLower(name)]
}

// First returns the value at index 0 of a property, or ""
func (r *rrpResponse) First(name string) string {
	values := r.Property(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
