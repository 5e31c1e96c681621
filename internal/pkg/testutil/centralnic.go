package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
)

// FakeCentralNic is an in-process stand-in for the RRPproxy command endpoint.
// Responses are keyed by the "command" query parameter.
type FakeCentralNic struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]string
	requests  []url.Values
}

// NewFakeCentralNic starts a fake RRPproxy server that is closed when the test ends.
func NewFakeCentralNic(t *testing.T) *FakeCentralNic {
	t.Helper()

	f := &FakeCentralNic{responses: map[string]string{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the command endpoint of the fake server.
func (f *FakeCentralNic) URL() string {
	return f.Server.URL + "/api/call.cgi"
}

// Respond registers the raw body returned for a command.
func (f *FakeCentralNic) Respond(command, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[command] = body
}

// Requests returns a copy of the query parameters received so far.
func (f *FakeCentralNic) Requests() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.requests...)
}

// LastRequest returns the query of the most recent call of the given command.
func (f *FakeCentralNic) LastRequest(command string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].Get("command") == command {
			return f.requests[i]
		}
	}
	return nil
}

func (f *FakeCentralNic) handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	f.mu.Lock()
	f.requests = append(f.requests, query)
	body, ok := f.responses[query.Get("command")]
	f.mu.Unlock()

	if !ok {
		body = RRPResponse(500, "Command unknown", nil)
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(body))
}

// RRPResponse renders a response in the RRPproxy plain text format.
// Property values are emitted in sorted name order with ascending indexes.
func RRPResponse(code int, description string, properties map[string][]string) string {
	var b strings.Builder
	b.WriteString("[RESPONSE]\n")
	fmt.Fprintf(&b, "code = %d\n", code)
	fmt.Fprintf(&b, "description = %s\n", description)
	b.WriteString("queuetime = 0\n")
	b.WriteString("runtime = 0.012\n")

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for i, value := range properties[name] {
			fmt.Fprintf(&b, "property[%s][%d] = %s\n", name, i, value)
		}
	}
	b.WriteString("EOF\n")
	return b.String()
}
