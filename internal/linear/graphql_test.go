package linear

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAPI is an httptest-backed GraphQL endpoint that routes requests by
// operation name. Handlers return the data payload; returning an error
// string via errorResponse produces a GraphQL errors array instead.
type fakeAPI struct {
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]func(t *testing.T, vars map[string]any) any
	calls    []string
	server   *httptest.Server
}

// errorResponse makes a handler answer with a GraphQL error.
type errorResponse struct {
	Message string
}

var operationNamePattern = regexp.MustCompile(`^\s*(?:query|mutation)\s+(\w+)`)

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{
		t:        t,
		handlers: map[string]func(t *testing.T, vars map[string]any) any{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) handle(operation string, fn func(t *testing.T, vars map[string]any) any) {
	f.handlers[operation] = fn
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

	m := operationNamePattern.FindStringSubmatch(req.Query)
	require.NotNil(f.t, m, "request without an operation name: %s", req.Query)
	operation := m[1]

	f.mu.Lock()
	f.calls = append(f.calls, operation)
	f.mu.Unlock()

	handler, ok := f.handlers[operation]
	require.True(f.t, ok, "no handler for operation %s", operation)

	w.Header().Set("Content-Type", "application/json")
	switch data := handler(f.t, req.Variables).(type) {
	case errorResponse:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": data.Message}},
		})
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}
}

// callCount returns how many requests hit the given operation.
func (f *fakeAPI) callCount(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == operation {
			n++
		}
	}
	return n
}

func (f *fakeAPI) newClient() *Client {
	c := NewClient("test-token")
	c.Endpoint = f.server.URL
	return c
}

func (f *fakeAPI) newService() *Service {
	return NewService(f.newClient())
}

// conn builds a single-page connection payload.
func conn(nodes ...any) map[string]any {
	if nodes == nil {
		nodes = []any{}
	}
	return map[string]any{
		"nodes":    nodes,
		"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
	}
}
