package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINEAR_API_KEY", "")
	t.Setenv("LINCTL_ENDPOINT", "")
	t.Setenv("LINCTL_TIMEOUT", "")
	t.Setenv("LINCTL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "linctl version "+version+"\n", out)
}

func TestCommandTree(t *testing.T) {
	cmd := NewRootCommand()
	groups := map[string][]string{
		"issues":             {"list", "read", "create", "update", "delete"},
		"documents":          {"list", "read", "create", "update", "delete"},
		"attachments":        {"list", "create", "delete"},
		"projects":           {"list", "read", "create", "update", "delete"},
		"cycles":             {"list", "read"},
		"project-milestones": {"list", "read", "create", "update", "delete"},
		"labels":             {"list", "create", "update", "delete"},
		"comments":           {"list", "create", "update", "delete"},
		"teams":              {"list", "read"},
		"users":              {"list", "read", "me"},
	}

	for name, verbs := range groups {
		group, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "group %s", name)
		require.Equal(t, name, group.Name())
		for _, verb := range verbs {
			sub, _, err := cmd.Find([]string{name, verb})
			require.NoError(t, err, "%s %s", name, verb)
			assert.Equal(t, verb, sub.Name(), "%s %s", name, verb)
		}
	}
}

func TestMissingTokenError(t *testing.T) {
	clearEnv(t)

	_, err := runCommand(t, "teams", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API token is required")
}

func TestNegativeTimeoutRejected(t *testing.T) {
	clearEnv(t)

	_, err := runCommand(t, "teams", "list", "--api-token", "lin_api_test", "--timeout", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout must be positive")
}

func TestDocumentsListMutuallyExclusiveScopes(t *testing.T) {
	clearEnv(t)

	_, err := runCommand(t, "documents", "list", "--project", "Mobile app", "--issue", "ENG-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestCyclesListMutuallyExclusiveSelectors(t *testing.T) {
	clearEnv(t)

	_, err := runCommand(t, "cycles", "list", "--active", "--next")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestIssuesCreateRequiresTeamAndTitle(t *testing.T) {
	clearEnv(t)

	_, err := runCommand(t, "issues", "create", "--title", "No team")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team")
}

func TestFlagTokenReachesTheAPI(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lin_api_flag", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"viewer": map[string]any{"id": "user-1", "name": "Sam Doe"}},
		})
	}))
	defer server.Close()

	_, err := runCommand(t, "users", "me", "--api-token", "lin_api_flag", "--endpoint", server.URL)
	require.NoError(t, err)
}

func TestEnvEndpointReachesTheAPI(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"teams": map[string]any{
				"nodes":    []any{},
				"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
			}},
		})
	}))
	defer server.Close()

	t.Setenv("LINEAR_API_KEY", "lin_api_env")
	t.Setenv("LINCTL_ENDPOINT", server.URL)

	_, err := runCommand(t, "teams", "list")
	require.NoError(t, err)
}
