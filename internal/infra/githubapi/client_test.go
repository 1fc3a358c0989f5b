package githubapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/croftworks/prsync/internal/domain"
	"github.com/google/go-github/v72/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a go-github client at a local fake API.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base

	return NewClientWithGitHub(gh, "acme", "widgets")
}

func TestClient_GetPullRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/pulls/3", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"number": 3,
			"state": "open",
			"merged": false,
			"draft": true,
			"user": {"login": "bob"},
			"assignees": [{"login": "alice"}, {"login": "carol"}]
		}`))
	})

	client := newTestClient(t, mux)
	pr, err := client.GetPullRequest(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, pr.Number)
	assert.Equal(t, domain.PRStateOpen, pr.State)
	assert.False(t, pr.Merged)
	assert.True(t, pr.Draft)
	assert.Equal(t, "bob", pr.Author)
	assert.Equal(t, []string{"alice", "carol"}, pr.Assignees)
}

func TestClient_GetIssue(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/issues/10", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"number": 10,
			"node_id": "I_10",
			"state": "open",
			"assignees": [{"login": "alice"}]
		}`))
	})

	client := newTestClient(t, mux)
	issue, err := client.GetIssue(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "I_10", issue.NodeID)
	assert.Equal(t, "open", issue.State)
	assert.Equal(t, []string{"alice"}, issue.Assignees)
}

func TestClient_CloseIssue(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /repos/acme/widgets/issues/10", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		_, _ = w.Write([]byte(`{"number": 10, "state": "closed"}`))
	})

	client := newTestClient(t, mux)
	require.NoError(t, client.CloseIssue(context.Background(), 10))

	assert.Equal(t, "closed", body["state"])
}

func TestClient_ReplaceAssignees(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /repos/acme/widgets/issues/10", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		_, _ = w.Write([]byte(`{"number": 10}`))
	})

	client := newTestClient(t, mux)
	require.NoError(t, client.ReplaceAssignees(context.Background(), 10, []string{"bob"}))

	assert.Equal(t, []any{"bob"}, body["assignees"])
}

func TestClient_ClearAssignees(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /repos/acme/widgets/issues/10/assignees", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		_, _ = w.Write([]byte(`{"number": 10}`))
	})

	client := newTestClient(t, mux)
	require.NoError(t, client.ClearAssignees(context.Background(), 10, []string{"alice"}))

	assert.Equal(t, []any{"alice"}, body["assignees"])
}

func TestClient_GetIssue_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/issues/404", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, mux)
	_, err := client.GetIssue(context.Background(), 404)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get issue")
}
