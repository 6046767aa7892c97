package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "dev@example.com", "test-token",
		WithHTTPClient(server.Client()),
		WithAPIPrefix("/rest/api/3"),
	)
	require.NoError(t, err)

	return client, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("", "user", "token")
	assert.Error(t, err)

	_, err = NewClient("https://example.atlassian.net", "user", "")
	assert.Error(t, err)
}

func TestNewClient_AuthTypeSelection(t *testing.T) {
	// ユーザー名ありはBasic認証（Cloud）
	basic, err := NewClient("https://example.atlassian.net", "dev@example.com", "token")
	require.NoError(t, err)
	assert.Equal(t, AuthTypeBasic, basic.AuthType())

	// ユーザー名なしはBearer認証（Server/DC）
	bearer, err := NewClient("https://jira.example.com", "", "pat-token")
	require.NoError(t, err)
	assert.Equal(t, AuthTypeBearer, bearer.AuthType())
}

func TestClient_BasicAuthHeader(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "dev@example.com", username)
		assert.Equal(t, "test-token", password)
		writeJSON(t, w, &User{AccountID: "abc123", DisplayName: "Dev"})
	}))

	user, err := client.GetMyself(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", user.AccountID)
}

func TestClient_APIVersionNegotiation(t *testing.T) {
	var probed []string
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/3/serverInfo", func(w http.ResponseWriter, r *http.Request) {
		probed = append(probed, "v3")
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/rest/api/2/serverInfo", func(w http.ResponseWriter, r *http.Request) {
		probed = append(probed, "v2")
		writeJSON(t, w, map[string]string{"version": "9.4.0"})
	})
	mux.HandleFunc("/rest/api/2/myself", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, &User{Name: "dev"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "dev@example.com", "test-token",
		WithHTTPClient(server.Client()))
	require.NoError(t, err)

	user, err := client.GetMyself(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev", user.Name)
	assert.Equal(t, []string{"v3", "v2"}, probed)

	// ネゴシエーション結果は固定され、2回目以降は再プローブしない
	_, err = client.GetMyself(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"v3", "v2"}, probed)
}

func TestClient_APIVersionNegotiationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "dev@example.com", "test-token",
		WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = client.GetMyself(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negotiation failed")
}

func TestClient_ParsesStructuredErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errorMessages": []string{"The value 'XYZ' does not exist for the field 'project'."},
		})
	}))

	_, err := client.GetIssue(context.Background(), "XYZ-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "does not exist")
}

func TestClient_AuthenticationError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.GetMyself(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthenticationError(err))
}

func TestClient_SearchIssuesPost(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)

		var opts SearchOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&opts))
		assert.Equal(t, `project = "ABC"`, opts.JQL)
		assert.Equal(t, 1, opts.MaxResults)

		writeJSON(t, w, &SearchResult{
			Total:  1,
			Issues: []*Issue{{Key: "ABC-1"}},
		})
	}))

	result, err := client.SearchIssues(context.Background(), &SearchOptions{
		JQL:        `project = "ABC"`,
		MaxResults: 1,
	})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "ABC-1", result.Issues[0].Key)
}

func TestClient_SearchIssuesFallsBackToGet(t *testing.T) {
	// 一部のServer/DC構成はPOST searchに405を返す
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		assert.Equal(t, http.MethodGet, r.Method)
		query := r.URL.Query()
		assert.Equal(t, `project = "ABC"`, query.Get("jql"))
		assert.Equal(t, "5", query.Get("maxResults"))
		assert.ElementsMatch(t, []string{"status", "issuetype"}, query["fields"])

		writeJSON(t, w, &SearchResult{Issues: []*Issue{{Key: "ABC-2"}}})
	}))

	result, err := client.SearchIssues(context.Background(), &SearchOptions{
		JQL:        `project = "ABC"`,
		MaxResults: 5,
		Fields:     []string{"status", "issuetype"},
	})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "ABC-2", result.Issues[0].Key)
}

func TestClient_SearchIssuesRequiresJQL(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	}))

	_, err := client.SearchIssues(context.Background(), nil)
	assert.Error(t, err)

	_, err = client.SearchIssues(context.Background(), &SearchOptions{})
	assert.Error(t, err)
}

func TestClient_GetProjectStatuses(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/ABC/statuses", r.URL.Path)
		writeJSON(t, w, []*ProjectStatusGroup{
			{
				ID:   "10001",
				Name: "Task",
				Statuses: []*Status{
					{ID: "1", Name: "To Do"},
					{ID: "3", Name: "Done"},
				},
			},
		})
	}))

	groups, err := client.GetProjectStatuses(context.Background(), "ABC")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Task", groups[0].Name)
	assert.Len(t, groups[0].Statuses, 2)
}

func TestClient_GetTransitions(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-1/transitions", r.URL.Path)
		writeJSON(t, w, map[string]interface{}{
			"transitions": []*Transition{
				{ID: "11", Name: "Start Progress", To: &Status{Name: "In Progress"}},
			},
		})
	}))

	transitions, err := client.GetTransitions(context.Background(), "ABC-1")
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, "Start Progress", transitions[0].Name)
}

func TestClient_DoTransition(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/issue/ABC-1/transitions", r.URL.Path)

		var payload struct {
			Transition struct {
				ID string `json:"id"`
			} `json:"transition"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "11", payload.Transition.ID)

		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DoTransition(context.Background(), "ABC-1", "11")
	assert.NoError(t, err)
}
