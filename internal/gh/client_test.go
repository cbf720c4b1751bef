package gh_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciscoecosystem/sync-jira-actions/internal/gh"
	"github.com/stretchr/testify/require"
)

func TestFindClosingIssues(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graphql", r.URL.Path)
		require.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Query, "closingIssuesReferences")
		require.Equal(t, float64(11), req.Variables["pr"])

		fmt.Fprint(w, `{"data": {"repository": {"pullRequest": {"closingIssuesReferences": {"nodes": [
			{"number": 3, "title": "Fix crash (PROJ-42)"},
			{"number": 4, "title": "unrelated"}
		]}}}}}`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	issues, err := client.FindClosingIssues(context.Background(), "octo", "widgets", 11)

	require.NoError(t, err)
	require.Len(t, issues, 2)
	require.Equal(t, 3, issues[0].Number)
	require.Equal(t, "Fix crash (PROJ-42)", issues[0].Title)
}

func TestGetPullRequestReviewStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"repository": {"pullRequest": {
			"title": "Fix bug",
			"reviewDecision": "APPROVED",
			"latestReviews": {"nodes": [{"state": "APPROVED"}, {"state": "COMMENTED"}]}
		}}}}`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	status, err := client.GetPullRequestReviewStatus(context.Background(), "octo", "widgets", 11)

	require.NoError(t, err)
	require.Equal(t, "Fix bug", status.Title)
	require.Equal(t, "APPROVED", status.ReviewDecision)
	require.Equal(t, []string{"APPROVED", "COMMENTED"}, status.ReviewStates)
}

func TestGetPullRequestReviewStatusNullDecision(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"repository": {"pullRequest": {
			"title": "Fix bug",
			"reviewDecision": null,
			"latestReviews": {"nodes": []}
		}}}}`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	status, err := client.GetPullRequestReviewStatus(context.Background(), "octo", "widgets", 11)

	require.NoError(t, err)
	require.Empty(t, status.ReviewDecision)
	require.Empty(t, status.ReviewStates)
}

func TestGraphQLErrorsSurface(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": null, "errors": [{"message": "Could not resolve to a Repository"}]}`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	_, err := client.FindClosingIssues(context.Background(), "octo", "gone", 11)

	require.Error(t, err)
	require.Contains(t, err.Error(), "Could not resolve to a Repository")
}

func TestIsCollaborator(t *testing.T) {
	type testCase struct {
		name       string
		respStatus int

		expected    bool
		expectError bool
	}

	cases := []testCase{
		{name: "Collaborator", respStatus: http.StatusNoContent, expected: true},
		{name: "Not a collaborator", respStatus: http.StatusNotFound, expected: false},
		{name: "Unexpected status", respStatus: http.StatusForbidden, expectError: true},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/repos/octo/widgets/collaborators/contributor", r.URL.Path)
				w.WriteHeader(tc.respStatus)
			}))
			defer srv.Close()

			client := gh.NewWithBaseURL("gh-token", srv.URL)

			ok, err := client.IsCollaborator(context.Background(), "octo", "widgets", "contributor")

			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, ok)
		})
	}
}

func TestEditPullRequestTitle(t *testing.T) {
	t.Parallel()

	var patched map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/repos/octo/widgets/issues/11", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patched))
		fmt.Fprint(w, `{"number": 11}`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	err := client.EditPullRequestTitle(context.Background(), "octo", "widgets", 11, "Fix bug (PROJ-42)")

	require.NoError(t, err)
	require.Equal(t, "Fix bug (PROJ-42)", patched["title"])
}

func TestListOpenPullRequests(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octo/widgets/pulls", r.URL.Path)
		require.Equal(t, "open", r.URL.Query().Get("state"))

		fmt.Fprint(w, `[
			{"number": 2, "title": "Second", "state": "open", "user": {"login": "b"}, "labels": [{"name": "bug"}]},
			{"number": 1, "title": "First", "state": "open", "user": {"login": "a"}, "labels": []}
		]`)
	}))
	defer srv.Close()

	client := gh.NewWithBaseURL("gh-token", srv.URL)

	prs, err := client.ListOpenPullRequests(context.Background(), "octo", "widgets")

	require.NoError(t, err)
	require.Len(t, prs, 2)
	require.Equal(t, 2, prs[0].Number)
	require.Equal(t, "b", prs[0].Author)
	require.Equal(t, []string{"bug"}, prs[0].Labels)
}
