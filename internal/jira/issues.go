package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
)

type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
		IssueType struct {
			Name string `json:"name"`
		} `json:"issuetype"`
		Summary string `json:"summary"`
	} `json:"fields"`
}

func (i issueResponse) toDomain() domains.JiraIssue {
	return domains.JiraIssue{
		Key:       i.Key,
		IssueType: i.Fields.IssueType.Name,
		Status:    i.Fields.Status.Name,
	}
}

// GetIssue fetches the current status and issue type of an issue.
func (c *Client) GetIssue(ctx context.Context, key string) (domains.JiraIssue, error) {
	path := fmt.Sprintf("/rest/api/2/issue/%s?fields=status,issuetype", url.PathEscape(key))

	var issue issueResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &issue); err != nil {
		return domains.JiraIssue{}, fmt.Errorf("fetching issue %s: %w", key, err)
	}
	return issue.toDomain(), nil
}

type transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   struct {
		Name string `json:"name"`
	} `json:"to"`
}

type transitionsResponse struct {
	Transitions []transition `json:"transitions"`
}

type transitionRequest struct {
	Transition struct {
		ID string `json:"id"`
	} `json:"transition"`
}

// TransitionIssue applies the named workflow transition to an issue. The name
// is matched against the transition name first and its target status name as a
// fallback. When no listed transition matches, the issue cannot legally move
// there from its current status and ErrInvalidTransition is returned.
func (c *Client) TransitionIssue(ctx context.Context, key, transitionName string) error {
	path := fmt.Sprintf("/rest/api/2/issue/%s/transitions", url.PathEscape(key))

	var available transitionsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &available); err != nil {
		return fmt.Errorf("listing transitions for %s: %w", key, err)
	}

	transitionID := ""
	for _, t := range available.Transitions {
		if strings.EqualFold(t.Name, transitionName) {
			transitionID = t.ID
			break
		}
	}
	if transitionID == "" {
		for _, t := range available.Transitions {
			if strings.EqualFold(t.To.Name, transitionName) {
				transitionID = t.ID
				break
			}
		}
	}
	if transitionID == "" {
		names := make([]string, 0, len(available.Transitions))
		for _, t := range available.Transitions {
			names = append(names, t.Name)
		}
		return fmt.Errorf("%w: %s has no transition %q, available: %s",
			ErrInvalidTransition, key, transitionName, strings.Join(names, ", "))
	}

	var req transitionRequest
	req.Transition.ID = transitionID
	if err := c.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return fmt.Errorf("transitioning %s via %q: %w", key, transitionName, err)
	}
	return nil
}

// AddComment posts a comment on an issue.
func (c *Client) AddComment(ctx context.Context, key, text string) error {
	path := fmt.Sprintf("/rest/api/2/issue/%s/comment", url.PathEscape(key))
	body := map[string]string{"body": text}

	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("commenting on %s: %w", key, err)
	}
	return nil
}

type searchResponse struct {
	Total  int             `json:"total"`
	Issues []issueResponse `json:"issues"`
}

// FindIssue looks up the Jira issue mirroring a GitHub issue or pull request
// by its mirrored-summary prefix. Returns nil when no mirror exists.
func (c *Client) FindIssue(ctx context.Context, projectKey, owner, repo string, number int) (*domains.JiraIssue, error) {
	jql := fmt.Sprintf(`project = %s AND summary ~ "GH %s" ORDER BY created DESC`,
		projectKey, escapeJQL(fmt.Sprintf(`%s/%s#%d:`, owner, repo, number)))
	path := "/rest/api/2/search?fields=status,issuetype,summary&maxResults=10&jql=" + url.QueryEscape(jql)

	var result searchResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("searching mirror of %s/%s#%d: %w", owner, repo, number, err)
	}

	// The ~ operator matches loosely, e.g. #1 also matches #10. Require the
	// exact prefix on the summary before trusting a hit.
	prefix := MirrorSummaryPrefix(owner, repo, number)
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Fields.Summary, prefix) {
			found := issue.toDomain()
			return &found, nil
		}
	}
	return nil, nil
}

type createResponse struct {
	Key string `json:"key"`
}

// CreateIssue creates an issue and returns its key.
func (c *Client) CreateIssue(ctx context.Context, fields map[string]any) (string, error) {
	body := map[string]any{"fields": fields}

	var created createResponse
	if err := c.do(ctx, http.MethodPost, "/rest/api/2/issue", body, &created); err != nil {
		return "", fmt.Errorf("creating issue: %w", err)
	}
	return created.Key, nil
}

// UpdateIssue updates issue fields in place.
func (c *Client) UpdateIssue(ctx context.Context, key string, fields map[string]any) error {
	path := fmt.Sprintf("/rest/api/2/issue/%s", url.PathEscape(key))
	body := map[string]any{"fields": fields}

	if err := c.do(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("updating %s: %w", key, err)
	}
	return nil
}

// MirrorSummaryPrefix is the summary prefix identifying the Jira mirror of a
// GitHub issue or pull request.
func MirrorSummaryPrefix(owner, repo string, number int) string {
	return fmt.Sprintf("GH %s/%s#%d:", owner, repo, number)
}

func escapeJQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
