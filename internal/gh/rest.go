package gh

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
)

type restIssue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	HTMLURL     string    `json:"html_url"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

func (i restIssue) toDomain() domains.PullRequest {
	pr := domains.PullRequest{
		Number:  i.Number,
		Title:   i.Title,
		Author:  i.User.Login,
		State:   i.State,
		Body:    i.Body,
		HTMLURL: i.HTMLURL,
	}
	for _, l := range i.Labels {
		pr.Labels = append(pr.Labels, l.Name)
	}
	return pr
}

// EditPullRequestTitle updates the title of a pull request. Pull requests are
// issues on the REST side, so this goes through the issues endpoint.
func (c *Client) EditPullRequestTitle(ctx context.Context, owner, repo string, prNumber int, newTitle string) error {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, prNumber)
	body := map[string]string{"title": newTitle}

	status, err := c.doREST(ctx, http.MethodPatch, path, body, nil)
	if err != nil {
		return fmt.Errorf("editing title of #%d: %w", prNumber, err)
	}
	if status != http.StatusOK {
		return restError(http.MethodPatch, path, status)
	}
	return nil
}

// IsCollaborator reports whether the login is a collaborator on the repository.
func (c *Client) IsCollaborator(ctx context.Context, owner, repo, login string) (bool, error) {
	path := fmt.Sprintf("/repos/%s/%s/collaborators/%s", owner, repo, login)

	status, err := c.doREST(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return false, fmt.Errorf("checking collaborator %q: %w", login, err)
	}
	switch status {
	case http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, restError(http.MethodGet, path, status)
	}
}

// ListOpenPullRequests returns all open pull requests, newest first. Used by
// the cron sweep to catch pull requests whose webhook deliveries were missed.
func (c *Client) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]domains.PullRequest, error) {
	var prs []domains.PullRequest

	for page := 1; ; page++ {
		path := fmt.Sprintf("/repos/%s/%s/pulls?state=open&sort=created&direction=desc&per_page=100&page=%d",
			owner, repo, page)

		var batch []restIssue
		status, err := c.doREST(ctx, http.MethodGet, path, nil, &batch)
		if err != nil {
			return nil, fmt.Errorf("listing open pull requests: %w", err)
		}
		if status != http.StatusOK {
			return nil, restError(http.MethodGet, path, status)
		}

		for _, pr := range batch {
			prs = append(prs, pr.toDomain())
		}
		if len(batch) < 100 {
			return prs, nil
		}
	}
}

// GetIssue fetches one issue or pull request in its issue representation,
// used to hydrate pull_request_target and workflow_run deliveries.
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (domains.PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number)

	var issue restIssue
	status, err := c.doREST(ctx, http.MethodGet, path, nil, &issue)
	if err != nil {
		return domains.PullRequest{}, fmt.Errorf("fetching issue #%d: %w", number, err)
	}
	if status != http.StatusOK {
		return domains.PullRequest{}, restError(http.MethodGet, path, status)
	}
	return issue.toDomain(), nil
}
