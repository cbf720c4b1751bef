package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
)

const closingIssuesQuery = `
	query($owner:String!, $repo:String!, $pr:Int!) {
		repository (owner: $owner, name: $repo) {
			pullRequest (number: $pr) {
				closingIssuesReferences (first: 10) {
					nodes {
						number
						title
					}
				}
			}
		}
	}`

const reviewStatusQuery = `
	query($owner:String!, $repo:String!, $pr:Int!) {
		repository (owner: $owner, name: $repo) {
			pullRequest (number: $pr) {
				title
				reviewDecision
				latestReviews (last: 10) {
					nodes {
						state
					}
				}
			}
		}
	}`

const recentlyUpdatedPRQuery = `
	query($owner:String!, $repo:String!) {
		repository (owner: $owner, name: $repo) {
			pullRequests (last: 1, orderBy: {field: UPDATED_AT, direction: ASC}) {
				nodes {
					number
				}
			}
		}
	}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// postQuery runs a GraphQL query and unmarshals the "data" object into data.
func (c *Client) postQuery(ctx context.Context, query string, vars map[string]any, data any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing graphql query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("github graphql status %d: %s", resp.StatusCode, string(b))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("github graphql error: %s", envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return fmt.Errorf("unmarshaling graphql data: %w", err)
	}
	return nil
}

// FindClosingIssues returns the issues a pull request is marked to close on merge.
func (c *Client) FindClosingIssues(ctx context.Context, owner, repo string, prNumber int) ([]domains.LinkedIssue, error) {
	var data struct {
		Repository struct {
			PullRequest struct {
				ClosingIssuesReferences struct {
					Nodes []struct {
						Number int    `json:"number"`
						Title  string `json:"title"`
					} `json:"nodes"`
				} `json:"closingIssuesReferences"`
			} `json:"pullRequest"`
		} `json:"repository"`
	}

	vars := map[string]any{"owner": owner, "repo": repo, "pr": prNumber}
	if err := c.postQuery(ctx, closingIssuesQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("finding closing issues for #%d: %w", prNumber, err)
	}

	var issues []domains.LinkedIssue
	for _, node := range data.Repository.PullRequest.ClosingIssuesReferences.Nodes {
		issues = append(issues, domains.LinkedIssue{Number: node.Number, Title: node.Title})
	}
	return issues, nil
}

// GetPullRequestReviewStatus fetches the aggregate review decision and the
// latest per-reviewer review states for a pull request. Both are fetched fresh
// on every call since approvals can change between invocations.
func (c *Client) GetPullRequestReviewStatus(ctx context.Context, owner, repo string, prNumber int) (domains.ReviewStatus, error) {
	var data struct {
		Repository struct {
			PullRequest struct {
				Title          string `json:"title"`
				ReviewDecision string `json:"reviewDecision"`
				LatestReviews  struct {
					Nodes []struct {
						State string `json:"state"`
					} `json:"nodes"`
				} `json:"latestReviews"`
			} `json:"pullRequest"`
		} `json:"repository"`
	}

	vars := map[string]any{"owner": owner, "repo": repo, "pr": prNumber}
	if err := c.postQuery(ctx, reviewStatusQuery, vars, &data); err != nil {
		return domains.ReviewStatus{}, fmt.Errorf("fetching review status for #%d: %w", prNumber, err)
	}

	pr := data.Repository.PullRequest
	status := domains.ReviewStatus{
		Title:          pr.Title,
		ReviewDecision: pr.ReviewDecision,
	}
	for _, review := range pr.LatestReviews.Nodes {
		status.ReviewStates = append(status.ReviewStates, review.State)
	}
	return status, nil
}

// GetRecentlyUpdatedPR returns the number of the most recently updated pull
// request, used to resolve workflow_run deliveries triggered by reviews back
// to the pull request they belong to. Returns 0 when the repository has none.
func (c *Client) GetRecentlyUpdatedPR(ctx context.Context, owner, repo string) (int, error) {
	var data struct {
		Repository struct {
			PullRequests struct {
				Nodes []struct {
					Number int `json:"number"`
				} `json:"nodes"`
			} `json:"pullRequests"`
		} `json:"repository"`
	}

	vars := map[string]any{"owner": owner, "repo": repo}
	if err := c.postQuery(ctx, recentlyUpdatedPRQuery, vars, &data); err != nil {
		return 0, fmt.Errorf("fetching recently updated pull request: %w", err)
	}

	nodes := data.Repository.PullRequests.Nodes
	if len(nodes) == 0 {
		return 0, nil
	}
	return nodes[0].Number, nil
}
