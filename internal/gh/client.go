// Package gh is a thin client for the slice of the GitHub API the sync needs:
// three GraphQL queries for closing-issue links and review state, and a few
// REST calls for title edits, collaborator checks and the open-PR sweep.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultTimeout    = 30 * time.Second
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a GitHub client authenticating with the given token.
func New(token string) *Client {
	return &Client{
		baseURL: defaultAPIBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewWithBaseURL creates a client against a non-default API root, used for
// GitHub Enterprise instances and for tests.
func NewWithBaseURL(token, baseURL string) *Client {
	c := New(token)
	c.baseURL = baseURL
	return c
}

// doREST performs a REST request with a JSON body and unmarshals the JSON
// response into result when it is non-nil. The returned status code is valid
// even for non-2xx responses so callers can branch on 404-style answers.
func (c *Client) doREST(ctx context.Context, method, path string, body, result any) (int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("executing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, fmt.Errorf("unmarshaling response from %s %s: %w", method, path, err)
		}
	}

	return resp.StatusCode, nil
}

// restError builds the error for an unexpected REST status.
func restError(method, path string, status int) error {
	return fmt.Errorf("github API error on %s %s: unexpected status %d", method, path, status)
}
