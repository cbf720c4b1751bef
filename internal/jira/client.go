// Package jira is a thin HTTP client for the Jira REST API v2, covering issue
// lookup, workflow transitions, comments, and the search/create pair the
// mirroring sweep relies on.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrInvalidTransition is returned when the named transition is not legal from
// the issue's current status. It is never retried automatically: the
// precondition observed before the call may no longer hold.
var ErrInvalidTransition = errors.New("transition not available from current status")

type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// New creates a Jira client. When token is non-empty it authenticates with a
// Bearer token, otherwise with basic auth using user and password.
func New(baseURL, user, password, token string) *Client {
	var authHeader string
	if token != "" {
		authHeader = "Bearer " + token
	} else {
		credentials := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
		authHeader = "Basic " + credentials
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: authHeader,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type errorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// do performs an HTTP request with an optional JSON body and unmarshals the
// JSON response into result when it is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var jiraErr errorResponse
		if json.Unmarshal(respBody, &jiraErr) == nil &&
			(len(jiraErr.ErrorMessages) > 0 || len(jiraErr.Errors) > 0) {
			return fmt.Errorf("jira API error (%d) on %s %s: %s %v",
				resp.StatusCode, method, path,
				strings.Join(jiraErr.ErrorMessages, "; "), jiraErr.Errors)
		}
		return fmt.Errorf("unexpected status %d on %s %s: %s",
			resp.StatusCode, method, path, string(respBody))
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshaling response from %s %s: %w", method, path, err)
	}
	return nil
}
