// Package workflow maps logical transition names (progress/review/approved)
// onto the actual status and transition names of the Jira workflow configured
// for each issue type.
package workflow

import (
	"errors"
	"fmt"
)

// ErrUnknownIssueType is returned when an issue type has no transition row.
// An unrecognized type must be reported, not defaulted, so the wrong workflow
// is never applied.
var ErrUnknownIssueType = errors.New("unknown jira issue type")

// Jira issue types with a configured workflow.
const (
	TypeGitHubIssue = "GitHub Issue"
	TypeTask        = "Task"
	TypeSubTask     = "Sub-task"
	TypeStory       = "Story"
	TypeBug         = "Bug"
)

// Transitions holds the status and transition names for one issue type.
// ReviewStatus and ApprovedStatus are the statuses an issue must currently be
// in for the sync to act; Approved, Progress and Review are the transitions
// it applies.
type Transitions struct {
	ReviewStatus   string
	ApprovedStatus string
	Approved       string
	Progress       string
	Review         string
}

// simpleTransitions covers issue types whose workflow has no separate
// terminal-approved state: approving transitions straight to the
// "Reviewer Approved" status.
var simpleTransitions = Transitions{
	ReviewStatus:   "Review in progress",
	ApprovedStatus: "Reviewer Approved",
	Approved:       "Reviewer Approved",
	Progress:       "In Progress",
	Review:         "Review in progress",
}

var transitionMap = map[string]Transitions{
	TypeGitHubIssue: {
		ReviewStatus:   "Review in progress",
		ApprovedStatus: "Reviewer Approved",
		Approved:       "Approved",
		Progress:       "Changes Requested",
		Review:         "Requires re-review",
	},
	TypeTask:    simpleTransitions,
	TypeSubTask: simpleTransitions,
	TypeStory:   simpleTransitions,
	TypeBug:     simpleTransitions,
}

// Lookup resolves the transition row for a Jira issue type. It fails with
// ErrUnknownIssueType for types without a row.
func Lookup(issueType string) (Transitions, error) {
	row, ok := transitionMap[issueType]
	if !ok {
		return Transitions{}, fmt.Errorf("%w: %q", ErrUnknownIssueType, issueType)
	}
	return row, nil
}
