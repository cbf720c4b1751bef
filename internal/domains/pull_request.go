package domains

// PullRequest is an immutable snapshot of a GitHub pull request taken at the
// start of a sync invocation. It is re-fetched every run, never cached.
type PullRequest struct {
	Number  int
	Title   string
	Author  string
	Labels  []string
	State   string
	Body    string
	HTMLURL string
}

// HasLabel reports whether the snapshot carries the given label name.
func (pr PullRequest) HasLabel(name string) bool {
	if name == "" {
		return false
	}
	for _, l := range pr.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// LinkedIssue is a GitHub issue that a pull request is marked to close on merge.
type LinkedIssue struct {
	Number int
	Title  string
}

// ReviewStatus is the review snapshot of a pull request as reported by GitHub.
// ReviewDecision is GitHub's aggregate decision and is empty when the
// repository requires no reviews or none have been submitted yet.
type ReviewStatus struct {
	Title          string
	ReviewDecision string
	ReviewStates   []string
}

// Per-reviewer review states as reported by GitHub.
const (
	ReviewStateApproved         = "APPROVED"
	ReviewStateChangesRequested = "CHANGES_REQUESTED"
	ReviewStateCommented        = "COMMENTED"
	ReviewStateDismissed        = "DISMISSED"
	ReviewStatePending          = "PENDING"
)

// Verdict is the tri-state approval outcome derived from raw review data.
type Verdict string

const (
	VerdictApproved         Verdict = "APPROVED"
	VerdictChangesRequested Verdict = "CHANGES_REQUESTED"
	VerdictPending          Verdict = "PENDING"
)
