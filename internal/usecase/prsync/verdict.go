package prsync

import "github.com/ciscoecosystem/sync-jira-actions/internal/domains"

// ComputeVerdict reduces GitHub's aggregate review decision and the latest
// per-reviewer review states into a single approval verdict.
//
// Approved requires both the aggregate decision to be APPROVED and at least
// minimumApprovals individual approvals. An active changes-requested review
// wins over anything short of an aggregate approval. Everything else is
// Pending: no reviews yet, only comments, or approved but below the threshold.
func ComputeVerdict(reviewDecision string, reviewStates []string, minimumApprovals int) domains.Verdict {
	approved := reviewDecision == domains.ReviewStateApproved

	changesRequested := false
	approvedCount := 0
	for _, state := range reviewStates {
		switch state {
		case domains.ReviewStateChangesRequested:
			changesRequested = true
		case domains.ReviewStateApproved:
			approvedCount++
		}
	}

	switch {
	case !approved && changesRequested:
		return domains.VerdictChangesRequested
	case approved && approvedCount >= minimumApprovals:
		return domains.VerdictApproved
	default:
		return domains.VerdictPending
	}
}
