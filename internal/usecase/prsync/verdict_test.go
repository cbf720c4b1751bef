package prsync_test

import (
	"testing"

	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
	"github.com/ciscoecosystem/sync-jira-actions/internal/usecase/prsync"
	"github.com/stretchr/testify/require"
)

func TestComputeVerdict(t *testing.T) {
	type testCase struct {
		name             string
		reviewDecision   string
		reviewStates     []string
		minimumApprovals int

		expected domains.Verdict
	}

	cases := []testCase{
		{
			name:             "No reviews yet",
			reviewDecision:   "",
			reviewStates:     nil,
			minimumApprovals: 3,
			expected:         domains.VerdictPending,
		},
		{
			name:             "Changes requested without aggregate approval",
			reviewDecision:   "",
			reviewStates:     []string{domains.ReviewStateChangesRequested},
			minimumApprovals: 3,
			expected:         domains.VerdictChangesRequested,
		},
		{
			name:             "Changes requested wins over partial approvals",
			reviewDecision:   "REVIEW_REQUIRED",
			reviewStates:     []string{domains.ReviewStateApproved, domains.ReviewStateChangesRequested, domains.ReviewStateApproved},
			minimumApprovals: 3,
			expected:         domains.VerdictChangesRequested,
		},
		{
			name:             "Approved and meets minimum approvals",
			reviewDecision:   domains.ReviewStateApproved,
			reviewStates:     []string{domains.ReviewStateApproved, domains.ReviewStateApproved, domains.ReviewStateApproved},
			minimumApprovals: 3,
			expected:         domains.VerdictApproved,
		},
		{
			name:             "Approved but below threshold is still pending",
			reviewDecision:   domains.ReviewStateApproved,
			reviewStates:     []string{domains.ReviewStateApproved, domains.ReviewStateApproved},
			minimumApprovals: 3,
			expected:         domains.VerdictPending,
		},
		{
			name:             "Aggregate approval overrides stale changes-requested reviews",
			reviewDecision:   domains.ReviewStateApproved,
			reviewStates:     []string{domains.ReviewStateApproved, domains.ReviewStateApproved, domains.ReviewStateApproved, domains.ReviewStateChangesRequested},
			minimumApprovals: 3,
			expected:         domains.VerdictApproved,
		},
		{
			name:             "Zero minimum makes the aggregate decision sufficient",
			reviewDecision:   domains.ReviewStateApproved,
			reviewStates:     nil,
			minimumApprovals: 0,
			expected:         domains.VerdictApproved,
		},
		{
			name:             "Comments only remain pending",
			reviewDecision:   "",
			reviewStates:     []string{domains.ReviewStateCommented, domains.ReviewStateDismissed, domains.ReviewStatePending},
			minimumApprovals: 3,
			expected:         domains.VerdictPending,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			verdict := prsync.ComputeVerdict(tc.reviewDecision, tc.reviewStates, tc.minimumApprovals)

			require.Equal(t, tc.expected, verdict)
		})
	}
}
