package workflow_test

import (
	"testing"

	"github.com/ciscoecosystem/sync-jira-actions/internal/workflow"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	type testCase struct {
		name      string
		issueType string

		expectedRow workflow.Transitions
		expectedErr error
	}

	cases := []testCase{
		{
			name:      "GitHub Issue has a separate terminal approved state",
			issueType: "GitHub Issue",
			expectedRow: workflow.Transitions{
				ReviewStatus:   "Review in progress",
				ApprovedStatus: "Reviewer Approved",
				Approved:       "Approved",
				Progress:       "Changes Requested",
				Review:         "Requires re-review",
			},
		},
		{
			name:      "Task uses the simple workflow",
			issueType: "Task",
			expectedRow: workflow.Transitions{
				ReviewStatus:   "Review in progress",
				ApprovedStatus: "Reviewer Approved",
				Approved:       "Reviewer Approved",
				Progress:       "In Progress",
				Review:         "Review in progress",
			},
		},
		{
			name:      "Unknown type is reported, not defaulted",
			issueType: "Epic",

			expectedErr: workflow.ErrUnknownIssueType,
		},
		{
			name:      "Empty type is reported",
			issueType: "",

			expectedErr: workflow.ErrUnknownIssueType,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := workflow.Lookup(tc.issueType)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedRow, row)
		})
	}
}

func TestLookupSimpleTypesShareOneRow(t *testing.T) {
	t.Parallel()

	task, err := workflow.Lookup("Task")
	require.NoError(t, err)

	for _, issueType := range []string{"Sub-task", "Story", "Bug"} {
		row, err := workflow.Lookup(issueType)
		require.NoError(t, err)
		require.Equal(t, task, row)
	}
}
