package prsync_test

import (
	"testing"

	"github.com/ciscoecosystem/sync-jira-actions/internal/usecase/prsync"
	"github.com/stretchr/testify/require"
)

func TestResolveLinkedIssues(t *testing.T) {
	type testCase struct {
		name         string
		projectKey   string
		linkedTitles []string

		expected []string
	}

	cases := []testCase{
		{
			name:         "Single key in title",
			projectKey:   "PROJ",
			linkedTitles: []string{"Fix crash (PROJ-42)"},
			expected:     []string{"PROJ-42"},
		},
		{
			name:       "Order preserved across titles",
			projectKey: "PROJ",
			linkedTitles: []string{
				"Second thing PROJ-7",
				"No key here",
				"First thing (PROJ-3)",
			},
			expected: []string{"PROJ-7", "PROJ-3"},
		},
		{
			name:         "First key per title wins",
			projectKey:   "PROJ",
			linkedTitles: []string{"PROJ-1 duplicate of PROJ-2"},
			expected:     []string{"PROJ-1"},
		},
		{
			name:         "Duplicates are kept",
			projectKey:   "PROJ",
			linkedTitles: []string{"PROJ-5 once", "PROJ-5 twice"},
			expected:     []string{"PROJ-5", "PROJ-5"},
		},
		{
			name:         "Other projects are ignored",
			projectKey:   "PROJ",
			linkedTitles: []string{"Related to OTHER-9"},
			expected:     nil,
		},
		{
			name:         "No titles match",
			projectKey:   "PROJ",
			linkedTitles: []string{"plain title", "another"},
			expected:     nil,
		},
		{
			name:         "Empty input",
			projectKey:   "PROJ",
			linkedTitles: nil,
			expected:     nil,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			keys := prsync.ResolveLinkedIssues(tc.projectKey, tc.linkedTitles)

			require.Equal(t, tc.expected, keys)
		})
	}
}

func TestRewriteTitle(t *testing.T) {
	type testCase struct {
		name          string
		originalTitle string
		projectKey    string
		keys          []string

		expected string
	}

	cases := []testCase{
		{
			name:          "Appends keys to a plain title",
			originalTitle: "Fix bug",
			projectKey:    "PROJ",
			keys:          []string{"PROJ-42"},
			expected:      "Fix bug (PROJ-42)",
		},
		{
			name:          "Multiple keys joined by spaces",
			originalTitle: "Fix bug",
			projectKey:    "PROJ",
			keys:          []string{"PROJ-1", "PROJ-2"},
			expected:      "Fix bug (PROJ-1 PROJ-2)",
		},
		{
			name:          "Existing keys are stripped before appending",
			originalTitle: "Fix bug (PROJ-42)",
			projectKey:    "PROJ",
			keys:          []string{"PROJ-42", "PROJ-7"},
			expected:      "Fix bug (PROJ-42 PROJ-7)",
		},
		{
			name:          "Inline key leaves no leftover token",
			originalTitle: "PROJ-9 fix the thing",
			projectKey:    "PROJ",
			keys:          []string{"PROJ-9"},
			expected:      "fix the thing (PROJ-9)",
		},
		{
			name:          "Empty keys is a no-op",
			originalTitle: "Fix bug (PROJ-42)",
			projectKey:    "PROJ",
			keys:          nil,
			expected:      "Fix bug (PROJ-42)",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			title := prsync.RewriteTitle(tc.originalTitle, tc.projectKey, tc.keys)

			require.Equal(t, tc.expected, title)
		})
	}
}

// Rewriting an already-rewritten title with the same key set must be stable:
// keys never duplicate across repeated syncs of the same pull request.
func TestRewriteTitleRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []string{"PROJ-1", "PROJ-2"}

	first := prsync.RewriteTitle("Fix bug", "PROJ", keys)
	second := prsync.RewriteTitle(first, "PROJ", keys)

	require.Equal(t, first, second)
}
