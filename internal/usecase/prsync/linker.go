package prsync

import (
	"regexp"
	"strings"
)

var emptyParens = regexp.MustCompile(`\(\s*\)`)

// keyPattern matches Jira issue keys of the given project, e.g. PROJ-42.
func keyPattern(projectKey string) *regexp.Regexp {
	return regexp.MustCompile(`(` + regexp.QuoteMeta(projectKey) + `-\d+)`)
}

// ResolveLinkedIssues extracts Jira issue keys referenced by linked-issue
// titles. The first key per title wins, order is preserved, and duplicate keys
// are kept as-is when the same issue is linked through multiple references.
func ResolveLinkedIssues(projectKey string, linkedTitles []string) []string {
	pattern := keyPattern(projectKey)

	var keys []string
	for _, title := range linkedTitles {
		if match := pattern.FindStringSubmatch(title); match != nil {
			keys = append(keys, match[1])
		}
	}
	return keys
}

// RewriteTitle embeds the given Jira keys into a pull request title. Any keys
// already present are stripped first so re-linking never duplicates them, then
// the keys are appended as a trailing parenthetical group. The title is
// returned unchanged when keys is empty.
func RewriteTitle(originalTitle, projectKey string, keys []string) string {
	if len(keys) == 0 {
		return originalTitle
	}

	title := keyPattern(projectKey).ReplaceAllString(originalTitle, "")
	title = emptyParens.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	return title + " (" + strings.Join(keys, " ") + ")"
}
