package domains

// JiraIssue is the slice of a Jira issue the sync cares about. Status is owned
// by Jira; this system only issues transition commands against it.
type JiraIssue struct {
	Key       string
	IssueType string
	Status    string
}
