// Package mirror maintains one Jira issue per GitHub issue or
// non-collaborator pull request, keeping its summary, description and labels
// aligned with the GitHub side.
package mirror

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ciscoecosystem/sync-jira-actions/internal/config"
	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
	"github.com/ciscoecosystem/sync-jira-actions/internal/jira"
	"github.com/ciscoecosystem/sync-jira-actions/internal/workflow"
)

// prMirrorLabel marks Jira issues mirroring pull requests rather than issues.
const prMirrorLabel = "github-pr"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=JiraClient
type JiraClient interface {
	FindIssue(ctx context.Context, projectKey, owner, repo string, number int) (*domains.JiraIssue, error)
	CreateIssue(ctx context.Context, fields map[string]any) (string, error)
	UpdateIssue(ctx context.Context, key string, fields map[string]any) error
	AddComment(ctx context.Context, key, text string) error
}

type Service struct {
	log  *slog.Logger
	jira JiraClient

	owner   string
	repo    string
	project string
}

func New(log *slog.Logger, cfg *config.Config, jiraClient JiraClient) *Service {
	return &Service{
		log:     log,
		jira:    jiraClient,
		owner:   cfg.GitHubConfig.Owner(),
		repo:    cfg.GitHubConfig.Repo(),
		project: cfg.JiraConfig.Project,
	}
}

// Find returns the Jira issue mirroring the given GitHub number, or nil when
// none exists.
func (s *Service) Find(ctx context.Context, number int) (*domains.JiraIssue, error) {
	const op = "usecase.mirror.Find"

	issue, err := s.jira.FindIssue(ctx, s.project, s.owner, s.repo, number)
	if err != nil {
		s.log.Error("mirror lookup failed", slog.String("op", op),
			slog.Int("number", number), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return issue, nil
}

// FindOrCreate returns the key of the mirror issue for a pull request,
// creating it when absent.
func (s *Service) FindOrCreate(ctx context.Context, pr domains.PullRequest) (string, error) {
	const op = "usecase.mirror.FindOrCreate"
	log := s.log.With(slog.String("op", op), slog.Int("number", pr.Number))

	existing, err := s.jira.FindIssue(ctx, s.project, s.owner, s.repo, pr.Number)
	if err != nil {
		log.Error("mirror lookup failed", slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return existing.Key, nil
	}

	key, err := s.jira.CreateIssue(ctx, s.createFields(pr, true))
	if err != nil {
		log.Error("mirror creation failed", slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("created mirror issue", slog.String("jira_key", key))
	return key, nil
}

// SyncIssue applies one GitHub issue event to the mirror. Opened events
// create the mirror; edits and label changes update it in place; state
// changes are recorded as comments so they show up in the issue history
// without fighting the Jira workflow.
func (s *Service) SyncIssue(ctx context.Context, action string, item domains.PullRequest, isPR bool) error {
	const op = "usecase.mirror.SyncIssue"
	log := s.log.With(slog.String("op", op),
		slog.String("action", action), slog.Int("number", item.Number))

	switch action {
	case "opened", "reopened", "labeled", "unlabeled", "edited", "closed", "deleted":
	default:
		log.Info("no handler for action, skipping")
		return nil
	}

	existing, err := s.jira.FindIssue(ctx, s.project, s.owner, s.repo, item.Number)
	if err != nil {
		log.Error("mirror lookup failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if existing == nil {
		if action == "closed" || action == "deleted" {
			log.Info("no mirror for closed item, nothing to do")
			return nil
		}
		key, err := s.jira.CreateIssue(ctx, s.createFields(item, isPR))
		if err != nil {
			log.Error("mirror creation failed", slog.Any("error", err))
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("created mirror issue", slog.String("jira_key", key))
		return nil
	}

	log = log.With(slog.String("jira_key", existing.Key))

	switch action {
	case "edited", "labeled", "unlabeled":
		fields := map[string]any{
			"summary":     s.summary(item),
			"description": s.description(item),
			"labels":      s.labels(item, isPR),
		}
		if err := s.jira.UpdateIssue(ctx, existing.Key, fields); err != nil {
			log.Error("mirror update failed", slog.Any("error", err))
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("updated mirror issue")

	case "closed", "reopened", "deleted":
		text := fmt.Sprintf("The linked GitHub %s was %s: %s", itemKind(isPR), action, item.HTMLURL)
		if err := s.jira.AddComment(ctx, existing.Key, text); err != nil {
			log.Error("state-change comment failed", slog.Any("error", err))
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("recorded state change on mirror issue")
	}
	return nil
}

// SyncComment mirrors a newly created GitHub comment onto the Jira issue.
// Edits and deletions are not propagated.
func (s *Service) SyncComment(ctx context.Context, number int, action, author, body string) error {
	const op = "usecase.mirror.SyncComment"
	log := s.log.With(slog.String("op", op), slog.Int("number", number))

	if action != "created" {
		log.Info("comment action not mirrored, skipping", slog.String("action", action))
		return nil
	}

	existing, err := s.jira.FindIssue(ctx, s.project, s.owner, s.repo, number)
	if err != nil {
		log.Error("mirror lookup failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if existing == nil {
		log.Info("no mirror issue for comment, skipping")
		return nil
	}

	text := fmt.Sprintf("@%s commented on GitHub:\n\n%s", author, body)
	if err := s.jira.AddComment(ctx, existing.Key, text); err != nil {
		log.Error("comment mirror failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("mirrored comment", slog.String("jira_key", existing.Key))
	return nil
}

func (s *Service) createFields(item domains.PullRequest, isPR bool) map[string]any {
	return map[string]any{
		"project":     map[string]string{"key": s.project},
		"issuetype":   map[string]string{"name": workflow.TypeGitHubIssue},
		"summary":     s.summary(item),
		"description": s.description(item),
		"labels":      s.labels(item, isPR),
	}
}

func (s *Service) summary(item domains.PullRequest) string {
	return fmt.Sprintf("%s %s", jira.MirrorSummaryPrefix(s.owner, s.repo, item.Number), item.Title)
}

func (s *Service) description(item domains.PullRequest) string {
	return fmt.Sprintf("%s\n\n----\nOpened by @%s on GitHub: %s", item.Body, item.Author, item.HTMLURL)
}

// labels carries the GitHub labels over, with a marker label distinguishing
// pull request mirrors. Jira labels cannot contain spaces.
func (s *Service) labels(item domains.PullRequest, isPR bool) []string {
	labels := make([]string, 0, len(item.Labels)+1)
	if isPR {
		labels = append(labels, prMirrorLabel)
	}
	for _, l := range item.Labels {
		labels = append(labels, sanitizeLabel(l))
	}
	return labels
}

func sanitizeLabel(label string) string {
	out := []rune(label)
	for i, r := range out {
		if r == ' ' {
			out[i] = '-'
		}
	}
	return string(out)
}

func itemKind(isPR bool) string {
	if isPR {
		return "pull request"
	}
	return "issue"
}
