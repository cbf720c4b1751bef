// Package prsync drives Jira issue transitions from GitHub pull request
// review activity: it discovers the Jira issues a pull request is linked to,
// computes an approval verdict from raw review data, and moves each linked
// issue through its workflow accordingly.
package prsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ciscoecosystem/sync-jira-actions/internal/config"
	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
	"github.com/ciscoecosystem/sync-jira-actions/internal/workflow"
	"github.com/google/uuid"
)

// Comments posted on linked Jira issues when the sync moves them.
const (
	commentBackToReview   = "The PR linked to this issue has new changes or dismissed reviews and moved back to review."
	commentReadyToMerge   = "The PR linked to this issue has met approval criteria and is ready to merge."
	commentBackInProgress = "The PR linked to this issue has new changes requested and moved back in progress."
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=GitHubClient
type GitHubClient interface {
	FindClosingIssues(ctx context.Context, owner, repo string, prNumber int) ([]domains.LinkedIssue, error)
	GetPullRequestReviewStatus(ctx context.Context, owner, repo string, prNumber int) (domains.ReviewStatus, error)
	EditPullRequestTitle(ctx context.Context, owner, repo string, prNumber int, newTitle string) error
	IsCollaborator(ctx context.Context, owner, repo, login string) (bool, error)
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]domains.PullRequest, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=JiraClient
type JiraClient interface {
	GetIssue(ctx context.Context, key string) (domains.JiraIssue, error)
	TransitionIssue(ctx context.Context, key, transitionName string) error
	AddComment(ctx context.Context, key, text string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Mirror
type Mirror interface {
	FindOrCreate(ctx context.Context, pr domains.PullRequest) (string, error)
}

type Service struct {
	log    *slog.Logger
	gh     GitHubClient
	jira   JiraClient
	mirror Mirror

	owner            string
	repo             string
	project          string
	minimumApprovals int

	locks *keyedMutex
}

func New(log *slog.Logger, cfg *config.Config, gh GitHubClient, jira JiraClient, mirror Mirror) *Service {
	return &Service{
		log:              log,
		gh:               gh,
		jira:             jira,
		mirror:           mirror,
		owner:            cfg.GitHubConfig.Owner(),
		repo:             cfg.GitHubConfig.Repo(),
		project:          cfg.JiraConfig.Project,
		minimumApprovals: cfg.SyncConfig.MinimumApprovals,
		locks:            newKeyedMutex(),
	}
}

// FindAndLinkPrIssues finds the Jira issues linked through the pull request's
// closing-issue references and embeds their keys in the pull request title so
// GitHub auto-links the PR to them. An empty result is a valid terminal
// state, not an error: the PR simply closes no synced issues.
func (s *Service) FindAndLinkPrIssues(ctx context.Context, pr domains.PullRequest) ([]string, error) {
	const op = "usecase.prsync.FindAndLinkPrIssues"
	log := s.log.With(slog.String("op", op), slog.Int("pr", pr.Number))

	closingIssues, err := s.gh.FindClosingIssues(ctx, s.owner, s.repo, pr.Number)
	if err != nil {
		log.Error("failed to fetch closing issues", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	titles := make([]string, 0, len(closingIssues))
	for _, issue := range closingIssues {
		titles = append(titles, issue.Title)
	}

	keys := ResolveLinkedIssues(s.project, titles)
	if len(keys) == 0 {
		return nil, nil
	}

	for _, key := range keys {
		log.Info("found linked issue", slog.String("jira_key", key))
	}

	newTitle := RewriteTitle(pr.Title, s.project, keys)
	if newTitle != pr.Title {
		log.Info("updating pull request title", slog.String("new_title", newTitle))
		if err := s.gh.EditPullRequestTitle(ctx, s.owner, s.repo, pr.Number, newTitle); err != nil {
			log.Error("failed to edit pull request title", slog.Any("error", err))
			return keys, fmt.Errorf("%s: %w", op, err)
		}
	}

	return keys, nil
}

// CheckPrApprovalAndMove computes the pull request's approval verdict and
// applies the transition state machine to every linked Jira issue. Work for
// one pull request is serialized so overlapping deliveries cannot interleave
// read-then-transition sequences.
func (s *Service) CheckPrApprovalAndMove(ctx context.Context, pr domains.PullRequest, jiraKeys []string) error {
	const op = "usecase.prsync.CheckPrApprovalAndMove"
	log := s.log.With(slog.String("op", op), slog.Int("pr", pr.Number))

	unlock := s.locks.lock(fmt.Sprintf("%s/%s#%d", s.owner, s.repo, pr.Number))
	defer unlock()

	status, err := s.gh.GetPullRequestReviewStatus(ctx, s.owner, s.repo, pr.Number)
	if err != nil {
		log.Error("failed to fetch review status", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	verdict := ComputeVerdict(status.ReviewDecision, status.ReviewStates, s.minimumApprovals)
	log.Info("computed approval verdict",
		slog.String("review_decision", status.ReviewDecision),
		slog.Int("reviews", len(status.ReviewStates)),
		slog.Int("minimum_approvals", s.minimumApprovals),
		slog.String("verdict", string(verdict)))

	for _, key := range jiraKeys {
		if err := s.moveIssue(ctx, log, key, verdict); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// moveIssue applies the state machine to a single linked issue. An unknown
// issue type is fatal for this key only; the caller continues with the rest
// of the batch.
func (s *Service) moveIssue(ctx context.Context, log *slog.Logger, key string, verdict domains.Verdict) error {
	issue, err := s.jira.GetIssue(ctx, key)
	if err != nil {
		log.Error("failed to fetch jira issue", slog.String("jira_key", key), slog.Any("error", err))
		return err
	}

	row, err := workflow.Lookup(issue.IssueType)
	if err != nil {
		if errors.Is(err, workflow.ErrUnknownIssueType) {
			log.Error("no transition row for issue, skipping",
				slog.String("jira_key", key),
				slog.String("issue_type", issue.IssueType))
			return nil
		}
		return err
	}

	log = log.With(
		slog.String("jira_key", key),
		slog.String("status", issue.Status),
		slog.String("verdict", string(verdict)))

	switch {
	case verdict == domains.VerdictPending && issue.Status == row.ApprovedStatus:
		return s.transition(ctx, log, key, issue.Status, row.Review, commentBackToReview)

	case verdict == domains.VerdictPending:
		log.Info("review in progress, skipping")
		return nil

	case verdict == domains.VerdictApproved && issue.Status == row.ReviewStatus:
		return s.transition(ctx, log, key, issue.Status, row.Approved, commentReadyToMerge)

	case verdict == domains.VerdictChangesRequested &&
		(issue.Status == row.ReviewStatus || issue.Status == row.ApprovedStatus):
		return s.transition(ctx, log, key, issue.Status, row.Progress, commentBackInProgress)

	default:
		log.Info("status not in a recognized pre-transition state, skipping")
		return nil
	}
}

// transition logs the chosen action before the mutating calls so a failed run
// is diagnosable from logs alone, then performs exactly one transition and
// one comment. Neither call is retried here: the transition may have
// partially succeeded and the precondition must be re-read first.
func (s *Service) transition(ctx context.Context, log *slog.Logger, key, priorStatus, transitionName, comment string) error {
	log.Info("transitioning issue",
		slog.String("prior_status", priorStatus),
		slog.String("transition", transitionName))

	if err := s.jira.TransitionIssue(ctx, key, transitionName); err != nil {
		log.Error("transition failed", slog.Any("error", err))
		return err
	}
	if err := s.jira.AddComment(ctx, key, comment); err != nil {
		log.Error("comment failed", slog.Any("error", err))
		return err
	}
	return nil
}

// SyncRemainPRs is the cron sweep: it walks all open pull requests and mirrors
// those authored by non-collaborators into Jira, catching pull requests whose
// webhook deliveries were missed. Each pull request is independent; a failure
// is logged and the sweep moves on.
func (s *Service) SyncRemainPRs(ctx context.Context) error {
	const op = "usecase.prsync.SyncRemainPRs"
	log := s.log.With(slog.String("op", op), slog.String("run_id", uuid.NewString()))

	prs, err := s.gh.ListOpenPullRequests(ctx, s.owner, s.repo)
	if err != nil {
		log.Error("failed to list open pull requests", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("sweeping open pull requests", slog.Int("count", len(prs)))

	for _, pr := range prs {
		collaborator, err := s.gh.IsCollaborator(ctx, s.owner, s.repo, pr.Author)
		if err != nil {
			log.Warn("collaborator check failed",
				slog.Int("pr", pr.Number), slog.Any("error", err))
			continue
		}
		if collaborator {
			continue
		}

		key, err := s.mirror.FindOrCreate(ctx, pr)
		if err != nil {
			log.Warn("failed to mirror pull request",
				slog.Int("pr", pr.Number), slog.Any("error", err))
			continue
		}
		log.Info("pull request mirrored", slog.Int("pr", pr.Number), slog.String("jira_key", key))
	}
	return nil
}
