// Package webhook receives GitHub webhook deliveries and dispatches them to
// the pull request sync and issue mirroring services.
package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ciscoecosystem/sync-jira-actions/internal/config"
	"github.com/ciscoecosystem/sync-jira-actions/internal/domains"
	"github.com/ciscoecosystem/sync-jira-actions/internal/httpserver/handlers"
	"github.com/ciscoecosystem/sync-jira-actions/internal/lib/api/response"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PRSyncService
type PRSyncService interface {
	FindAndLinkPrIssues(ctx context.Context, pr domains.PullRequest) ([]string, error)
	CheckPrApprovalAndMove(ctx context.Context, pr domains.PullRequest, jiraKeys []string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MirrorService
type MirrorService interface {
	Find(ctx context.Context, number int) (*domains.JiraIssue, error)
	SyncIssue(ctx context.Context, action string, item domains.PullRequest, isPR bool) error
	SyncComment(ctx context.Context, number int, action, author, body string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=GitHubClient
type GitHubClient interface {
	GetIssue(ctx context.Context, owner, repo string, number int) (domains.PullRequest, error)
	GetRecentlyUpdatedPR(ctx context.Context, owner, repo string) (int, error)
	IsCollaborator(ctx context.Context, owner, repo, login string) (bool, error)
}

type ghUser struct {
	Login string `json:"login"`
}

type ghItem struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	User    ghUser `json:"user"`
	Labels  []struct {
		Name string `json:"name"`
	} `json:"labels"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

func (i *ghItem) toDomain() domains.PullRequest {
	pr := domains.PullRequest{
		Number:  i.Number,
		Title:   i.Title,
		Author:  i.User.Login,
		State:   i.State,
		Body:    i.Body,
		HTMLURL: i.HTMLURL,
	}
	for _, l := range i.Labels {
		pr.Labels = append(pr.Labels, l.Name)
	}
	return pr
}

type event struct {
	Action      string  `json:"action"`
	Issue       *ghItem `json:"issue"`
	PullRequest *ghItem `json:"pull_request"`
	Comment     *struct {
		User ghUser `json:"user"`
		Body string `json:"body"`
	} `json:"comment"`
	WorkflowRun *struct {
		Event string `json:"event"`
	} `json:"workflow_run"`
}

func New(
	log *slog.Logger,
	cfg *config.Config,
	prSync PRSyncService,
	mirror MirrorService,
	gh GitHubClient,
) http.HandlerFunc {
	owner := cfg.GitHubConfig.Owner()
	repo := cfg.GitHubConfig.Repo()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.webhook.New"

		deliveryID := r.Header.Get("X-GitHub-Delivery")
		if deliveryID == "" {
			deliveryID = uuid.NewString()
		}
		eventName := r.Header.Get("X-GitHub-Event")

		log := log.With(
			slog.String("op", op),
			slog.String("delivery", deliveryID),
			slog.String("event", eventName))

		var ev event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			log.Warn("invalid webhook payload", slog.Any("error", err))

			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).
				Encode(response.NewErrorResponse(handlers.InvalidRequest, "invalid JSON format"))
			return
		}

		log = log.With(slog.String("action", ev.Action))
		ctx := r.Context()

		// Normalize the delivery into the issue-event shape. Pull request
		// deliveries are handled like issue deliveries; the isPR flag tells
		// the rest of the pipeline which kind it was.
		var item domains.PullRequest
		isPR := false

		switch eventName {
		case "ping":
			respondResult(w, "pong")
			return

		case "pull_request":
			if ev.PullRequest == nil {
				respondInvalid(w, log, "missing pull_request in payload")
				return
			}
			item = ev.PullRequest.toDomain()
			isPR = true

		case "pull_request_target":
			// The target payload describes the base branch state. Re-fetch
			// the pull request in its issue representation instead.
			if ev.PullRequest == nil {
				respondInvalid(w, log, "missing pull_request in payload")
				return
			}
			hydrated, err := gh.GetIssue(ctx, owner, repo, ev.PullRequest.Number)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			item = hydrated
			isPR = true

		case "workflow_run":
			if ev.WorkflowRun == nil || ev.WorkflowRun.Event != "pull_request_review" {
				respondResult(w, "skipped: workflow run not triggered by a review")
				return
			}
			number, err := gh.GetRecentlyUpdatedPR(ctx, owner, repo)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			if number == 0 {
				respondResult(w, "skipped: no pull requests in repository")
				return
			}
			hydrated, err := gh.GetIssue(ctx, owner, repo, number)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			item = hydrated
			isPR = true

		case "issues", "issue_comment":
			if ev.Issue == nil {
				respondInvalid(w, log, "missing issue in payload")
				return
			}
			item = ev.Issue.toDomain()
			isPR = ev.Issue.PullRequest != nil

		default:
			log.Info("no handler for event, skipping")
			respondResult(w, "skipped: unhandled event")
			return
		}

		log = log.With(slog.Int("number", item.Number))
		hasSyncLabel := cfg.SyncConfig.SyncLabel != "" && item.HasLabel(cfg.SyncConfig.SyncLabel)

		// Pull requests linked to synced issues drive those issues directly
		// and short-circuit normal mirroring for this delivery. Comments on
		// such pull requests re-check approval too instead of being mirrored.
		if isPR && cfg.SyncConfig.LinkClosingIssues {
			keys, err := prSync.FindAndLinkPrIssues(ctx, item)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			if len(keys) > 0 {
				if err := prSync.CheckPrApprovalAndMove(ctx, item, keys); err != nil {
					respondInternal(w, log, err)
					return
				}
				log.Info("skipping sync for pull request linked to synced issues")
				respondResult(w, "pull request synced against linked issues")
				return
			}
		}

		// Collaborator-authored pull requests are not mirrored unless the
		// sync label opts them in.
		if isPR && !hasSyncLabel {
			collaborator, err := gh.IsCollaborator(ctx, owner, repo, item.Author)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			if collaborator {
				log.Info("skipping sync for pull request from collaborator")
				respondResult(w, "skipped: pull request from collaborator")
				return
			}
		}

		if cfg.SyncConfig.SyncLabel != "" && !hasSyncLabel {
			log.Info("skipping sync for item without sync label",
				slog.String("sync_label", cfg.SyncConfig.SyncLabel))
			respondResult(w, "skipped: missing sync label")
			return
		}

		// A standalone mirrored pull request still gets its approval state
		// checked before the action handler runs.
		if isPR {
			mirrorIssue, err := mirror.Find(ctx, item.Number)
			if err != nil {
				respondInternal(w, log, err)
				return
			}
			if mirrorIssue != nil {
				if err := prSync.CheckPrApprovalAndMove(ctx, item, []string{mirrorIssue.Key}); err != nil {
					respondInternal(w, log, err)
					return
				}
			}
		}

		switch eventName {
		case "issue_comment":
			if ev.Comment == nil {
				respondInvalid(w, log, "missing comment in payload")
				return
			}
			if err := mirror.SyncComment(ctx, item.Number, ev.Action, ev.Comment.User.Login, ev.Comment.Body); err != nil {
				respondInternal(w, log, err)
				return
			}
		default:
			if err := mirror.SyncIssue(ctx, ev.Action, item, isPR); err != nil {
				respondInternal(w, log, err)
				return
			}
		}

		respondResult(w, "synced")
	}
}

func respondResult(w http.ResponseWriter, result string) {
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response.NewResultResponse(result))
}

func respondInvalid(w http.ResponseWriter, log *slog.Logger, message string) {
	log.Warn("invalid webhook delivery", slog.String("reason", message))

	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(response.NewErrorResponse(handlers.InvalidRequest, message))
}

func respondInternal(w http.ResponseWriter, log *slog.Logger, err error) {
	log.Error("failed to process webhook delivery", slog.Any("error", err))

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(response.NewErrorResponse(handlers.InternalError, "internal server error"))
}
