package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServerConfig `yaml:"http_server"`
	GitHubConfig     `yaml:"github"`
	JiraConfig       `yaml:"jira"`
	SyncConfig       `yaml:"sync"`
}

type HTTPServerConfig struct {
	Host          string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port          int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env-default:"60s"`
	WebhookSecret string        `yaml:"webhook_secret" env:"GITHUB_WEBHOOK_SECRET"`
}

type GitHubConfig struct {
	Token      string `yaml:"token" env:"GITHUB_TOKEN" env-required:"true"`
	Repository string `yaml:"repository" env:"GITHUB_REPOSITORY" env-required:"true"`
}

type JiraConfig struct {
	URL     string `yaml:"url" env:"JIRA_URL" env-required:"true"`
	User    string `yaml:"user" env:"JIRA_USER"`
	Secret  string `yaml:"secret" env:"JIRA_PASS" env-required:"true"`
	Project string `yaml:"project" env:"JIRA_PROJECT" env-required:"true"`
}

type SyncConfig struct {
	MinimumApprovals  int           `yaml:"minimum_approvals" env:"INPUT_MINIMUM_APPROVALS" env-default:"3"`
	SyncLabel         string        `yaml:"sync_label" env:"INPUT_SYNC_LABEL"`
	LinkClosingIssues bool          `yaml:"link_closing_issues" env:"INPUT_LINK_CLOSING_ISSUES"`
	SweepInterval     time.Duration `yaml:"sweep_interval" env:"SYNC_SWEEP_INTERVAL" env-default:"30m"`
}

// Owner returns the owner half of the "owner/repo" repository slug.
func (c GitHubConfig) Owner() string {
	owner, _, _ := strings.Cut(c.Repository, "/")
	return owner
}

// Repo returns the repository half of the "owner/repo" repository slug.
func (c GitHubConfig) Repo() string {
	_, repo, _ := strings.Cut(c.Repository, "/")
	return repo
}

// Token returns the Jira API token when the secret uses the "token:" prefix
// convention, or "" when the secret is a plain password for basic auth.
func (c JiraConfig) Token() string {
	if token, ok := strings.CutPrefix(c.Secret, "token:"); ok {
		return token
	}
	return ""
}

func Load() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	var cfg Config
	var err error

	if configPath != "" {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			log.Fatalf("config file doesn't exist: %s", configPath)
		}
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if err := validate(&cfg); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	return &cfg
}

func validate(cfg *Config) error {
	if !strings.Contains(cfg.GitHubConfig.Repository, "/") {
		return fmt.Errorf("github repository %q is not in owner/repo form", cfg.GitHubConfig.Repository)
	}
	if cfg.SyncConfig.MinimumApprovals < 0 {
		return fmt.Errorf("minimum approvals must not be negative, got %d", cfg.SyncConfig.MinimumApprovals)
	}
	if cfg.JiraConfig.Token() == "" && cfg.JiraConfig.User == "" {
		return fmt.Errorf("jira secret is not a token and no jira user is set for basic auth")
	}
	return nil
}
