// Package deployment selects and drives the deployment-source fetcher
// named by a project's configuration. Three concrete sources share one
// interface; selection happens once, at pipeline construction time, via
// a name-keyed registry rather than a type switch, so a new source can be
// added without touching the dispatcher.
package deployment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/herokuapi"
	"github.com/devmetrics/four-keys/registry"
	"github.com/devmetrics/four-keys/schema"
)

// Fetcher returns deployment events in [since, until], oldest first.
type Fetcher interface {
	Fetch(ctx context.Context, since, until time.Time) ([]schema.DeploymentItem, error)
}

// Constructor builds a Fetcher for one project's configuration.
type Constructor func(cfg Config) (Fetcher, error)

// Config is what a Constructor needs to stand up a fetcher; it carries
// both the forge and the PaaS credentials, and each constructor reads
// only the fields its source needs.
type Config struct {
	ForgeToken  string
	PaaSToken   string
	ForgeOwner  string
	ForgeRepo   string
	PaaSApp     string
	Environment string
}

var constructors = registry.New[Constructor]()

func init() {
	_ = constructors.Register(string(schema.SourceGitHubDeployment), newForgeDeploymentFetcher)
	_ = constructors.Register(string(schema.SourceGitHubPullRequest), newForgePullRequestFetcher)
	_ = constructors.Register(string(schema.SourceHerokuRelease), newPaaSReleaseFetcher)
}

// New builds the Fetcher named by source, per spec §9's "factory keyed by
// the enum" guidance.
func New(source schema.DeploymentSource, cfg Config) (Fetcher, error) {
	ctor, ok := constructors.Get(string(source))
	if !ok {
		return nil, errUnknownSource(source)
	}
	return ctor(cfg)
}

type errUnknownSource schema.DeploymentSource

func (e errUnknownSource) Error() string {
	return "deployment: unknown source " + string(e)
}

func newForgeDeploymentFetcher(cfg Config) (Fetcher, error) {
	gh, err := githubapi.New(cfg.ForgeToken, cfg.ForgeOwner, cfg.ForgeRepo)
	if err != nil {
		return nil, err
	}
	env := cfg.Environment
	if env == "" {
		env = "production"
	}
	return &forgeDeploymentFetcher{gh: gh, environment: env}, nil
}

func newForgePullRequestFetcher(cfg Config) (Fetcher, error) {
	gh, err := githubapi.New(cfg.ForgeToken, cfg.ForgeOwner, cfg.ForgeRepo)
	if err != nil {
		return nil, err
	}
	env := cfg.Environment
	if env == "" {
		env = "production"
	}
	return &forgePullRequestFetcher{gh: gh, base: env}, nil
}

func newPaaSReleaseFetcher(cfg Config) (Fetcher, error) {
	gh, err := githubapi.New(cfg.ForgeToken, cfg.ForgeOwner, cfg.ForgeRepo)
	if err != nil {
		return nil, err
	}
	hk := herokuapi.New(cfg.PaaSToken, cfg.PaaSApp)
	return &paasReleaseFetcher{gh: gh, hk: hk}, nil
}

var log = logrus.WithField("component", "deployment")

func inWindow(t, since, until time.Time) bool {
	return !t.Before(since) && !t.After(until)
}
