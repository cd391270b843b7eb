package cli

import (
	"time"

	"github.com/devmetrics/four-keys/schema"
)

// resolvedProject bundles a project's config and resolved credentials,
// the shape every subcommand that touches a forge or PaaS needs.
type resolvedProject struct {
	Name       string
	Config     schema.ProjectConfig
	ForgeToken string
	PaaSToken  string
}

func resolveProject(name string) (resolvedProject, error) {
	cfg, err := store.Load()
	if err != nil {
		return resolvedProject{}, err
	}
	project, forgeToken, paasToken, err := store.Project(cfg, name)
	if err != nil {
		return resolvedProject{}, err
	}
	return resolvedProject{Name: name, Config: project, ForgeToken: forgeToken, PaaSToken: paasToken}, nil
}

// parseDateFlag parses a CLI date flag as UTC midnight (spec §6.1).
func parseDateFlag(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
