// Package commit resolves the first commit of a change-set, the join
// point between two deployments that the pipeline needs for lead time.
package commit

import (
	"context"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/schema"
)

// Getter returns the earliest commit on the exclusive range (base, head].
type Getter interface {
	Get(ctx context.Context, base, head string) (schema.Commit, error)
}

// ForgeGetter is a Getter backed by the forge's compare API.
type ForgeGetter struct {
	gh *githubapi.Client
}

// NewForgeGetter wraps a githubapi.Client as a Getter.
func NewForgeGetter(gh *githubapi.Client) *ForgeGetter {
	return &ForgeGetter{gh: gh}
}

func (g *ForgeGetter) Get(ctx context.Context, base, head string) (schema.Commit, error) {
	return g.gh.FirstCommitBetween(ctx, base, head)
}
