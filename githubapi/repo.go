package githubapi

import (
	"context"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

// RepositoryInfo returns the repository's creation instant, used as the
// base for a deployment with no predecessor (spec §3).
func (c *Client) RepositoryInfo(ctx context.Context) (schema.RepositoryInfo, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	repo, _, err := c.gh.Repositories.Get(ctx, c.Owner, c.Repo)
	if err != nil {
		return schema.RepositoryInfo{}, fourkeyserr.New(fourkeyserr.CodeRepoCreatedAtUnavailable, "get repository metadata", err)
	}
	return schema.RepositoryInfo{CreatedAt: repo.GetCreatedAt().Time}, nil
}
