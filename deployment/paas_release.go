package deployment

import (
	"context"
	"time"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/herokuapi"
	"github.com/devmetrics/four-keys/schema"
)

// paasReleaseFetcher implements spec §4.1 variant C: the PaaS release
// stream, with each release's slug commit resolved against the forge to
// recover commit metadata for lead-time computation.
type paasReleaseFetcher struct {
	gh *githubapi.Client
	hk *herokuapi.Client
}

func (f *paasReleaseFetcher) Fetch(ctx context.Context, since, until time.Time) ([]schema.DeploymentItem, error) {
	releases, err := f.hk.ListReleases(ctx)
	if err != nil {
		return nil, err
	}

	repoInfo, err := f.gh.RepositoryInfo(ctx)
	if err != nil {
		return nil, err
	}

	shas := make([]string, len(releases))
	for i, r := range releases {
		shas[i] = r.CommitSHA
	}
	heads, err := resolveHeadCommits(ctx, f.gh, shas)
	if err != nil {
		return nil, err
	}

	var items []schema.DeploymentItem
	var prevHead *schema.Commit
	for i, r := range releases {
		head := heads[i]
		if head == nil {
			continue
		}
		if !inWindow(r.CreatedAt, since, until) {
			prevHead = head
			continue
		}

		base := schema.DeploymentBase{Kind: schema.BaseKindRepositoryInfo, RepositoryInfo: &repoInfo}
		if prevHead != nil {
			base = schema.DeploymentBase{Kind: schema.BaseKindCommit, Commit: prevHead}
		}

		items = append(items, schema.DeploymentItem{
			Info:       schema.DeploymentInfo{Kind: schema.DeploymentInfoPaaS, ID: r.ID, Version: r.Version},
			HeadCommit: *head,
			Base:       base,
			DeployedAt: r.CreatedAt,
		})
		prevHead = head
	}

	sortByDeployedAt(items)
	return items, nil
}
