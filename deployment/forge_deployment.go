package deployment

import (
	"context"
	"time"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/schema"
)

// forgeDeploymentFetcher implements spec §4.1 variant A: the forge's
// native deployments endpoint, chained to the previous deployment's head
// commit (or repository creation, for the first).
type forgeDeploymentFetcher struct {
	gh          *githubapi.Client
	environment string
}

func (f *forgeDeploymentFetcher) Fetch(ctx context.Context, since, until time.Time) ([]schema.DeploymentItem, error) {
	raw, err := f.gh.ListDeployments(ctx, f.environment)
	if err != nil {
		return nil, err
	}

	repoInfo, err := f.gh.RepositoryInfo(ctx)
	if err != nil {
		return nil, err
	}

	shas := make([]string, len(raw))
	for i, d := range raw {
		shas[i] = d.SHA
	}
	heads, err := resolveHeadCommits(ctx, f.gh, shas)
	if err != nil {
		return nil, err
	}

	var items []schema.DeploymentItem
	var prevHead *schema.Commit
	for i, d := range raw {
		head := heads[i]
		if head == nil {
			continue
		}
		if !inWindow(d.CreatedAt, since, until) {
			prevHead = head
			continue
		}

		base := schema.DeploymentBase{Kind: schema.BaseKindRepositoryInfo, RepositoryInfo: &repoInfo}
		if prevHead != nil {
			base = schema.DeploymentBase{Kind: schema.BaseKindCommit, Commit: prevHead}
		}

		items = append(items, schema.DeploymentItem{
			Info:         schema.DeploymentInfo{Kind: schema.DeploymentInfoForge, ID: d.ID},
			HeadCommit:   *head,
			Base:         base,
			CreatorLogin: d.CreatorLogin,
			DeployedAt:   d.CreatedAt,
		})
		prevHead = head
	}

	sortByDeployedAt(items)
	return items, nil
}
