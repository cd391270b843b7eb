package deployment

import (
	"context"
	"sort"

	"golang.org/x/sync/semaphore"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/schema"
)

// sortByDeployedAt orders items oldest first, breaking ties on identical
// DeployedAt by Info.ID so pagination boundaries and same-instant
// deployments resolve deterministically (spec §8).
func sortByDeployedAt(items []schema.DeploymentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DeployedAt.Equal(items[j].DeployedAt) {
			return items[i].Info.ID < items[j].Info.ID
		}
		return items[i].DeployedAt.Before(items[j].DeployedAt)
	})
}

// maxInFlight bounds concurrent upstream requests a fetcher issues while
// resolving commits for a page of candidate deployments (spec §5).
const maxInFlight = 8

// resolveHeadCommits looks up each sha's commit metadata concurrently,
// bounded by maxInFlight in-flight requests. The result slice is
// index-aligned with shas; a failed lookup leaves its slot nil so the
// caller can drop that candidate without losing the ordering of the rest.
func resolveHeadCommits(ctx context.Context, gh *githubapi.Client, shas []string) ([]*schema.Commit, error) {
	sem := semaphore.NewWeighted(maxInFlight)
	out := make([]*schema.Commit, len(shas))

	type result struct {
		idx    int
		commit schema.Commit
		err    error
	}
	results := make(chan result, len(shas))

	for i, sha := range shas {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(idx int, sha string) {
			defer sem.Release(1)
			c, err := gh.GetCommit(ctx, sha)
			results <- result{idx: idx, commit: c, err: err}
		}(i, sha)
	}

	for range shas {
		r := <-results
		if r.err != nil {
			log.WithField("sha", shas[r.idx]).Warn("dropping deployment: head commit lookup failed")
			continue
		}
		c := r.commit
		out[r.idx] = &c
	}
	return out, nil
}
