package githubapi

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/sirupsen/logrus"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

// MergedPullRequest is a merged pull request targeting the production
// branch, normalized enough to stand in as a deployment event.
type MergedPullRequest struct {
	ID           string
	MergedAt     time.Time
	MergeCommit  schema.Commit
	CreatorLogin string
}

// ListMergedPullRequests returns merged pull requests targeting base,
// oldest first, with each merge commit's metadata resolved.
func (c *Client) ListMergedPullRequests(ctx context.Context, base string) ([]MergedPullRequest, error) {
	opt := &github.PullRequestListOptions{
		State:       "closed",
		Base:        base,
		Sort:        "updated",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}
	var out []MergedPullRequest
	for {
		pageCtx, cancel := withTimeout(ctx)
		prs, resp, err := c.gh.PullRequests.List(pageCtx, c.Owner, c.Repo, opt)
		cancel()
		if err != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeFetch, "list pull requests", err)
		}
		for _, pr := range prs {
			if pr.GetMergedAt().IsZero() || pr.MergeCommitSHA == nil {
				continue
			}
			commit, err := c.GetCommit(ctx, pr.GetMergeCommitSHA())
			if err != nil {
				// A force-pushed or rebased PR can leave a dangling merge SHA;
				// drop it rather than fail the whole fetch (spec §4.1).
				logrus.WithField("sha", pr.GetMergeCommitSHA()).Warn("dropping pull request: merge commit lookup failed")
				continue
			}
			out = append(out, MergedPullRequest{
				ID:           strconv.Itoa(pr.GetNumber()),
				MergedAt:     pr.GetMergedAt().Time,
				MergeCommit:  commit,
				CreatorLogin: pr.GetUser().GetLogin(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MergedAt.Before(out[j].MergedAt) })
	return out, nil
}
