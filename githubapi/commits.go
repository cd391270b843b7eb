package githubapi

import (
	"context"

	"github.com/google/go-github/v53/github"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

func toCommit(rc *github.RepositoryCommit) schema.Commit {
	c := schema.Commit{SHA: rc.GetSHA(), ResourcePath: rc.GetHTMLURL()}
	if commit := rc.GetCommit(); commit != nil {
		c.Message = commit.GetMessage()
		if author := commit.GetAuthor(); author != nil {
			c.CommittedAt = author.GetDate().Time
		} else if committer := commit.GetCommitter(); committer != nil {
			c.CommittedAt = committer.GetDate().Time
		}
	}
	if author := rc.GetAuthor(); author != nil {
		c.CreatorLogin = author.GetLogin()
	}
	return c
}

// ListCommits returns every commit on the repository's default branch,
// oldest first.
func (c *Client) ListCommits(ctx context.Context) ([]schema.Commit, error) {
	var out []schema.Commit
	opt := &github.CommitsListOptions{ListOptions: github.ListOptions{PerPage: maxPerPage}}
	for {
		pageCtx, cancel := withTimeout(ctx)
		commits, resp, err := c.gh.Repositories.ListCommits(pageCtx, c.Owner, c.Repo, opt)
		cancel()
		if err != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeFetch, "list commits", err)
		}
		for _, rc := range commits {
			out = append(out, toCommit(rc))
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// GetCommit fetches a single commit by SHA.
func (c *Client) GetCommit(ctx context.Context, sha string) (schema.Commit, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rc, _, err := c.gh.Repositories.GetCommit(ctx, c.Owner, c.Repo, sha, nil)
	if err != nil {
		return schema.Commit{}, fourkeyserr.New(fourkeyserr.CodeCommitNotFound, "get commit "+sha, err)
	}
	return toCommit(rc), nil
}
