package githubapi

import (
	"context"

	"github.com/google/go-github/v53/github"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

// FirstCommitBetween returns the earliest commit on the exclusive range
// (base, head], per the forge compare endpoint's documented ordering
// (oldest first). Only the first page is needed since index 0 of the
// first page is always the earliest commit in the range.
func (c *Client) FirstCommitBetween(ctx context.Context, base, head string) (schema.Commit, error) {
	if base == "" || head == "" {
		return schema.Commit{}, fourkeyserr.New(fourkeyserr.CodeEmptyBaseOrHead, "base or head sha is empty", nil)
	}
	if base == head {
		return schema.Commit{}, fourkeyserr.New(fourkeyserr.CodeBaseEqualsHead, "base equals head", nil)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opt := &github.ListOptions{PerPage: 1}
	cmp, _, err := c.gh.Repositories.CompareCommits(ctx, c.Owner, c.Repo, base, head, opt)
	if err != nil {
		return schema.Commit{}, fourkeyserr.New(fourkeyserr.CodeAPIResponse, "compare "+base+".."+head, err)
	}
	if cmp == nil || len(cmp.Commits) == 0 {
		return schema.Commit{}, fourkeyserr.New(fourkeyserr.CodeParse, "compare response had no commits", nil)
	}
	return toCommit(cmp.Commits[0]), nil
}
