package githubapi

import (
	"context"
	"strconv"
	"time"

	"github.com/google/go-github/v53/github"

	"github.com/devmetrics/four-keys/fourkeyserr"
)

// RawDeployment is what the forge's deployments endpoint returns before
// the head commit is resolved against SHA.
type RawDeployment struct {
	ID           string
	SHA          string
	CreatorLogin string
	CreatedAt    time.Time
}

// ListDeployments returns deployments for the given environment, oldest
// first.
func (c *Client) ListDeployments(ctx context.Context, environment string) ([]RawDeployment, error) {
	opt := &github.DeploymentsListOptions{
		Environment: environment,
		ListOptions: github.ListOptions{PerPage: maxPerPage},
	}
	var out []RawDeployment
	for {
		pageCtx, cancel := withTimeout(ctx)
		deployments, resp, err := c.gh.Repositories.ListDeployments(pageCtx, c.Owner, c.Repo, opt)
		cancel()
		if err != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeFetch, "list deployments", err)
		}
		for _, d := range deployments {
			out = append(out, RawDeployment{
				ID:           strconv.FormatInt(d.GetID(), 10),
				SHA:          d.GetSHA(),
				CreatorLogin: d.GetCreator().GetLogin(),
				CreatedAt:    d.GetCreatedAt().Time,
			})
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
