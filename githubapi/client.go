// Package githubapi wraps github.com/google/go-github for the forge
// operations the pipeline needs: commit listing and comparison, pull
// request listing, deployment listing, and repository metadata.
package githubapi

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Client is a thin, owner/repo-scoped wrapper over *github.Client.
type Client struct {
	gh    *github.Client
	Owner string
	Repo  string
}

// New builds a Client authenticated with a GitHub personal access token.
// The underlying transport retries 429/5xx with exponential backoff and
// jitter, honoring Retry-After, up to 5 attempts (spec §5).
func New(token, owner, repo string) (*Client, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 4
	retryClient.Backoff = func(min, max time.Duration, attempt int, resp *http.Response) time.Duration {
		wait := retryablehttp.DefaultBackoff(min, max, attempt, resp)
		if resp != nil && resp.Header.Get("Retry-After") != "" {
			return wait
		}
		return wait/2 + time.Duration(rand.Int63n(int64(wait/2)+1))
	}
	retryClient.Logger = nil
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logrus.WithField("attempt", attempt).Debugf("retrying GitHub request: %s", req.URL.Path)
		}
	}
	httpClient := retryClient.StandardClient()

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	authed := oauth2.NewClient(ctx, ts)

	return &Client{
		gh:    github.NewClient(authed),
		Owner: owner,
		Repo:  repo,
	}, nil
}

// maxPerPage bounds each page request; pagination is followed via
// Response.NextPage.
const maxPerPage = 100

// requestTimeout bounds a single paginated call's worst case.
const requestTimeout = 2 * time.Minute

// withTimeout derives a context bounded by requestTimeout from ctx.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, requestTimeout)
}
