// Package herokuapi is a thin REST client for the Heroku Platform API,
// scoped to the one resource the pipeline needs: an app's release stream.
// Heroku has no official Go SDK in reach, so this follows the same shape
// as the pack's other hand-rolled upstream clients: a typed wrapper over
// github.com/hashicorp/go-retryablehttp for Retry-After-aware backoff.
package herokuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/devmetrics/four-keys/fourkeyserr"
)

const (
	baseURL    = "https://api.heroku.com"
	apiVersion = "application/vnd.heroku+json; version=3"
)

// Client talks to the Heroku Platform API for one app.
type Client struct {
	http  *retryablehttp.Client
	token string
	app   string

	// baseURLOverride points requests at a test server in place of the
	// real Heroku API. Empty in production use.
	baseURLOverride string
}

// New builds a Client authenticated with a Heroku API token.
func New(token, app string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 5
	rc.Backoff = func(min, max time.Duration, attempt int, resp *http.Response) time.Duration {
		wait := retryablehttp.DefaultBackoff(min, max, attempt, resp)
		if resp != nil && resp.Header.Get("Retry-After") != "" {
			return wait
		}
		return wait/2 + time.Duration(rand.Int63n(int64(wait/2)+1))
	}
	rc.Logger = nil
	return &Client{http: rc, token: token, app: app}
}

func (c *Client) base() string {
	if c.baseURLOverride != "" {
		return c.baseURLOverride
	}
	return baseURL
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.base()+path, nil)
	if err != nil {
		return fourkeyserr.New(fourkeyserr.CodeCreateClient, "build heroku request", err)
	}
	req.Header.Set("Accept", apiVersion)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fourkeyserr.New(fourkeyserr.CodeFetch, "heroku request to "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fourkeyserr.New(fourkeyserr.CodeInvalidResponse, fmt.Sprintf("heroku %s returned %d", path, resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fourkeyserr.New(fourkeyserr.CodeParse, "decode heroku response from "+path, err)
	}
	return nil
}
