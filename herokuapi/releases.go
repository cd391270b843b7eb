package herokuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/devmetrics/four-keys/fourkeyserr"
)

type rawRelease struct {
	ID          string `json:"id"`
	Version     uint64 `json:"version"`
	Status      string `json:"status"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	Slug        *struct {
		ID string `json:"id"`
	} `json:"slug"`
}

type rawSlug struct {
	Commit string `json:"commit"`
}

// Release is a succeeded release whose slug names the commit it shipped.
type Release struct {
	ID        string
	Version   uint64
	CommitSHA string
	CreatedAt time.Time
}

// ListReleases returns every succeeded release for the app that carries a
// slug with a resolvable source commit, oldest first. Releases without a
// slug.commit (config-var-only releases, rollbacks to a release that
// predates slug metadata) are skipped; they carry no change-set signal.
func (c *Client) ListReleases(ctx context.Context) ([]Release, error) {
	rng := "version ..; order=asc, max=200"
	var out []Release
	for {
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/apps/%s/releases", c.base(), c.app), nil)
		if err != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeCreateClient, "build heroku releases request", err)
		}
		req.Header.Set("Accept", apiVersion)
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Range", rng)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeFetch, "list heroku releases", err)
		}
		var page []rawRelease
		decodeErr := json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
			return nil, fourkeyserr.New(fourkeyserr.CodeInvalidResponse, fmt.Sprintf("heroku releases returned %d", resp.StatusCode), nil)
		}
		if decodeErr != nil {
			return nil, fourkeyserr.New(fourkeyserr.CodeParse, "decode heroku releases", decodeErr)
		}

		for _, r := range page {
			if r.Status != "succeeded" || r.Slug == nil {
				continue
			}
			slug, err := c.getSlug(ctx, r.Slug.ID)
			if err != nil || slug.Commit == "" {
				// Slugs built before Heroku recorded commit metadata, or
				// built outside of a git-linked deploy, have no commit.
				continue
			}
			createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
			if err != nil {
				continue
			}
			out = append(out, Release{
				ID:        r.ID,
				Version:   r.Version,
				CommitSHA: slug.Commit,
				CreatedAt: createdAt,
			})
		}

		next := resp.Header.Get("Next-Range")
		if next == "" {
			break
		}
		rng = next
	}
	return out, nil
}

func (c *Client) getSlug(ctx context.Context, slugID string) (rawSlug, error) {
	var s rawSlug
	err := c.get(ctx, fmt.Sprintf("/apps/%s/slugs/%s", c.app, slugID), &s)
	return s, err
}
