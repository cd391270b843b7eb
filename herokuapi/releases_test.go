package herokuapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListReleases_SkipsFailedAndSlugless(t *testing.T) {
	callCount := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/apps/acme-app/releases", func(w http.ResponseWriter, r *http.Request) {
		callCount++
		releases := []rawRelease{
			{ID: "r1", Version: 1, Status: "succeeded", CreatedAt: "2023-01-01T00:00:00Z", Slug: &struct {
				ID string `json:"id"`
			}{ID: "slug-1"}},
			{ID: "r2", Version: 2, Status: "failed", CreatedAt: "2023-01-02T00:00:00Z"},
			{ID: "r3", Version: 3, Status: "succeeded", CreatedAt: "2023-01-03T00:00:00Z"},
		}
		_ = json.NewEncoder(w).Encode(releases)
	})
	mux.HandleFunc("/apps/acme-app/slugs/slug-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(rawSlug{Commit: "deadbeef"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New("test-token", "acme-app")
	c.http.RetryMax = 0
	c.baseURLOverride = srv.URL

	releases, err := c.ListReleases(context.Background())
	if err != nil {
		t.Fatalf("ListReleases: %v", err)
	}
	if len(releases) != 1 {
		t.Fatalf("got %d releases, want 1", len(releases))
	}
	if releases[0].CommitSHA != "deadbeef" {
		t.Errorf("CommitSHA = %q, want deadbeef", releases[0].CommitSHA)
	}
	if releases[0].Version != 1 {
		t.Errorf("Version = %d, want 1", releases[0].Version)
	}
}
