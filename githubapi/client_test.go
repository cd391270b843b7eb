package githubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
)

// newTestClient points a Client at an httptest server, following the
// standard go-github testing convention of overriding BaseURL.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	gh.BaseURL = base

	return &Client{gh: gh, Owner: "acme", Repo: "widgets"}, srv.Close
}

func TestFirstCommitBetween_EmptyBaseOrHead(t *testing.T) {
	c := &Client{Owner: "acme", Repo: "widgets"}
	if _, err := c.FirstCommitBetween(context.Background(), "", "head"); err == nil {
		t.Fatal("expected error for empty base")
	}
}

func TestFirstCommitBetween_BaseEqualsHead(t *testing.T) {
	c := &Client{Owner: "acme", Repo: "widgets"}
	if _, err := c.FirstCommitBetween(context.Background(), "sha1", "sha1"); err == nil {
		t.Fatal("expected error when base equals head")
	}
}

func TestFirstCommitBetween_ReturnsFirstCommitOfComparison(t *testing.T) {
	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"commits": []map[string]any{
				{
					"sha": "oldest-sha",
					"commit": map[string]any{
						"message": "oldest change",
						"author":  map[string]any{"date": "2023-01-01T00:00:00Z"},
					},
					"html_url": "https://github.com/acme/widgets/commit/oldest-sha",
				},
				{
					"sha": "newer-sha",
					"commit": map[string]any{
						"message": "newer change",
						"author":  map[string]any{"date": "2023-01-02T00:00:00Z"},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	defer closeFn()

	got, err := c.FirstCommitBetween(context.Background(), "base-sha", "head-sha")
	if err != nil {
		t.Fatalf("FirstCommitBetween: %v", err)
	}
	if got.SHA != "oldest-sha" {
		t.Errorf("SHA = %q, want oldest-sha", got.SHA)
	}
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.CommittedAt.Equal(want) {
		t.Errorf("CommittedAt = %v, want %v", got.CommittedAt, want)
	}
}
