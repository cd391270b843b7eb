package deployment

import (
	"testing"
	"time"

	"github.com/devmetrics/four-keys/schema"
)

func TestNew_UnknownSourceErrors(t *testing.T) {
	_, err := New(schema.DeploymentSource("NotASource"), Config{})
	if err == nil {
		t.Fatal("expected error for unknown deployment source")
	}
}

func TestNew_KnownSourcesResolve(t *testing.T) {
	cfg := Config{
		ForgeToken: "ghp_test",
		ForgeOwner: "acme",
		ForgeRepo:  "widgets",
		PaaSToken:  "hk-token",
		PaaSApp:    "widgets-app",
	}
	for _, src := range []schema.DeploymentSource{
		schema.SourceGitHubDeployment,
		schema.SourceGitHubPullRequest,
		schema.SourceHerokuRelease,
	} {
		if _, err := New(src, cfg); err != nil {
			t.Errorf("New(%s): %v", src, err)
		}
	}
}

func TestSortByDeployedAt_TiesBreakByInfoID(t *testing.T) {
	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	items := []schema.DeploymentItem{
		{Info: schema.DeploymentInfo{ID: "20"}, DeployedAt: at},
		{Info: schema.DeploymentInfo{ID: "3"}, DeployedAt: at},
		{Info: schema.DeploymentInfo{ID: "100"}, DeployedAt: at.Add(-time.Hour)},
	}

	sortByDeployedAt(items)

	want := []string{"100", "20", "3"}
	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.Info.ID
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
