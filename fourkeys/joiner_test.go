package fourkeys

import (
	"context"
	"testing"
	"time"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

type stubGetter struct {
	commit schema.Commit
	err    error
}

func (s stubGetter) Get(ctx context.Context, base, head string) (schema.Commit, error) {
	return s.commit, s.err
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestJoin_SingleDeploymentNoPrior(t *testing.T) {
	head := schema.Commit{SHA: "head1", CommittedAt: mustParse(t, "2023-01-05T12:00:00Z")}
	repo := schema.RepositoryInfo{CreatedAt: mustParse(t, "2023-01-01T00:00:00Z")}
	items := []schema.DeploymentItem{{
		Info:       schema.DeploymentInfo{Kind: schema.DeploymentInfoForge, ID: "d1"},
		HeadCommit: head,
		Base:       schema.DeploymentBase{Kind: schema.BaseKindRepositoryInfo, RepositoryInfo: &repo},
		DeployedAt: mustParse(t, "2023-01-05T18:00:00Z"),
	}}

	out := Join(context.Background(), items, stubGetter{})
	if len(out) != 1 {
		t.Fatalf("got %d items, want 1", len(out))
	}
	if out[0].LeadTimeSecond == nil || *out[0].LeadTimeSecond != 21600 {
		t.Errorf("lead time = %v, want 21600", out[0].LeadTimeSecond)
	}
	if out[0].FirstOperation == nil || out[0].FirstOperation.Commit.SHA != "head1" {
		t.Errorf("expected self-as-first-commit fallback")
	}
}

func TestJoin_BaseEqualsHeadYieldsNoChangeSet(t *testing.T) {
	prev := schema.Commit{SHA: "same-sha"}
	items := []schema.DeploymentItem{{
		Info:       schema.DeploymentInfo{Kind: schema.DeploymentInfoForge, ID: "d2"},
		HeadCommit: schema.Commit{SHA: "same-sha"},
		Base:       schema.DeploymentBase{Kind: schema.BaseKindCommit, Commit: &prev},
		DeployedAt: mustParse(t, "2023-01-06T00:00:00Z"),
	}}

	getter := stubGetter{err: fourkeyserr.New(fourkeyserr.CodeBaseEqualsHead, "base equals head", nil)}
	out := Join(context.Background(), items, getter)
	if out[0].FirstOperation != nil {
		t.Errorf("expected nil first_operation on BaseEqualsHead")
	}
	if out[0].LeadTimeSecond != nil {
		t.Errorf("expected nil lead time on BaseEqualsHead")
	}
}

func TestJoin_ClockSkewYieldsUndefinedLeadTime(t *testing.T) {
	prev := schema.Commit{SHA: "prev-sha"}
	items := []schema.DeploymentItem{{
		Info:       schema.DeploymentInfo{Kind: schema.DeploymentInfoForge, ID: "d3"},
		HeadCommit: schema.Commit{SHA: "head-sha"},
		Base:       schema.DeploymentBase{Kind: schema.BaseKindCommit, Commit: &prev},
		DeployedAt: mustParse(t, "2023-01-05T00:00:00Z"),
	}}
	getter := stubGetter{commit: schema.Commit{SHA: "first-sha", CommittedAt: mustParse(t, "2023-01-06T00:00:00Z")}}

	out := Join(context.Background(), items, getter)
	if out[0].LeadTimeSecond != nil {
		t.Errorf("expected undefined lead time under clock skew, got %v", *out[0].LeadTimeSecond)
	}
}
