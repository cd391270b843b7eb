package fourkeys

import (
	"testing"
	"time"

	"github.com/devmetrics/four-keys/schema"
)

func TestBucket_EmptyMiddleWeekIsEmitted(t *testing.T) {
	since := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)  // 2023-W01 Mon
	until := time.Date(2023, 1, 22, 23, 59, 59, 0, time.UTC) // 2023-W03 Sun

	items := []schema.DeploymentItemWithFirstOperation{
		{Deployment: schema.DeploymentItem{DeployedAt: time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC)}},
		{Deployment: schema.DeploymentItem{DeployedAt: time.Date(2023, 1, 16, 10, 0, 0, 0, time.UTC)}},
	}

	buckets := Bucket(items, since, until)
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	if len(buckets[1].Deployments) != 0 {
		t.Errorf("middle week should be empty, got %d deployments", len(buckets[1].Deployments))
	}
	if len(buckets[0].Deployments) != 1 || len(buckets[2].Deployments) != 1 {
		t.Errorf("expected one deployment in first and last weeks")
	}
}

func TestWeekStart_SundayRollsBackToMonday(t *testing.T) {
	sunday := time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC)
	got := weekStart(sunday)
	want := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("weekStart(%v) = %v, want %v", sunday, got, want)
	}
}
