package fourkeys

import (
	"testing"
	"time"

	"github.com/devmetrics/four-keys/schema"
)

func int64p(n int64) *int64 { return &n }

func TestMedianLeadTime_OddAndEvenCounts(t *testing.T) {
	items := []schema.DeploymentItemWithFirstOperation{
		{LeadTimeSecond: int64p(100)},
		{LeadTimeSecond: int64p(300)},
		{LeadTimeSecond: int64p(200)},
	}
	got := medianLeadTime(items)
	if got == nil || *got != 200 {
		t.Fatalf("median = %v, want 200", got)
	}

	items = append(items, schema.DeploymentItemWithFirstOperation{LeadTimeSecond: int64p(400)})
	got = medianLeadTime(items)
	if got == nil || *got != 250 {
		t.Fatalf("median = %v, want 250", got)
	}
}

func TestMedianLeadTime_NoDefinedValues(t *testing.T) {
	items := []schema.DeploymentItemWithFirstOperation{{}, {}}
	if got := medianLeadTime(items); got != nil {
		t.Fatalf("median = %v, want nil", got)
	}
}

func TestBucketMetrics_FrequencyDenominator(t *testing.T) {
	b := schema.Bucket{Deployments: make([]schema.DeploymentItemWithFirstOperation, 5)}
	wb := BucketMetrics(b, 5.0, 5)
	if wb.DeploymentFrequencyPerDay != 0.2 {
		t.Errorf("frequency = %v, want 0.2", wb.DeploymentFrequencyPerDay)
	}
}

func TestAggregateMetrics_SumsWeeklyCounts(t *testing.T) {
	buckets := []schema.Bucket{
		{Deployments: make([]schema.DeploymentItemWithFirstOperation, 2)},
		{Deployments: make([]schema.DeploymentItemWithFirstOperation, 3)},
	}
	since := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	agg := AggregateMetrics(buckets, since, until, 5.0, 5)
	if agg.Deployments != 5 {
		t.Errorf("aggregate deployments = %d, want 5", agg.Deployments)
	}
}
