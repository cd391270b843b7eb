package fourkeys

import (
	"sort"
	"time"

	"github.com/devmetrics/four-keys/schema"
)

// medianLeadTime returns the median of the defined per-deployment lead
// times among items, or nil if none are defined.
func medianLeadTime(items []schema.DeploymentItemWithFirstOperation) *int64 {
	var values []int64
	for _, item := range items {
		if item.LeadTimeSecond != nil {
			values = append(values, *item.LeadTimeSecond)
		}
	}
	if len(values) == 0 {
		return nil
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	mid := len(values) / 2
	var median int64
	if len(values)%2 == 1 {
		median = values[mid]
	} else {
		median = (values[mid-1] + values[mid]) / 2
	}
	return &median
}

func frequencyPerDay(count int, workingDaysPerWeek float32, developers uint32, weeks float64) float64 {
	denom := float64(workingDaysPerWeek) * float64(developers) * weeks
	if denom == 0 {
		return 0
	}
	return float64(count) / denom
}

// BucketMetrics computes a single bucket's derived measurements.
func BucketMetrics(b schema.Bucket, workingDaysPerWeek float32, developers uint32) schema.WeeklyBucket {
	return schema.WeeklyBucket{
		WeekStart:                 b.Start.Format("2006-01-02"),
		WeekEnd:                   b.End.Format("2006-01-02"),
		Deployments:               b.Deployments,
		DeploymentsCount:          len(b.Deployments),
		DeploymentFrequencyPerDay: frequencyPerDay(len(b.Deployments), workingDaysPerWeek, developers, 1),
		LeadTimeForChangesSeconds: medianLeadTime(b.Deployments),
	}
}

// AggregateMetrics computes the window-wide measurements across all
// buckets (spec §4.4's "aggregate" formulae).
func AggregateMetrics(buckets []schema.Bucket, since, until time.Time, workingDaysPerWeek float32, developers uint32) schema.KeyMetrics {
	var all []schema.DeploymentItemWithFirstOperation
	for _, b := range buckets {
		all = append(all, b.Deployments...)
	}

	weeks := until.Sub(since).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}

	return schema.KeyMetrics{
		Deployments:               len(all),
		DeploymentFrequencyPerDay: frequencyPerDay(len(all), workingDaysPerWeek, developers, weeks),
		LeadTimeForChangesSeconds: medianLeadTime(all),
		ChangeFailureRate:         nil,
		MeanTimeToRecoverySeconds: nil,
	}
}
