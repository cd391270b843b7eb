package fourkeys

import (
	"time"

	"github.com/devmetrics/four-keys/schema"
)

// weekStart returns the Monday 00:00:00 UTC that begins t's ISO week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday: Sunday = 0 ... Saturday = 6. ISO weeks start Monday.
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	offset--
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

// Bucket groups deployments into ISO-week buckets spanning [since, until],
// including weeks with zero deployments (spec §4.4).
func Bucket(items []schema.DeploymentItemWithFirstOperation, since, until time.Time) []schema.Bucket {
	var buckets []schema.Bucket
	for start := weekStart(since); !start.After(until); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
		buckets = append(buckets, schema.Bucket{Start: start, End: end})
	}

	for _, item := range items {
		ws := weekStart(item.Deployment.DeployedAt)
		for i := range buckets {
			if buckets[i].Start.Equal(ws) {
				buckets[i].Deployments = append(buckets[i].Deployments, item)
				break
			}
		}
	}
	return buckets
}
