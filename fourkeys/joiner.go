package fourkeys

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devmetrics/four-keys/commit"
	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
)

var log = logrus.WithField("component", "fourkeys")

// Join resolves, for each deployment, the first commit of its change-set
// and the resulting lead time for changes. Ordering of items is
// preserved; the joiner never drops a deployment, only records a missing
// or undefined first_operation.
func Join(ctx context.Context, items []schema.DeploymentItem, getter commit.Getter) []schema.DeploymentItemWithFirstOperation {
	out := make([]schema.DeploymentItemWithFirstOperation, len(items))
	for i, d := range items {
		out[i] = schema.DeploymentItemWithFirstOperation{Deployment: d}

		if d.Base.Kind == schema.BaseKindRepositoryInfo {
			// No prior deployment and no known repository-initial sha:
			// the deployment is its own change-set of one.
			fc := d.HeadCommit
			out[i].FirstOperation = &schema.FirstOperation{Kind: schema.FirstOperationCommit, Commit: &fc}
			out[i].LeadTimeSecond = leadTime(d.DeployedAt, fc.CommittedAt)
			continue
		}

		first, err := getter.Get(ctx, d.Base.Commit.SHA, d.HeadCommit.SHA)
		if err != nil {
			var fkErr fourkeyserr.Error
			if errors.As(err, &fkErr) && fkErr.Code == fourkeyserr.CodeBaseEqualsHead {
				// Re-deploy with no new commits: no change-set, no lead time.
			} else {
				log.WithError(err).WithField("deployment_id", d.Info.ID).Warn("first-commit resolution failed; recording no change-set")
			}
			continue
		}

		fc := first
		out[i].FirstOperation = &schema.FirstOperation{Kind: schema.FirstOperationCommit, Commit: &fc}
		out[i].LeadTimeSecond = leadTime(d.DeployedAt, fc.CommittedAt)
	}
	return out
}

func leadTime(deployedAt, committedAt time.Time) *int64 {
	seconds := int64(deployedAt.Sub(committedAt).Seconds())
	if seconds < 0 {
		log.Warn("negative lead time from clock skew; recording as undefined")
		return nil
	}
	return &seconds
}
