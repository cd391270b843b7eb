package fourkeys

import (
	"context"
	"time"

	"github.com/devmetrics/four-keys/commit"
	"github.com/devmetrics/four-keys/deployment"
	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/schema"
)

// Params configures one pipeline run.
type Params struct {
	Project            string
	Since              time.Time
	Until              time.Time
	Environment        string
	Developers         uint32
	WorkingDaysPerWeek float32
	Source             schema.DeploymentSource

	ForgeToken string
	ForgeOwner string
	ForgeRepo  string
	PaaSToken  string
	PaaSApp    string
}

// Run drives fetch → join → bucket → aggregate for one project and
// returns the result for the caller to render (spec §2's single linear
// pipeline).
func Run(ctx context.Context, p Params) (schema.FourKeysResult, error) {
	fetcher, err := deployment.New(p.Source, deployment.Config{
		ForgeToken:  p.ForgeToken,
		PaaSToken:   p.PaaSToken,
		ForgeOwner:  p.ForgeOwner,
		ForgeRepo:   p.ForgeRepo,
		PaaSApp:     p.PaaSApp,
		Environment: p.Environment,
	})
	if err != nil {
		return schema.FourKeysResult{}, err
	}

	items, err := fetcher.Fetch(ctx, p.Since, p.Until)
	if err != nil {
		return schema.FourKeysResult{}, err
	}

	gh, err := githubapi.New(p.ForgeToken, p.ForgeOwner, p.ForgeRepo)
	if err != nil {
		return schema.FourKeysResult{}, err
	}
	getter := commit.NewForgeGetter(gh)

	joined := Join(ctx, items, getter)
	buckets := Bucket(joined, p.Since, p.Until)

	weekly := make([]schema.WeeklyBucket, len(buckets))
	for i, b := range buckets {
		weekly[i] = BucketMetrics(b, p.WorkingDaysPerWeek, p.Developers)
	}

	return schema.FourKeysResult{
		Project: p.Project,
		Since:   p.Since,
		Until:   p.Until,
		Context: schema.Context{
			Developers:         p.Developers,
			WorkingDaysPerWeek: p.WorkingDaysPerWeek,
			Environment:        p.Environment,
		},
		Aggregate: AggregateMetrics(buckets, p.Since, p.Until, p.WorkingDaysPerWeek, p.Developers),
		Weekly:    weekly,
	}, nil
}
