package schema

import "time"

// Bucket groups deployments into one ISO week, UTC, Monday through Sunday.
type Bucket struct {
	Start       time.Time
	End         time.Time
	Deployments []DeploymentItemWithFirstOperation
}

// KeyMetrics is the set of derived DORA measurements computable from the
// deployment signal alone; ChangeFailureRate and MeanTimeToRecoverySeconds
// are reserved for a future incident source and always render as null.
type KeyMetrics struct {
	Deployments               int      `json:"deployments"`
	DeploymentFrequencyPerDay float64  `json:"deployment_frequency_per_day"`
	LeadTimeForChangesSeconds *int64   `json:"lead_time_for_changes_seconds"`
	ChangeFailureRate         *float64 `json:"change_failure_rate"`
	MeanTimeToRecoverySeconds *int64   `json:"mean_time_to_recovery_seconds"`
}

// WeeklyBucket is one rendered weekly entry in the output (spec §6.3).
type WeeklyBucket struct {
	WeekStart                 string                             `json:"week_start"`
	WeekEnd                   string                             `json:"week_end"`
	Deployments               []DeploymentItemWithFirstOperation `json:"deployments"`
	DeploymentsCount          int                                `json:"deployments_count"`
	DeploymentFrequencyPerDay float64                            `json:"deployment_frequency_per_day"`
	LeadTimeForChangesSeconds *int64                             `json:"lead_time_for_changes_seconds"`
}

// Context carries the denominators used to compute rates, plus the
// environment name the fetch was scoped to.
type Context struct {
	Developers         uint32  `json:"developers"`
	WorkingDaysPerWeek float32 `json:"working_days_per_week"`
	Environment        string  `json:"environment"`
}

// FourKeysResult is the full rendered output (spec §6.3). Field order here
// is the JSON field order: struct field order drives encoding/json output
// order, which is what gives the renderer its "stable field ordering".
type FourKeysResult struct {
	Project   string         `json:"project"`
	Since     time.Time      `json:"since"`
	Until     time.Time      `json:"until"`
	Context   Context        `json:"context"`
	Aggregate KeyMetrics     `json:"aggregate"`
	Weekly    []WeeklyBucket `json:"weekly"`
}
