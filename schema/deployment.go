package schema

import "time"

// DeploymentSource selects which upstream system a project's deployment
// signal is read from. Mirrors the three variants the pipeline can fetch
// from.
type DeploymentSource string

const (
	SourceGitHubDeployment  DeploymentSource = "GitHubDeployment"
	SourceGitHubPullRequest DeploymentSource = "GitHubPullRequest"
	SourceHerokuRelease     DeploymentSource = "HerokuRelease"
)

// DeploymentInfoKind tags which concrete shape DeploymentInfo carries.
type DeploymentInfoKind string

const (
	DeploymentInfoForge DeploymentInfoKind = "forge_deployment"
	DeploymentInfoPaaS  DeploymentInfoKind = "paas_release"
)

// DeploymentInfo is the tagged-variant identity of a deployment event,
// distinct from where its head commit and timing came from.
type DeploymentInfo struct {
	Kind DeploymentInfoKind `json:"kind"`
	ID   string             `json:"id"`
	// Version is only set when Kind == DeploymentInfoPaaS.
	Version uint64 `json:"version,omitempty"`
}

// BaseKind tags whether a DeploymentItem's base is a prior commit or the
// repository-creation marker (the first deployment in history has no
// prior commit to diff against).
type BaseKind string

const (
	BaseKindCommit         BaseKind = "commit"
	BaseKindRepositoryInfo BaseKind = "repository_info"
)

// DeploymentBase is either the previous deployment's head commit or the
// repository-creation marker.
type DeploymentBase struct {
	Kind           BaseKind        `json:"kind"`
	Commit         *Commit         `json:"commit,omitempty"`
	RepositoryInfo *RepositoryInfo `json:"repository_info,omitempty"`
}

// DeploymentItem is one normalized deployment event as produced by a
// DeploymentsFetcher, before change-set resolution.
//
// Invariants: HeadCommit.CommittedAt <= DeployedAt; within one fetch result,
// DeployedAt is monotonically non-decreasing.
type DeploymentItem struct {
	Info         DeploymentInfo `json:"info"`
	HeadCommit   Commit         `json:"head_commit"`
	Base         DeploymentBase `json:"base"`
	CreatorLogin string         `json:"creator_login,omitempty"`
	DeployedAt   time.Time      `json:"deployed_at"`
}

// DeploymentItemWithFirstOperation attaches the resolved change-set first
// commit (or the repository-creation fallback, or nothing) to a deployment.
type DeploymentItemWithFirstOperation struct {
	Deployment     DeploymentItem  `json:"deployment"`
	FirstOperation *FirstOperation `json:"first_operation"`
	LeadTimeSecond *int64          `json:"lead_time_for_changes_seconds"`
}
