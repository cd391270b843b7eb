package schema

// ProjectConfig holds the per-project parameters needed to run the
// pipeline: which repo to read, which deployment source to trust, and the
// team shape used to turn raw counts into per-developer rates.
type ProjectConfig struct {
	ForgeOwner         string           `json:"github_owner" validate:"required"`
	ForgeRepo          string           `json:"github_repo" validate:"required"`
	PaaSAppName        string           `json:"heroku_app,omitempty"`
	Developers         uint32           `json:"developers" validate:"required,min=1"`
	WorkingDaysPerWeek float32          `json:"working_days_per_week" validate:"required,gt=0,lte=7"`
	DeploymentSource   DeploymentSource `json:"deployment_source" validate:"required,oneof=GitHubDeployment GitHubPullRequest HerokuRelease"`

	// PaaSAPIToken overrides the top-level Heroku token for this project
	// alone. Empty means fall back to Config.PaaSAPIToken.
	PaaSAPIToken string `json:"heroku_api_token,omitempty"`
}

// Config is the top-level configuration file shape (spec §6.2).
type Config struct {
	ForgePersonalToken string                   `json:"github_personal_token,omitempty"`
	PaaSAPIToken       string                   `json:"heroku_authorization_token,omitempty"`
	Projects           map[string]ProjectConfig `json:"projects"`
}
