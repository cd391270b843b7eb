// Package config loads and persists the single per-user JSON configuration
// file that backs every project (spec §6.2). It is read once at startup and
// never re-read during a pipeline run; writes are done only by the
// interactive setup subcommands and use create-temp-then-rename atomicity.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devmetrics/four-keys/fourkeyserr"
	"github.com/devmetrics/four-keys/schema"
	"github.com/go-playground/validator/v10"
)

const (
	appDirName       = "four-keys"
	fileName         = "config.json"
	forgeTokenPrefix = "ghp_"
)

var validate = validator.New()

// Store owns the on-disk configuration file.
type Store struct {
	path string
}

// Default locates the store at the OS-conventional user-config directory,
// e.g. ~/.config/four-keys/config.json on Linux.
func Default() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fourkeyserr.New(fourkeyserr.CodeConfig, "cannot locate user config directory", err)
	}
	return &Store{path: filepath.Join(dir, appDirName, fileName)}, nil
}

// Path returns the file path this store reads from and writes to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration file. A missing file is not an error: it
// returns an empty Config so first-run flows (github login, config set)
// can populate it.
func (s *Store) Load() (schema.Config, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return schema.Config{Projects: map[string]schema.ProjectConfig{}}, nil
	}
	if err != nil {
		return schema.Config{}, fourkeyserr.New(fourkeyserr.CodeConfig, "failed to read config file "+s.path, err)
	}
	var cfg schema.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return schema.Config{}, fourkeyserr.New(fourkeyserr.CodeConfig, "failed to parse config file "+s.path, err)
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]schema.ProjectConfig{}
	}
	return cfg, nil
}

// Save writes the configuration file atomically: it writes to a temp file
// in the same directory and renames it over the target, so a concurrent
// reader never observes a partial write.
func (s *Store) Save(cfg schema.Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to create config directory "+dir, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to marshal config", err)
	}
	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to create temp config file", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to write temp config file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to close temp config file", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to chmod temp config file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fourkeyserr.New(fourkeyserr.CodeConfig, "failed to replace config file", err)
	}
	return nil
}

// Project looks up a single project's config, validating it and resolving
// its credentials against the top-level tokens.
func (s *Store) Project(cfg schema.Config, name string) (schema.ProjectConfig, string, string, error) {
	project, ok := cfg.Projects[name]
	if !ok {
		return schema.ProjectConfig{}, "", "", fourkeyserr.New(fourkeyserr.CodeConfig, fmt.Sprintf("no such project: %s", name), nil)
	}
	if err := validate.Struct(project); err != nil {
		return schema.ProjectConfig{}, "", "", fourkeyserr.New(fourkeyserr.CodeConfig, "invalid project config for "+name, err)
	}
	forgeToken := cfg.ForgePersonalToken
	if err := ValidateGitHubPersonalToken(forgeToken); err != nil {
		return schema.ProjectConfig{}, "", "", err
	}
	paasToken := project.PaaSAPIToken
	if paasToken == "" {
		paasToken = cfg.PaaSAPIToken
	}
	return project, forgeToken, paasToken, nil
}

// ValidateGitHubPersonalToken enforces the "ghp_" prefix rule (spec §6.2),
// grounded on the original tool's validate_github_personal_token workflow:
// empty is "Required", non-matching prefix is "InvalidToken".
func ValidateGitHubPersonalToken(token string) error {
	if token == "" {
		return fourkeyserr.New(fourkeyserr.CodeConfig, "GitHub personal token is required", nil)
	}
	if len(token) < len(forgeTokenPrefix) || token[:len(forgeTokenPrefix)] != forgeTokenPrefix {
		return fourkeyserr.New(fourkeyserr.CodeConfig, "GitHub personal token is invalid", nil)
	}
	return nil
}
