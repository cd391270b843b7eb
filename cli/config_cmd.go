package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/render"
	"github.com/devmetrics/four-keys/schema"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the local configuration file",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), cfg)
	},
}

var configSetProjectFlag string

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Interactively add or update a project's configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.Load()
		if err != nil {
			return err
		}

		name := configSetProjectFlag
		reader := bufio.NewReader(cmd.InOrStdin())
		if name == "" {
			name = prompt(reader, cmd.OutOrStdout(), "Project name")
		}

		existing := cfg.Projects[name]
		project := schema.ProjectConfig{
			ForgeOwner:       promptDefault(reader, cmd.OutOrStdout(), "GitHub owner", existing.ForgeOwner),
			ForgeRepo:        promptDefault(reader, cmd.OutOrStdout(), "GitHub repo", existing.ForgeRepo),
			PaaSAppName:      promptDefault(reader, cmd.OutOrStdout(), "Heroku app (optional)", existing.PaaSAppName),
			DeploymentSource: schema.DeploymentSource(promptDefault(reader, cmd.OutOrStdout(), "Deployment source (GitHubDeployment|GitHubPullRequest|HerokuRelease)", string(existing.DeploymentSource))),
			// Per-project Heroku token override is set via `heroku login --project`,
			// not this generic prompt; carry it over untouched.
			PaaSAPIToken: existing.PaaSAPIToken,
		}
		if n, err := strconv.ParseUint(promptDefault(reader, cmd.OutOrStdout(), "Developer count", fmt.Sprintf("%d", existing.Developers)), 10, 32); err == nil {
			project.Developers = uint32(n)
		}
		if f, err := strconv.ParseFloat(promptDefault(reader, cmd.OutOrStdout(), "Working days per week", fmt.Sprintf("%g", existing.WorkingDaysPerWeek)), 32); err == nil {
			project.WorkingDaysPerWeek = float32(f)
		}

		if cfg.Projects == nil {
			cfg.Projects = map[string]schema.ProjectConfig{}
		}
		cfg.Projects[name] = project
		return store.Save(cfg)
	},
}

func prompt(r *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprintf(w, "%s: ", label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptDefault(r *bufio.Reader, w io.Writer, label, def string) string {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func init() {
	configSetCmd.Flags().StringVar(&configSetProjectFlag, "project", "", "project name to set (prompted if omitted)")
	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
