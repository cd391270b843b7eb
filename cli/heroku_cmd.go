package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/herokuapi"
	"github.com/devmetrics/four-keys/render"
)

var herokuCmd = &cobra.Command{
	Use:   "heroku",
	Short: "Manage Heroku credentials and inspect release history",
}

var herokuLoginProjectFlag string

var herokuLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a Heroku API token",
	Long:  "Stores a Heroku API token. With --project, the token is scoped to that project only, overriding the global token.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		fmt.Fprint(cmd.OutOrStdout(), "Heroku API token: ")
		line, _ := reader.ReadString('\n')
		token := strings.TrimSpace(line)
		if token == "" {
			return argError{fmt.Errorf("heroku API token is required")}
		}

		cfg, err := store.Load()
		if err != nil {
			return err
		}
		if herokuLoginProjectFlag == "" {
			cfg.PaaSAPIToken = token
			return store.Save(cfg)
		}
		project, ok := cfg.Projects[herokuLoginProjectFlag]
		if !ok {
			return argError{fmt.Errorf("unknown project %q", herokuLoginProjectFlag)}
		}
		project.PaaSAPIToken = token
		cfg.Projects[herokuLoginProjectFlag] = project
		return store.Save(cfg)
	},
}

var herokuReleasesProjectFlag string

var herokuReleasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List succeeded releases for a project's Heroku app",
	RunE: func(cmd *cobra.Command, args []string) error {
		rp, err := resolveProject(herokuReleasesProjectFlag)
		if err != nil {
			return err
		}
		if rp.Config.PaaSAppName == "" {
			return fmt.Errorf("project %s has no heroku_app configured", rp.Name)
		}
		hk := herokuapi.New(rp.PaaSToken, rp.Config.PaaSAppName)
		releases, err := hk.ListReleases(cmd.Context())
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), releases)
	},
}

func init() {
	herokuLoginCmd.Flags().StringVar(&herokuLoginProjectFlag, "project", "", "scope this token to one project instead of the global default")
	herokuReleasesCmd.Flags().StringVar(&herokuReleasesProjectFlag, "project", "", "project name")
	herokuCmd.AddCommand(herokuLoginCmd, herokuReleasesCmd)
	rootCmd.AddCommand(herokuCmd)
}
