package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/config"
)

var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Manage GitHub credentials",
}

var githubLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a GitHub personal access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		fmt.Fprint(cmd.OutOrStdout(), "GitHub personal access token (ghp_...): ")
		line, _ := reader.ReadString('\n')
		token := strings.TrimSpace(line)

		if err := config.ValidateGitHubPersonalToken(token); err != nil {
			return err
		}

		cfg, err := store.Load()
		if err != nil {
			return err
		}
		cfg.ForgePersonalToken = token
		return store.Save(cfg)
	},
}

func init() {
	githubCmd.AddCommand(githubLoginCmd)
	rootCmd.AddCommand(githubCmd)
}
