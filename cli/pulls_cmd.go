package cli

import (
	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/render"
)

var pullsProjectFlag string
var pullsBaseFlag string

var pullsCmd = &cobra.Command{
	Use:   "pulls",
	Short: "Inspect a project's merged pull requests",
}

var pullsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "List merged pull requests targeting the production branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		rp, err := resolveProject(pullsProjectFlag)
		if err != nil {
			return err
		}
		gh, err := githubapi.New(rp.ForgeToken, rp.Config.ForgeOwner, rp.Config.ForgeRepo)
		if err != nil {
			return err
		}
		base := pullsBaseFlag
		if base == "" {
			base = "production"
		}
		prs, err := gh.ListMergedPullRequests(cmd.Context(), base)
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), prs)
	},
}

func init() {
	pullsCmd.PersistentFlags().StringVar(&pullsProjectFlag, "project", "", "project name")
	pullsGetCmd.Flags().StringVar(&pullsBaseFlag, "base", "", "base branch (default production)")
	pullsCmd.AddCommand(pullsGetCmd)
	rootCmd.AddCommand(pullsCmd)
}
