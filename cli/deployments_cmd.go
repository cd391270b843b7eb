package cli

import (
	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/render"
)

var (
	deploymentsProjectFlag     string
	deploymentsEnvironmentFlag string
)

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "Inspect a project's forge-native deployment history",
}

var deploymentsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "List deployments for an environment, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rp, err := resolveProject(deploymentsProjectFlag)
		if err != nil {
			return err
		}
		gh, err := githubapi.New(rp.ForgeToken, rp.Config.ForgeOwner, rp.Config.ForgeRepo)
		if err != nil {
			return err
		}
		env := deploymentsEnvironmentFlag
		if env == "" {
			env = "production"
		}
		deployments, err := gh.ListDeployments(cmd.Context(), env)
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), deployments)
	},
}

func init() {
	deploymentsCmd.PersistentFlags().StringVar(&deploymentsProjectFlag, "project", "", "project name")
	deploymentsGetCmd.Flags().StringVar(&deploymentsEnvironmentFlag, "environment", "", "environment name (default production)")
	deploymentsCmd.AddCommand(deploymentsGetCmd)
	rootCmd.AddCommand(deploymentsCmd)
}
