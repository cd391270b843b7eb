package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/fourkeys"
	"github.com/devmetrics/four-keys/render"
)

var (
	fourKeysProjectFlag     string
	fourKeysSinceFlag       string
	fourKeysUntilFlag       string
	fourKeysEnvironmentFlag string
)

var fourKeysCmd = &cobra.Command{
	Use:   "four-keys",
	Short: "Compute deployment frequency and lead time for changes",
}

var fourKeysGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Run the metrics pipeline and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		rp, err := resolveProject(fourKeysProjectFlag)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		since, err := parseDateFlag(fourKeysSinceFlag, now.AddDate(0, 0, -90))
		if err != nil {
			return argError{err}
		}
		until, err := parseDateFlag(fourKeysUntilFlag, now)
		if err != nil {
			return argError{err}
		}

		env := fourKeysEnvironmentFlag
		if env == "" {
			env = "production"
		}

		result, err := fourkeys.Run(cmd.Context(), fourkeys.Params{
			Project:            rp.Name,
			Since:              since,
			Until:              until,
			Environment:        env,
			Developers:         rp.Config.Developers,
			WorkingDaysPerWeek: rp.Config.WorkingDaysPerWeek,
			Source:             rp.Config.DeploymentSource,
			ForgeToken:         rp.ForgeToken,
			ForgeOwner:         rp.Config.ForgeOwner,
			ForgeRepo:          rp.Config.ForgeRepo,
			PaaSToken:          rp.PaaSToken,
			PaaSApp:            rp.Config.PaaSAppName,
		})
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	fourKeysCmd.PersistentFlags().StringVar(&fourKeysProjectFlag, "project", "", "project name")
	fourKeysGetCmd.Flags().StringVar(&fourKeysSinceFlag, "since", "", "window start, YYYY-MM-DD (default 90 days ago)")
	fourKeysGetCmd.Flags().StringVar(&fourKeysUntilFlag, "until", "", "window end, YYYY-MM-DD (default now)")
	fourKeysGetCmd.Flags().StringVar(&fourKeysEnvironmentFlag, "environment", "", "environment name (default production)")
	fourKeysCmd.AddCommand(fourKeysGetCmd)
	rootCmd.AddCommand(fourKeysCmd)
}
