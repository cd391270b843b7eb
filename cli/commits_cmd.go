package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/githubapi"
	"github.com/devmetrics/four-keys/render"
)

var commitsProjectFlag string

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Inspect a project's commit history",
}

var commitsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "List all commits, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		rp, err := resolveProject(commitsProjectFlag)
		if err != nil {
			return err
		}
		gh, err := githubapi.New(rp.ForgeToken, rp.Config.ForgeOwner, rp.Config.ForgeRepo)
		if err != nil {
			return err
		}
		commits, err := gh.ListCommits(cmd.Context())
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), commits)
	},
}

var (
	commitsCompareBase string
	commitsCompareHead string
)

var commitsCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Find the first commit on the exclusive range (base, head]",
	RunE: func(cmd *cobra.Command, args []string) error {
		if commitsCompareBase == "" || commitsCompareHead == "" {
			return argError{fmt.Errorf("--base and --head are required")}
		}
		rp, err := resolveProject(commitsProjectFlag)
		if err != nil {
			return err
		}
		gh, err := githubapi.New(rp.ForgeToken, rp.Config.ForgeOwner, rp.Config.ForgeRepo)
		if err != nil {
			return err
		}
		first, err := gh.FirstCommitBetween(cmd.Context(), commitsCompareBase, commitsCompareHead)
		if err != nil {
			return err
		}
		return render.JSON(cmd.OutOrStdout(), first)
	},
}

func init() {
	commitsCmd.PersistentFlags().StringVar(&commitsProjectFlag, "project", "", "project name")
	commitsCompareCmd.Flags().StringVar(&commitsCompareBase, "base", "", "base commit sha")
	commitsCompareCmd.Flags().StringVar(&commitsCompareHead, "head", "", "head commit sha")
	commitsCmd.AddCommand(commitsGetCmd, commitsCompareCmd)
	rootCmd.AddCommand(commitsCmd)
}
