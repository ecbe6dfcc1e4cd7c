package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var learnersCmd = &cobra.Command{
	Use:   "learners",
	Short: "List recently active learners on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openCLIEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		ls, err := e.deps.Learners.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, l := range ls {
			fmt.Fprintf(out, "%-42s  %-24s  %-28s  %4.0f%%\n", l.ID, l.Name, l.Email, l.SkillGraph.Average())
		}
		fmt.Fprintf(out, "\n%d learners\n", len(ls))
		return nil
	},
}

func init() {
	learnersCmd.Flags().Int("limit", 20, "Maximum number of learners")
}
