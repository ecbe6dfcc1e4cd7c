package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/remediation"
)

var remediateCmd = &cobra.Command{
	Use:   "remediate",
	Short: "Work on weak concepts",
}

var remediateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List concepts below the weak threshold, weakest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openCLIEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := authenticate(cmd, e)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		targets := remediation.Targets(l.SkillGraph)
		if len(targets) == 0 {
			fmt.Fprintln(out, "No weak concepts. Nice work.")
			return nil
		}
		for _, t := range targets {
			c, _ := remediation.ContentFor(t.Concept)
			weakness := ""
			if t.WeaknessType != "" {
				weakness = " [" + string(t.WeaknessType) + "]"
			}
			fmt.Fprintf(out, "%-20s level %3d%s\n    %s\n", t.Concept, t.Level, weakness, c.Lesson)
		}
		return nil
	},
}

func init() {
	addCredentialFlags(remediateListCmd)
	remediateCmd.AddCommand(remediateListCmd)
}
