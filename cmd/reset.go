package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's progress (history, profile and skill graph)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset deletes all progress; pass --yes to confirm")
		}

		e, err := openCLIEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := authenticate(cmd, e)
		if err != nil {
			return err
		}
		if err := e.deps.Learners.Reset(cmd.Context(), l); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %s reset.\n", l.Email)
		return nil
	},
}

func init() {
	addCredentialFlags(resetCmd)
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
