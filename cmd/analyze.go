package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a cognitive analysis over the learner's recent attempts",
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
		if len(l.QuizHistory) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts yet. Take a quiz first.")
			return nil
		}

		an, err := e.deps.Learners.Analyze(cmd.Context(), l)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), an)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Analysed the last %d of %d attempts.\n\n", len(an.Window), len(l.QuizHistory))
		printInsights(out, an.Insights)
		fmt.Fprintln(out)
		printProfile(out, l.CognitiveProfile)
		return nil
	},
}

func init() {
	addCredentialFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("json", false, "Print the analysis as JSON")
}
