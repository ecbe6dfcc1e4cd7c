package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/questionbank"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List concepts in the question bank (or the questions of one concept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank := questionbank.Default()
		if cfg.BankPath != "" {
			if bank, err = questionbank.LoadFile(cfg.BankPath); err != nil {
				return fmt.Errorf("load question bank: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		concept, _ := cmd.Flags().GetString("concept")
		c := questionbank.Concept(concept)
		if concept != "" && !bank.HasConcept(c) {
			return fmt.Errorf("no questions for concept %q", concept)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if concept != "" {
				return writeJSON(out, bank.ByConcept(c))
			}
			return writeJSON(out, bank.All())
		}

		if concept != "" {
			fmt.Fprintf(out, "%-16s  %-7s  %s\n", "ID", "Tier", "Question")
			fmt.Fprintln(out, strings.Repeat("─", 90))
			for _, q := range bank.ByConcept(c) {
				prompt := q.Prompt
				if len(prompt) > 60 {
					prompt = prompt[:57] + "..."
				}
				fmt.Fprintf(out, "%-16s  %-7s  %s\n", q.ID, q.Difficulty, prompt)
			}
			return nil
		}

		fmt.Fprintf(out, "%-22s  %5s  %6s  %5s  %5s\n", "Concept", "Easy", "Medium", "Hard", "Total")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, c := range bank.Concepts() {
			n := bank.CountByTier(c)
			fmt.Fprintf(out, "%-22s  %5d  %6d  %5d  %5d\n", c,
				n[questionbank.Easy], n[questionbank.Medium], n[questionbank.Hard], len(bank.ByConcept(c)))
		}
		fmt.Fprintf(out, "\n%d questions\n", bank.Len())
		return nil
	},
}

func init() {
	conceptsCmd.Flags().String("concept", "", "Show the questions of one concept (e.g. Recursion)")
	conceptsCmd.Flags().Bool("json", false, "Print the questions as JSON")
}
