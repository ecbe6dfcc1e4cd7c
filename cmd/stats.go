package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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
		limit, _ := cmd.Flags().GetInt("sessions")
		sessions, err := e.deps.Learners.Sessions(cmd.Context(), l.ID, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s>  mastery %.0f%%  attempts %d\n\n",
			l.Name, l.Email, l.SkillGraph.Average(), len(l.QuizHistory))
		printGraph(out, l.SkillGraph)
		fmt.Fprintln(out)
		printProfile(out, l.CognitiveProfile)
		fmt.Fprintln(out)

		mistakes, _ := cmd.Flags().GetInt("mistakes")
		printMistakes(out, e.deps.Bank, l.QuizHistory, mistakes)
		fmt.Fprintln(out)

		lipgloss.Fprintln(out, heading.Render("Recent sessions"))
		if len(sessions) == 0 {
			fmt.Fprintln(out, "  none")
		}
		for _, s := range sessions {
			fmt.Fprintf(out, "  %s  %-20s %2d/%-2d  %3.0f%%  ended at %s\n",
				s.StartedAt.Format("2006-01-02 15:04"), s.Concept,
				s.TotalCorrect, s.TotalQuestions, s.Accuracy*100, s.FinalDifficulty)
		}
		return nil
	},
}

func init() {
	addCredentialFlags(statsCmd)
	statsCmd.Flags().Int("sessions", 5, "Number of recent sessions to show")
	statsCmd.Flags().Int("mistakes", 3, "Number of recent wrong answers to show")
}

// printMistakes lists the latest wrong answers, newest first, with the
// correct option looked up in the bank.
func printMistakes(w io.Writer, bank *questionbank.Bank, log history.Log, limit int) {
	lipgloss.Fprintln(w, heading.Render("Recent mistakes"))
	shown := 0
	for i := len(log) - 1; i >= 0 && shown < limit; i-- {
		a := log[i]
		if a.Correct {
			continue
		}
		shown++
		q, err := bank.Get(a.QuestionID)
		if err != nil {
			fmt.Fprintf(w, "  %s  %s (not in the current bank)\n", a.Timestamp.Format("2006-01-02 15:04"), a.QuestionID)
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n      answer: %s\n", a.Timestamp.Format("2006-01-02 15:04"), q.Prompt, q.CorrectOption())
	}
	if shown == 0 {
		fmt.Fprintln(w, "  none")
	}
}
