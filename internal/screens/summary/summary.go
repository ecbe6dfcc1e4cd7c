// Package summary shows the result of a quiz batch and its analysis.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/remediation"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	remscreen "github.com/abhisek/skillforge/internal/screens/remediation"
	"github.com/abhisek/skillforge/internal/session"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	deps     *screen.Deps
	summary  session.Summary
	analysis cognitive.Analysis
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(deps *screen.Deps, sum session.Summary, an cognitive.Analysis) *SummaryScreen {
	return &SummaryScreen{deps: deps, summary: sum, analysis: an}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) hasRemediation() bool {
	return s.deps.SignedIn() && len(remediation.Targets(s.deps.Learner.SkillGraph)) > 0
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.hasRemediation() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Remediate"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.hasRemediation() {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: remscreen.New(s.deps)}
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)) + "\n"
	}

	var b strings.Builder

	b.WriteString(center(theme.Title, "Quiz complete!"))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s · Duration: %d:%02d · Finished at %s", sum.Concept, mins, secs, sum.FinalDifficulty)))
	b.WriteString("\n")

	b.WriteString(center(theme.Body, fmt.Sprintf(
		"Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)))

	var tiers []string
	for _, d := range questionbank.AllDifficulties() {
		if n := sum.TierCounts[string(d)]; n > 0 {
			tiers = append(tiers, fmt.Sprintf("%s %d", d, n))
		}
	}
	if len(tiers) > 0 {
		b.WriteString(center(theme.Hint, strings.Join(tiers, " · ")))
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Cognitive insights"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n")

	if len(s.analysis.Insights) == 0 {
		b.WriteString(center(theme.Correct, "No problem patterns detected. Keep it up!"))
	}
	for _, in := range s.analysis.Insights {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderInsight(in, min(width-8, 70))))
		b.WriteString("\n")
	}

	if s.deps.SignedIn() {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint, renderProfile(s.deps.Learner.CognitiveProfile)))
	}

	return b.String()
}

// renderInsight renders one insight as a severity badge, message and
// recommendation.
func renderInsight(in cognitive.Insight, width int) string {
	badge := theme.SeverityStyle(in.Severity).Render(fmt.Sprintf("[%s · %s]", in.Severity, in.Type))
	body := lipgloss.NewStyle().Width(width).Render(
		badge + " " + theme.Body.Bold(true).Render(in.Message) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(in.Recommendation))
	return body
}

func renderProfile(p cognitive.Profile) string {
	return fmt.Sprintf("avg %.1fs · accuracy %.0f%% · impulsivity %.1f · hesitation %.1f · guessing %.1f",
		p.AverageSpeed, p.AverageAccuracy*100, p.ImpulsivityIndex, p.HesitationScore, p.GuessPattern)
}
