package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/selector"
	sess "github.com/abhisek/skillforge/internal/session"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.state == nil:
		return s.renderPicker(width, height)
	case s.quitConfirm:
		return renderQuitConfirm(width, height)
	case s.state.Phase == sess.PhaseFeedback:
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) renderPicker(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("What do you want to practice?"))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// infoLine renders the concept, progress and timer bar above the question.
func (s *SessionScreen) infoLine(width int) string {
	st := s.state
	mins := int(st.Elapsed.Minutes())
	secs := int(st.Elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  ·  %s", st.Concept, st.Difficulty))

	qn := min(st.Answered()+1, sess.BatchSize)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s %d:%02d",
			qn, sess.BatchSize,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.TotalCorrect(),
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			mins, secs,
		))

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	return line + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))) +
		"\n\n"
}

func (s *SessionScreen) renderQuestionView(width int) string {
	var b strings.Builder
	b.WriteString(s.infoLine(width))

	body := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	conf := "not reported"
	if s.confidence != nil {
		conf = fmt.Sprintf("%d/5", *s.confidence)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Confidence: "+conf+"   (press 1-5 before answering)")))
	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text) + "\n"
	}

	var b strings.Builder
	b.WriteString(s.infoLine(width))

	q := s.state.Current
	if s.last != nil && s.last.Correct {
		b.WriteString(center(theme.Correct, "Correct!"))
	} else {
		b.WriteString(center(theme.Incorrect, "Not quite"))
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"Correct answer: "+q.CorrectOption()))
	}
	b.WriteString("\n")

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	after := s.deps.Learner.SkillGraph.Level(s.state.Concept)
	b.WriteString(center(theme.LevelStyle(after),
		fmt.Sprintf("%s mastery %d → %d (%s)", s.state.Concept, s.levelBefore, after, skillgraph.Label(after))))

	switch selector.Decide(s.state.Window) {
	case selector.Promote:
		if s.state.Difficulty != s.state.Difficulty.Harder() {
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent),
				"Two quick correct answers. Next up: harder questions."))
		}
	case selector.Demote:
		if s.state.Difficulty != s.state.Difficulty.Easier() {
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
				"Stepping back a level to rebuild confidence."))
		}
	}

	b.WriteString("\n")
	b.WriteString(center(theme.Hint, "Press any key to continue"))
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Bold(true).Render("End this quiz?") + "\n\n" +
			theme.Hint.Render("Answers so far are kept and analysed."))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderError(width, height int, msg string) string {
	box := theme.Card.Render(
		theme.ErrorText.Render(msg) + "\n\n" + theme.Hint.Render("Press any key to go back"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
