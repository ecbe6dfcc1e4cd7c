// Package remediation is the micro-drill screen for weak concepts.
package remediation

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/remediation"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// RemediationScreen lists weak concepts and runs a drill on the chosen one.
type RemediationScreen struct {
	deps    *screen.Deps
	targets components.Menu
	drill   *remediation.Drill
	input   components.TextInput
	result  *remediation.Result
	errMsg  string
}

var _ screen.Screen = (*RemediationScreen)(nil)
var _ screen.KeyHintProvider = (*RemediationScreen)(nil)
var _ screen.StatusProvider = (*RemediationScreen)(nil)

// New creates a RemediationScreen showing the learner's weak concepts.
func New(deps *screen.Deps) *RemediationScreen {
	s := &RemediationScreen{deps: deps}

	var items []components.MenuItem
	for _, e := range remediation.Targets(deps.Learner.SkillGraph) {
		desc := fmt.Sprintf("level %d", e.Level)
		if e.WeaknessType != "" {
			desc += ", " + string(e.WeaknessType) + " weakness"
		}
		items = append(items, components.MenuItem{
			Label:       string(e.Concept),
			Description: desc,
			Action:      func() tea.Cmd { return s.start(e.Concept) },
		})
	}
	s.targets = components.NewMenu(items)
	return s
}

// NewForConcept opens a drill on concept directly.
func NewForConcept(deps *screen.Deps, concept questionbank.Concept) *RemediationScreen {
	s := New(deps)
	s.start(concept)
	return s
}

func (s *RemediationScreen) start(c questionbank.Concept) tea.Cmd {
	d, err := remediation.NewDrill(c)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.drill = d
	s.result = nil
	s.input = components.NewTextInput("Answer", "type your answer", 64)
	return s.input.Focus()
}

func (s *RemediationScreen) Init() tea.Cmd {
	if s.drill != nil {
		return s.input.Focus()
	}
	return nil
}

func (s *RemediationScreen) Title() string {
	return "Remediation"
}

// Status shows drill progress.
func (s *RemediationScreen) Status() string {
	switch {
	case s.drill == nil:
		return ""
	case s.drill.Completed:
		return "Drill complete"
	}
	n, total := s.drill.Progress()
	return fmt.Sprintf("Drill %d/%d", n, total)
}

func (s *RemediationScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.drill == nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start drill"},
			{Key: "Esc", Description: "Back"},
		}
	case s.drill.Completed:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RemediationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)

	if s.drill == nil {
		if !ok {
			return s, nil
		}
		var cmd tea.Cmd
		s.targets, cmd = s.targets.Update(kmsg)
		return s, cmd
	}

	if ok && kmsg.String() == "enter" {
		if s.drill.Completed {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.check()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// check grades the typed answer and applies the level change.
func (s *RemediationScreen) check() {
	res, err := s.drill.Check(s.input.Value())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.result = &res

	l := s.deps.Learner
	l.ApplyRemediation(s.drill.Content.Concept, res.Correct, time.Now())
	if err := s.deps.Learners.Save(context.Background(), l); err != nil {
		s.deps.Log().Error("save remediation", "learner", l.ID, "error", err)
	}
	s.deps.Log().Debug("remediation answer",
		"concept", s.drill.Content.Concept, "correct", res.Correct, "delta", res.Delta)

	if res.Correct {
		s.input.Reset()
	} else {
		s.input.Submit(false)
	}
}

func (s *RemediationScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render(s.errMsg))
	}
	if s.drill == nil {
		return s.renderTargets(width, height)
	}
	return s.renderDrill(width)
}

func (s *RemediationScreen) renderTargets(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Concepts that need attention"))
	b.WriteString("\n\n")
	if len(s.targets.Items) == 0 {
		b.WriteString(theme.Correct.Render("Nothing below 50. No remediation needed right now."))
	} else {
		b.WriteString(s.targets.View())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *RemediationScreen) renderDrill(width int) string {
	c := s.drill.Content
	w := min(width-8, 76)
	block := lipgloss.NewStyle().Width(w)

	var b strings.Builder
	b.WriteString(theme.Title.Width(w).Render(string(c.Concept) + " refresher"))
	b.WriteString("\n\n")
	b.WriteString(block.Foreground(theme.Text).Render(c.Lesson))
	b.WriteString("\n\n")
	b.WriteString(block.Foreground(theme.Secondary).Render(c.Visualization))
	b.WriteString("\n\n")

	level := s.deps.Learner.SkillGraph.Level(c.Concept)
	b.WriteString(components.NewLevelBar("Mastery", level, w).View())
	b.WriteString("\n\n")

	if s.drill.Completed {
		b.WriteString(theme.Correct.Render(fmt.Sprintf(
			"Drill complete! %d correct, %d retries.", s.drill.Correct, s.drill.Incorrect)))
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
	}

	n, total := s.drill.Progress()
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Problem %d of %d", n, total)))
	b.WriteString("\n")
	b.WriteString(block.Foreground(theme.Text).Bold(true).Render(s.drill.Current().Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	if r := s.result; r != nil {
		if r.Correct {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! +%d", r.Delta)))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite (%d). Try again.", r.Delta)))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
