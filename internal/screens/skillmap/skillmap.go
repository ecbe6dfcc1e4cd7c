// Package skillmap is the learner dashboard: mastery per concept plus the
// current cognitive profile.
package skillmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/learner"
	"github.com/abhisek/skillforge/internal/remediation"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	remscreen "github.com/abhisek/skillforge/internal/screens/remediation"
	sessionscreen "github.com/abhisek/skillforge/internal/screens/session"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

type analysisLoadedMsg struct {
	Record *learner.AnalysisRecord
	Err    error
}

// SkillMapScreen displays the learner's skill graph and profile.
type SkillMapScreen struct {
	deps   *screen.Deps
	cursor int
	latest *learner.AnalysisRecord
	errMsg string
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen.
func New(deps *screen.Deps) *SkillMapScreen {
	return &SkillMapScreen{deps: deps}
}

func (s *SkillMapScreen) Init() tea.Cmd {
	learners, id := s.deps.Learners, s.deps.Learner.ID
	return func() tea.Msg {
		recs, err := learners.Analyses(context.Background(), id, 1)
		if err != nil || len(recs) == 0 {
			return analysisLoadedMsg{Err: err}
		}
		return analysisLoadedMsg{Record: &recs[0]}
	}
}

func (s *SkillMapScreen) Title() string {
	return "Skill Map"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Quiz"},
	}
	if s.selectedNeedsWork() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Remediate"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SkillMapScreen) graph() skillgraph.Graph {
	return s.deps.Learner.SkillGraph
}

func (s *SkillMapScreen) selected() skillgraph.Entry {
	return s.graph()[s.cursor]
}

func (s *SkillMapScreen) selectedNeedsWork() bool {
	e := s.selected()
	_, ok := remediation.ContentFor(e.Concept)
	return ok && e.Level < skillgraph.WeakThreshold
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.latest = msg.Record
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = min(s.cursor+1, len(s.graph())-1)
		case "enter":
			c := s.selected().Concept
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.NewForConcept(s.deps, c)}
			}
		case "r", "R":
			if s.selectedNeedsWork() {
				c := s.selected().Concept
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: remscreen.NewForConcept(s.deps, c)}
				}
			}
		}
	}
	return s, nil
}

func (s *SkillMapScreen) View(width, height int) string {
	w := min(width-8, 80)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Concept mastery"))
	b.WriteString("\n\n")

	for i, e := range s.graph() {
		prefix := "  "
		if i == s.cursor {
			prefix = theme.Selected.Render("▸ ")
		}
		label := fmt.Sprintf("%-20s", e.Concept)
		b.WriteString(prefix + components.NewLevelBar(label, e.Level, w-16).View())
		b.WriteString("  " + theme.LevelStyle(e.Level).Render(skillgraph.Label(e.Level)))
		b.WriteString("\n")

		var meta []string
		if e.WeaknessType != "" {
			meta = append(meta, string(e.WeaknessType)+" weakness")
		}
		if !e.LastPracticed.IsZero() && e.Level > 0 {
			meta = append(meta, "practiced "+e.LastPracticed.Format("Jan 2 15:04"))
		}
		if len(meta) > 0 {
			b.WriteString("    " + theme.Hint.Render(strings.Join(meta, " · ")) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Cognitive profile"))
	b.WriteString("\n\n")
	b.WriteString(renderProfile(s.deps.Learner.CognitiveProfile, w))

	if s.latest != nil && len(s.latest.Insights) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Latest insights"))
		b.WriteString("\n")
		for _, in := range s.latest.Insights {
			b.WriteString("  " + theme.SeverityStyle(in.Severity).Render("● ") + in.Message + "\n")
		}
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderProfile(p cognitive.Profile, width int) string {
	rows := []struct {
		label string
		value float64
	}{
		{"Accuracy", p.AverageAccuracy},
		{"Impulsivity", p.ImpulsivityIndex},
		{"Hesitation", p.HesitationScore},
		{"Guessing", p.GuessPattern},
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-14s%.1fs per question\n", "Avg speed", p.AverageSpeed))
	for _, r := range rows {
		b.WriteString("  " + components.NewProgressBar(fmt.Sprintf("%-12s", r.label), r.value, true, width-4).View() + "\n")
	}
	return b.String()
}
