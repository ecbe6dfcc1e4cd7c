// Package home is the signed-in landing screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/remediation"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/history"
	remscreen "github.com/abhisek/skillforge/internal/screens/remediation"
	sessionscreen "github.com/abhisek/skillforge/internal/screens/session"
	"github.com/abhisek/skillforge/internal/screens/skillmap"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// HomeScreen is the main menu once a learner is signed in.
type HomeScreen struct {
	deps *screen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screen.Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "TAKE A QUIZ", Action: push(func() screen.Screen { return sessionscreen.New(deps) })},
		{Label: "REMEDIATION", Action: push(func() screen.Screen { return remscreen.New(deps) })},
		{Label: "SKILL MAP", Action: push(func() screen.Screen { return skillmap.New(deps) })},
		{Label: "HISTORY", Action: push(func() screen.Screen { return history.New(deps) })},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			return func() tea.Msg { return screen.SignedOutMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{deps: deps, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	l := h.deps.Learner
	cw := min(width-8, 60)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render(fmt.Sprintf("Welcome back, %s", l.Name)))

	g := l.SkillGraph
	stats := fmt.Sprintf("Mastery %.0f%%   ·   %d attempts   ·   accuracy %.0f%%",
		g.Average(), len(l.QuizHistory), l.CognitiveProfile.AverageAccuracy*100)
	sections = append(sections, theme.Subtitle.Width(cw).Render(stats))

	sections = append(sections, theme.Card.Width(cw).Render(h.recommendation()))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// recommendation suggests what to do next based on the skill graph.
func (h *HomeScreen) recommendation() string {
	g := h.deps.Learner.SkillGraph
	targets := remediation.Targets(g)
	weakest, ok := g.Weakest()

	switch {
	case len(h.deps.Learner.QuizHistory) == 0:
		return theme.Body.Render("Start with a quiz on any concept. Questions adapt as you answer.")
	case len(targets) > 0:
		e := targets[0]
		return theme.Body.Render(fmt.Sprintf("%d concept(s) below %d. ", len(targets), skillgraph.WeakThreshold)) +
			theme.LevelStyle(e.Level).Render(fmt.Sprintf("%s is at %d", e.Concept, e.Level)) +
			theme.Body.Render(", try a remediation drill.")
	case ok:
		return theme.Body.Render(fmt.Sprintf("Everything is at least %s. Push %s higher with a quiz.",
			skillgraph.Label(weakest.Level), weakest.Concept))
	}
	return ""
}
