// Package session is the adaptive quiz screen.
package session

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/summary"
	"github.com/abhisek/skillforge/internal/selector"
	sess "github.com/abhisek/skillforge/internal/session"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

// SessionScreen lets the learner pick a concept and then runs a quiz batch.
type SessionScreen struct {
	deps        *screen.Deps
	picker      components.Menu
	state       *sess.State
	mc          components.MultiChoice
	confidence  *int
	last        *history.Attempt
	levelBefore int
	quitConfirm bool
	errMsg      string
	now         func() time.Time
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a quiz screen that starts with the concept picker.
func New(deps *screen.Deps) *SessionScreen {
	s := &SessionScreen{deps: deps, now: time.Now}

	var items []components.MenuItem
	for _, c := range deps.Bank.Concepts() {
		items = append(items, components.MenuItem{
			Label:       string(c),
			Description: fmt.Sprintf("level %d", deps.Learner.SkillGraph.Level(c)),
			Action:      func() tea.Cmd { return s.start(c) },
		})
	}
	s.picker = components.NewMenu(items)
	return s
}

// NewForConcept skips the picker and starts a quiz on concept.
func NewForConcept(deps *screen.Deps, concept questionbank.Concept) *SessionScreen {
	s := New(deps)
	s.start(concept)
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.state != nil {
		return tickCmd()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	if s.state == nil {
		return "Choose a Concept"
	}
	return "Quiz: " + string(s.state.Concept)
}

// HandlesBack is true once a quiz is running so Esc asks before quitting.
func (s *SessionScreen) HandlesBack() bool {
	return s.state != nil
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.state == nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == sess.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "1-5", Description: "Confidence"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Status names the quiz phase and the tier move that chose the current
// question.
func (s *SessionScreen) Status() string {
	switch {
	case s.state == nil:
		return ""
	case s.quitConfirm:
		return "Paused"
	case s.state.Phase == sess.PhaseFeedback:
		return "Feedback"
	case s.state.Phase == sess.PhaseDone:
		return "Done"
	}
	switch s.state.LastAdjustment {
	case selector.Promote:
		return "Answering · moved up to " + string(s.state.Difficulty)
	case selector.Demote:
		return "Answering · moved down to " + string(s.state.Difficulty)
	}
	return "Answering · " + string(s.state.Difficulty)
}

func (s *SessionScreen) start(c questionbank.Concept) tea.Cmd {
	st, err := sess.Start(s.deps.Selector, c, s.now())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.state = st
	s.resetQuestion()
	s.deps.Log().Info("quiz started", "session", st.ID, "concept", c)
	return tickCmd()
}

func (s *SessionScreen) resetQuestion() {
	q := s.state.Current
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	s.confidence = nil
	s.last = nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// handleTick advances the elapsed timer. The tick chain stops once the
// session is done.
func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseDone {
		return s, nil
	}
	s.state.Tick(time.Second)
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, s.end()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseFeedback:
		if done := s.state.Next(s.now()); done {
			return s, s.end()
		}
		s.resetQuestion()
		return s, nil

	case sess.PhaseActive:
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "1", "2", "3", "4", "5":
			c := int(key[0] - '0')
			if s.confidence != nil && *s.confidence == c {
				s.confidence = nil
			} else {
				s.confidence = history.Confidence(c)
			}
			return s, nil
		}

		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			s.submit()
		}
	}
	return s, nil
}

// submit records the chosen option against the learner and persists it.
func (s *SessionScreen) submit() {
	now := s.now()
	l := s.deps.Learner
	s.levelBefore = l.SkillGraph.Level(s.state.Concept)

	a, err := s.state.Answer(s.mc.ChosenIndex, s.confidence, s.state.TimeOnQuestion(now), now)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.last = &a

	l.RecordAttempt(a)
	if err := s.deps.Learners.Save(context.Background(), l); err != nil {
		s.deps.Log().Error("save attempt", "learner", l.ID, "error", err)
	}
}

// end finishes the batch, runs the profiler and hands over to the summary.
func (s *SessionScreen) end() tea.Cmd {
	s.state.Finish()
	if s.state.Answered() == 0 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := sess.BuildSummary(s.state)
	an, err := s.deps.Learners.FinishSession(context.Background(), s.deps.Learner, sum)
	if err != nil {
		s.deps.Log().Error("finish session", "session", sum.ID, "error", err)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(s.deps, sum, an)}
	}
}
