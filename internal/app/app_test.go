package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screen/screentest"
	sessionscreen "github.com/abhisek/skillforge/internal/screens/session"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestStartsAtSignIn(t *testing.T) {
	m := newAppModel(screentest.Deps(t))
	if got := m.router.Active().Title(); got != "Sign In" {
		t.Errorf("first screen = %q, want Sign In", got)
	}
}

func TestStartsAtHomeWhenSignedIn(t *testing.T) {
	m := newAppModel(screentest.SignedIn(t))
	if got := m.router.Active().Title(); got != "Home" {
		t.Errorf("first screen = %q, want Home", got)
	}
}

func TestSignInAndOut(t *testing.T) {
	signed := screentest.SignedIn(t)
	l := signed.Learner
	signed.Learner = nil

	m := newAppModel(signed)
	m, _ = update(t, m, screen.SignedInMsg{Learner: l})
	if m.router.Active().Title() != "Home" || m.router.Depth() != 1 {
		t.Fatalf("after sign in: %q depth %d", m.router.Active().Title(), m.router.Depth())
	}
	if m.deps.Learner != l {
		t.Error("deps should hold the signed in learner")
	}

	m, _ = update(t, m, screen.SignedOutMsg{})
	if m.router.Active().Title() != "Sign In" || m.deps.Learner != nil {
		t.Errorf("after sign out: %q learner %v", m.router.Active().Title(), m.deps.Learner)
	}
}

func TestEscPopsUnlessScreenHandlesIt(t *testing.T) {
	m := newAppModel(screentest.SignedIn(t))

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc at the root should do nothing")
	}

	// Home menu item 0 pushes the concept picker.
	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc on the picker should pop")
	}

	// Start a quiz: esc is now the quiz's to handle.
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Errorf("esc during a quiz should not pop, depth %d", m.router.Depth())
	}
}

func TestViewRendersFrame(t *testing.T) {
	m := newAppModel(screentest.SignedIn(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	frame := m.render()
	if !strings.Contains(frame, "SkillForge") || !strings.Contains(frame, "Ada") {
		t.Errorf("frame missing header:\n%s", frame)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the too small message")
	}
}

func TestFooterShowsQuizStatus(t *testing.T) {
	deps := screentest.SignedIn(t)
	m := newAppModel(deps)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if strings.Contains(m.render(), "Answering") {
		t.Fatal("home should have no quiz status")
	}

	m, _ = update(t, m, router.PushScreenMsg{Screen: sessionscreen.NewForConcept(deps, questionbank.ConceptLoops)})
	if frame := m.render(); !strings.Contains(frame, "Answering · easy") {
		t.Errorf("footer missing quiz status:\n%s", frame)
	}
}
