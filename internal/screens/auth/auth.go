// Package auth is the sign in / sign up screen.
package auth

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/learner"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// Mode selects which form is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

const (
	fieldName = iota
	fieldEmail
	fieldMobile
	fieldPassword
)

// AuthScreen collects credentials and signs a learner in.
type AuthScreen struct {
	deps   *screen.Deps
	mode   Mode
	inputs []components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)
var _ screen.BackHandler = (*AuthScreen)(nil)

// New creates an AuthScreen in the given mode.
func New(deps *screen.Deps, mode Mode) *AuthScreen {
	s := &AuthScreen{
		deps: deps,
		inputs: []components.TextInput{
			fieldName:     components.NewTextInput("Name", "Ada Lovelace", 64),
			fieldEmail:    components.NewTextInput("Email", "you@example.com", 254),
			fieldMobile:   components.NewTextInput("Mobile", "+1 555 0100", 20),
			fieldPassword: components.NewPasswordInput("Password"),
		},
	}
	s.setMode(mode)
	return s
}

func (s *AuthScreen) setMode(m Mode) {
	s.mode = m
	s.errMsg = ""
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.focus = s.visible()[0]
	s.inputs[s.focus].Focus()
}

// visible returns the field indexes shown in the current mode.
func (s *AuthScreen) visible() []int {
	if s.mode == ModeLogin {
		return []int{fieldEmail, fieldPassword}
	}
	return []int{fieldName, fieldEmail, fieldMobile, fieldPassword}
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *AuthScreen) Title() string {
	if s.mode == ModeSignup {
		return "Sign Up"
	}
	return "Sign In"
}

// HandlesBack keeps Esc from popping the root screen.
func (s *AuthScreen) HandlesBack() bool { return true }

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	other := "Sign up"
	if s.mode == ModeSignup {
		other = "Sign in"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+N", Description: other},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "ctrl+n":
		if s.mode == ModeLogin {
			s.setMode(ModeSignup)
		} else {
			s.setMode(ModeLogin)
		}
		return s, nil
	case "tab", "down":
		return s, s.move(1)
	case "shift+tab", "up":
		return s, s.move(-1)
	case "enter":
		fields := s.visible()
		if s.focus != fields[len(fields)-1] {
			return s, s.move(1)
		}
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AuthScreen) move(step int) tea.Cmd {
	fields := s.visible()
	pos := 0
	for i, f := range fields {
		if f == s.focus {
			pos = i
		}
	}
	pos = (pos + step + len(fields)) % len(fields)
	s.inputs[s.focus].Blur()
	s.focus = fields[pos]
	return s.inputs[s.focus].Focus()
}

func (s *AuthScreen) value(field int) string {
	return strings.TrimSpace(s.inputs[field].Value())
}

func (s *AuthScreen) submit() tea.Cmd {
	ctx := context.Background()

	var (
		l   *learner.Learner
		err error
	)
	if s.mode == ModeSignup {
		l, err = s.deps.Learners.Signup(ctx, learner.SignupData{
			Name:     s.value(fieldName),
			Email:    s.value(fieldEmail),
			Mobile:   s.value(fieldMobile),
			Password: s.inputs[fieldPassword].Value(),
		})
	} else {
		l, err = s.deps.Learners.Login(ctx, s.value(fieldEmail), s.inputs[fieldPassword].Value())
	}
	if err != nil {
		s.errMsg = describe(err)
		s.deps.Log().Debug("auth failed", "mode", s.Title(), "error", err)
		return nil
	}

	s.errMsg = ""
	return func() tea.Msg { return screen.SignedInMsg{Learner: l} }
}

func describe(err error) string {
	switch {
	case errors.Is(err, learner.ErrEmailTaken):
		return "That email is already registered. Press Ctrl+N to sign in."
	case errors.Is(err, learner.ErrInvalidCredentials):
		return "Email or password is incorrect."
	case errors.Is(err, learner.ErrInvalidSignup):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("SkillForge"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Adaptive practice for programming fundamentals"))
	b.WriteString("\n\n")

	for _, f := range s.visible() {
		b.WriteString(s.inputs[f].View())
		b.WriteString("\n")
	}

	if s.mode == ModeSignup {
		if pw := s.inputs[fieldPassword].Value(); pw != "" {
			st := learner.PasswordStrength(pw)
			style := theme.Incorrect
			if st.Score >= learner.MinPasswordScore {
				style = theme.Correct
			}
			b.WriteString("\n" + theme.Hint.Render("Strength: ") + style.Render(st.Label) + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg) + "\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
