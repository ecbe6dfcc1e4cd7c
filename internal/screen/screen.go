package screen

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/learner"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/selector"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens with a phase or
// progress worth showing in the footer.
type StatusProvider interface {
	Status() string
}

// Deps is shared by every screen of a running app. Learner is nil until
// someone signs in.
type Deps struct {
	Learners *learner.Service
	Bank     *questionbank.Bank
	Selector *selector.Selector
	Logger   *slog.Logger
	Learner  *learner.Learner
}

// SignedIn reports whether a learner session is open.
func (d *Deps) SignedIn() bool {
	return d != nil && d.Learner != nil
}

// BackHandler is implemented by screens that consume Esc themselves, for
// example to confirm before abandoning work.
type BackHandler interface {
	HandlesBack() bool
}

// SignedInMsg is emitted once a learner has logged in or signed up.
type SignedInMsg struct {
	Learner *learner.Learner
}

// SignedOutMsg returns the app to the sign in screen.
type SignedOutMsg struct{}

// Log returns the app logger, discarding output when none is set.
func (d *Deps) Log() *slog.Logger {
	if d == nil || d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
