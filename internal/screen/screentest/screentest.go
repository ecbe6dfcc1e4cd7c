// Package screentest builds screen dependencies backed by a throwaway store.
package screentest

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/skillforge/internal/learner"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/selector"
	"github.com/abhisek/skillforge/internal/store"
)

// Password is the password of the learner created by SignedIn.
const Password = "Correct-Horse-42"

// Deps returns dependencies with nobody signed in.
func Deps(t *testing.T) *screen.Deps {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "screens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := learner.NewService(st.RecordRepo(), st.EventRepo(), nil)
	svc.SetBcryptCost(bcrypt.MinCost)

	bank := questionbank.Default()
	return &screen.Deps{
		Learners: svc,
		Bank:     bank,
		Selector: selector.New(bank, rand.New(rand.NewPCG(7, 11))),
	}
}

// SignedIn returns dependencies with a freshly signed up learner.
func SignedIn(t *testing.T) *screen.Deps {
	t.Helper()

	d := Deps(t)
	l, err := d.Learners.Signup(context.Background(), learner.SignupData{
		Name:     "Ada",
		Email:    "ada@example.com",
		Mobile:   "5550100",
		Password: Password,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	d.Learner = l
	return d
}
