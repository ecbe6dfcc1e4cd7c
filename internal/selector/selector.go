// Package selector picks the next quiz question, moving the difficulty tier
// up or down from the learner's most recent answers in the current session.
package selector

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// Selector draws questions from a bank using an injected random source.
type Selector struct {
	bank *questionbank.Bank
	rng  *rand.Rand
}

// New creates a Selector. A nil rng is replaced with a time-seeded source.
func New(bank *questionbank.Bank, rng *rand.Rand) *Selector {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Selector{bank: bank, rng: rng}
}

// SelectNext returns a question for concept at the adjusted tier. When the
// target tier is empty it falls back to any question of the concept. The
// second return value is false when the concept has no questions at all.
// Repeats are allowed.
func (s *Selector) SelectNext(concept questionbank.Concept, current questionbank.Difficulty, window []Outcome) (questionbank.Question, bool) {
	target := Decide(window).Apply(current)

	if pool := s.bank.ByTier(concept, target); len(pool) > 0 {
		return s.pick(pool), true
	}
	if pool := s.bank.ByConcept(concept); len(pool) > 0 {
		return s.pick(pool), true
	}
	return questionbank.Question{}, false
}

// FirstQuestion returns the first easy question of concept in bank order.
func (s *Selector) FirstQuestion(concept questionbank.Concept) (questionbank.Question, bool) {
	pool := s.bank.ByTier(concept, questionbank.Easy)
	if len(pool) == 0 {
		return questionbank.Question{}, false
	}
	return pool[0], true
}

func (s *Selector) pick(pool []questionbank.Question) questionbank.Question {
	return pool[s.rng.IntN(len(pool))]
}
