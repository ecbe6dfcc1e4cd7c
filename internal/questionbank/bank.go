package questionbank

import (
	"fmt"
	"slices"
)

type tierKey struct {
	concept    Concept
	difficulty Difficulty
}

// Bank is an immutable, indexed collection of questions.
type Bank struct {
	questions []Question
	byID      map[string]*Question
	byConcept map[Concept][]Question
	byTier    map[tierKey][]Question
	concepts  []Concept
}

// defaultBank is the built-in bank, set by init() in seed.go.
var defaultBank *Bank

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

// New validates questions and builds a bank with precomputed indices.
// Bank order is preserved within every index.
func New(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]*Question, len(questions)),
		byConcept: make(map[Concept][]Question),
		byTier:    make(map[tierKey][]Question),
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, &ValidationError{QuestionID: q.ID, Message: "duplicate question id"}
		}
		q.Options = slices.Clone(q.Options)
		b.questions[i] = q
		b.byID[q.ID] = &b.questions[i]
	}

	for _, q := range b.questions {
		if _, seen := b.byConcept[q.Concept]; !seen {
			b.concepts = append(b.concepts, q.Concept)
		}
		b.byConcept[q.Concept] = append(b.byConcept[q.Concept], q)
		k := tierKey{q.Concept, q.Difficulty}
		b.byTier[k] = append(b.byTier[k], q)
	}

	return b, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question in bank order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// Get returns the question with the given ID.
func (b *Bank) Get(id string) (Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question %q not found", id)
	}
	return *q, nil
}

// Concepts returns the concepts present in the bank, in first-seen order.
func (b *Bank) Concepts() []Concept {
	return slices.Clone(b.concepts)
}

// HasConcept reports whether any question is tagged with c.
func (b *Bank) HasConcept(c Concept) bool {
	return len(b.byConcept[c]) > 0
}

// ByConcept returns all questions for a concept, in bank order.
func (b *Bank) ByConcept(c Concept) []Question {
	return slices.Clone(b.byConcept[c])
}

// ByTier returns the questions for a concept at one difficulty, in bank order.
func (b *Bank) ByTier(c Concept, d Difficulty) []Question {
	return slices.Clone(b.byTier[tierKey{c, d}])
}

// CountByTier returns how many questions exist at each difficulty for c.
func (b *Bank) CountByTier(c Concept) map[Difficulty]int {
	counts := make(map[Difficulty]int, 3)
	for _, d := range AllDifficulties() {
		counts[d] = len(b.byTier[tierKey{c, d}])
	}
	return counts
}
