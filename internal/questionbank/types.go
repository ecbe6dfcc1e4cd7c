package questionbank

import "fmt"

// Concept is a topic tag shared by questions and skill graph entries.
type Concept string

const (
	ConceptArrays             Concept = "Arrays"
	ConceptLoops              Concept = "Loops"
	ConceptRecursion          Concept = "Recursion"
	ConceptDynamicProgramming Concept = "Dynamic Programming"
)

// AllConcepts returns the built-in concepts in display order.
func AllConcepts() []Concept {
	return []Concept{
		ConceptArrays,
		ConceptLoops,
		ConceptRecursion,
		ConceptDynamicProgramming,
	}
}

// Difficulty is an ordered question tier: easy < medium < hard.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns the tiers from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Harder returns the next tier up. Hard stays hard.
func (d Difficulty) Harder() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return d
}

// Easier returns the next tier down. Easy stays easy.
func (d Difficulty) Easier() Difficulty {
	switch d {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return d
}

// Question is a single multiple-choice item. Questions are never mutated
// after the bank is built.
type Question struct {
	ID           string     `json:"id"`
	Concept      Concept    `json:"concept"`
	Difficulty   Difficulty `json:"difficulty"`
	Prompt       string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctAnswer"`
	Explanation  string     `json:"explanation"`
}

// IsCorrect reports whether choice is the index of the correct option.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
