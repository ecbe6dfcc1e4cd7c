package questionbank

import "fmt"

// MaxPromptLength bounds the prompt text of a single question.
const MaxPromptLength = 500

// ValidationError describes why a question was rejected.
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("invalid question: %s", e.Message)
	}
	return fmt.Sprintf("question %q: %s", e.QuestionID, e.Message)
}

// validateQuestion checks required fields, the difficulty enum and the
// correct-option index.
func validateQuestion(q Question) *ValidationError {
	if q.ID == "" {
		return &ValidationError{Message: "id is empty"}
	}
	if q.Concept == "" {
		return &ValidationError{QuestionID: q.ID, Message: "concept is empty"}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("difficulty %q must be easy, medium or hard", q.Difficulty)}
	}
	if q.Prompt == "" {
		return &ValidationError{QuestionID: q.ID, Message: "question text is empty"}
	}
	if len(q.Prompt) > MaxPromptLength {
		return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("question text exceeds %d characters", MaxPromptLength)}
	}
	if len(q.Options) < 2 {
		return &ValidationError{QuestionID: q.ID, Message: "at least 2 options are required"}
	}
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("option %d is empty", i)}
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return &ValidationError{QuestionID: q.ID, Message: fmt.Sprintf("correct answer index %d out of range", q.CorrectIndex)}
	}
	return nil
}
