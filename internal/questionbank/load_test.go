package questionbank

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleBank = `{
  "questions": [
    {
      "id": "g_easy_1",
      "concept": "Graphs",
      "difficulty": "easy",
      "question": "Which traversal uses a queue?",
      "options": ["DFS", "BFS"],
      "correctAnswer": 1,
      "explanation": "Breadth-first search visits neighbours level by level using a queue."
    },
    {
      "id": "g_hard_1",
      "concept": "Graphs",
      "difficulty": "hard",
      "question": "Dijkstra's algorithm fails with which edges?",
      "options": ["Negative weights", "Zero weights", "Self loops"],
      "correctAnswer": 0
    }
  ]
}`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	b, err := LoadFile(writeBank(t, sampleBank))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("got %d questions, want 2", b.Len())
	}
	if !b.HasConcept("Graphs") {
		t.Error("expected Graphs concept")
	}
	if got := len(b.ByTier("Graphs", Medium)); got != 0 {
		t.Errorf("got %d medium questions, want 0", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"no questions", `{}`},
		{"empty questions", `{"questions": []}`},
		{"bad difficulty", `{"questions": [{"id": "a", "concept": "c", "difficulty": "expert", "question": "q", "options": ["x", "y"], "correctAnswer": 0}]}`},
		{"missing options", `{"questions": [{"id": "a", "concept": "c", "difficulty": "easy", "question": "q", "correctAnswer": 0}]}`},
		{"fractional answer", `{"questions": [{"id": "a", "concept": "c", "difficulty": "easy", "question": "q", "options": ["x", "y"], "correctAnswer": 0.5}]}`},
		{"unknown field", `{"questions": [{"id": "a", "concept": "c", "difficulty": "easy", "question": "q", "options": ["x", "y"], "correctAnswer": 0, "hint": "h"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParse_IndexOutOfRange(t *testing.T) {
	// Passes the schema, fails structural validation.
	raw := `{"questions": [{"id": "a", "concept": "c", "difficulty": "easy", "question": "q", "options": ["x", "y"], "correctAnswer": 5}]}`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected out-of-range error")
	}
}
