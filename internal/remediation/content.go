package remediation

import "github.com/abhisek/skillforge/internal/questionbank"

// Problem is a short-answer remediation question.
type Problem struct {
	Prompt string
	Answer string
}

// Content is the remediation material for one concept.
type Content struct {
	Concept       questionbank.Concept
	Lesson        string
	Visualization string
	Problems      []Problem
}

var catalog = map[questionbank.Concept]Content{
	questionbank.ConceptArrays: {
		Lesson:        "Arrays store elements in contiguous memory. Key concepts: indexing (O(1)), searching (O(n)), insertion/deletion complexity varies by position.",
		Visualization: "Array elements are stored sequentially: [0]→[1]→[2]→[3]",
		Problems: []Problem{
			{"What is the index of the first element in an array?", "0"},
			{"If arr = [1,2,3], what is arr[1]?", "2"},
			{"How do you find the length of an array arr?", "arr.length"},
		},
	},
	questionbank.ConceptLoops: {
		Lesson:        "Loops repeat code execution. For loops: initialization, condition, increment. While loops: condition-based. Key: understand loop invariants and termination.",
		Visualization: "Loop flow: Init → Condition → Body → Update → Repeat",
		Problems: []Problem{
			{"What keyword exits a loop early?", "break"},
			{"What keyword skips to next iteration?", "continue"},
			{"What happens if loop condition is always true?", "infinite loop"},
		},
	},
	questionbank.ConceptRecursion: {
		Lesson:        "Recursion: function calls itself. Essential parts: base case (stops recursion) and recursive case. Call stack grows with each call.",
		Visualization: "f(n) → f(n-1) → f(n-2) → ... → base case",
		Problems: []Problem{
			{"What stops infinite recursion?", "base case"},
			{"What data structure tracks recursive calls?", "call stack"},
			{"Technique to optimize recursion?", "memoization"},
		},
	},
	questionbank.ConceptDynamicProgramming: {
		Lesson:        "DP solves problems by storing subproblem results. Two approaches: top-down (memoization) and bottom-up (tabulation). Identifies overlapping subproblems.",
		Visualization: "Break problem → Solve subproblems → Store results → Reuse",
		Problems: []Problem{
			{"DP stores results of what?", "subproblems"},
			{"Bottom-up DP approach is called?", "tabulation"},
			{"Top-down DP approach is called?", "memoization"},
		},
	},
}

// ContentFor returns the remediation content for concept.
func ContentFor(c questionbank.Concept) (Content, bool) {
	content, ok := catalog[c]
	if !ok {
		return Content{}, false
	}
	content.Concept = c
	return content, true
}
