package questionbank

func init() {
	b, err := New(seedQuestions())
	if err != nil {
		panic("questionbank: invalid seed data: " + err.Error())
	}
	defaultBank = b
}

// seedQuestions returns the built-in question bank.
func seedQuestions() []Question {
	return []Question{
		// Arrays
		{
			ID:           "arr_easy_1",
			Concept:      ConceptArrays,
			Difficulty:   Easy,
			Prompt:       "What is the time complexity of accessing an element in an array by index?",
			Options:      []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
			CorrectIndex: 0,
			Explanation:  "Array access by index is O(1) because arrays store elements in contiguous memory locations.",
		},
		{
			ID:           "arr_easy_2",
			Concept:      ConceptArrays,
			Difficulty:   Easy,
			Prompt:       "Which operation on an array has O(n) time complexity?",
			Options:      []string{"Accessing by index", "Searching for an element", "Getting array length", "None of the above"},
			CorrectIndex: 1,
			Explanation:  "Searching for an element requires checking each element in the worst case, resulting in O(n) complexity.",
		},
		{
			ID:           "arr_med_1",
			Concept:      ConceptArrays,
			Difficulty:   Medium,
			Prompt:       "What is the optimal time complexity for finding two numbers that sum to a target?",
			Options:      []string{"O(n²)", "O(n log n)", "O(n)", "O(log n)"},
			CorrectIndex: 2,
			Explanation:  "Using a hash map, we can solve the two-sum problem in O(n) time with one pass.",
		},
		{
			ID:           "arr_med_2",
			Concept:      ConceptArrays,
			Difficulty:   Medium,
			Prompt:       "In a rotated sorted array, what is the time complexity to find the minimum element?",
			Options:      []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
			CorrectIndex: 1,
			Explanation:  "Binary search can be used to find the rotation point in O(log n) time.",
		},
		{
			ID:           "arr_hard_1",
			Concept:      ConceptArrays,
			Difficulty:   Hard,
			Prompt:       "What is the space complexity of the optimal solution for the \"Trapping Rain Water\" problem?",
			Options:      []string{"O(1)", "O(n)", "O(n²)", "O(log n)"},
			CorrectIndex: 0,
			Explanation:  "Using the two-pointer technique, we can solve it in O(1) extra space.",
		},

		// Loops
		{
			ID:           "loop_easy_1",
			Concept:      ConceptLoops,
			Difficulty:   Easy,
			Prompt:       "What will a for loop do if the condition is false from the start?",
			Options:      []string{"Run once", "Not run at all", "Throw an error", "Run infinitely"},
			CorrectIndex: 1,
			Explanation:  "If the loop condition is false initially, the loop body never executes.",
		},
		{
			ID:           "loop_easy_2",
			Concept:      ConceptLoops,
			Difficulty:   Easy,
			Prompt:       "Which keyword is used to exit a loop early?",
			Options:      []string{"continue", "break", "return", "exit"},
			CorrectIndex: 1,
			Explanation:  "The break keyword immediately terminates the loop.",
		},
		{
			ID:           "loop_med_1",
			Concept:      ConceptLoops,
			Difficulty:   Medium,
			Prompt:       "What is the time complexity of nested loops iterating n times each?",
			Options:      []string{"O(n)", "O(n log n)", "O(n²)", "O(2n)"},
			CorrectIndex: 2,
			Explanation:  "Nested loops result in n × n iterations, giving O(n²) complexity.",
		},

		// Recursion
		{
			ID:           "rec_easy_1",
			Concept:      ConceptRecursion,
			Difficulty:   Easy,
			Prompt:       "What is the base case in recursion?",
			Options:      []string{"The recursive call", "The condition to stop recursion", "The first function call", "The return statement"},
			CorrectIndex: 1,
			Explanation:  "The base case is the condition that stops the recursion to prevent infinite calls.",
		},
		{
			ID:           "rec_med_1",
			Concept:      ConceptRecursion,
			Difficulty:   Medium,
			Prompt:       "What is the space complexity of a recursive function with depth n?",
			Options:      []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
			CorrectIndex: 2,
			Explanation:  "Each recursive call adds a frame to the call stack, resulting in O(n) space complexity.",
		},
		{
			ID:           "rec_med_2",
			Concept:      ConceptRecursion,
			Difficulty:   Medium,
			Prompt:       "What technique can optimize recursive Fibonacci calculation?",
			Options:      []string{"Iteration", "Memoization", "Binary search", "Sorting"},
			CorrectIndex: 1,
			Explanation:  "Memoization caches results to avoid redundant calculations in recursive Fibonacci.",
		},
		{
			ID:         "rec_hard_1",
			Concept:    ConceptRecursion,
			Difficulty: Hard,
			Prompt:     "What is tail recursion?",
			Options: []string{
				"Recursion at the end of a function",
				"Recursion where the recursive call is the last operation",
				"Recursion with multiple base cases",
				"Recursion without a base case",
			},
			CorrectIndex: 1,
			Explanation:  "Tail recursion occurs when the recursive call is the last operation, allowing optimization.",
		},

		// Dynamic Programming
		{
			ID:           "dp_easy_1",
			Concept:      ConceptDynamicProgramming,
			Difficulty:   Easy,
			Prompt:       "What is the main principle of dynamic programming?",
			Options:      []string{"Divide and conquer", "Storing results of subproblems", "Greedy choice", "Backtracking"},
			CorrectIndex: 1,
			Explanation:  "DP stores results of subproblems to avoid redundant computation.",
		},
		{
			ID:           "dp_med_1",
			Concept:      ConceptDynamicProgramming,
			Difficulty:   Medium,
			Prompt:       "What is the time complexity of the classic DP solution for 0/1 Knapsack?",
			Options:      []string{"O(n)", "O(n log n)", "O(n × W)", "O(2ⁿ)"},
			CorrectIndex: 2,
			Explanation:  "The DP solution for 0/1 Knapsack has O(n × W) time where n is items and W is capacity.",
		},
		{
			ID:           "dp_hard_1",
			Concept:      ConceptDynamicProgramming,
			Difficulty:   Hard,
			Prompt:       "What is the optimal time complexity for the Longest Increasing Subsequence problem?",
			Options:      []string{"O(n)", "O(n log n)", "O(n²)", "O(2ⁿ)"},
			CorrectIndex: 1,
			Explanation:  "Using binary search with DP, LIS can be solved in O(n log n) time.",
		},
	}
}
