package history

import (
	"slices"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/selector"
)

// Log is an append-only sequence of attempts in insertion order.
type Log []Attempt

// Append returns a new log with a added at the end. The receiver is not
// modified.
func (l Log) Append(a Attempt) Log {
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, a)
}

// Last returns a copy of the most recent n attempts, or all of them when
// the log is shorter.
func (l Log) Last(n int) Log {
	if n <= 0 {
		return Log{}
	}
	if len(l) <= n {
		return slices.Clone(l)
	}
	return slices.Clone(l[len(l)-n:])
}

// ForConcept returns the attempts tagged with concept.
func (l Log) ForConcept(c questionbank.Concept) Log {
	var out Log
	for _, a := range l {
		if a.Concept == c {
			out = append(out, a)
		}
	}
	return out
}

// Outcomes projects the log onto a performance window.
func (l Log) Outcomes() []selector.Outcome {
	out := make([]selector.Outcome, len(l))
	for i, a := range l {
		out[i] = a.Outcome()
	}
	return out
}

// CorrectCount returns the number of correct attempts.
func (l Log) CorrectCount() int {
	n := 0
	for _, a := range l {
		if a.Correct {
			n++
		}
	}
	return n
}

// TotalTime returns the sum of time spent in seconds.
func (l Log) TotalTime() float64 {
	var sum float64
	for _, a := range l {
		sum += a.TimeSpent
	}
	return sum
}
