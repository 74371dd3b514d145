package screening

import "math"

// pointsPerQuestion keeps a perfect test worth exactly 100 regardless of the
// bank size.
func pointsPerQuestion() float64 {
	return 100 / float64(len(questions))
}

// Grade scores submitted answers, keyed by question ID. Unanswered and
// out-of-bank answers earn nothing; the result is rounded to the nearest
// whole point.
func Grade(answers map[int]int) int {
	total := 0.0
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.Correct {
			total += pointsPerQuestion()
		}
	}
	return int(math.Round(total))
}
