// Package quiz grades a module's question set. Grading is pure: callers pass
// the responses and the previous best, and record the result through the
// progress tracker themselves.
package quiz

import "github.com/alexanderramin/fincerdas/internal/content"

// Point awards for a graded attempt.
const (
	BasePoints      = 40
	PointsPerAnswer = 20
	BestBonus       = 30
)

// QuestionResult pairs one question with how it was answered.
type QuestionResult struct {
	Question content.Question
	Selected int // index into Answers, -1 when unanswered
	Correct  bool
}

// Result summarizes a graded attempt.
type Result struct {
	Questions    []QuestionResult
	CorrectCount int
	Percentage   int
	Points       int
	NewBest      int
	Improved     bool
}

// Grade scores the responses against the questions. responses maps question
// index to selected answer index; missing or out-of-range entries count as
// wrong. The improvement bonus is paid only when the percentage strictly
// beats previousBest.
func Grade(questions []content.Question, responses map[int]int, previousBest int) Result {
	res := Result{
		Questions: make([]QuestionResult, len(questions)),
		NewBest:   previousBest,
	}

	for i, q := range questions {
		selected, ok := responses[i]
		if !ok || selected < 0 || selected >= len(q.Answers) {
			selected = -1
		}
		correct := selected >= 0 && q.Answers[selected].Correct
		if correct {
			res.CorrectCount++
		}
		res.Questions[i] = QuestionResult{Question: q, Selected: selected, Correct: correct}
	}

	if n := len(questions); n > 0 {
		res.Percentage = (res.CorrectCount*100 + n/2) / n
	}

	res.Points = BasePoints + PointsPerAnswer*res.CorrectCount
	if res.Percentage > previousBest {
		res.Points += BestBonus
		res.NewBest = res.Percentage
		res.Improved = true
	}
	return res
}
