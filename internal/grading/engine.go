package grading

import "errors"

// Unanswered marks a question the learner left blank.
const Unanswered = -1

// Lesson statuses reported to a SCORM host.
const (
	StatusPassed    = "passed"
	StatusCompleted = "completed"
)

// PassPercent is the share of questions needed for a "passed" status.
const PassPercent = 70

var ErrIncomplete = errors.New("not every question has an answer")

// Result is the outcome of grading a whole quiz.
type Result struct {
	Score        int    `json:"score"`
	Total        int    `json:"total"`
	Answered     int    `json:"answered"`
	Tier         Tier   `json:"tier"`
	Emoji        string `json:"emoji"`
	Message      string `json:"message"`
	LessonStatus string `json:"lesson_status"`
}

// PassingScore is ceil(PassPercent% of total), computed in integers so that
// e.g. 10 questions need exactly 7.
func PassingScore(total int) int {
	if total <= 0 {
		return 0
	}
	return (total*PassPercent + 99) / 100
}

// LessonStatus maps a raw score to the status written to cmi.core.lesson_status.
func LessonStatus(score, total int) string {
	if score >= PassingScore(total) {
		return StatusPassed
	}
	return StatusCompleted
}

// Grade scores answers against the correct indices. Answers may be shorter
// than correct; missing entries count as unanswered.
func Grade(correct, answers []int) Result {
	res := Result{Total: len(correct)}
	for i, want := range correct {
		if i >= len(answers) || answers[i] == Unanswered || answers[i] < 0 {
			continue
		}
		res.Answered++
		if answers[i] == want {
			res.Score++
		}
	}
	res.Tier = TierFor(res.Score, res.Total)
	fb := FeedbackFor(res.Tier)
	res.Emoji, res.Message = fb.Emoji, fb.Message
	res.LessonStatus = LessonStatus(res.Score, res.Total)
	return res
}

// GradeComplete is Grade for players that refuse partial submissions.
func GradeComplete(correct, answers []int) (Result, error) {
	res := Grade(correct, answers)
	if res.Answered < res.Total {
		return res, ErrIncomplete
	}
	return res, nil
}
