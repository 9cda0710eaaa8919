// Package grading turns a quiz and a learner's raw answers into a graded
// result. Evaluation is a pure, single-pass computation: no I/O, no partial
// scoring. Loading the quiz and persisting the submission belong to the
// service layer.
package grading

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"learnhub_backend/internal/model"
)

var ErrTooManyAnswers = errors.New("more answers than questions")

// EvaluatedAnswer is one scored entry, index-aligned with the quiz questions.
type EvaluatedAnswer struct {
	QuestionID   uint            `json:"questionId"`
	Answer       json.RawMessage `json:"answer,omitempty"`
	IsCorrect    bool            `json:"isCorrect"`
	PointsEarned int             `json:"pointsEarned"`
}

type Result struct {
	Answers     []EvaluatedAnswer
	Score       int
	TotalPoints int
	Percentage  int
	Passed      bool
}

// Evaluate grades rawAnswers against the quiz. rawAnswers is index-aligned
// with quiz.Questions and may be shorter; missing or null entries count as
// skipped, never correct. More answers than questions fails the whole
// attempt before any scoring.
func Evaluate(quiz *model.Quiz, rawAnswers []json.RawMessage) (*Result, error) {
	if len(rawAnswers) > len(quiz.Questions) {
		return nil, ErrTooManyAnswers
	}

	res := &Result{
		Answers:     make([]EvaluatedAnswer, len(quiz.Questions)),
		TotalPoints: quiz.TotalPoints,
	}

	for i, q := range quiz.Questions {
		var raw json.RawMessage
		if i < len(rawAnswers) {
			raw = rawAnswers[i]
		}

		entry := EvaluatedAnswer{QuestionID: q.ID, Answer: raw}
		if !skipped(raw) && answerMatches(q, raw) {
			entry.IsCorrect = true
			entry.PointsEarned = questionPoints(q)
			res.Score += entry.PointsEarned
		}
		res.Answers[i] = entry
	}

	res.Percentage = percentage(res.Score, quiz.TotalPoints)
	res.Passed = res.Percentage >= quiz.PassingScore
	return res, nil
}

// answerMatches applies the kind-specific correctness check. A correct index
// outside the option bounds can never match: the question fails closed
// instead of erroring at scoring time.
func answerMatches(q model.Question, raw json.RawMessage) bool {
	switch q.Kind {
	case model.KindMultipleChoice, model.KindTrueFalse:
		if q.CorrectIndex == nil {
			return false
		}
		idx := *q.CorrectIndex
		if idx < 0 || idx >= len(q.Options) {
			return false
		}
		var got int
		if err := json.Unmarshal(raw, &got); err != nil {
			return false
		}
		return got == idx
	case model.KindShortAnswer:
		if q.CorrectText == "" {
			return false
		}
		var got string
		if err := json.Unmarshal(raw, &got); err != nil {
			return false
		}
		// Exact, case-sensitive match.
		return got == q.CorrectText
	}
	return false
}

func skipped(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func questionPoints(q model.Question) int {
	if q.Points < 1 {
		return 1
	}
	return q.Points
}

// TotalPoints sums question points, defaulting unset points to 1. It must be
// recomputed any time the question list changes, before the quiz is saved.
func TotalPoints(questions []model.Question) int {
	total := 0
	for _, q := range questions {
		total += questionPoints(q)
	}
	return total
}

func percentage(score, totalPoints int) int {
	if totalPoints <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalPoints) * 100))
}
