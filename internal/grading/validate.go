package grading

import (
	"fmt"
	"strings"

	"learnhub_backend/internal/model"
)

// ValidationError names the field that failed and why. Controllers surface it
// as a 400 without retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidateQuestion checks a candidate question at authoring time. Pure; the
// first violation found is returned.
func ValidateQuestion(q *model.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return invalid("text", "question text is required")
	}

	switch q.Kind {
	case model.KindMultipleChoice:
		if n := countNonEmpty(q.Options); n < 4 {
			return invalid("options", "multiple-choice requires at least 4 non-empty options, got %d", n)
		}
		if err := validateCorrectIndex(q); err != nil {
			return err
		}
	case model.KindTrueFalse:
		if n := countNonEmpty(q.Options); n < 2 {
			return invalid("options", "true-false requires at least 2 non-empty options, got %d", n)
		}
		if err := validateCorrectIndex(q); err != nil {
			return err
		}
	case model.KindShortAnswer:
		if strings.TrimSpace(q.CorrectText) == "" {
			return invalid("correctText", "short-answer requires a non-empty correct answer")
		}
	default:
		return invalid("kind", "unknown question kind %q", q.Kind)
	}

	if q.Points < 1 {
		return invalid("points", "points must be at least 1")
	}
	return nil
}

// validateCorrectIndex rejects out-of-bounds indexes at save time rather than
// letting them fail closed at scoring time.
func validateCorrectIndex(q *model.Question) error {
	if q.CorrectIndex == nil {
		return invalid("correctIndex", "correct option index is required")
	}
	if *q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Options) {
		return invalid("correctIndex", "index %d is outside options bounds [0,%d)", *q.CorrectIndex, len(q.Options))
	}
	return nil
}

// ValidateQuiz checks quiz-level fields and every question.
func ValidateQuiz(quiz *model.Quiz) error {
	if strings.TrimSpace(quiz.Title) == "" {
		return invalid("title", "quiz title is required")
	}
	if quiz.PassingScore < 0 || quiz.PassingScore > 100 {
		return invalid("passingScore", "passing score must be within [0,100], got %d", quiz.PassingScore)
	}
	if quiz.DurationMinutes < 1 {
		return invalid("durationMinutes", "duration must be a positive number of minutes")
	}
	for i := range quiz.Questions {
		if err := ValidateQuestion(&quiz.Questions[i]); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func countNonEmpty(options []string) int {
	n := 0
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			n++
		}
	}
	return n
}
