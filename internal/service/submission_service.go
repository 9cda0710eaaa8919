package service

import (
	"encoding/json"
	"errors"
	"time"

	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	QuizRepo       *repository.QuizRepository
}

func NewSubmissionService(submissionRepo *repository.SubmissionRepository, quizRepo *repository.QuizRepository) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		QuizRepo:       quizRepo,
	}
}

type SubmitRequest struct {
	Answers          []json.RawMessage `json:"answers" binding:"required"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
}

// SubmitResult is the caller-facing summary of a graded attempt. Per-question
// correctness is persisted with the submission but not echoed back here.
type SubmitResult struct {
	SubmissionID  uint      `json:"submissionId"`
	Score         int       `json:"score"`
	TotalPoints   int       `json:"totalPoints"`
	Percentage    int       `json:"percentage"`
	Passed        bool      `json:"passed"`
	AttemptNumber int       `json:"attemptNumber"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Submit grades one attempt and stores it. Attempts are insert-only: a
// later submission never rewrites an earlier one.
func (s *SubmissionService) Submit(actor *util.Claims, quizID uint, req SubmitRequest) (*SubmitResult, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	result, err := grading.Evaluate(quiz, req.Answers)
	if err != nil {
		if errors.Is(err, grading.ErrTooManyAnswers) {
			return nil, &util.RequestError{Message: "More answers than questions"}
		}
		return nil, err
	}

	attempts, err := s.SubmissionRepo.CountByStudentAndQuiz(actor.UserID, quizID)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(result.Answers)
	if err != nil {
		return nil, err
	}

	submission := &model.QuizSubmission{
		StudentID:        actor.UserID,
		QuizID:           quizID,
		CourseID:         quiz.CourseID,
		Answers:          answersJSON,
		Score:            result.Score,
		Percentage:       result.Percentage,
		Passed:           result.Passed,
		AttemptNumber:    int(attempts) + 1,
		TimeSpentSeconds: req.TimeSpentSeconds,
		SubmittedAt:      time.Now().UTC(),
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		return nil, err
	}

	monitoring.ObserveSubmission(result.Passed)

	return &SubmitResult{
		SubmissionID:  submission.ID,
		Score:         result.Score,
		TotalPoints:   result.TotalPoints,
		Percentage:    result.Percentage,
		Passed:        result.Passed,
		AttemptNumber: submission.AttemptNumber,
		SubmittedAt:   submission.SubmittedAt,
	}, nil
}

// ListForQuiz returns the calling student's attempts on a quiz, newest
// first.
func (s *SubmissionService) ListForQuiz(studentID, quizID uint) ([]model.QuizSubmission, error) {
	return s.SubmissionRepo.ListByStudentAndQuiz(studentID, quizID)
}

func (s *SubmissionService) ListRecent(studentID uint, limit int) ([]model.QuizSubmission, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.SubmissionRepo.ListByStudent(studentID, limit)
}
