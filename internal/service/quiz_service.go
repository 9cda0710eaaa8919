package service

import (
	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	CourseRepo *repository.CourseRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, courseRepo *repository.CourseRepository) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		CourseRepo: courseRepo,
	}
}

type QuestionRequest struct {
	Text         string   `json:"text" binding:"required"`
	Kind         string   `json:"kind" binding:"required"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex"`
	CorrectText  string   `json:"correctText"`
	Points       int      `json:"points"`
}

type QuizRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	CourseID        uint              `json:"courseId"`
	LessonID        *uint             `json:"lessonId"`
	PassingScore    *int              `json:"passingScore"`
	DurationMinutes *int              `json:"durationMinutes"`
	IsPublished     *bool             `json:"isPublished"`
	Questions       []QuestionRequest `json:"questions"`
}

func buildQuestions(reqs []QuestionRequest) []model.Question {
	questions := make([]model.Question, len(reqs))
	for i, req := range reqs {
		points := req.Points
		if points == 0 {
			points = 1
		}
		questions[i] = model.Question{
			Position:     i,
			Text:         req.Text,
			Kind:         model.QuestionKind(req.Kind),
			Options:      model.StringList(req.Options),
			CorrectIndex: req.CorrectIndex,
			CorrectText:  req.CorrectText,
			Points:       points,
		}
	}
	return questions
}

func (s *QuizService) CreateQuiz(actor *util.Claims, req QuizRequest) (*model.Quiz, error) {
	if len(req.Questions) == 0 {
		return nil, &util.RequestError{Message: "At least one question is required"}
	}

	course, err := s.CourseRepo.FindByID(req.CourseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if err := requireOwnership("add quizzes to this course", course.InstructorID, actor); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		CourseID:        req.CourseID,
		LessonID:        req.LessonID,
		Title:           req.Title,
		Description:     req.Description,
		PassingScore:    60,
		DurationMinutes: 30,
		Questions:       buildQuestions(req.Questions),
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.DurationMinutes != nil {
		quiz.DurationMinutes = *req.DurationMinutes
	}
	if req.IsPublished != nil {
		quiz.IsPublished = *req.IsPublished
	}

	if err := grading.ValidateQuiz(quiz); err != nil {
		return nil, err
	}

	// Derived, never caller-settable.
	quiz.TotalPoints = grading.TotalPoints(quiz.Questions)

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(quizID uint, actor *util.Claims, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if err := s.requireQuizOwnership("update this quiz", quiz, actor); err != nil {
		return nil, err
	}

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if req.Description != "" {
		quiz.Description = req.Description
	}
	if req.LessonID != nil {
		quiz.LessonID = req.LessonID
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.DurationMinutes != nil {
		quiz.DurationMinutes = *req.DurationMinutes
	}
	if req.IsPublished != nil {
		quiz.IsPublished = *req.IsPublished
	}

	replaceQuestions := req.Questions != nil
	if replaceQuestions {
		quiz.Questions = buildQuestions(req.Questions)
	}

	if err := grading.ValidateQuiz(quiz); err != nil {
		return nil, err
	}

	// Recompute before save so the stored total can never go stale relative
	// to the question set.
	quiz.TotalPoints = grading.TotalPoints(quiz.Questions)

	if err := s.QuizRepo.Update(quiz, replaceQuestions); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(quizID uint, actor *util.Claims) error {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return err
	}
	if err := s.requireQuizOwnership("delete this quiz", quiz, actor); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

func (s *QuizService) getQuiz(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) requireQuizOwnership(action string, quiz *model.Quiz, actor *util.Claims) error {
	course, err := s.CourseRepo.FindByID(quiz.CourseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCourseNotFound
		}
		return err
	}
	return requireOwnership(action, course.InstructorID, actor)
}

// StudentQuestion is the learner-facing question view: the correct answer
// never leaves the server.
type StudentQuestion struct {
	ID       uint               `json:"id"`
	Position int                `json:"position"`
	Text     string             `json:"text"`
	Kind     model.QuestionKind `json:"kind"`
	Options  []string           `json:"options,omitempty"`
	Points   int                `json:"points"`
}

type StudentQuiz struct {
	ID              uint              `json:"id"`
	CourseID        uint              `json:"courseId"`
	LessonID        *uint             `json:"lessonId,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	TotalPoints     int               `json:"totalPoints"`
	PassingScore    int               `json:"passingScore"`
	DurationMinutes int               `json:"durationMinutes"`
	Questions       []StudentQuestion `json:"questions"`
}

func toStudentQuiz(quiz *model.Quiz) *StudentQuiz {
	out := &StudentQuiz{
		ID:              quiz.ID,
		CourseID:        quiz.CourseID,
		LessonID:        quiz.LessonID,
		Title:           quiz.Title,
		Description:     quiz.Description,
		TotalPoints:     quiz.TotalPoints,
		PassingScore:    quiz.PassingScore,
		DurationMinutes: quiz.DurationMinutes,
		Questions:       make([]StudentQuestion, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		out.Questions[i] = StudentQuestion{
			ID:       q.ID,
			Position: q.Position,
			Text:     q.Text,
			Kind:     q.Kind,
			Options:  q.Options,
			Points:   q.Points,
		}
	}
	return out
}

// GetQuiz returns the full quiz to its owner and the sanitized view to
// everyone else.
func (s *QuizService) GetQuiz(quizID uint, actor *util.Claims) (interface{}, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if s.requireQuizOwnership("view this quiz with answers", quiz, actor) == nil {
		return quiz, nil
	}
	return toStudentQuiz(quiz), nil
}

func (s *QuizService) ListByCourse(courseID uint, actor *util.Claims) (interface{}, error) {
	quizzes, err := s.QuizRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if err == nil && requireOwnership("view quizzes with answers", course.InstructorID, actor) == nil {
		return quizzes, nil
	}

	views := make([]*StudentQuiz, len(quizzes))
	for i := range quizzes {
		views[i] = toStudentQuiz(&quizzes[i])
	}
	return views, nil
}
