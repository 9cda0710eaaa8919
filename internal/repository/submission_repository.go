package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.QuizSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) ListByStudentAndQuiz(studentID, quizID uint) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	err := r.DB.Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Order("submitted_at desc").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) CountByStudentAndQuiz(studentID, quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) ListByStudent(studentID uint, limit int) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	query := r.DB.Where("student_id = ?", studentID).Order("submitted_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) ListByCourseSince(courseID uint, since time.Time) ([]model.SubmissionPoint, error) {
	var points []model.SubmissionPoint
	err := r.DB.Model(&model.QuizSubmission{}).
		Select("submitted_at, percentage, passed").
		Where("course_id = ? AND submitted_at >= ?", courseID, since).
		Find(&points).Error
	return points, err
}

func (r *SubmissionRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
