package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo  *repository.EnrollmentRepository
	CourseRepo      *repository.CourseRepository
	LessonRepo      *repository.LessonRepository
	CertificateRepo *repository.CertificateRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	certificateRepo *repository.CertificateRepository,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo:  enrollmentRepo,
		CourseRepo:      courseRepo,
		LessonRepo:      lessonRepo,
		CertificateRepo: certificateRepo,
	}
}

func (s *EnrollmentService) Enroll(studentID, courseID uint) (*model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollmentRepo.Find(studentID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     model.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	// The find-then-create check above can race; the unique index on
	// (student, course) is the real guard.
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if isDuplicateKey(err) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}

	if err := s.CourseRepo.IncrementStudents(courseID); err != nil {
		logger.Log.Warn("failed to bump enrolled count", zap.Uint("courseId", courseID), zap.Error(err))
	}

	return enrollment, nil
}

// isDuplicateKey reports a unique-index violation, either translated by gorm
// or raw from the MySQL driver (error 1062).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *EnrollmentService) ListEnrolled(studentID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByStudent(studentID)
}

type CourseProgress struct {
	EnrolledAt        time.Time              `json:"enrolledAt"`
	Status            model.EnrollmentStatus `json:"status"`
	Progress          int                    `json:"progress"`
	TotalLessons      int64                  `json:"totalLessons"`
	CompletedLessons  int64                  `json:"completedLessons"`
	CertificateEarned bool                   `json:"certificateEarned"`
	CompletedAt       *time.Time             `json:"completedAt,omitempty"`
}

func (s *EnrollmentService) GetProgress(studentID, courseID uint) (*CourseProgress, error) {
	enrollment, err := s.EnrollmentRepo.Find(studentID, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	total, err := s.LessonRepo.CountByCourse(courseID, true)
	if err != nil {
		return nil, err
	}
	completed, err := s.LessonRepo.CountCompleted(studentID, courseID)
	if err != nil {
		return nil, err
	}

	return &CourseProgress{
		EnrolledAt:        enrollment.EnrolledAt,
		Status:            enrollment.Status,
		Progress:          enrollment.Progress,
		TotalLessons:      total,
		CompletedLessons:  completed,
		CertificateEarned: enrollment.CertificateEarned,
		CompletedAt:       enrollment.CompletedAt,
	}, nil
}

// CompleteLesson records a finished lesson and recomputes enrollment
// progress. Hitting 100% stamps completion and issues a certificate.
func (s *EnrollmentService) CompleteLesson(studentID, lessonID uint) (*CourseProgress, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	enrollment, err := s.EnrollmentRepo.Find(studentID, lesson.CourseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	completion := &model.LessonCompletion{
		StudentID:   studentID,
		LessonID:    lessonID,
		CourseID:    lesson.CourseID,
		CompletedAt: time.Now(),
	}
	if err := s.LessonRepo.MarkCompleted(completion); err != nil {
		return nil, err
	}

	total, err := s.LessonRepo.CountByCourse(lesson.CourseID, true)
	if err != nil {
		return nil, err
	}
	completed, err := s.LessonRepo.CountCompleted(studentID, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	enrollment.Progress = lessonProgress(completed, total)
	if enrollment.Progress >= 100 && enrollment.Status == model.EnrollmentActive {
		now := time.Now()
		enrollment.Status = model.EnrollmentCompleted
		enrollment.CompletedAt = &now
		if !enrollment.CertificateEarned {
			enrollment.CertificateEarned = true
			cert := &model.Certificate{
				StudentID: studentID,
				CourseID:  lesson.CourseID,
				Serial:    model.GenerateUUID(),
				IssuedAt:  now,
			}
			if err := s.CertificateRepo.Create(cert); err != nil {
				logger.Log.Error("certificate issue failed", zap.Uint("studentId", studentID), zap.Error(err))
			}
		}
	}

	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}

	return s.GetProgress(studentID, lesson.CourseID)
}

func (s *EnrollmentService) ListCertificates(studentID uint) ([]model.Certificate, error) {
	return s.CertificateRepo.ListByStudent(studentID)
}

// lessonProgress converts completed/total lessons into a whole percentage.
// No lessons means no measurable progress.
func lessonProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(completed * 100 / total)
	if p > 100 {
		p = 100
	}
	return p
}
