package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

const defaultWindowDays = 30

type AnalyticsService struct {
	CourseRepo      *repository.CourseRepository
	EnrollmentRepo  *repository.EnrollmentRepository
	SubmissionRepo  *repository.SubmissionRepository
	QuizRepo        *repository.QuizRepository
	CertificateRepo *repository.CertificateRepository
}

func NewAnalyticsService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	submissionRepo *repository.SubmissionRepository,
	quizRepo *repository.QuizRepository,
	certificateRepo *repository.CertificateRepository,
) *AnalyticsService {
	return &AnalyticsService{
		CourseRepo:      courseRepo,
		EnrollmentRepo:  enrollmentRepo,
		SubmissionRepo:  submissionRepo,
		QuizRepo:        quizRepo,
		CertificateRepo: certificateRepo,
	}
}

// CourseEngagement aggregates a course's activity over the trailing window.
// Only the course owner or an admin may read it.
func (s *AnalyticsService) CourseEngagement(courseID uint, actor *util.Claims, windowDays int) (*model.CourseEngagement, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if err := requireOwnership("view analytics for this course", course.InstructorID, actor); err != nil {
		return nil, err
	}

	if windowDays < 1 || windowDays > 365 {
		windowDays = defaultWindowDays
	}
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -(windowDays - 1)).Truncate(24 * time.Hour)

	enrollments, err := s.EnrollmentRepo.ListByCourseSince(courseID, since)
	if err != nil {
		return nil, err
	}
	submissions, err := s.SubmissionRepo.ListByCourseSince(courseID, since)
	if err != nil {
		return nil, err
	}
	totalEnrollments, err := s.EnrollmentRepo.CountByCourse(courseID)
	if err != nil {
		return nil, err
	}
	totalSubmissions, err := s.SubmissionRepo.CountByCourse(courseID)
	if err != nil {
		return nil, err
	}

	return &model.CourseEngagement{
		CourseID:         courseID,
		WindowDays:       windowDays,
		TotalEnrollments: totalEnrollments,
		TotalSubmissions: totalSubmissions,
		PassRate:         passRate(submissions),
		Daily:            buildDailySeries(since, windowDays, enrollments, submissions),
	}, nil
}

// buildDailySeries produces one entry per calendar day in the window, zero
// filled for days without activity. Empty groups average to 0, not NaN.
func buildDailySeries(since time.Time, windowDays int, enrollments []model.EnrollmentPoint, submissions []model.SubmissionPoint) []model.DailyEngagement {
	type bucket struct {
		enrollments   int
		progressSum   int
		submissions   int
		percentageSum int
	}
	buckets := make(map[string]*bucket, windowDays)
	dayKey := func(t time.Time) string {
		return t.UTC().Format("2006-01-02")
	}

	for _, e := range enrollments {
		key := dayKey(e.CreatedAt)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.enrollments++
		b.progressSum += e.Progress
	}
	for _, sub := range submissions {
		key := dayKey(sub.SubmittedAt)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.submissions++
		b.percentageSum += sub.Percentage
	}

	daily := make([]model.DailyEngagement, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		key := dayKey(since.AddDate(0, 0, i))
		entry := model.DailyEngagement{Day: key}
		if b := buckets[key]; b != nil {
			entry.Enrollments = b.enrollments
			entry.Submissions = b.submissions
			if b.enrollments > 0 {
				entry.AvgProgress = float64(b.progressSum) / float64(b.enrollments)
			}
			if b.submissions > 0 {
				entry.AvgPercentage = float64(b.percentageSum) / float64(b.submissions)
			}
		}
		daily = append(daily, entry)
	}
	return daily
}

func passRate(submissions []model.SubmissionPoint) float64 {
	if len(submissions) == 0 {
		return 0
	}
	passed := 0
	for _, s := range submissions {
		if s.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(submissions)) * 100
}

// StudentOverview summarizes the calling student's own activity.
func (s *AnalyticsService) StudentOverview(studentID uint) (*model.StudentOverview, error) {
	enrollments, err := s.EnrollmentRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.SubmissionRepo.ListByStudent(studentID, 0)
	if err != nil {
		return nil, err
	}
	certCount, err := s.CertificateRepo.CountByStudent(studentID)
	if err != nil {
		return nil, err
	}

	overview := summarizeStudent(enrollments, submissions)
	overview.CertificatesCount = int(certCount)

	recent := submissions
	if len(recent) > 5 {
		recent = recent[:5]
	}
	quizIDs := make([]uint, 0, len(recent))
	for _, sub := range recent {
		quizIDs = append(quizIDs, sub.QuizID)
	}
	titles, err := s.QuizRepo.TitlesByIDs(quizIDs)
	if err != nil {
		return nil, err
	}
	overview.RecentAttempts = make([]model.RecentAttempt, len(recent))
	for i, sub := range recent {
		overview.RecentAttempts[i] = model.RecentAttempt{
			QuizID:      sub.QuizID,
			QuizTitle:   titles[sub.QuizID],
			Percentage:  sub.Percentage,
			Passed:      sub.Passed,
			SubmittedAt: sub.SubmittedAt,
		}
	}
	return overview, nil
}

func summarizeStudent(enrollments []model.Enrollment, submissions []model.QuizSubmission) *model.StudentOverview {
	overview := &model.StudentOverview{
		EnrolledCourses: len(enrollments),
		QuizAttempts:    len(submissions),
		RecentAttempts:  []model.RecentAttempt{},
	}

	progressSum := 0
	for _, e := range enrollments {
		progressSum += e.Progress
		if e.Status == model.EnrollmentCompleted {
			overview.CompletedCourses++
		}
	}
	if len(enrollments) > 0 {
		overview.AverageProgress = float64(progressSum) / float64(len(enrollments))
	}

	percentageSum := 0
	for _, sub := range submissions {
		percentageSum += sub.Percentage
		if sub.Passed {
			overview.QuizzesPassed++
		}
	}
	if len(submissions) > 0 {
		overview.AverageQuizScore = float64(percentageSum) / float64(len(submissions))
	}
	return overview
}
