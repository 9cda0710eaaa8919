package model

import "time"

// DailyEngagement is one calendar day of activity within a course.
type DailyEngagement struct {
	Day           string  `json:"day"` // YYYY-MM-DD
	Enrollments   int     `json:"enrollments"`
	AvgProgress   float64 `json:"avgProgress"`
	Submissions   int     `json:"submissions"`
	AvgPercentage float64 `json:"avgPercentage"`
}

type CourseEngagement struct {
	CourseID         uint              `json:"courseId"`
	WindowDays       int               `json:"windowDays"`
	TotalEnrollments int64             `json:"totalEnrollments"`
	TotalSubmissions int64             `json:"totalSubmissions"`
	PassRate         float64           `json:"passRate"`
	Daily            []DailyEngagement `json:"daily"`
}

// EnrollmentPoint and SubmissionPoint are the minimal row shapes the
// analytics aggregation consumes.
type EnrollmentPoint struct {
	CreatedAt time.Time
	Progress  int
}

type SubmissionPoint struct {
	SubmittedAt time.Time
	Percentage  int
	Passed      bool
}

type RecentAttempt struct {
	QuizID      uint      `json:"quizId"`
	QuizTitle   string    `json:"quizTitle"`
	Percentage  int       `json:"percentage"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type StudentOverview struct {
	EnrolledCourses   int             `json:"enrolledCourses"`
	CompletedCourses  int             `json:"completedCourses"`
	AverageProgress   float64         `json:"averageProgress"`
	QuizAttempts      int             `json:"quizAttempts"`
	AverageQuizScore  float64         `json:"averageQuizScore"`
	QuizzesPassed     int             `json:"quizzesPassed"`
	RecentAttempts    []RecentAttempt `json:"recentAttempts"`
	CertificatesCount int             `json:"certificatesCount"`
}
