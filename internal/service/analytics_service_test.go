package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05Z", s)
	require.NoError(t, err)
	return parsed
}

func TestBuildDailySeries(t *testing.T) {
	since := day(t, "2026-03-01T00:00:00Z")

	enrollments := []model.EnrollmentPoint{
		{CreatedAt: day(t, "2026-03-01T09:00:00Z"), Progress: 40},
		{CreatedAt: day(t, "2026-03-01T21:30:00Z"), Progress: 60},
		{CreatedAt: day(t, "2026-03-03T12:00:00Z"), Progress: 10},
	}
	submissions := []model.SubmissionPoint{
		{SubmittedAt: day(t, "2026-03-02T08:00:00Z"), Percentage: 80, Passed: true},
		{SubmittedAt: day(t, "2026-03-02T10:00:00Z"), Percentage: 40, Passed: false},
	}

	daily := buildDailySeries(since, 4, enrollments, submissions)
	require.Len(t, daily, 4)

	require.Equal(t, "2026-03-01", daily[0].Day)
	require.Equal(t, 2, daily[0].Enrollments)
	require.InDelta(t, 50.0, daily[0].AvgProgress, 0.001)
	require.Equal(t, 0, daily[0].Submissions)

	require.Equal(t, "2026-03-02", daily[1].Day)
	require.Equal(t, 2, daily[1].Submissions)
	require.InDelta(t, 60.0, daily[1].AvgPercentage, 0.001)

	require.Equal(t, "2026-03-03", daily[2].Day)
	require.Equal(t, 1, daily[2].Enrollments)

	// Day without activity stays zero filled rather than missing.
	require.Equal(t, "2026-03-04", daily[3].Day)
	require.Zero(t, daily[3].Enrollments)
	require.Zero(t, daily[3].Submissions)
	require.Zero(t, daily[3].AvgProgress)
	require.Zero(t, daily[3].AvgPercentage)
}

func TestBuildDailySeriesEmpty(t *testing.T) {
	since := day(t, "2026-03-01T00:00:00Z")
	daily := buildDailySeries(since, 2, nil, nil)
	require.Len(t, daily, 2)
	for _, entry := range daily {
		require.Zero(t, entry.AvgProgress)
		require.Zero(t, entry.AvgPercentage)
	}
}

func TestPassRate(t *testing.T) {
	tests := map[string]struct {
		submissions []model.SubmissionPoint
		want        float64
	}{
		"empty is zero not NaN": {
			submissions: nil,
			want:        0,
		},
		"all passed": {
			submissions: []model.SubmissionPoint{{Passed: true}, {Passed: true}},
			want:        100,
		},
		"half passed": {
			submissions: []model.SubmissionPoint{{Passed: true}, {Passed: false}},
			want:        50,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.InDelta(t, tc.want, passRate(tc.submissions), 0.001)
		})
	}
}

func TestSummarizeStudent(t *testing.T) {
	enrollments := []model.Enrollment{
		{Status: model.EnrollmentCompleted, Progress: 100},
		{Status: model.EnrollmentActive, Progress: 50},
	}
	submissions := []model.QuizSubmission{
		{Percentage: 90, Passed: true},
		{Percentage: 30, Passed: false},
		{Percentage: 60, Passed: true},
	}

	overview := summarizeStudent(enrollments, submissions)
	require.Equal(t, 2, overview.EnrolledCourses)
	require.Equal(t, 1, overview.CompletedCourses)
	require.InDelta(t, 75.0, overview.AverageProgress, 0.001)
	require.Equal(t, 3, overview.QuizAttempts)
	require.Equal(t, 2, overview.QuizzesPassed)
	require.InDelta(t, 60.0, overview.AverageQuizScore, 0.001)
}

func TestSummarizeStudentEmpty(t *testing.T) {
	overview := summarizeStudent(nil, nil)
	require.Zero(t, overview.AverageProgress)
	require.Zero(t, overview.AverageQuizScore)
	require.Empty(t, overview.RecentAttempts)
}
