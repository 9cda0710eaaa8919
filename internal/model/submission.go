package model

import (
	"encoding/json"
	"time"
)

// QuizSubmission is the immutable record of one graded attempt. Rows are only
// ever inserted; there is no update path.
// swagger:model QuizSubmission
type QuizSubmission struct {
	BaseModel
	StudentID        uint            `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	QuizID           uint            `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	CourseID         uint            `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Answers          json.RawMessage `gorm:"type:json" json:"answers"` // []grading.EvaluatedAnswer
	Score            int             `gorm:"not null" json:"score"`
	Percentage       int             `gorm:"not null" json:"percentage"`
	Passed           bool            `gorm:"default:false" json:"passed"`
	AttemptNumber    int             `gorm:"default:1" json:"attemptNumber"`
	TimeSpentSeconds int             `gorm:"default:0" json:"timeSpentSeconds"`
	SubmittedAt      time.Time       `json:"submittedAt"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
