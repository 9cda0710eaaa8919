package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindTrueFalse      QuestionKind = "true-false"
	KindShortAnswer    QuestionKind = "short-answer"
)

// StringList stores an ordered list of option strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Question is a single assessable item within a quiz. The correct answer is
// stored as a tagged variant keyed by Kind: choice kinds carry an option index
// in CorrectIndex, short-answer carries the expected text in CorrectText.
// swagger:model Question
type Question struct {
	BaseModel
	QuizID       uint         `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Position     int          `gorm:"default:0" json:"position"`
	Text         string       `gorm:"type:text;not null" json:"text"`
	Kind         QuestionKind `gorm:"size:20;not null" json:"kind"`
	Options      StringList   `gorm:"type:json" json:"options"`
	CorrectIndex *int         `json:"correctIndex,omitempty"`
	CorrectText  string       `gorm:"type:text" json:"correctText,omitempty"`
	Points       int          `gorm:"default:1" json:"points"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID        uint       `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	LessonID        *uint      `gorm:"index;type:bigint unsigned" json:"lessonId,omitempty"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Questions       []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	TotalPoints     int        `gorm:"default:0" json:"totalPoints"`
	PassingScore    int        `gorm:"default:60" json:"passingScore"` // percent
	DurationMinutes int        `gorm:"default:30" json:"durationMinutes"`
	IsPublished     bool       `gorm:"default:false" json:"isPublished"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
