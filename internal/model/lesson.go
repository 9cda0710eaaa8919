package model

import "time"

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID        uint   `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	Content         string `gorm:"type:text" json:"content"`
	VideoURL        string `gorm:"size:512" json:"videoUrl"`
	YoutubeURL      string `gorm:"size:512" json:"youtubeUrl"`
	DurationMinutes int    `gorm:"default:0" json:"durationMinutes"`
	Order           int    `gorm:"default:0" json:"order"`
	IsPublished     bool   `gorm:"default:false" json:"isPublished"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// LessonCompletion records that a student finished a lesson. One row per
// (student, lesson); enrollment progress is derived from these rows.
type LessonCompletion struct {
	BaseModel
	StudentID   uint      `gorm:"uniqueIndex:idx_student_lesson;type:bigint unsigned;not null" json:"studentId"`
	LessonID    uint      `gorm:"uniqueIndex:idx_student_lesson;type:bigint unsigned;not null" json:"lessonId"`
	CourseID    uint      `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}
