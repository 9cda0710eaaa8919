package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID         uint             `gorm:"uniqueIndex:idx_student_course;type:bigint unsigned;not null" json:"studentId"`
	Student           *User            `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID          uint             `gorm:"uniqueIndex:idx_student_course;type:bigint unsigned;not null" json:"courseId"`
	Course            *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Status            EnrollmentStatus `gorm:"size:20;default:'active'" json:"status"`
	Progress          int              `gorm:"default:0" json:"progress"` // percent, 0-100
	EnrolledAt        time.Time        `json:"enrolledAt"`
	CompletedAt       *time.Time       `json:"completedAt,omitempty"`
	CertificateEarned bool             `gorm:"default:false" json:"certificateEarned"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// swagger:model Certificate
type Certificate struct {
	BaseModel
	StudentID uint      `gorm:"index;type:bigint unsigned;not null" json:"studentId"`
	CourseID  uint      `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Serial    string    `gorm:"size:36;unique;not null" json:"serial"`
	IssuedAt  time.Time `json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
