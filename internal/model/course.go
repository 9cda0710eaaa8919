package model

type CourseCategory string

const (
	CategoryWebDevelopment CourseCategory = "Web Development"
	CategoryDataScience    CourseCategory = "Data Science"
	CategoryDesign         CourseCategory = "Design"
	CategoryBusiness       CourseCategory = "Business"
	CategoryProgramming    CourseCategory = "Programming"
	CategoryOther          CourseCategory = "Other"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title            string         `gorm:"size:255;not null" json:"title"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	InstructorID     uint           `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Instructor       *User          `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Category         CourseCategory `gorm:"size:50;default:'Other'" json:"category"`
	Level            CourseLevel    `gorm:"size:20;default:'Beginner'" json:"level"`
	Image            string         `gorm:"size:512" json:"image"`
	Price            float64        `gorm:"default:0" json:"price"`
	Rating           float64        `gorm:"default:0" json:"rating"`
	StudentsEnrolled int            `gorm:"default:0" json:"studentsEnrolled"`
	DurationHours    int            `gorm:"default:0" json:"durationHours"`
	IsPublished      bool           `gorm:"default:false" json:"isPublished"`
}

func (Course) TableName() string {
	return "courses"
}
