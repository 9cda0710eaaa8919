// Seed script for local development.
//
// Creates a demo instructor with one published course, lessons and a quiz,
// plus a student account. Safe to re-run: existing emails are skipped.
//
// Usage: go run scripts/seed.go
package main

import (
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	instructor := ensureUser(db, "instructor@learnhub.dev", "Demo Instructor", model.Instructor)
	ensureUser(db, "student@learnhub.dev", "Demo Student", model.Student)

	var course model.Course
	err = db.Where("title = ?", "Go Fundamentals").First(&course).Error
	if err == gorm.ErrRecordNotFound {
		course = model.Course{
			Title:        "Go Fundamentals",
			Description:  "An introductory course covering the Go language from variables to goroutines.",
			Category:     model.CategoryProgramming,
			Level:        model.LevelBeginner,
			InstructorID: instructor.ID,
			IsPublished:  true,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course: %v", err)
		}

		lessons := []model.Lesson{
			{CourseID: course.ID, Title: "Getting Started", Order: 1, IsPublished: true},
			{CourseID: course.ID, Title: "Types and Functions", Order: 2, IsPublished: true},
			{CourseID: course.ID, Title: "Concurrency Basics", Order: 3, IsPublished: true},
		}
		if err := db.Create(&lessons).Error; err != nil {
			log.Fatalf("Failed to create lessons: %v", err)
		}

		zero, one := 0, 1
		quiz := model.Quiz{
			CourseID:        course.ID,
			Title:           "Go Basics Check",
			PassingScore:    60,
			DurationMinutes: 15,
			IsPublished:     true,
			Questions: []model.Question{
				{
					Position:     0,
					Text:         "Which keyword declares a new variable with inferred type?",
					Kind:         model.KindMultipleChoice,
					Options:      model.StringList{"var", ":=", "let", "def"},
					CorrectIndex: &one,
					Points:       2,
				},
				{
					Position:     1,
					Text:         "A goroutine is started with the go keyword.",
					Kind:         model.KindTrueFalse,
					Options:      model.StringList{"True", "False"},
					CorrectIndex: &zero,
					Points:       1,
				},
				{
					Position:    2,
					Text:        "Name the builtin that appends to a slice.",
					Kind:        model.KindShortAnswer,
					CorrectText: "append",
					Points:      1,
				},
			},
		}
		quiz.TotalPoints = grading.TotalPoints(quiz.Questions)
		if err := db.Create(&quiz).Error; err != nil {
			log.Fatalf("Failed to create quiz: %v", err)
		}
	} else if err != nil {
		log.Fatalf("Failed to query course: %v", err)
	}

	log.Println("Seed data ready")
}

func ensureUser(db *gorm.DB, email, name string, role model.UserRole) *model.User {
	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to query user %s: %v", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user = model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Verified: true,
		Settings: model.DefaultUserSettings(),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	return &user
}
