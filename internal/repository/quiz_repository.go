package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// FindByID loads the quiz with its questions in position order.
func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc, id asc")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) ListByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc, id asc")
	}).Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

// TitlesByIDs returns quiz titles keyed by id, without loading questions.
func (r *QuizRepository) TitlesByIDs(ids []uint) (map[uint]string, error) {
	titles := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}
	var rows []struct {
		ID    uint
		Title string
	}
	err := r.DB.Model(&model.Quiz{}).
		Select("id, title").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

// Update saves quiz fields and, when questions are present, replaces the
// whole question set in one transaction so TotalPoints can never go stale
// relative to the stored questions.
func (r *QuizRepository) Update(quiz *model.Quiz, replaceQuestions bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if replaceQuestions {
			if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Question{}).Error; err != nil {
				return err
			}
			for i := range quiz.Questions {
				quiz.Questions[i].ID = 0
				quiz.Questions[i].QuizID = quiz.ID
				quiz.Questions[i].Position = i
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: replaceQuestions}).Save(quiz).Error
	})
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
