package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository, storage *StorageService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		CourseRepo: courseRepo,
		Storage:    storage,
	}
}

// ListByCourse returns a course's lessons. Unpublished lessons are visible
// only to the course owner and admins.
func (s *LessonService) ListByCourse(courseID uint, actor *util.Claims) ([]model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.LessonRepo.ListByCourse(courseID, lessonsPublishedOnly(course.InstructorID, actor))
}

// lessonsPublishedOnly decides whether a listing must hide unpublished
// lessons. Only the owning instructor and admins see drafts.
func lessonsPublishedOnly(ownerID uint, actor *util.Claims) bool {
	return requireOwnership("list unpublished lessons", ownerID, actor) != nil
}

func (s *LessonService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

type LessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	YoutubeURL  string `json:"youtubeUrl"`
	Order       *int   `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

func (s *LessonService) CreateLesson(courseID uint, actor *util.Claims, req LessonRequest) (*model.Lesson, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if err := requireOwnership("add lessons to this course", course.InstructorID, actor); err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, &util.RequestError{Message: "Lesson title is required"}
	}

	lesson := &model.Lesson{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		YoutubeURL:  req.YoutubeURL,
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) UpdateLesson(lessonID uint, actor *util.Claims, req LessonRequest) (*model.Lesson, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseOwnership("update this lesson", lesson.CourseID, actor); err != nil {
		return nil, err
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Description != "" {
		lesson.Description = req.Description
	}
	if req.Content != "" {
		lesson.Content = req.Content
	}
	if req.YoutubeURL != "" {
		lesson.YoutubeURL = req.YoutubeURL
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) DeleteLesson(lessonID uint, actor *util.Claims) error {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return err
	}
	if err := s.requireCourseOwnership("delete this lesson", lesson.CourseID, actor); err != nil {
		return err
	}
	return s.LessonRepo.Delete(lessonID)
}

// UploadVideo stores a lesson video and back-fills the lesson's duration from
// the probed metadata.
func (s *LessonService) UploadVideo(ctx context.Context, lessonID uint, actor *util.Claims, file *multipart.FileHeader) (*model.Lesson, error) {
	lesson, err := s.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseOwnership("upload a video for this lesson", lesson.CourseID, actor); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// Spool to a temp file so ffprobe can inspect it before upload.
	tmp, err := os.CreateTemp("", "lesson-video-*"+filepath.Ext(file.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("lessons/%d/%s%s", lessonID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, filename, tmp, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	lesson.VideoURL = url
	if info, err := util.GetVideoInfo(tmp.Name()); err == nil && info.Duration > 0 {
		lesson.DurationMinutes = int(math.Ceil(info.Duration / 60))
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) requireCourseOwnership(action string, courseID uint, actor *util.Claims) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCourseNotFound
		}
		return err
	}
	return requireOwnership(action, course.InstructorID, actor)
}
