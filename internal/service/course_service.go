package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const catalogVersionKey = "catalog:version"

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Redis      *redis.Client
	Cfg        *config.Config
	Storage    *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client, cfg *config.Config, storage *StorageService) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Redis:      rdb,
		Cfg:        cfg,
		Storage:    storage,
	}
}

// ReloadConfig swaps the config after a hot reload so the catalog cache TTL
// tracks the file.
func (s *CourseService) ReloadConfig(cfg *config.Config) {
	s.Cfg = cfg
}

type CatalogPage struct {
	Courses []model.Course `json:"courses"`
	Total   int64          `json:"total"`
	Pages   int64          `json:"pages"`
	Page    int            `json:"page"`
}

// ListCatalog serves the public course catalog, cached per query in Redis
// with a short TTL. Writes bump the catalog version so stale pages are never
// served.
func (s *CourseService) ListCatalog(ctx context.Context, filter repository.CourseFilter, page, limit int) (*CatalogPage, error) {
	key := s.catalogKey(ctx, filter, page, limit)
	if key != "" {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var result CatalogPage
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	courses, total, err := s.CourseRepo.List(filter, page, limit)
	if err != nil {
		return nil, err
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	result := &CatalogPage{
		Courses: courses,
		Total:   total,
		Pages:   pages,
		Page:    page,
	}

	if key != "" {
		ttl := time.Duration(s.Cfg.Catalog.CacheTTLSeconds) * time.Second
		if ttl <= 0 {
			ttl = 60 * time.Second
		}
		if b, err := json.Marshal(result); err == nil {
			if err := s.Redis.Set(ctx, key, b, ttl).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

func (s *CourseService) catalogKey(ctx context.Context, filter repository.CourseFilter, page, limit int) string {
	version, err := s.Redis.Get(ctx, catalogVersionKey).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		return "" // cache unavailable, fall through to the database
	}
	return fmt.Sprintf("catalog:v%s:%s:%s:%s:%d:%t:%d:%d",
		version,
		strings.ToLower(filter.Search),
		filter.Category,
		filter.Level,
		filter.InstructorID,
		filter.PublishedOnly,
		page, limit,
	)
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.Redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

type CourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	IsPublished *bool   `json:"isPublished"`
}

func (s *CourseService) CreateCourse(ctx context.Context, instructorID uint, req CourseRequest) (*model.Course, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if len(title) < 5 {
		return nil, &util.RequestError{Message: "Title must be at least 5 characters"}
	}
	if len(description) < 20 {
		return nil, &util.RequestError{Message: "Description must be at least 20 characters"}
	}

	course := &model.Course{
		Title:        title,
		Description:  description,
		InstructorID: instructorID,
		Category:     model.CourseCategory(req.Category),
		Level:        model.CourseLevel(req.Level),
		Price:        req.Price,
		Image:        req.Image,
	}
	if course.Category == "" {
		course.Category = model.CategoryOther
	}
	if course.Level == "" {
		course.Level = model.LevelBeginner
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, courseID uint, actor *util.Claims, req CourseRequest) (*model.Course, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership("update this course", course.InstructorID, actor); err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Category != "" {
		course.Category = model.CourseCategory(req.Category)
	}
	if req.Level != "" {
		course.Level = model.CourseLevel(req.Level)
	}
	if req.Price >= 0 {
		course.Price = req.Price
	}
	if req.Image != "" {
		course.Image = req.Image
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, courseID uint, actor *util.Claims) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	if err := requireOwnership("delete this course", course.InstructorID, actor); err != nil {
		return err
	}

	if err := s.CourseRepo.Delete(courseID); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// UploadImage stores a course cover image and replaces the course's image URL.
func (s *CourseService) UploadImage(ctx context.Context, courseID uint, actor *util.Claims, file *multipart.FileHeader) (*model.Course, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership("upload an image for this course", course.InstructorID, actor); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := fmt.Sprintf("courses/%d/%s%s", courseID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	course.Image = url
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

// requireOwnership allows the owning instructor and administrators. The
// action names what was attempted so denials carry context.
func requireOwnership(action string, ownerID uint, actor *util.Claims) error {
	if actor == nil {
		return util.ErrPermissionDenied
	}
	if actor.Role == model.Admin || actor.UserID == ownerID {
		return nil
	}
	return &util.PermissionError{Action: action, OwnerID: ownerID, Role: string(actor.Role)}
}
