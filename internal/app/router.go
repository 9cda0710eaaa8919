package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/refresh", c.auth.Refresh)

		// Catalog browsing needs no account.
		public.GET("/courses", c.course.ListCatalog)
		public.GET("/courses/:id", c.course.GetCourse)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)
	rg.POST("/auth/logout", c.auth.Logout)
	rg.PUT("/users/me", c.user.UpdateProfile)
	rg.PUT("/users/me/password", c.user.ChangePassword)
	rg.GET("/users/settings", c.user.GetSettings)
	rg.PUT("/users/settings", c.user.UpdateSettings)

	rg.POST("/courses/:id/enroll", c.course.Enroll)
	rg.GET("/courses/:id/progress", c.course.GetProgress)
	rg.GET("/enrollments", c.course.ListEnrolled)
	rg.GET("/certificates", c.course.ListCertificates)

	rg.GET("/courses/:id/lessons", c.lesson.ListLessons)
	rg.GET("/lessons/:id", c.lesson.GetLesson)
	rg.POST("/lessons/:id/complete", c.lesson.CompleteLesson)

	rg.GET("/courses/:id/quizzes", c.quiz.ListQuizzes)
	rg.GET("/quizzes/:id", c.quiz.GetQuiz)
	rg.POST("/quizzes/:id/submit", c.quiz.Submit)
	rg.GET("/quizzes/:id/submissions", c.quiz.ListSubmissions)

	rg.GET("/analytics/me", c.analytics.StudentOverview)
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/instructor/courses", c.course.ListMine)
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.PUT("/courses/:id", c.course.UpdateCourse)
		instructor.DELETE("/courses/:id", c.course.DeleteCourse)
		instructor.POST("/courses/:id/image", c.course.UploadImage)

		instructor.POST("/courses/:id/lessons", c.lesson.CreateLesson)
		instructor.PUT("/lessons/:id", c.lesson.UpdateLesson)
		instructor.DELETE("/lessons/:id", c.lesson.DeleteLesson)
		instructor.POST("/lessons/:id/video", c.lesson.UploadVideo)

		instructor.POST("/quizzes", c.quiz.CreateQuiz)
		instructor.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		instructor.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

		instructor.GET("/analytics/courses/:id", c.analytics.CourseEngagement)
	}
}
