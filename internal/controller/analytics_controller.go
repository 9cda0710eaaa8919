package controller

import (
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// CourseEngagement godoc
// @Summary Engagement analytics for a course
// @Description Daily enrollments, submissions and averages over the trailing window, zero filled
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} util.Response{data=model.CourseEngagement}
// @Failure 403 {object} util.Response "Not the course owner"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/analytics/courses/{id} [get]
func (c *AnalyticsController) CourseEngagement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	engagement, err := c.AnalyticsService.CourseEngagement(id, util.GetUserFromContext(ctx), days)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, engagement)
}

// StudentOverview godoc
// @Summary Own learning overview
// @Description Enrollment, quiz and certificate totals plus recent attempts
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.StudentOverview}
// @Router /api/analytics/me [get]
func (c *AnalyticsController) StudentOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.AnalyticsService.StudentOverview(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
