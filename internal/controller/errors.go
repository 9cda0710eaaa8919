package controller

import (
	"errors"
	"net/http"
	"strconv"

	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors onto the response envelope. Unknown
// errors are logged and hidden behind a 500.
func respondError(ctx *gin.Context, err error) {
	var reqErr *util.RequestError
	var valErr *grading.ValidationError
	var permErr *util.PermissionError

	switch {
	case errors.As(err, &reqErr):
		util.BadRequest(ctx, reqErr.Message)
	case errors.As(err, &valErr):
		util.BadRequest(ctx, err.Error())
	case errors.As(err, &permErr):
		util.Forbidden(ctx, permErr.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, "")
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrEnrollmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, "Email already registered")
	case errors.Is(err, util.ErrAlreadyEnrolled):
		util.Error(ctx, http.StatusConflict, "Already enrolled in this course")
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID parses a numeric path parameter, answering (0, false) after writing
// the 400 itself.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
