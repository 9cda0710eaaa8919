package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorForbiddenNamesActionAndOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	respondError(ctx, &util.PermissionError{Action: "update this course", OwnerID: 42, Role: "instructor"})

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "update this course")
	require.Contains(t, body, "42")
	require.Contains(t, body, "instructor")
}

func TestRespondErrorNotFoundMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	respondError(ctx, util.ErrQuizNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespondErrorConflictMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	respondError(ctx, util.ErrAlreadyEnrolled)

	require.Equal(t, http.StatusConflict, rec.Code)
}
