package util

import (
	"errors"
	"fmt"
)

// RequestError carries a caller-facing validation message, safe to echo in a
// 400 response.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// PermissionError is a denial that names the attempted action and the
// resource owner so callers can see what was rejected. It unwraps to
// ErrPermissionDenied.
type PermissionError struct {
	Action  string
	OwnerID uint
	Role    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role '%s' is not authorized to %s (resource owned by user %d)", e.Role, e.Action, e.OwnerID)
}

func (e *PermissionError) Unwrap() error { return ErrPermissionDenied }

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrEnrollmentNotFound = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
)
