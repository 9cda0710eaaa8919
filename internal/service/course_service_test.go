package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestRequireOwnershipAllowsOwnerAndAdmin(t *testing.T) {
	owner := &util.Claims{UserID: 7, Role: model.Instructor}
	require.NoError(t, requireOwnership("update this course", 7, owner))

	admin := &util.Claims{UserID: 1, Role: model.Admin}
	require.NoError(t, requireOwnership("delete this course", 7, admin))
}

func TestRequireOwnershipDenialCarriesContext(t *testing.T) {
	other := &util.Claims{UserID: 8, Role: model.Instructor}
	err := requireOwnership("update this course", 7, other)
	require.ErrorIs(t, err, util.ErrPermissionDenied)

	var permErr *util.PermissionError
	require.ErrorAs(t, err, &permErr)
	require.Equal(t, "update this course", permErr.Action)
	require.Equal(t, uint(7), permErr.OwnerID)
	require.Contains(t, err.Error(), "update this course")
	require.Contains(t, err.Error(), "instructor")
}
