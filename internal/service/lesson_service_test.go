package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestLessonsPublishedOnly(t *testing.T) {
	const ownerID = 7

	tests := map[string]struct {
		actor *util.Claims
		want  bool
	}{
		"anonymous":        {nil, true},
		"student":          {&util.Claims{UserID: 3, Role: model.Student}, true},
		"other instructor": {&util.Claims{UserID: 8, Role: model.Instructor}, true},
		"owner":            {&util.Claims{UserID: ownerID, Role: model.Instructor}, false},
		"admin":            {&util.Claims{UserID: 1, Role: model.Admin}, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, lessonsPublishedOnly(ownerID, tc.actor))
		})
	}
}
