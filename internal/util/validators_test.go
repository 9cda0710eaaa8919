package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	require.True(t, ValidateEmail("student@example.com"))
	require.True(t, ValidateEmail("first.last@sub.example.org"))
	require.False(t, ValidateEmail("not-an-email"))
	require.False(t, ValidateEmail("missing@tld"))
	require.False(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	require.True(t, ValidatePassword("secret1"))
	require.False(t, ValidatePassword("short"))
}

func TestValidateName(t *testing.T) {
	require.True(t, ValidateName("Ada"))
	require.False(t, ValidateName("   "))
}

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string]struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		"defaults":      {"", 1, 10},
		"explicit":      {"?page=3&limit=25", 3, 25},
		"negative page": {"?page=-1&limit=0", 1, 10},
		"limit capped":  {"?limit=5000", 1, 100},
		"garbage":       {"?page=abc&limit=xyz", 1, 10},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/courses"+tc.query, nil)

			page, limit := Paginate(c)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}
