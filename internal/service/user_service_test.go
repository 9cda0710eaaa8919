package service

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestApplySettingsMergesProvidedFields(t *testing.T) {
	settings := model.DefaultUserSettings()

	applySettings(&settings, UpdateSettingsRequest{
		PushNotifications: boolPtr(false),
		Theme:             strPtr("dark"),
	})

	require.True(t, settings.EmailNotifications)
	require.False(t, settings.PushNotifications)
	require.Equal(t, "dark", settings.Theme)
}

func TestApplySettingsEmptyRequestKeepsValues(t *testing.T) {
	settings := model.UserSettings{EmailNotifications: false, PushNotifications: true, Theme: "dark"}

	applySettings(&settings, UpdateSettingsRequest{})

	require.Equal(t, model.UserSettings{EmailNotifications: false, PushNotifications: true, Theme: "dark"}, settings)
}
