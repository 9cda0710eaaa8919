package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserSettingsScanNilAppliesDefaults(t *testing.T) {
	var s UserSettings
	require.NoError(t, s.Scan(nil))
	require.Equal(t, DefaultUserSettings(), s)
}

func TestUserSettingsScanJSON(t *testing.T) {
	var s UserSettings
	require.NoError(t, s.Scan([]byte(`{"emailNotifications":false,"pushNotifications":true,"theme":"dark"}`)))
	require.Equal(t, UserSettings{EmailNotifications: false, PushNotifications: true, Theme: "dark"}, s)
}
