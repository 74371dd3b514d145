package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSetting(t *testing.T, key string) string {
	t.Helper()
	for _, s := range seedSettings {
		if s.key == key {
			return s.value
		}
	}
	t.Fatalf("setting %q not seeded", key)
	return ""
}

func TestSeedSettings_ScreeningDefaults(t *testing.T) {
	assert.Equal(t, "70", seededSetting(t, SettingResumeThreshold))
	assert.Equal(t, "140", seededSetting(t, SettingFinalThreshold))
	assert.Equal(t, "25", seededSetting(t, SettingTestDuration))
	assert.Equal(t, "10", seededSetting(t, SettingMaxFileSizeMB))
	assert.Equal(t, "true", seededSetting(t, SettingAIEnabled))
}

func TestSeedRoles_ThresholdsInRange(t *testing.T) {
	require.NotEmpty(t, seedRoles)
	for _, role := range seedRoles {
		assert.GreaterOrEqual(t, role.threshold, 0, role.name)
		assert.LessOrEqual(t, role.threshold, 100, role.name)
		assert.NotEmpty(t, role.skills, role.name)
		assert.NotEmpty(t, role.category, role.name)
	}
}
