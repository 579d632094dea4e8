package repositories

import (
	"testing"

	"qc-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSettingRepository(t *testing.T) {
	repo := NewSystemSettingRepository([]*models.SystemSetting{
		{SettingKey: "default_language", SettingValue: "en"},
		{SettingKey: "app_title", SettingValue: "Rui Sin QC"},
	})

	s, err := repo.Get("default_language")
	require.NoError(t, err)
	assert.Equal(t, "en", s.SettingValue)

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	// List comes back sorted by key.
	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "app_title", list[0].SettingKey)

	require.NoError(t, repo.Update("default_language", "ms", "user-2"))
	s, err = repo.Get("default_language")
	require.NoError(t, err)
	assert.Equal(t, "ms", s.SettingValue)
	assert.Equal(t, "user-2", s.UpdatedByUserID)

	assert.ErrorIs(t, repo.Update("missing", "x", "user-2"), ErrSettingNotFound)

	repo.Upsert("site_id", "site-2", "Active plant site", "user-3")
	s, err = repo.Get("site_id")
	require.NoError(t, err)
	assert.Equal(t, "site-2", s.SettingValue)
	assert.Equal(t, "Active plant site", s.Description)

	// Upsert on an existing key keeps its description when none is given.
	repo.Upsert("site_id", "site-3", "", "user-3")
	s, err = repo.Get("site_id")
	require.NoError(t, err)
	assert.Equal(t, "site-3", s.SettingValue)
	assert.Equal(t, "Active plant site", s.Description)
}

func TestSystemSettingGetReturnsCopy(t *testing.T) {
	repo := NewSystemSettingRepository([]*models.SystemSetting{
		{SettingKey: "app_title", SettingValue: "Rui Sin QC"},
	})

	s, err := repo.Get("app_title")
	require.NoError(t, err)
	s.SettingValue = "tampered"

	fresh, err := repo.Get("app_title")
	require.NoError(t, err)
	assert.Equal(t, "Rui Sin QC", fresh.SettingValue)
}
