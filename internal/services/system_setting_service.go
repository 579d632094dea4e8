package services

import (
	"qc-backend/internal/models"
	"qc-backend/internal/repositories"
)

type SystemSettingService struct {
	Repo *repositories.SystemSettingRepository
}

func NewSystemSettingService(repo *repositories.SystemSettingRepository) *SystemSettingService {
	return &SystemSettingService{Repo: repo}
}

func (s *SystemSettingService) GetSetting(key string) (*models.SystemSetting, error) {
	return s.Repo.Get(key)
}

func (s *SystemSettingService) ListSettings() []*models.SystemSetting {
	return s.Repo.List()
}

func (s *SystemSettingService) UpdateSetting(key, value, userID string) error {
	return s.Repo.Update(key, value, userID)
}

// UpsertSetting creates or updates a setting
func (s *SystemSettingService) UpsertSetting(key, value, description, userID string) {
	s.Repo.Upsert(key, value, description, userID)
}
