package repositories

import (
	"errors"
	"sort"
	"sync"

	"qc-backend/internal/models"
	"qc-backend/internal/timeutil"
)

var ErrSettingNotFound = errors.New("setting not found")

type SystemSettingRepository struct {
	mu       sync.RWMutex
	settings map[string]*models.SystemSetting
}

func NewSystemSettingRepository(seeded []*models.SystemSetting) *SystemSettingRepository {
	r := &SystemSettingRepository{settings: make(map[string]*models.SystemSetting, len(seeded))}
	for _, s := range seeded {
		r.settings[s.SettingKey] = s
	}
	return r
}

func (r *SystemSettingRepository) Get(key string) (*models.SystemSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[key]
	if !ok {
		return nil, ErrSettingNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *SystemSettingRepository) List() []*models.SystemSetting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.SystemSetting, 0, len(r.settings))
	for _, s := range r.settings {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SettingKey < out[j].SettingKey })
	return out
}

func (r *SystemSettingRepository) Update(key, value, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[key]
	if !ok {
		return ErrSettingNotFound
	}
	s.SettingValue = value
	s.UpdatedAt = timeutil.Now()
	s.UpdatedByUserID = userID
	return nil
}

// Upsert creates or updates a setting.
func (r *SystemSettingRepository) Upsert(key, value, description, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.settings[key]; ok {
		s.SettingValue = value
		if description != "" {
			s.Description = description
		}
		s.UpdatedAt = timeutil.Now()
		s.UpdatedByUserID = userID
		return
	}
	r.settings[key] = &models.SystemSetting{
		SettingKey:      key,
		SettingValue:    value,
		Description:     description,
		UpdatedAt:       timeutil.Now(),
		UpdatedByUserID: userID,
	}
}
