package service

import "docuagent/internal/model"

// SettingsService serves the application settings. There is no backing
// store: reads return env-derived defaults and updates echo the merged
// input without persisting anything.
type SettingsService interface {
	GetSettings() model.Settings
	UpdateSettings(patch map[string]any) model.Settings
}

var _ SettingsService = (*Service)(nil)

func (s *Service) defaults() model.Settings {
	return model.Settings{
		Endpoint:             s.settings.Endpoint,
		NotificationsEnabled: s.settings.NotificationsEnabled,
		RiskThreshold:        s.settings.RiskThreshold,
		RetentionDays:        s.settings.RetentionDays,
	}
}

// GetSettings returns the env-derived defaults.
func (s *Service) GetSettings() model.Settings {
	return s.defaults()
}

// UpdateSettings merges the request body over the defaults and echoes the
// result. Missing keys keep their defaults; values of the wrong JSON type
// are ignored.
func (s *Service) UpdateSettings(patch map[string]any) model.Settings {
	merged := s.defaults()
	if v, ok := patch["endpoint"].(string); ok {
		merged.Endpoint = v
	}
	if v, ok := patch["notificationsEnabled"].(bool); ok {
		merged.NotificationsEnabled = v
	}
	// JSON numbers decode as float64.
	if v, ok := patch["riskThreshold"].(float64); ok {
		merged.RiskThreshold = v
	}
	if v, ok := patch["retentionDays"].(float64); ok {
		merged.RetentionDays = int(v)
	}
	return merged
}
