package models

// Setting keys persisted in the user_settings table
const (
	SettingAutoRefreshEnabled  = "auto_refresh_enabled"
	SettingAutoRefreshInterval = "auto_refresh_interval"
	SettingDateFrom            = "date_from"
	SettingDateTo              = "date_to"
)

// Settings is the operator-facing view of the key-value settings store,
// with defaults applied for keys that were never written.
type Settings struct {
	AutoRefreshEnabled  bool   `json:"autoRefreshEnabled"`
	AutoRefreshInterval int    `json:"autoRefreshInterval"`
	DateFrom            string `json:"dateFrom"`
	DateTo              string `json:"dateTo"`
}

// SettingsForm carries a partial settings update; nil fields are left
// untouched.
type SettingsForm struct {
	AutoRefreshEnabled  *bool   `json:"autoRefreshEnabled"`
	AutoRefreshInterval *int    `json:"autoRefreshInterval"`
	DateFrom            *string `json:"dateFrom"`
	DateTo              *string `json:"dateTo"`
}
