package dto

// SetDarkModeRequest represents the request body for setting the dark mode flag.
// Enabled is a pointer so a missing field is rejected instead of read as false.
type SetDarkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PreferencesResponse represents the display preferences in API responses.
type PreferencesResponse struct {
	DarkMode bool `json:"darkMode"`
}
