package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"app_id":         "wintoast",
		"backend":        "auto",
		"silent":         false,
		"sound_file":     "",
		"expire_timeout": -1,
		"log_level":      "warn",
	}
}
