package config

import (
	"github.com/ariel-frischer/notify/internal/notify"
	"github.com/ariel-frischer/notify/internal/runner"
	"github.com/ariel-frischer/notify/internal/sound"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"shell":         runner.DefaultShell,
		"notifier_cmd":  notify.DefaultProgram,
		"default_sound": sound.Default.String(),
		"log_level":     "warn",
	}
}
