// Package prefs persists user-facing animation preferences, most
// importantly the reduced-motion accessibility signal, across platforms.
//
// The engine itself never reads ambient global state: it takes a
// motion-preference query function. This package is the default provider
// behind that function.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are global animation preferences, not bound to a particular
// surface or effect.
type Settings struct {
	// ReducedMotion requests minimized or skipped animation. Presets
	// render nothing while it is set.
	ReducedMotion bool `yaml:"reducedMotion"`
	// TargetFPS caps animation loops. 0 uses each loop's default.
	TargetFPS int `yaml:"targetFps"`
}

// DefaultSettings returns the defaults: full motion, default frame cap.
func DefaultSettings() *Settings {
	return &Settings{
		ReducedMotion: false,
		TargetFPS:     0,
	}
}

// Storage keys.
const (
	settingsObject   = "settings"
	settingsProperty = "animation"
)

// SettingsManager loads and saves Settings through a gdata manager.
// A nil manager degrades to in-memory settings: preferences work for
// the session but do not persist, and nothing errors.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// NewSettingsManager creates a manager and attempts an initial load.
// A failed load is not fatal; the defaults are used.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load reads settings from storage. Missing storage or a missing entry
// leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to storage. A nil manager is a
// silent no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the in-memory settings.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// ReducedMotion reports the current preference. The method value is
// what engine loops and presets take as their query function.
func (sm *SettingsManager) ReducedMotion() bool {
	return sm.settings.ReducedMotion
}

// SetReducedMotion updates the in-memory preference; call Save to
// persist it.
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetTargetFPS updates the in-memory frame cap; call Save to persist.
func (sm *SettingsManager) SetTargetFPS(fps int) {
	if fps < 0 {
		fps = 0
	}
	sm.settings.TargetFPS = fps
}
