package prefs

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager opens a gdata store rooted in a per-test temp
// directory, so nothing touches the real user data dir and cleanup is
// automatic. Returns nil when the environment forbids storage.
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("confetti_test_%s", testName),
	})
	if err != nil {
		return nil
	}
	return manager
}

func TestSettingsManagerDefaults(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.ReducedMotion() {
		t.Error("reduced motion should default to false")
	}
	if got := sm.GetSettings().TargetFPS; got != 0 {
		t.Errorf("default target fps = %d, want 0", got)
	}
}

func TestSettingsManagerNilManagerDegradesGracefully(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	sm.SetReducedMotion(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save with nil manager should be a no-op, got: %v", err)
	}
	if !sm.ReducedMotion() {
		t.Error("in-memory preference lost")
	}
}

func TestSettingsManagerRoundtrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	if manager == nil {
		t.Skip("cannot create gdata manager in this environment")
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager error: %v", err)
	}
	sm.SetReducedMotion(true)
	sm.SetTargetFPS(30)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// A fresh manager over the same store must see the persisted values.
	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager (reload) error: %v", err)
	}
	if !sm2.ReducedMotion() {
		t.Error("persisted reduced motion not loaded")
	}
	if got := sm2.GetSettings().TargetFPS; got != 30 {
		t.Errorf("persisted target fps = %d, want 30", got)
	}
}

func TestSettingsManagerLoadMissingEntryUsesDefaults(t *testing.T) {
	manager := createTestGdataManager(t, "missing")
	if manager == nil {
		t.Skip("cannot create gdata manager in this environment")
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager error: %v", err)
	}
	if sm.ReducedMotion() || sm.GetSettings().TargetFPS != 0 {
		t.Errorf("empty store should yield defaults, got %+v", sm.GetSettings())
	}
}

func TestSetTargetFPSClampsNegative(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetTargetFPS(-5)

	if got := sm.GetSettings().TargetFPS; got != 0 {
		t.Errorf("negative fps stored as %d, want 0", got)
	}
}
