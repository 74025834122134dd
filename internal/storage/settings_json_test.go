package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"praymate/internal/core/model"
)

func setTempConfigDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	setTempConfigDir(t)

	settings, err := LoadSettings("PraymateTest")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsCorruptFileReturnsDefaults(t *testing.T) {
	dir := setTempConfigDir(t)

	appDir := filepath.Join(dir, "PraymateTest")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, settingsFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings("PraymateTest")
	if err == nil {
		t.Error("expected a parse error for corrupt json")
	}
	if settings != model.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults despite corrupt file", settings)
	}
}

func TestSaveAndLoadSettingsRoundTrip(t *testing.T) {
	setTempConfigDir(t)

	saved := model.DefaultSettings()
	saved.Window.X = 320
	saved.Window.Y = 240
	saved.Window.Scale = 1.5
	saved.Character = "thomas-more"
	saved.Autostart = true

	if err := SaveSettings("PraymateTest", saved); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings("PraymateTest")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip: got %+v, want %+v", loaded, saved)
	}
}

func TestApplyFileSettingsValidation(t *testing.T) {
	settings := model.DefaultSettings()
	applyFileSettings(&settings, jsonSettings{
		Window: jsonWindow{
			X:       10,
			Y:       20,
			Scale:   50.0, // clamped
			Opacity: 0.1,  // out of range, ignored
		},
		Character: "",
	})

	if settings.Window.Scale != model.MaxScale {
		t.Errorf("scale = %v, want clamped to %v", settings.Window.Scale, model.MaxScale)
	}
	if settings.Window.Opacity != model.DefaultSettings().Window.Opacity {
		t.Errorf("opacity = %v, want default kept", settings.Window.Opacity)
	}
	if settings.Character != model.DefaultCharacterID {
		t.Errorf("character = %q, want default kept for empty value", settings.Character)
	}
	if settings.Window.X != 10 || settings.Window.Y != 20 {
		t.Errorf("window position = (%v, %v)", settings.Window.X, settings.Window.Y)
	}
}
