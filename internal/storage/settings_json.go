package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"praymate/internal/core/model"
)

const settingsFileName = "settings.json"

type jsonWindow struct {
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity,omitempty"`
}

type jsonSettings struct {
	Window    jsonWindow `json:"window"`
	Character string     `json:"character"`
	Autostart bool       `json:"autostart,omitempty"`
}

// LoadSettings reads user preferences from JSON.
// A missing config file yields default settings and no error; callers
// treat every load error as non-fatal.
func LoadSettings(appName string) (model.Settings, error) {
	settings := model.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData jsonSettings
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings json: %w", err)
	}

	applyFileSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to JSON.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := jsonSettings{
		Window: jsonWindow{
			X:       settings.Window.X,
			Y:       settings.Window.Y,
			Scale:   settings.Window.Scale,
			Opacity: settings.Window.Opacity,
		},
		Character: settings.Character,
		Autostart: settings.Autostart,
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyFileSettings(settings *model.Settings, fileData jsonSettings) {
	settings.Window.X = fileData.Window.X
	settings.Window.Y = fileData.Window.Y

	if fileData.Window.Scale > 0 {
		settings.Window.Scale = model.ClampScale(fileData.Window.Scale)
	}
	if fileData.Window.Opacity >= 0.5 && fileData.Window.Opacity <= 1.0 {
		settings.Window.Opacity = fileData.Window.Opacity
	}
	if fileData.Character != "" {
		settings.Character = fileData.Character
	}
	settings.Autostart = fileData.Autostart
}
