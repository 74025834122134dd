package model

// DefaultCharacterID is used when settings carry no usable character.
const DefaultCharacterID = "augustine-of-hippo"

const (
	// MinScale and MaxScale bound the companion window scale factor.
	MinScale = 0.5
	MaxScale = 3.0
)

// WindowSettings holds companion window placement preferences.
type WindowSettings struct {
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Settings defines user preferences persisted between sessions.
type Settings struct {
	Window    WindowSettings `json:"window"`
	Character string         `json:"character"`
	Autostart bool           `json:"autostart,omitempty"`
}

// DefaultSettings returns default settings for Praymate.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			X:       100,
			Y:       100,
			Scale:   1.0,
			Opacity: 0.85,
		},
		Character: DefaultCharacterID,
	}
}

// ClampScale bounds a scale factor to the supported range.
func ClampScale(value float64) float64 {
	if value < MinScale {
		return MinScale
	}
	if value > MaxScale {
		return MaxScale
	}
	return value
}
