package model

// Mode represents the current schedule period kind.
type Mode string

const (
	ModeWork Mode = "work"
	ModeRest Mode = "rest"
)

// Verb returns the label used in countdown text ("Work for: ...").
func (mode Mode) Verb() string {
	if mode == ModeRest {
		return "Pray"
	}
	return "Work"
}

// Snapshot is the per-second schedule reading published by the ticker.
type Snapshot struct {
	Mode          Mode
	Remaining     int
	FormattedTime string
}

// Frame is one consistent copy of shared state for the render loop.
type Frame struct {
	Snapshot   Snapshot
	Character  string
	Scale      float64
	Visible    bool
	ShouldQuit bool
}

// Character is one entry of the companion character set.
type Character struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	WorkSprite  string `yaml:"work_sprite"`
	PraySprite  string `yaml:"pray_sprite"`
	BlinkSprite string `yaml:"blink_sprite"`
}

// Catalog is the fixed, ordered character set loaded at startup.
type Catalog struct {
	Characters []Character `yaml:"characters"`
}

// Find returns the character with the given id.
func (catalog Catalog) Find(id string) (Character, bool) {
	for _, character := range catalog.Characters {
		if character.ID == id {
			return character, true
		}
	}
	return Character{}, false
}

// Next returns the character after the given id, wrapping around.
// An unknown id is treated as index 0 before advancing.
func (catalog Catalog) Next(id string) Character {
	index := 0
	for i, character := range catalog.Characters {
		if character.ID == id {
			index = i
			break
		}
	}
	return catalog.Characters[(index+1)%len(catalog.Characters)]
}
