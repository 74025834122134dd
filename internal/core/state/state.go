// Package state holds the single shared application state. One coarse
// mutex guards the whole structure: the scheduler writes the snapshot,
// the tray and the render loop read and mutate the rest. Critical
// sections only copy fields; settings saves happen after unlock.
package state

import (
	"sync"

	"praymate/internal/core/model"
)

// SaveFunc persists settings. Failures are the saver's problem:
// settings loss is non-fatal and never surfaces to the user.
type SaveFunc func(settings model.Settings)

// State is the process-wide shared state, created once in main and
// handed to the scheduler, the tray and the companion window.
type State struct {
	mu         sync.Mutex
	snapshot   model.Snapshot
	character  string
	scale      float64
	visible    bool
	shouldQuit bool
	settings   model.Settings
	catalog    model.Catalog
	save       SaveFunc
}

// New creates the shared state from loaded settings. A settings
// character that is not in the catalog falls back to the default.
func New(settings model.Settings, catalog model.Catalog) *State {
	character := settings.Character
	if _, ok := catalog.Find(character); !ok {
		character = model.DefaultCharacterID
		if _, ok := catalog.Find(character); !ok && len(catalog.Characters) > 0 {
			character = catalog.Characters[0].ID
		}
		settings.Character = character
	}
	scale := model.ClampScale(settings.Window.Scale)
	settings.Window.Scale = scale

	return &State{
		snapshot: model.Snapshot{
			Mode:          model.ModeWork,
			Remaining:     25 * 60,
			FormattedTime: "25:00",
		},
		character: character,
		scale:     scale,
		visible:   true,
		settings:  settings,
		catalog:   catalog,
	}
}

// SetSaver installs the settings persistence hook.
func (state *State) SetSaver(save SaveFunc) {
	state.mu.Lock()
	state.save = save
	state.mu.Unlock()
}

// PublishSnapshot stores the latest schedule reading. Called by the
// scheduler once per second.
func (state *State) PublishSnapshot(snapshot model.Snapshot) {
	state.mu.Lock()
	state.snapshot = snapshot
	state.mu.Unlock()
}

// Snapshot returns the latest published schedule reading.
func (state *State) Snapshot() model.Snapshot {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.snapshot
}

// Frame returns one consistent copy of everything the render loop
// needs for a single cycle.
func (state *State) Frame() model.Frame {
	state.mu.Lock()
	defer state.mu.Unlock()
	return model.Frame{
		Snapshot:   state.snapshot,
		Character:  state.character,
		Scale:      state.scale,
		Visible:    state.visible,
		ShouldQuit: state.shouldQuit,
	}
}

// Catalog returns the fixed character set.
func (state *State) Catalog() model.Catalog {
	return state.catalog
}

// Settings returns a copy of the current settings.
func (state *State) Settings() model.Settings {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.settings
}

// ToggleVisibility flips companion visibility and reports the new
// value.
func (state *State) ToggleVisibility() bool {
	state.mu.Lock()
	state.visible = !state.visible
	visible := state.visible
	state.mu.Unlock()
	return visible
}

// SetCharacter switches the active character. Unknown ids are
// rejected as a no-op, not substituted.
func (state *State) SetCharacter(id string) bool {
	state.mu.Lock()
	if _, ok := state.catalog.Find(id); !ok {
		state.mu.Unlock()
		return false
	}
	state.character = id
	state.settings.Character = id
	settings, save := state.settings, state.save
	state.mu.Unlock()

	if save != nil {
		save(settings)
	}
	return true
}

// NextCharacter advances to the next catalog entry, wrapping around,
// and returns the new id.
func (state *State) NextCharacter() string {
	state.mu.Lock()
	next := state.catalog.Next(state.character)
	state.character = next.ID
	state.settings.Character = next.ID
	settings, save := state.settings, state.save
	state.mu.Unlock()

	if save != nil {
		save(settings)
	}
	return next.ID
}

// SetScale stores a clamped scale factor and returns it.
func (state *State) SetScale(value float64) float64 {
	clamped := model.ClampScale(value)

	state.mu.Lock()
	state.scale = clamped
	state.settings.Window.Scale = clamped
	settings, save := state.settings, state.save
	state.mu.Unlock()

	if save != nil {
		save(settings)
	}
	return clamped
}

// SetWindowPosition records the last window position.
func (state *State) SetWindowPosition(x, y float32) {
	state.mu.Lock()
	state.settings.Window.X = x
	state.settings.Window.Y = y
	settings, save := state.settings, state.save
	state.mu.Unlock()

	if save != nil {
		save(settings)
	}
}

// SetAutostart records the start-at-login preference.
func (state *State) SetAutostart(enabled bool) {
	state.mu.Lock()
	state.settings.Autostart = enabled
	settings, save := state.settings, state.save
	state.mu.Unlock()

	if save != nil {
		save(settings)
	}
}

// RequestQuit signals the render loop to terminate the app. This is
// the only intentional termination path.
func (state *State) RequestQuit() {
	state.mu.Lock()
	state.shouldQuit = true
	state.mu.Unlock()
}

// ShouldQuit reports whether quit was requested.
func (state *State) ShouldQuit() bool {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.shouldQuit
}
