package tray

import (
	"fmt"

	"praymate/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers. Each menu activation issues
// exactly one intent.
type Callbacks struct {
	OnToggleVisibility func()
	OnSetScale         func(scale float64)
	OnSetCharacter     func(id string)
	OnNextCharacter    func()
	OnToggleAutostart  func()
	OnQuit             func()
}

// scaleOptions is the fixed size selector set offered in the menu.
// The state layer accepts any value in [0.5, 3.0]; the menu exposes
// these presets.
var scaleOptions = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}

type scaleItem struct {
	scale float64
	item  *fyne.MenuItem
}

type characterItem struct {
	id   string
	item *fyne.MenuItem
}

// Manager handles the system tray menu state.
type Manager struct {
	app           desktop.App
	callbacks     Callbacks
	countdownItem *fyne.MenuItem
	showItem      *fyne.MenuItem
	sizeParent    *fyne.MenuItem
	charParent    *fyne.MenuItem
	autostartItem *fyne.MenuItem
	sizeItems     []scaleItem
	charItems     []characterItem
}

// New creates a tray manager over the character catalog.
func New(app desktop.App, catalog model.Catalog, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.countdownItem = fyne.NewMenuItem("Work for: --:--", nil)
	manager.countdownItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show Character", func() {
		if manager.callbacks.OnToggleVisibility != nil {
			manager.callbacks.OnToggleVisibility()
		}
	})
	manager.showItem.Checked = true

	manager.sizeParent = fyne.NewMenuItem("Size", nil)
	sizeChildren := make([]*fyne.MenuItem, 0, len(scaleOptions))
	for _, option := range scaleOptions {
		option := option
		item := fyne.NewMenuItem(fmt.Sprintf("%d%%", int(option*100)), func() {
			if manager.callbacks.OnSetScale != nil {
				manager.callbacks.OnSetScale(option)
			}
		})
		item.Checked = option == 1.0
		manager.sizeItems = append(manager.sizeItems, scaleItem{scale: option, item: item})
		sizeChildren = append(sizeChildren, item)
	}
	manager.sizeParent.ChildMenu = fyne.NewMenu("", sizeChildren...)

	manager.charParent = fyne.NewMenuItem("Character", nil)
	charChildren := make([]*fyne.MenuItem, 0, len(catalog.Characters)+2)
	for _, character := range catalog.Characters {
		id := character.ID
		item := fyne.NewMenuItem(character.Name, func() {
			if manager.callbacks.OnSetCharacter != nil {
				manager.callbacks.OnSetCharacter(id)
			}
		})
		manager.charItems = append(manager.charItems, characterItem{id: id, item: item})
		charChildren = append(charChildren, item)
	}
	charChildren = append(charChildren, fyne.NewMenuItemSeparator(), fyne.NewMenuItem("Next Character", func() {
		if manager.callbacks.OnNextCharacter != nil {
			manager.callbacks.OnNextCharacter()
		}
	}))
	manager.charParent.ChildMenu = fyne.NewMenu("", charChildren...)

	manager.autostartItem = fyne.NewMenuItem("Start at Login", func() {
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetCountdown updates the countdown label from the latest snapshot.
func (manager *Manager) SetCountdown(mode model.Mode, formattedTime string) {
	manager.countdownItem.Label = fmt.Sprintf("%s for: %s", mode.Verb(), formattedTime)
	manager.refreshMenu()
}

// SetVisible updates the show/hide checkmark.
func (manager *Manager) SetVisible(visible bool) {
	manager.showItem.Checked = visible
	manager.refreshMenu()
}

// SetScale moves the size checkmark to the matching preset, if any.
func (manager *Manager) SetScale(scale float64) {
	for _, entry := range manager.sizeItems {
		entry.item.Checked = entry.scale == scale
	}
	manager.refreshMenu()
}

// SetCharacter moves the character checkmark.
func (manager *Manager) SetCharacter(id string) {
	for _, entry := range manager.charItems {
		entry.item.Checked = entry.id == id
	}
	manager.refreshMenu()
}

// SetAutostart updates the start-at-login checkmark.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Praymate",
		manager.countdownItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.sizeParent,
		manager.charParent,
		manager.autostartItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
