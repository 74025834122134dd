// Package companion renders the always-on-top character window. The
// window and its texture cache are owned by the render loop alone;
// everything it needs each cycle comes from one state.Frame copy.
package companion

import (
	"context"
	"image/color"
	"log"
	"time"

	"praymate/internal/core/model"
	"praymate/internal/core/state"
	"praymate/internal/ui/animation"
	"praymate/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	baseWidth  = float32(160)
	baseHeight = float32(395)

	// pollInterval is how often the render loop re-reads shared
	// state. The countdown only changes at 1Hz, so skipping seconds
	// under load is fine.
	pollInterval = 150 * time.Millisecond
)

// Config defines companion window visuals.
type Config struct {
	Opacity uint8
}

// Window manages the companion UI.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	image      *canvas.Image
	timerLabel *canvas.Text
	engine     *animation.Engine
	catalog    model.Catalog

	shown         bool
	lastCharacter string
	lastMode      model.Mode
	lastScale     float64
	lastTime      string
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the companion window.
func New(app fyne.App, catalog model.Catalog, config Config) *Window {
	window := app.NewWindow("Praymate")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity})

	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillContain

	timerLabel := canvas.NewText("--:--", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 22

	content := container.New(&companionLayout{}, image, timerLabel)
	root := container.NewStack(background, content)
	window.SetContent(root)

	companion := &Window{
		app:        app,
		window:     window,
		config:     config,
		background: background,
		image:      image,
		timerLabel: timerLabel,
		catalog:    catalog,
		lastScale:  1.0,
	}
	companion.engine = animation.New(animation.DefaultConfig(), companion.SetSprite)
	companion.resize(1.0)

	return companion
}

// SetSprite updates the character sprite image.
func (companion *Window) SetSprite(resource fyne.Resource) {
	fyne.Do(func() {
		companion.image.Resource = resource
		companion.image.Refresh()
	})
}

// Run polls shared state until quit is requested, then stops the fyne
// app. This is the only termination path.
func (companion *Window) Run(shared *state.State) {
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for range ticker.C {
			frame := shared.Frame()
			if frame.ShouldQuit {
				companion.engine.Stop()
				fyne.Do(companion.app.Quit)
				return
			}
			companion.apply(frame)
		}
	}()
}

func (companion *Window) apply(frame model.Frame) {
	if frame.Character != companion.lastCharacter || frame.Snapshot.Mode != companion.lastMode {
		companion.lastCharacter = frame.Character
		companion.lastMode = frame.Snapshot.Mode
		companion.startPose(frame.Character, frame.Snapshot.Mode)
	}

	if frame.Scale != companion.lastScale {
		companion.lastScale = frame.Scale
		scale := frame.Scale
		fyne.Do(func() {
			companion.resize(scale)
		})
	}

	if frame.Snapshot.FormattedTime != companion.lastTime {
		companion.lastTime = frame.Snapshot.FormattedTime
		text := frame.Snapshot.FormattedTime
		fyne.Do(func() {
			companion.timerLabel.Text = text
			companion.timerLabel.Refresh()
		})
	}

	if frame.Visible != companion.shown {
		companion.shown = frame.Visible
		visible := frame.Visible
		fyne.Do(func() {
			if visible {
				companion.window.Show()
				companion.applyNativeOpacity(companion.config.Opacity)
			} else {
				companion.window.Hide()
			}
		})
	}
}

func (companion *Window) startPose(characterID string, mode model.Mode) {
	character, ok := companion.catalog.Find(characterID)
	if !ok {
		return
	}

	baseName := character.WorkSprite
	if mode == model.ModeRest {
		baseName = character.PraySprite
	}

	base, err := resources.Sprite(baseName)
	if err != nil {
		log.Printf("load sprite %s: %v", baseName, err)
		return
	}
	blink, err := resources.Sprite(character.BlinkSprite)
	if err != nil {
		log.Printf("load sprite %s: %v", character.BlinkSprite, err)
		blink = base
	}

	companion.engine.StartPose(context.Background(), animation.PoseSpec{
		Base:  base,
		Blink: blink,
	})
}

func (companion *Window) resize(scale float64) {
	companion.window.Resize(fyne.NewSize(baseWidth*float32(scale), baseHeight*float32(scale)))
}

type companionLayout struct{}

func (layout *companionLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	timer := objects[1]

	timerSize := timer.MinSize()
	timerHeight := timerSize.Height + 8
	imageHeight := size.Height - timerHeight
	if imageHeight < 0 {
		imageHeight = 0
	}

	image.Move(fyne.NewPos(0, 0))
	image.Resize(fyne.NewSize(size.Width, imageHeight))

	timer.Move(fyne.NewPos(0, imageHeight))
	timer.Resize(fyne.NewSize(size.Width, timerHeight))
}

func (layout *companionLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	imageMin := objects[0].MinSize()
	timerMin := objects[1].MinSize()
	width := imageMin.Width
	if timerMin.Width > width {
		width = timerMin.Width
	}
	return fyne.NewSize(width, imageMin.Height+timerMin.Height+8)
}
