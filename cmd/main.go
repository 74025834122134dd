package main

import (
	"log"
	"os"
	"time"

	"praymate/internal/core/model"
	"praymate/internal/core/schedule"
	"praymate/internal/core/state"
	"praymate/internal/platform"
	"praymate/internal/storage"
	"praymate/internal/ui/companion"
	"praymate/internal/ui/tray"
	"praymate/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "Praymate"

func main() {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.praymate.app")
	fyneApp.SetIcon(resources.MustLogo("app_icon.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow("Praymate")
	trayWindow.SetContent(widget.NewLabel("Praymate is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	catalog := resources.MustCatalog()

	shared := state.New(settings, catalog)
	shared.SetSaver(func(updated model.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	platformService := platform.NewService()
	if shared.Settings().Autostart {
		applyAutostart(platformService, true)
	}

	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, catalog, tray.Callbacks{
		OnToggleVisibility: func() {
			trayManager.SetVisible(shared.ToggleVisibility())
		},
		OnSetScale: func(scale float64) {
			trayManager.SetScale(shared.SetScale(scale))
		},
		OnSetCharacter: func(id string) {
			if shared.SetCharacter(id) {
				trayManager.SetCharacter(id)
			}
		},
		OnNextCharacter: func() {
			trayManager.SetCharacter(shared.NextCharacter())
		},
		OnToggleAutostart: func() {
			enabled := !shared.Settings().Autostart
			shared.SetAutostart(enabled)
			applyAutostart(platformService, enabled)
			trayManager.SetAutostart(enabled)
		},
		OnQuit: func() {
			shared.RequestQuit()
		},
	})

	startup := shared.Frame()
	trayManager.SetScale(startup.Scale)
	trayManager.SetCharacter(startup.Character)
	trayManager.SetAutostart(shared.Settings().Autostart)

	workIcon := resources.MustLogo("tray_work.png")
	prayIcon := resources.MustLogo("tray_pray.png")
	desktopApp.SetSystemTrayIcon(workIcon)

	scheduler := schedule.New(shared, schedule.Config{TickInterval: time.Second})
	events := scheduler.Subscribe(5)
	go func() {
		for event := range events {
			event := event
			switch event.Type {
			case schedule.EventTimeUpdate:
				fyne.Do(func() {
					trayManager.SetCountdown(event.Mode, event.FormattedTime)
				})
			case schedule.EventPeriodChange:
				icon := workIcon
				if event.Mode == model.ModeRest {
					icon = prayIcon
				}
				fyne.Do(func() {
					desktopApp.SetSystemTrayIcon(icon)
				})
			}
		}
	}()
	scheduler.Start()

	window := companion.New(fyneApp, catalog, companion.Config{
		Opacity: opacityToAlpha(shared.Settings().Window.Opacity),
	})
	window.Run(shared)

	fyneApp.Run()
}

func applyAutostart(service platform.Service, enabled bool) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if enabled {
		err = service.EnableAutostart(appName, execPath)
	} else {
		err = service.DisableAutostart(appName)
	}
	if err != nil {
		log.Printf("autostart: %v", err)
	}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity <= 0 {
		return 255
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
