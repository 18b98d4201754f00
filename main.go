package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/orbview/orbview/internal/config"
	"github.com/orbview/orbview/internal/logging"
	"github.com/orbview/orbview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.orbview.orbview"
	AppName = "OrbView"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	log := logging.New()
	log.Info().Str("version", version).Msg("OrbView starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply viewer theme
	myApp.Settings().SetTheme(ui.NewViewerTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize settings
	settings := config.NewSettings(myApp)

	// Create and setup UI
	ui.NewRootUI(myWindow, log, settings)

	// Show and run
	myWindow.ShowAndRun()
}
