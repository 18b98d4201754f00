package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/orbview/orbview/internal/config"
	"github.com/orbview/orbview/internal/logging"
	"github.com/orbview/orbview/internal/ui"
)

func main() {
	log := logging.New()

	// Create new Fyne app
	myApp := app.NewWithID("com.orbview.orbview")
	myApp.Settings().SetTheme(ui.NewViewerTheme())
	myWindow := myApp.NewWindow("OrbView")
	myWindow.Resize(fyne.NewSize(1024, 720))

	// Create and setup UI
	ui.NewRootUI(myWindow, log, config.NewSettings(myApp))

	// Show and run
	myWindow.ShowAndRun()
}
