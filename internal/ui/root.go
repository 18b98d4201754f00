package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/orbview/orbview/internal/config"
	"github.com/orbview/orbview/internal/model"
	"github.com/orbview/orbview/internal/overlay"
)

// Zoom stepping for the magnify/shrink operations
const (
	ZoomStep = 1.5
	MinZoom  = 0.25
	MaxZoom  = 16.0
)

// RootUI wires the scene view, the status bar, and the fullscreen toolbar
// into the main window
type RootUI struct {
	log      zerolog.Logger
	window   fyne.Window
	settings *config.Settings

	scene      *model.SceneInfo
	raster     *canvas.Raster
	statusBar  *StatusBar
	toolbar    *Toolbar
	fullScreen *FullScreenView
	surface    *overlay.Surface

	zoom float64
}

// NewRootUI creates and installs the viewer UI into the window
func NewRootUI(window fyne.Window, log zerolog.Logger, settings *config.Settings) *RootUI {
	ui := &RootUI{
		log:      log,
		window:   window,
		settings: settings,
		zoom:     1,
		scene: &model.SceneInfo{
			Name:       "Gulf Stream SST",
			Satellite:  "NOAA-21",
			Sensor:     "VIIRS",
			CapturedAt: time.Now().UTC(),
			Width:      1354,
			Height:     2030,
		},
	}
	ui.createUI()
	return ui
}

// createUI builds the window content: the scene raster filling the surface,
// the status bar across the bottom, a compass in the top-right corner, and
// the fullscreen entry button in the top-left
func (ui *RootUI) createUI() {
	ui.raster = canvas.NewRasterWithPixels(ui.scenePixel)
	ui.statusBar = NewStatusBar(ui.scene)
	ui.toolbar = NewToolbar(model.DefaultOperations(), ui.handleOperation)
	ui.fullScreen = NewFullScreenView(
		ui.log, ui.window, ui.toolbar,
		ui.settings.GetMinOpacity(), ui.settings.GetInactivityTimeout(),
	)

	compass := canvas.NewText("N ↑", StatusBarTextColor)
	compass.TextSize = 16
	compass.TextStyle = fyne.TextStyle{Bold: true}

	fullScreenButton := widget.NewButton("Full screen", ui.enterFullScreen)

	ui.surface = overlay.NewSurface(ui.log)
	ui.surface.Add(ui.raster, overlay.NewPlacement(overlay.Full), 0)
	if ui.settings.GetShowStatusBar() {
		ui.surface.Add(ui.statusBar, overlay.NewPlacement(overlay.SouthFull), 1)
	}
	ui.surface.Add(compass, &overlay.Placement{
		Anchor:  overlay.NorthEast,
		Margins: overlay.Margins{Top: LegendEdgeMargin, Right: LegendEdgeMargin},
	}, 2)
	ui.surface.Add(fullScreenButton, &overlay.Placement{
		Anchor:  overlay.NorthWest,
		Margins: overlay.Margins{Top: LegendEdgeMargin, Left: LegendEdgeMargin},
	}, 2)

	ui.window.SetContent(ui.surface)
	ui.window.Canvas().SetOnTypedKey(ui.handleKey)

	if ui.settings.GetFullScreenOnStart() {
		ui.enterFullScreen()
	}
}

// handleKey drives fullscreen mode from the keyboard
func (ui *RootUI) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyF11:
		if ui.fullScreen.IsFullScreen() {
			ui.exitFullScreen()
		} else {
			ui.enterFullScreen()
		}
	case fyne.KeyEscape:
		if ui.fullScreen.IsFullScreen() {
			ui.exitFullScreen()
		}
	}
}

// enterFullScreen starts fullscreen mode with the operation toolbar overlay
func (ui *RootUI) enterFullScreen() {
	if err := ui.fullScreen.Start(); err != nil {
		ui.log.Warn().Err(err).Msg("cannot enter full screen")
	}
}

// exitFullScreen restores the windowed view
func (ui *RootUI) exitFullScreen() {
	if err := ui.fullScreen.Stop(); err != nil {
		ui.log.Warn().Err(err).Msg("cannot exit full screen")
	}
}

// handleOperation applies a toolbar operation to the view
func (ui *RootUI) handleOperation(op model.ViewOperation) {
	ui.log.Debug().Str("operation", op.String()).Msg("view operation")

	switch op {
	case model.OperationMagnify:
		ui.setZoom(ui.zoom * ZoomStep)
	case model.OperationShrink:
		ui.setZoom(ui.zoom / ZoomStep)
	case model.OperationOneToOne, model.OperationReset, model.OperationFit:
		ui.setZoom(1)
	case model.OperationZoom, model.OperationPan:
		// Interactive modes only arm the pointer; the drag handling lives
		// with the scene view.
		ui.statusBar.SetMessage(op.Tip())
		return
	case model.OperationClose:
		ui.exitFullScreen()
		return
	}

	ui.statusBar.SetMessage(fmt.Sprintf("%s · %.2g×", op.Tip(), ui.zoom))
}

// setZoom clamps and applies a new magnification, repainting the scene
func (ui *RootUI) setZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	ui.zoom = zoom
	ui.raster.Refresh()
}

// Zoom returns the current magnification
func (ui *RootUI) Zoom() float64 {
	return ui.zoom
}

// scenePixel renders one pixel of the placeholder temperature field. The
// real application substitutes satellite data; the synthetic field keeps the
// viewer usable standalone.
func (ui *RootUI) scenePixel(x, y, w, h int) color.Color {
	if w == 0 || h == 0 {
		return color.Black
	}

	fx := (float64(x)/float64(w) - 0.5) / ui.zoom
	fy := (float64(y)/float64(h) - 0.5) / ui.zoom

	value := math.Sin(6*fx+2*math.Sin(4*fy)) * math.Cos(5*fy)
	value = (value + 1) / 2 // normalize to [0, 1]

	return color.NRGBA{
		R: uint8(40 + 180*value*value),
		G: uint8(60 + 160*value),
		B: uint8(200 - 150*value),
		A: 255,
	}
}
