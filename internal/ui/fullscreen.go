package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/orbview/orbview/internal/overlay"
)

// Fullscreen state errors
var (
	ErrAlreadyFullScreen = errors.New("already in full screen mode")
	ErrNotFullScreen     = errors.New("not in full screen mode")
)

// FullScreenView displays the window content full screen with an optional
// fading toolbar. Start swaps the current window content into a layered
// surface with the toolbar anchored near the bottom edge; Stop restores the
// previous content. The caller owns the toolbar and its callbacks.
type FullScreenView struct {
	log     zerolog.Logger
	window  fyne.Window
	toolbar *Toolbar

	minOpacity float32
	timeout    time.Duration

	surface  *overlay.Surface
	fader    *overlay.Fader
	restored fyne.CanvasObject
	active   bool
}

// NewFullScreenView creates a fullscreen manager for the given window. A nil
// toolbar shows the content full screen with no overlay.
func NewFullScreenView(log zerolog.Logger, window fyne.Window, toolbar *Toolbar, minOpacity float32, timeout time.Duration) *FullScreenView {
	return &FullScreenView{
		log:        log,
		window:     window,
		toolbar:    toolbar,
		minOpacity: minOpacity,
		timeout:    timeout,
	}
}

// Start enters full screen mode, layering the toolbar over the current
// window content
func (v *FullScreenView) Start() error {
	if v.active {
		return ErrAlreadyFullScreen
	}

	v.log.Debug().Msg("entering full screen mode")

	v.restored = v.window.Content()
	v.surface = overlay.NewSurface(v.log)
	v.surface.Add(v.restored, overlay.NewPlacement(overlay.Full), 0)

	if v.toolbar != nil {
		v.surface.Add(v.toolbar, &overlay.Placement{
			Anchor:  overlay.South,
			Margins: overlay.Margins{Bottom: ToolbarBottomMargin},
		}, 1)

		v.fader = overlay.NewFader(v.toolbar, v.minOpacity, v.timeout, overlay.WithLogger(v.log))
		v.toolbar.SetFader(v.fader)
	}

	v.window.SetContent(v.surface)
	v.window.SetFullScreen(true)
	v.active = true
	return nil
}

// Stop leaves full screen mode and restores the previous window content
func (v *FullScreenView) Stop() error {
	if !v.active {
		return ErrNotFullScreen
	}

	v.log.Debug().Msg("exiting full screen mode")

	if v.fader != nil {
		v.fader.Release()
		v.fader = nil
		v.toolbar.SetFader(nil)
	}

	v.surface.Remove(v.restored)
	v.window.SetFullScreen(false)
	v.window.SetContent(v.restored)

	v.surface = nil
	v.restored = nil
	v.active = false
	return nil
}

// IsFullScreen returns whether the view is currently displayed full screen
func (v *FullScreenView) IsFullScreen() bool {
	return v.active
}

// Fader returns the active toolbar fader, or nil outside full screen mode
func (v *FullScreenView) Fader() *overlay.Fader {
	return v.fader
}
