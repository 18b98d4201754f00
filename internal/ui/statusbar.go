package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/orbview/orbview/internal/model"
)

// StatusBar is a slim strip across the bottom of the view showing the scene
// identity on the left and a transient message on the right. It is designed
// for the SouthFull anchor: full content width at its preferred height.
type StatusBar struct {
	widget.BaseWidget

	scene   *model.SceneInfo
	message string
}

// NewStatusBar creates a status bar for the given scene
func NewStatusBar(scene *model.SceneInfo) *StatusBar {
	sb := &StatusBar{scene: scene}
	sb.ExtendBaseWidget(sb)
	return sb
}

// SetMessage replaces the right-hand message and repaints
func (sb *StatusBar) SetMessage(message string) {
	sb.message = message
	sb.Refresh()
}

// Message returns the current right-hand message
func (sb *StatusBar) Message() string {
	return sb.message
}

// CreateRenderer creates the widget renderer
func (sb *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	r := &statusBarRenderer{
		statusBar:  sb,
		background: canvas.NewRectangle(StatusBarBackColor),
		left:       canvas.NewText("", StatusBarTextColor),
		right:      canvas.NewText("", StatusBarTextColor),
	}
	r.left.TextSize = StatusBarTextSize
	r.right.TextSize = StatusBarTextSize
	r.right.Alignment = fyne.TextAlignTrailing
	return r
}

// statusBarRenderer paints the status bar
type statusBarRenderer struct {
	statusBar  *StatusBar
	background *canvas.Rectangle
	left       *canvas.Text
	right      *canvas.Text
}

// Layout stretches the background and pins the two text runs to the edges
func (r *statusBarRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	r.left.Resize(fyne.NewSize(size.Width/2-StatusBarPad, size.Height))
	r.left.Move(fyne.NewPos(StatusBarPad, (size.Height-r.left.MinSize().Height)/2))

	r.right.Resize(fyne.NewSize(size.Width/2-StatusBarPad, size.Height))
	r.right.Move(fyne.NewPos(size.Width/2, (size.Height-r.right.MinSize().Height)/2))
}

// MinSize returns the fixed strip height
func (r *statusBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(2*StatusBarPad, StatusBarHeight)
}

// Objects returns the painted elements back to front
func (r *statusBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.left, r.right}
}

// Refresh repaints the scene identity and message
func (r *statusBarRenderer) Refresh() {
	scene := r.statusBar.scene
	if scene != nil {
		r.left.Text = scene.GetDisplayName() + "  " + scene.GetDimensionString() + "  " + scene.GetCaptureString()
	} else {
		r.left.Text = ""
	}
	r.right.Text = r.statusBar.message

	r.background.Refresh()
	r.left.Refresh()
	r.right.Refresh()
}

// Destroy does nothing
func (r *statusBarRenderer) Destroy() {}
