package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/orbview/orbview/internal/model"
	"github.com/orbview/orbview/internal/overlay"
)

// Toolbar is an on-screen chooser of view operations for fullscreen viewing.
// It is custom painted: a translucent rounded backdrop, one glyph per
// operation, and a label for the hovered operation. Every painted element
// scales its alpha by the attached fader's opacity, so the whole toolbar
// dims as one piece.
//
// The toolbar reports pointer activity to registered listeners, which is how
// an overlay.Fader keeps it opaque while the pointer is over it.
type Toolbar struct {
	widget.BaseWidget

	operations  []model.ViewOperation
	onOperation func(model.ViewOperation)
	fader       *overlay.Fader

	listeners map[uuid.UUID]overlay.PointerListener
	hovered   int // index of the hovered operation, -1 when none
}

// NewToolbar creates a toolbar offering the given operations. The callback
// fires on the UI thread when an operation is tapped.
func NewToolbar(operations []model.ViewOperation, onOperation func(model.ViewOperation)) *Toolbar {
	t := &Toolbar{
		operations:  operations,
		onOperation: onOperation,
		listeners:   map[uuid.UUID]overlay.PointerListener{},
		hovered:     -1,
	}
	t.ExtendBaseWidget(t)
	return t
}

// SetFader attaches the fader whose opacity the toolbar composites with
func (t *Toolbar) SetFader(fader *overlay.Fader) {
	t.fader = fader
	t.Refresh()
}

// Operations returns the operations in display order
func (t *Toolbar) Operations() []model.ViewOperation {
	return t.operations
}

// RegisterPointerListener implements overlay.ActivityNotifier
func (t *Toolbar) RegisterPointerListener(listener overlay.PointerListener) uuid.UUID {
	id := uuid.New()
	t.listeners[id] = listener
	return id
}

// UnregisterPointerListener implements overlay.ActivityNotifier
func (t *Toolbar) UnregisterPointerListener(id uuid.UUID) {
	delete(t.listeners, id)
}

// MouseIn implements desktop.Hoverable
func (t *Toolbar) MouseIn(event *desktop.MouseEvent) {
	for _, l := range t.listeners {
		l.PointerIn()
	}
	t.MouseMoved(event)
}

// MouseMoved implements desktop.Hoverable
func (t *Toolbar) MouseMoved(event *desktop.MouseEvent) {
	if hovered := t.operationAt(event.Position); hovered != t.hovered {
		t.hovered = hovered
		t.Refresh()
	}
	for _, l := range t.listeners {
		l.PointerMoved()
	}
}

// MouseOut implements desktop.Hoverable
func (t *Toolbar) MouseOut() {
	if t.hovered != -1 {
		t.hovered = -1
		t.Refresh()
	}
	for _, l := range t.listeners {
		l.PointerOut()
	}
}

// Tapped implements fyne.Tappable and fires the operation under the pointer
func (t *Toolbar) Tapped(event *fyne.PointEvent) {
	index := t.operationAt(event.Position)
	if index < 0 || t.onOperation == nil {
		return
	}
	t.onOperation(t.operations[index])
}

// CreateRenderer creates the widget renderer
func (t *Toolbar) CreateRenderer() fyne.WidgetRenderer {
	r := &toolbarRenderer{
		toolbar:  t,
		backdrop: canvas.NewRectangle(ToolbarBackdropColor),
		tip:      canvas.NewText("", ToolbarTipColor),
	}
	r.backdrop.CornerRadius = ToolbarCornerRadius
	r.tip.TextSize = ToolbarTipSize
	r.tip.Alignment = fyne.TextAlignCenter

	for _, op := range t.operations {
		glyph := canvas.NewText(op.Glyph(), ToolbarGlyphColor)
		glyph.TextSize = ToolbarGlyphSize
		glyph.Alignment = fyne.TextAlignCenter
		glyph.TextStyle = fyne.TextStyle{Bold: true}
		r.glyphs = append(r.glyphs, glyph)
	}
	return r
}

// operationAt returns the index of the operation under pos, or -1
func (t *Toolbar) operationAt(pos fyne.Position) int {
	if pos.Y < ToolbarMargin || pos.Y > ToolbarMargin+ToolbarButtonSize {
		return -1
	}
	x := pos.X - ToolbarMargin
	stride := ToolbarButtonSize + ToolbarButtonSpace
	index := int(x / stride)
	if x < 0 || index >= len(t.operations) {
		return -1
	}
	// Reject taps in the spacing between buttons.
	if x-float32(index)*stride > ToolbarButtonSize {
		return -1
	}
	return index
}

// toolbarRenderer paints the toolbar
type toolbarRenderer struct {
	toolbar  *Toolbar
	backdrop *canvas.Rectangle
	glyphs   []*canvas.Text
	tip      *canvas.Text
}

// Layout arranges the backdrop, glyphs, and hover label
func (r *toolbarRenderer) Layout(size fyne.Size) {
	r.backdrop.Resize(size)
	r.backdrop.Move(fyne.NewPos(0, 0))

	stride := ToolbarButtonSize + ToolbarButtonSpace
	for i, glyph := range r.glyphs {
		glyph.Resize(fyne.NewSize(ToolbarButtonSize, ToolbarButtonSize))
		glyph.Move(fyne.NewPos(ToolbarMargin+float32(i)*stride, ToolbarMargin))
	}

	r.tip.Resize(fyne.NewSize(size.Width, ToolbarLabelSpace))
	r.tip.Move(fyne.NewPos(0, ToolbarMargin+ToolbarButtonSize))
}

// MinSize returns the toolbar's preferred size
func (r *toolbarRenderer) MinSize() fyne.Size {
	count := len(r.toolbar.operations)
	width := 2*ToolbarMargin + float32(count)*ToolbarButtonSize
	if count > 1 {
		width += float32(count-1) * ToolbarButtonSpace
	}
	return fyne.NewSize(width, ToolbarMargin+ToolbarButtonSize+ToolbarLabelSpace)
}

// Objects returns the painted elements back to front
func (r *toolbarRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.glyphs)+2)
	objects = append(objects, r.backdrop)
	for _, glyph := range r.glyphs {
		objects = append(objects, glyph)
	}
	return append(objects, r.tip)
}

// Refresh repaints with the current hover state and fade opacity
func (r *toolbarRenderer) Refresh() {
	alpha := float32(1)
	if r.toolbar.fader != nil {
		alpha = r.toolbar.fader.Opacity()
	}

	r.backdrop.FillColor = scaleAlpha(ToolbarBackdropColor, alpha)
	r.backdrop.Refresh()

	for i, glyph := range r.glyphs {
		base := ToolbarGlyphColor
		if i == r.toolbar.hovered {
			base = ToolbarHoverColor
		}
		glyph.Color = scaleAlpha(base, alpha)
		glyph.Refresh()
	}

	if r.toolbar.hovered >= 0 {
		r.tip.Text = r.toolbar.operations[r.toolbar.hovered].Tip()
	} else {
		r.tip.Text = ""
	}
	r.tip.Color = scaleAlpha(ToolbarTipColor, alpha)
	r.tip.Refresh()
}

// Destroy does nothing
func (r *toolbarRenderer) Destroy() {}

// scaleAlpha composites a base color at the given opacity
func scaleAlpha(base color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	scaled := base
	scaled.A = uint8(float32(base.A) * alpha)
	return scaled
}
