package overlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

// Surface is a container widget that stacks children in integer layers and
// keeps every placed child positioned inside its content rectangle according
// to the child's anchor and margins. Bounds are recomputed on every layout
// pass (resize or show) and immediately after any mutation.
//
// Children are drawn in ascending layer order, insertion order within a
// layer. A child added without a placement is stacked but never moved or
// resized by the surface.
type Surface struct {
	widget.BaseWidget

	log     zerolog.Logger
	padding float32
	entries []*surfaceEntry
}

// surfaceEntry ties a child to its layer and optional placement.
type surfaceEntry struct {
	object    fyne.CanvasObject
	placement *Placement
	layer     int
}

// NewSurface creates an empty surface
func NewSurface(log zerolog.Logger) *Surface {
	s := &Surface{log: log}
	s.ExtendBaseWidget(s)
	return s
}

// SetPadding sets the inset between the surface bounds and the content
// rectangle used for positioning. The default is zero.
func (s *Surface) SetPadding(padding float32) {
	s.padding = padding
	s.arrange(s.Size())
	s.Refresh()
}

// Add inserts child at the given layer with an optional placement. A nil
// placement stacks the child without auto-positioning. Re-adding a child
// replaces its previous layer and placement.
func (s *Surface) Add(child fyne.CanvasObject, placement *Placement, layer int) {
	if child == nil {
		return
	}

	if e := s.entryFor(child); e != nil {
		e.placement = placement
		e.layer = layer
		s.resort()
	} else {
		s.insert(&surfaceEntry{object: child, placement: placement, layer: layer})
	}

	s.arrange(s.Size())
	s.Refresh()
}

// SetPlacement updates the placement of a child already on the surface.
// Calls for objects that are not children are ignored; this mirrors the
// defensive behavior of the layered pane this surface descends from rather
// than reporting an error.
func (s *Surface) SetPlacement(child fyne.CanvasObject, placement *Placement) {
	e := s.entryFor(child)
	if e == nil {
		s.log.Debug().Msg("surface: placement update for object that is not a child, ignoring")
		return
	}

	e.placement = placement
	s.arrange(s.Size())
	s.Refresh()
}

// Remove removes a child and its placement from the surface. Removing an
// object that is not a child is a no-op.
func (s *Surface) Remove(child fyne.CanvasObject) {
	for i, e := range s.entries {
		if e.object == child {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.Refresh()
			return
		}
	}
}

// ChildObjects returns the current children in drawing order
func (s *Surface) ChildObjects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(s.entries))
	for _, e := range s.entries {
		objects = append(objects, e.object)
	}
	return objects
}

// CreateRenderer creates the widget renderer
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{surface: s}
}

// entryFor returns the entry holding child, or nil
func (s *Surface) entryFor(child fyne.CanvasObject) *surfaceEntry {
	for _, e := range s.entries {
		if e.object == child {
			return e
		}
	}
	return nil
}

// insert appends a new entry, keeping entries sorted by layer. The append
// point is after every entry with the same layer so that insertion order is
// preserved within a layer.
func (s *Surface) insert(entry *surfaceEntry) {
	at := len(s.entries)
	for i, e := range s.entries {
		if e.layer > entry.layer {
			at = i
			break
		}
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = entry
}

// resort restores the layer ordering after an in-place layer change
func (s *Surface) resort() {
	entries := s.entries
	s.entries = make([]*surfaceEntry, 0, len(entries))
	for _, e := range entries {
		s.insert(e)
	}
}

// arrange recomputes the bounds of every placed child for the given surface
// size. Children without a placement keep their manual bounds.
func (s *Surface) arrange(size fyne.Size) {
	contentPos := fyne.NewPos(s.padding, s.padding)
	contentSize := fyne.NewSize(size.Width-2*s.padding, size.Height-2*s.padding)

	for _, e := range s.entries {
		if e.placement == nil {
			continue
		}
		pos, bounds := placementBounds(*e.placement, contentPos, contentSize, e.object.MinSize())
		e.object.Resize(bounds)
		e.object.Move(pos)
	}
}

// surfaceRenderer renders the surface widget
type surfaceRenderer struct {
	surface *Surface
}

// Layout recomputes the bounds of all placed children
func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.surface.arrange(size)
}

// MinSize returns the minimum size over all children so that the surface
// never clips a child's preferred bounds
func (r *surfaceRenderer) MinSize() fyne.Size {
	min := fyne.NewSize(0, 0)
	for _, e := range r.surface.entries {
		min = min.Max(e.object.MinSize())
	}
	return min.Add(fyne.NewSize(2*r.surface.padding, 2*r.surface.padding))
}

// Objects returns the children in drawing order
func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.surface.ChildObjects()
}

// Refresh refreshes all children
func (r *surfaceRenderer) Refresh() {
	for _, e := range r.surface.entries {
		e.object.Refresh()
	}
}

// Destroy does nothing; children are owned by the canvas
func (r *surfaceRenderer) Destroy() {}
