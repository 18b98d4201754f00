package overlay

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Anchor names a position inside a surface's content rectangle where a
// managed child is pinned.
type Anchor int

const (
	// Full stretches the child over the whole content rectangle.
	Full Anchor = iota

	// North centers the child horizontally at the top edge.
	North

	// East centers the child vertically at the right edge.
	East

	// South centers the child horizontally at the bottom edge.
	South

	// SouthFull stretches the child over the full content width at the
	// bottom edge, keeping its preferred height.
	SouthFull

	// West centers the child vertically at the left edge.
	West

	// NorthEast pins the child to the top-right corner.
	NorthEast

	// NorthWest pins the child to the top-left corner.
	NorthWest

	// SouthEast pins the child to the bottom-right corner.
	SouthEast

	// SouthWest pins the child to the bottom-left corner.
	SouthWest
)

// String returns the string representation of an Anchor
func (a Anchor) String() string {
	switch a {
	case Full:
		return "Full"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case SouthFull:
		return "SouthFull"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// Margins holds per-edge offsets applied between a child and the edge or
// corner it is pinned to. Only the edges named by the child's anchor are
// consulted.
type Margins struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Placement declares how a surface positions one of its children.
type Placement struct {
	Anchor  Anchor
	Margins Margins
}

// NewPlacement creates a placement with the given anchor and zero margins
func NewPlacement(anchor Anchor) *Placement {
	return &Placement{Anchor: anchor}
}

// placementBounds computes the position and size of a child inside the
// content rectangle described by contentPos and contentSize, given the
// child's preferred size. An anchor value outside the declared set is a
// programming error and panics rather than mis-positioning silently.
func placementBounds(p Placement, contentPos fyne.Position, contentSize fyne.Size, preferred fyne.Size) (fyne.Position, fyne.Size) {
	m := p.Margins

	switch p.Anchor {

	case Full:
		return contentPos, contentSize

	case North:
		return fyne.NewPos(
			contentPos.X+contentSize.Width/2-preferred.Width/2,
			contentPos.Y+m.Top,
		), preferred

	case NorthEast:
		return fyne.NewPos(
			contentPos.X+contentSize.Width-preferred.Width-m.Right,
			contentPos.Y+m.Top,
		), preferred

	case NorthWest:
		return fyne.NewPos(
			contentPos.X+m.Left,
			contentPos.Y+m.Top,
		), preferred

	case South:
		return fyne.NewPos(
			contentPos.X+contentSize.Width/2-preferred.Width/2,
			contentPos.Y+contentSize.Height-preferred.Height-m.Bottom,
		), preferred

	case SouthFull:
		return fyne.NewPos(
			contentPos.X,
			contentPos.Y+contentSize.Height-preferred.Height-m.Bottom,
		), fyne.NewSize(contentSize.Width, preferred.Height)

	case SouthEast:
		return fyne.NewPos(
			contentPos.X+contentSize.Width-preferred.Width-m.Right,
			contentPos.Y+contentSize.Height-preferred.Height-m.Bottom,
		), preferred

	case SouthWest:
		return fyne.NewPos(
			contentPos.X+m.Left,
			contentPos.Y+contentSize.Height-preferred.Height-m.Bottom,
		), preferred

	case West:
		return fyne.NewPos(
			contentPos.X+m.Left,
			contentPos.Y+contentSize.Height/2-preferred.Height/2,
		), preferred

	case East:
		return fyne.NewPos(
			contentPos.X+contentSize.Width-preferred.Width-m.Right,
			contentPos.Y+contentSize.Height/2-preferred.Height/2,
		), preferred
	}

	panic(fmt.Sprintf("overlay: unhandled anchor %s", p.Anchor))
}
