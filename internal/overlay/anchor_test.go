package overlay

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestAnchor_String(t *testing.T) {
	tests := []struct {
		anchor   Anchor
		expected string
	}{
		{Full, "Full"},
		{North, "North"},
		{East, "East"},
		{South, "South"},
		{SouthFull, "SouthFull"},
		{West, "West"},
		{NorthEast, "NorthEast"},
		{NorthWest, "NorthWest"},
		{SouthEast, "SouthEast"},
		{SouthWest, "SouthWest"},
		{Anchor(42), "Anchor(42)"},
	}

	for _, test := range tests {
		result := test.anchor.String()
		if result != test.expected {
			t.Errorf("Anchor.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestPlacementBounds(t *testing.T) {
	contentPos := fyne.NewPos(0, 0)
	contentSize := fyne.NewSize(400, 300)
	preferred := fyne.NewSize(100, 50)
	margins := Margins{Top: 5, Right: 20, Bottom: 10, Left: 15}

	tests := []struct {
		anchor       Anchor
		expectedPos  fyne.Position
		expectedSize fyne.Size
	}{
		{Full, fyne.NewPos(0, 0), fyne.NewSize(400, 300)},
		{North, fyne.NewPos(150, 5), preferred},
		{NorthEast, fyne.NewPos(280, 5), preferred},
		{NorthWest, fyne.NewPos(15, 5), preferred},
		{South, fyne.NewPos(150, 240), preferred},
		{SouthFull, fyne.NewPos(0, 240), fyne.NewSize(400, 50)},
		{SouthEast, fyne.NewPos(280, 240), preferred},
		{SouthWest, fyne.NewPos(15, 240), preferred},
		{West, fyne.NewPos(15, 125), preferred},
		{East, fyne.NewPos(280, 125), preferred},
	}

	for _, test := range tests {
		pos, size := placementBounds(Placement{Anchor: test.anchor, Margins: margins}, contentPos, contentSize, preferred)
		if pos != test.expectedPos {
			t.Errorf("placementBounds(%s) position = %v, expected %v", test.anchor, pos, test.expectedPos)
		}
		if size != test.expectedSize {
			t.Errorf("placementBounds(%s) size = %v, expected %v", test.anchor, size, test.expectedSize)
		}
	}
}

// The non-pinned axis of an edge anchor is centered in the content
// rectangle.
func TestPlacementBounds_Centering(t *testing.T) {
	contentPos := fyne.NewPos(10, 20)
	contentSize := fyne.NewSize(401, 301)
	preferred := fyne.NewSize(99, 49)

	horizontal := []Anchor{North, South}
	for _, anchor := range horizontal {
		pos, size := placementBounds(Placement{Anchor: anchor}, contentPos, contentSize, preferred)
		childCenter := pos.X + size.Width/2
		contentCenter := contentPos.X + contentSize.Width/2
		if diff := childCenter - contentCenter; diff < -1 || diff > 1 {
			t.Errorf("placementBounds(%s) horizontal center = %v, expected %v", anchor, childCenter, contentCenter)
		}
	}

	vertical := []Anchor{West, East}
	for _, anchor := range vertical {
		pos, size := placementBounds(Placement{Anchor: anchor}, contentPos, contentSize, preferred)
		childCenter := pos.Y + size.Height/2
		contentCenter := contentPos.Y + contentSize.Height/2
		if diff := childCenter - contentCenter; diff < -1 || diff > 1 {
			t.Errorf("placementBounds(%s) vertical center = %v, expected %v", anchor, childCenter, contentCenter)
		}
	}
}

// A content rectangle that does not start at the origin offsets every
// anchor by the same amount.
func TestPlacementBounds_ContentOffset(t *testing.T) {
	contentPos := fyne.NewPos(8, 8)
	contentSize := fyne.NewSize(200, 100)
	preferred := fyne.NewSize(40, 20)

	pos, _ := placementBounds(Placement{Anchor: NorthWest}, contentPos, contentSize, preferred)
	if pos != fyne.NewPos(8, 8) {
		t.Errorf("placementBounds(NorthWest) position = %v, expected (8, 8)", pos)
	}

	pos, _ = placementBounds(Placement{Anchor: SouthEast}, contentPos, contentSize, preferred)
	if pos != fyne.NewPos(168, 88) {
		t.Errorf("placementBounds(SouthEast) position = %v, expected (168, 88)", pos)
	}
}

func TestPlacementBounds_UnhandledAnchorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("placementBounds with invalid anchor did not panic")
		}
	}()

	placementBounds(Placement{Anchor: Anchor(99)}, fyne.NewPos(0, 0), fyne.NewSize(100, 100), fyne.NewSize(10, 10))
}
