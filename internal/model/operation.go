package model

// ViewOperation represents one view transform operation offered by the
// on-screen chooser
type ViewOperation string

const (
	// OperationMagnify zooms the view in by one step
	OperationMagnify ViewOperation = "Magnify"

	// OperationShrink zooms the view out by one step
	OperationShrink ViewOperation = "Shrink"

	// OperationOneToOne resets the view to a 1:1 pixel mapping
	OperationOneToOne ViewOperation = "OneToOne"

	// OperationZoom starts an interactive zoom-to-box
	OperationZoom ViewOperation = "Zoom"

	// OperationPan starts an interactive pan
	OperationPan ViewOperation = "Pan"

	// OperationReset restores the initial view transform
	OperationReset ViewOperation = "Reset"

	// OperationFit fits the whole scene into the window
	OperationFit ViewOperation = "Fit"

	// OperationClose leaves the current view mode
	OperationClose ViewOperation = "Close"
)

// String returns the string representation of a ViewOperation
func (op ViewOperation) String() string {
	return string(op)
}

// IsZoom returns true if the operation changes the view magnification
func (op ViewOperation) IsZoom() bool {
	return op == OperationMagnify || op == OperationShrink ||
		op == OperationOneToOne || op == OperationZoom || op == OperationFit
}

// IsInteractive returns true if the operation arms a pointer-driven mode
// rather than applying immediately
func (op ViewOperation) IsInteractive() bool {
	return op == OperationZoom || op == OperationPan
}

// Glyph returns the on-screen symbol drawn for the operation
func (op ViewOperation) Glyph() string {
	switch op {
	case OperationMagnify:
		return "🔍+"
	case OperationShrink:
		return "🔍-"
	case OperationOneToOne:
		return "1:1"
	case OperationZoom:
		return "⛶"
	case OperationPan:
		return "✥"
	case OperationReset:
		return "↺"
	case OperationFit:
		return "⤢"
	case OperationClose:
		return "×"
	}
	return "?"
}

// Tip returns the short label shown while the pointer hovers the operation
func (op ViewOperation) Tip() string {
	switch op {
	case OperationMagnify:
		return "Zoom in"
	case OperationShrink:
		return "Zoom out"
	case OperationOneToOne:
		return "Actual size"
	case OperationZoom:
		return "Zoom to box"
	case OperationPan:
		return "Pan view"
	case OperationReset:
		return "Reset view"
	case OperationFit:
		return "Fit to window"
	case OperationClose:
		return "Close"
	}
	return string(op)
}

// DefaultOperations returns the chooser operations in display order
func DefaultOperations() []ViewOperation {
	return []ViewOperation{
		OperationMagnify,
		OperationShrink,
		OperationOneToOne,
		OperationFit,
		OperationZoom,
		OperationPan,
		OperationReset,
		OperationClose,
	}
}
