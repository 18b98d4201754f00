package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Toolbar sizing
const (
	ToolbarButtonSize   float32 = 48
	ToolbarButtonSpace  float32 = 10
	ToolbarMargin       float32 = 10
	ToolbarLabelSpace   float32 = 26
	ToolbarCornerRadius float32 = 14
	ToolbarGlyphSize    float32 = 22
	ToolbarTipSize      float32 = 13

	// Distance between the toolbar and the bottom edge in fullscreen mode
	ToolbarBottomMargin float32 = 48
)

// Status bar sizing
const (
	StatusBarHeight   float32 = 26
	StatusBarTextSize float32 = 12
	StatusBarPad      float32 = 8
)

// Legend sizing
const (
	LegendWidth      float32 = 140
	LegendHeight     float32 = 48
	LegendEdgeMargin float32 = 16
)

// Base colors for custom-painted overlays; alpha channels are scaled by the
// current fade opacity on every refresh
var (
	ToolbarBackdropColor = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	ToolbarGlyphColor    = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	ToolbarHoverColor    = color.NRGBA{R: 130, G: 190, B: 255, A: 255}
	ToolbarTipColor      = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	StatusBarBackColor   = color.NRGBA{R: 10, G: 14, B: 20, A: 200}
	StatusBarTextColor   = color.NRGBA{R: 210, G: 215, B: 220, A: 255}
)
