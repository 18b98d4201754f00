package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ViewerTheme defines a dark, low-chrome theme suited to fullscreen data
// viewing, with compact paddings so overlays cover as little of the scene
// as possible
type ViewerTheme struct{}

// NewViewerTheme creates a new viewer theme
func NewViewerTheme() fyne.Theme {
	return &ViewerTheme{}
}

// Color returns theme colors
func (t *ViewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 12, G: 14, B: 18, A: 255} // Near-black viewer background
	case theme.ColorNameForeground:
		return color.RGBA{R: 225, G: 228, B: 232, A: 255} // Soft white text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 64, G: 140, B: 210, A: 255} // Ocean blue for selections
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	// Force the dark variant for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *ViewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ViewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ViewerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	}

	return theme.DefaultTheme().Size(name)
}
