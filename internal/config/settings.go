package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyMinOpacity        = "overlay_min_opacity"
	KeyInactivityTimeout = "overlay_inactivity_timeout_ms"
	KeyFullScreenOnStart = "fullscreen_on_start"
	KeyShowStatusBar     = "show_status_bar"
)

// Default values
const (
	DefaultMinOpacity          = 0.2
	DefaultInactivityTimeoutMs = 2000
	DefaultFullScreenOnStart   = false
	DefaultShowStatusBar       = true
)

// Bounds for the inactivity timeout in milliseconds
const (
	MinInactivityTimeoutMs = 250
	MaxInactivityTimeoutMs = 60000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMinOpacity returns the opacity floor used for faded overlays
func (s *Settings) GetMinOpacity() float32 {
	value := s.app.Preferences().FloatWithFallback(KeyMinOpacity, DefaultMinOpacity)
	if value < 0 || value >= 1 {
		return DefaultMinOpacity
	}
	return float32(value)
}

// SetMinOpacity sets the opacity floor, clamped into [0, 1)
func (s *Settings) SetMinOpacity(opacity float32) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity >= 1 {
		opacity = DefaultMinOpacity
	}
	s.app.Preferences().SetFloat(KeyMinOpacity, float64(opacity))
}

// GetInactivityTimeout returns the delay before overlays start fading out
func (s *Settings) GetInactivityTimeout() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyInactivityTimeout, DefaultInactivityTimeoutMs)
	if ms < MinInactivityTimeoutMs || ms > MaxInactivityTimeoutMs {
		ms = DefaultInactivityTimeoutMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SetInactivityTimeout sets the fade-out delay, clamped to the valid range
func (s *Settings) SetInactivityTimeout(timeout time.Duration) {
	ms := int(timeout / time.Millisecond)
	if ms < MinInactivityTimeoutMs {
		ms = MinInactivityTimeoutMs
	}
	if ms > MaxInactivityTimeoutMs {
		ms = MaxInactivityTimeoutMs
	}
	s.app.Preferences().SetInt(KeyInactivityTimeout, ms)
}

// GetFullScreenOnStart returns whether the viewer opens in fullscreen mode
func (s *Settings) GetFullScreenOnStart() bool {
	return s.app.Preferences().BoolWithFallback(KeyFullScreenOnStart, DefaultFullScreenOnStart)
}

// SetFullScreenOnStart sets whether the viewer opens in fullscreen mode
func (s *Settings) SetFullScreenOnStart(fullscreen bool) {
	s.app.Preferences().SetBool(KeyFullScreenOnStart, fullscreen)
}

// GetShowStatusBar returns whether the status bar overlay is shown
func (s *Settings) GetShowStatusBar() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowStatusBar, DefaultShowStatusBar)
}

// SetShowStatusBar sets whether the status bar overlay is shown
func (s *Settings) SetShowStatusBar(show bool) {
	s.app.Preferences().SetBool(KeyShowStatusBar, show)
}
