package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestMinOpacity(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if opacity := settings.GetMinOpacity(); opacity != DefaultMinOpacity {
		t.Errorf("Expected default min opacity %v, got %v", DefaultMinOpacity, opacity)
	}

	// Test setting custom value
	settings.SetMinOpacity(0.5)
	if opacity := settings.GetMinOpacity(); opacity != 0.5 {
		t.Errorf("Expected min opacity 0.5, got %v", opacity)
	}

	// Test boundary values
	settings.SetMinOpacity(-0.3) // Should be clamped to 0
	if settings.GetMinOpacity() != 0 {
		t.Error("Min opacity should be clamped to 0")
	}

	settings.SetMinOpacity(1.5) // Should fall back to the default
	if settings.GetMinOpacity() != DefaultMinOpacity {
		t.Error("Min opacity at or above 1 should fall back to the default")
	}
}

func TestInactivityTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	expected := time.Duration(DefaultInactivityTimeoutMs) * time.Millisecond
	if timeout := settings.GetInactivityTimeout(); timeout != expected {
		t.Errorf("Expected default timeout %v, got %v", expected, timeout)
	}

	// Test setting custom value
	settings.SetInactivityTimeout(5 * time.Second)
	if timeout := settings.GetInactivityTimeout(); timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", timeout)
	}

	// Test boundary values
	settings.SetInactivityTimeout(time.Millisecond) // Should be clamped up
	if settings.GetInactivityTimeout() != MinInactivityTimeoutMs*time.Millisecond {
		t.Error("Timeout should be clamped to the minimum")
	}

	settings.SetInactivityTimeout(time.Hour) // Should be clamped down
	if settings.GetInactivityTimeout() != MaxInactivityTimeoutMs*time.Millisecond {
		t.Error("Timeout should be clamped to the maximum")
	}
}

func TestFullScreenOnStart(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFullScreenOnStart() != DefaultFullScreenOnStart {
		t.Error("Unexpected default for fullscreen on start")
	}

	settings.SetFullScreenOnStart(true)
	if !settings.GetFullScreenOnStart() {
		t.Error("Fullscreen on start should persist")
	}
}

func TestShowStatusBar(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowStatusBar() != DefaultShowStatusBar {
		t.Error("Unexpected default for show status bar")
	}

	settings.SetShowStatusBar(false)
	if settings.GetShowStatusBar() {
		t.Error("Show status bar should persist")
	}
}
