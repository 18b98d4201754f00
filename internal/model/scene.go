package model

import (
	"fmt"
	"strings"
	"time"
)

// SceneInfo describes the data scene currently shown by the viewer
type SceneInfo struct {
	Name       string
	Satellite  string    // platform name (e.g., "NOAA-21")
	Sensor     string    // instrument name (e.g., "VIIRS")
	CapturedAt time.Time // scene capture time, zero if unknown
	Width      int       // scene width in data pixels
	Height     int       // scene height in data pixels
}

// GetDisplayName returns the scene name, falling back to the
// satellite/sensor pair when the name is empty
func (s *SceneInfo) GetDisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	var parts []string
	if s.Satellite != "" {
		parts = append(parts, s.Satellite)
	}
	if s.Sensor != "" {
		parts = append(parts, s.Sensor)
	}
	if len(parts) == 0 {
		return "Untitled scene"
	}
	return strings.Join(parts, " / ")
}

// GetCaptureString returns the capture time formatted for the status bar,
// or "—" if unknown
func (s *SceneInfo) GetCaptureString() string {
	if s.CapturedAt.IsZero() {
		return "—"
	}
	return s.CapturedAt.UTC().Format("2006-01-02 15:04 UTC")
}

// GetDimensionString returns the scene dimensions as "W×H"
func (s *SceneInfo) GetDimensionString() string {
	return fmt.Sprintf("%d×%d", s.Width, s.Height)
}
