package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/orbview/orbview/internal/model"
)

func TestStatusBar_Refresh(t *testing.T) {
	test.NewApp()

	scene := &model.SceneInfo{
		Name:       "Gulf Stream SST",
		CapturedAt: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC),
		Width:      1354,
		Height:     2030,
	}
	statusBar := NewStatusBar(scene)
	statusBar.SetMessage("Zoom in · 1.5×")

	renderer := statusBar.CreateRenderer().(*statusBarRenderer)
	renderer.Refresh()

	if !strings.Contains(renderer.left.Text, "Gulf Stream SST") {
		t.Errorf("status bar left text = %q, expected the scene name", renderer.left.Text)
	}
	if !strings.Contains(renderer.left.Text, "1354×2030") {
		t.Errorf("status bar left text = %q, expected the scene dimensions", renderer.left.Text)
	}
	if renderer.right.Text != "Zoom in · 1.5×" {
		t.Errorf("status bar right text = %q, expected the message", renderer.right.Text)
	}
}

func TestStatusBar_NilScene(t *testing.T) {
	test.NewApp()

	statusBar := NewStatusBar(nil)
	renderer := statusBar.CreateRenderer().(*statusBarRenderer)
	renderer.Refresh()

	if renderer.left.Text != "" {
		t.Errorf("status bar left text = %q, expected empty for nil scene", renderer.left.Text)
	}
}
