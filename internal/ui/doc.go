package ui

// Package ui contains the Fyne-based desktop user interface for the viewer.
// It hosts the overlay surface and fader from internal/overlay: the on-screen
// operation toolbar, the status bar, the fullscreen view manager, and the
// root scene view are all composed here.
