package model

// Package model defines domain data structures used across the app: the
// scene shown by the viewer and the view operations offered by the on-screen
// chooser. Structures are designed for direct display in the UI.
