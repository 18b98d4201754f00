package overlay

// Package overlay provides the building blocks for on-screen view overlays:
// a layered surface that anchors children inside its content rectangle, and
// a fader that dims an object after pointer inactivity. Both run entirely on
// the UI thread; timer callbacks are marshalled back onto it by the clock.
