package ui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbview/orbview/internal/model"
	"github.com/orbview/orbview/internal/overlay"
)

func TestFullScreenView_StartAndStop(t *testing.T) {
	test.NewApp()

	content := canvas.NewRectangle(color.White)
	window := test.NewWindow(content)
	defer window.Close()

	toolbar := NewToolbar(model.DefaultOperations(), nil)
	view := NewFullScreenView(zerolog.Nop(), window, toolbar, 0.2, 2*time.Second)

	require.False(t, view.IsFullScreen())
	require.NoError(t, view.Start())

	assert.True(t, view.IsFullScreen())
	assert.IsType(t, &overlay.Surface{}, window.Content(), "fullscreen content must be a layered surface")
	assert.NotNil(t, view.Fader())
	assert.Len(t, toolbar.listeners, 1, "the fader must watch the toolbar")

	require.NoError(t, view.Stop())
	assert.False(t, view.IsFullScreen())
	assert.Equal(t, fyne.CanvasObject(content), window.Content(), "previous content must be restored")
	assert.Nil(t, view.Fader())
	assert.Empty(t, toolbar.listeners, "stopping must release the fader's handles")
}

func TestFullScreenView_StateErrors(t *testing.T) {
	test.NewApp()

	window := test.NewWindow(canvas.NewRectangle(color.White))
	defer window.Close()

	view := NewFullScreenView(zerolog.Nop(), window, nil, 0.2, 2*time.Second)

	assert.ErrorIs(t, view.Stop(), ErrNotFullScreen)

	require.NoError(t, view.Start())
	assert.ErrorIs(t, view.Start(), ErrAlreadyFullScreen)

	require.NoError(t, view.Stop())
	assert.ErrorIs(t, view.Stop(), ErrNotFullScreen)
}

func TestFullScreenView_NilToolbar(t *testing.T) {
	test.NewApp()

	window := test.NewWindow(canvas.NewRectangle(color.White))
	defer window.Close()

	view := NewFullScreenView(zerolog.Nop(), window, nil, 0.2, 2*time.Second)

	require.NoError(t, view.Start())
	assert.Nil(t, view.Fader())
	require.NoError(t, view.Stop())
}
