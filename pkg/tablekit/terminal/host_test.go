package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
)

func TestShowRequiresTerminal(t *testing.T) {
	h := New(WithOutput(&bytes.Buffer{}))

	_, err := h.Show(settings(), tablekit.Cursor{})
	assert.ErrorIs(t, err, tablekit.ErrNotPresentable)
}

func TestShowRejectsRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	h := New(WithOutput(f))

	_, err = h.Show(settings(), tablekit.Cursor{})
	assert.ErrorIs(t, err, tablekit.ErrNotPresentable)
}

func TestNavigatorStopsWhenNotPresentable(t *testing.T) {
	nav := tablekit.NewNavigator(New(WithOutput(&bytes.Buffer{})))
	c := settings()
	c.PresentFrom(nav)

	err := nav.Run()
	assert.ErrorIs(t, err, tablekit.ErrNotPresentable)
}

func TestOptions(t *testing.T) {
	keys := DefaultKeyMap()
	in := &bytes.Buffer{}
	h := New(WithInput(in), WithAltScreen(true), WithoutTTYCheck(), WithKeyMap(keys))

	assert.Same(t, in, h.input)
	assert.True(t, h.altScreen)
	assert.False(t, h.requireTTY)
	require.NotNil(t, h.keys)
}
