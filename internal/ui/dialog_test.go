package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogOpenExposesPayload(t *testing.T) {
	d := newDialog[string]("test")
	assert.False(t, d.IsOpen())
	assert.Nil(t, d.Payload())

	d.Open("hello")
	assert.True(t, d.IsOpen())
	require.NotNil(t, d.Payload())
	assert.Equal(t, "hello", *d.Payload())
}

func TestDialogKeepsPayloadUntilClearFires(t *testing.T) {
	d := newDialog[string]("test")
	d.Open("hello")

	cmd := d.Close()
	require.NotNil(t, cmd)
	assert.False(t, d.IsOpen())

	// The payload stays readable while the close animation settles, so a
	// render between close and clear still has its data.
	require.NotNil(t, d.Payload())
	assert.Equal(t, "hello", *d.Payload())

	d.HandleCleared(dialogClearedMsg{id: "test", seq: d.seq})
	assert.Nil(t, d.Payload())
}

func TestDialogIgnoresStaleClear(t *testing.T) {
	d := newDialog[string]("test")
	d.Open("first")
	_ = d.Close()
	staleSeq := d.seq // the close timer will report this sequence

	// Reopened before the stale clear lands; the old timer must not wipe
	// the new payload.
	d.Open("second")
	d.HandleCleared(dialogClearedMsg{id: "test", seq: staleSeq})
	require.NotNil(t, d.Payload())
	assert.Equal(t, "second", *d.Payload())
}

func TestDialogIgnoresOtherDialogsClear(t *testing.T) {
	d := newDialog[string]("mine")
	d.Open("hello")
	_ = d.Close()

	d.HandleCleared(dialogClearedMsg{id: "theirs", seq: d.seq})
	require.NotNil(t, d.Payload())

	d.HandleCleared(dialogClearedMsg{id: "mine", seq: d.seq})
	assert.Nil(t, d.Payload())
}
