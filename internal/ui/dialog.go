package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dialogClearDelay is how long a closed dialog keeps its payload. Handlers
// that run in the same update as the close (menu item actions, exit
// renders) still see the payload; it is nil once the timer fires.
const dialogClearDelay = 150 * time.Millisecond

type dialogClearedMsg struct {
	id  string
	seq int
}

// dialog is the per-concern open/close state machine. Closing hands back a
// command that clears the payload after dialogClearDelay instead of
// dropping it synchronously.
type dialog[T any] struct {
	id      string
	open    bool
	payload *T
	seq     int
}

func newDialog[T any](id string) dialog[T] {
	return dialog[T]{id: id}
}

// Open shows the dialog with the given payload.
func (d *dialog[T]) Open(payload T) {
	d.open = true
	d.payload = &payload
	d.seq++
}

// Close hides the dialog and schedules the payload clear.
func (d *dialog[T]) Close() tea.Cmd {
	d.open = false
	d.seq++
	id, seq := d.id, d.seq
	return tea.Tick(dialogClearDelay, func(time.Time) tea.Msg {
		return dialogClearedMsg{id: id, seq: seq}
	})
}

// Payload returns the current payload, which may outlive the close.
func (d *dialog[T]) Payload() *T {
	return d.payload
}

// IsOpen reports whether the dialog is showing.
func (d *dialog[T]) IsOpen() bool {
	return d.open
}

// HandleCleared drops the payload if the clear message matches this dialog
// and nothing reopened it in the meantime.
func (d *dialog[T]) HandleCleared(msg dialogClearedMsg) {
	if msg.id != d.id || msg.seq != d.seq {
		return
	}
	if !d.open {
		d.payload = nil
	}
}
