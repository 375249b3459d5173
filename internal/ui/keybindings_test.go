package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestIsKeyMatchesAnyAlias(t *testing.T) {
	msg := keyRunes("n")
	assert.True(t, isKey(msg, "n", "f"))
	assert.False(t, isKey(msg, "f"))
}

func TestNavigationAliases(t *testing.T) {
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(keyRunes("q")))
	assert.True(t, isSpace(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, isUp(keyRunes("k")))
}
