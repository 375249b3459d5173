package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	listSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ec9a6")).
				Bold(true)

	listRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d7da"))
)

// List is a scrollable row list with a cursor.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{PageSize: pageSize}
}

// SetItems replaces items and resets cursor.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Cursor = 0
	l.Offset = 0
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset++
		}
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		if l.Cursor < l.Offset {
			l.Offset--
		}
	}
}

// Visible returns the currently visible items.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the index of the selected item.
func (l *List) Selected() int {
	return l.Cursor
}

// Render returns the visible rows with a "> " cursor marker, each row
// indented by indent spaces.
func (l *List) Render(indent int) string {
	pad := strings.Repeat(" ", indent)
	visible := l.Visible()
	var b strings.Builder
	for i, label := range visible {
		if l.Offset+i == l.Cursor {
			b.WriteString(listSelectedStyle.Render(pad + "> " + label))
		} else {
			b.WriteString(listRowStyle.Render(pad + "  " + label))
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
