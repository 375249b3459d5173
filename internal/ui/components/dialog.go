package components

import (
	"github.com/charmbracelet/lipgloss"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#2a3340")).
	Padding(1, 2).
	Width(44)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ec9a6")).
		Bold(true).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a919e")).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a919e")).
		Render("\ny: confirm | n: cancel")

	return dialogStyle.Render(header + "\n\n" + body + hint)
}

// InputDialog renders a text input prompt.
func InputDialog(title, input string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ec9a6")).
		Bold(true).
		Render(title)

	field := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5a9bc4")).
		Render("> " + input + "█")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a919e")).
		Render("\nenter: submit | esc: cancel")

	return dialogStyle.Render(header + "\n\n" + field + hint)
}

// PickerDialog renders a vertical option picker with one highlighted row.
func PickerDialog(title string, options []string, selected int) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ec9a6")).
		Bold(true).
		Render(title)

	active := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ec9a6")).Bold(true)
	normal := lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d7da"))

	body := ""
	for i, opt := range options {
		if i == selected {
			body += active.Render("  > " + opt)
		} else {
			body += normal.Render("    " + opt)
		}
		if i < len(options)-1 {
			body += "\n"
		}
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a919e")).
		Render("\n\nenter: select | esc: cancel")

	return dialogStyle.Render(header + "\n\n" + body + hint)
}
