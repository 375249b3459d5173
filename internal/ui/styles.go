package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#4ec9a6") // teal
	ColorSecondary  = lipgloss.Color("#5a9bc4") // blue
	ColorAccent     = lipgloss.Color("#c49a5a") // warm
	ColorBackground = lipgloss.Color("#101418") // dark
	ColorText       = lipgloss.Color("#d4d7da") // main text
	ColorMuted      = lipgloss.Color("#8a919e") // muted text
	ColorSuccess    = lipgloss.Color("#6a9955") // green
	ColorError      = lipgloss.Color("#b3555f") // red
	ColorWarning    = lipgloss.Color("#d7a65f") // warning
	ColorBorder     = lipgloss.Color("#2a3340") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BannerAccentStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			PaddingBottom(1)
)
