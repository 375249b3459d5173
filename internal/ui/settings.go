package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/config"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type healthCheckedMsg struct{ status string }
type configSavedMsg struct{}

// --- Settings Model ---

// SettingsModel shows the session and connection state and lets the
// server URL be changed. Token changes go through `ghostqa login`.
type SettingsModel struct {
	client *api.Client
	cfg    *config.Config

	editing  bool
	inputBuf string

	health string

	width  int
	height int
}

func NewSettingsModel(client *api.Client, cfg *config.Config) SettingsModel {
	return SettingsModel{client: client, cfg: cfg}
}

func (m SettingsModel) Init() tea.Cmd {
	return m.checkHealth
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case healthCheckedMsg:
		m.health = msg.status
		return m, nil
	case configSavedMsg:
		return m, tea.Batch(
			toast("Settings saved", toastSuccess),
			m.checkHealth,
		)
	case errMsg:
		if m.health == "" {
			m.health = "unreachable"
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			switch {
			case isBack(msg):
				m.editing = false
				m.inputBuf = ""
			case isKey(msg, "backspace"):
				m.inputBuf = dropLastRune(m.inputBuf)
			case isEnter(msg):
				url := m.inputBuf
				m.editing = false
				m.inputBuf = ""
				if url == "" {
					return m, nil
				}
				m.cfg.ServerURL = url
				// Shared client; every tab follows the new server.
				m.client.SetBaseURL(url)
				m.health = ""
				cfg := m.cfg
				return m, func() tea.Msg {
					if err := cfg.Save(); err != nil {
						return errMsg{err}
					}
					return configSavedMsg{}
				}
			default:
				m.inputBuf = appendRune(m.inputBuf, msg.String())
			}
			return m, nil
		}
		switch {
		case isKey(msg, "e"):
			m.editing = true
			m.inputBuf = m.cfg.ServerURL
		case isKey(msg, "c"):
			m.health = ""
			return m, m.checkHealth
		}
	}
	return m, nil
}

func (m SettingsModel) View() string {
	if m.editing {
		return components.Indent(components.InputDialog("Server URL", m.inputBuf), 1)
	}
	tokenState := "not set, run `ghostqa login`"
	if m.cfg.Token != "" {
		tokenState = "set"
	}
	health := m.health
	if health == "" {
		health = "checking..."
	}
	rows := []components.TableRow{
		{Label: "Server", Value: m.cfg.ServerURL},
		{Label: "Health", Value: health},
		{Label: "User", Value: orDash(m.cfg.Username)},
		{Label: "Role", Value: orDash(m.cfg.Role)},
		{Label: "Token", Value: tokenState},
		{Label: "Config", Value: config.Path()},
		{Label: "Log", Value: config.LogPath()},
	}
	return components.Indent(components.Table("Settings", rows, m.width), 1)
}

func (m SettingsModel) checkHealth() tea.Msg {
	status, err := m.client.Health()
	if err != nil {
		return errMsg{err}
	}
	return healthCheckedMsg{status}
}
