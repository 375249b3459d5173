package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type usersLoadedMsg struct{ items []api.User }
type userSavedMsg struct{}
type userDeletedMsg struct{}
type passwordResetMsg struct{ username string }

type usersView int

const (
	usersViewList usersView = iota
	usersViewAdd
)

const (
	userFieldUsername = iota
	userFieldEmail
	userFieldPassword
	userFieldRole
	userFieldCount
)

var roleOptions = []string{"user", "admin"}

// --- Users Model ---

// UsersModel is the admin user management screen. Non-admins never reach
// it; the app hides the tab for them.
type UsersModel struct {
	client  *api.Client
	users   []api.User
	list    *components.List
	loading bool

	view    usersView
	fields  []formField
	focus   int
	roleIdx int
	saving  bool
	formErr string

	confirmDelete dialog[api.User]
	confirmReset  dialog[api.User]

	width  int
	height int
}

func NewUsersModel(client *api.Client) UsersModel {
	return UsersModel{
		client:        client,
		list:          components.NewList(15),
		loading:       true,
		fields:        newUserFields(),
		confirmDelete: newDialog[api.User]("users:delete"),
		confirmReset:  newDialog[api.User]("users:reset"),
	}
}

func newUserFields() []formField {
	return []formField{
		{label: "Username"},
		{label: "Email"},
		{label: "Password"},
		{label: "Role"},
	}
}

func (m UsersModel) Init() tea.Cmd {
	return m.loadUsers
}

func (m UsersModel) Update(msg tea.Msg) (UsersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		m.users = msg.items
		labels := make([]string, len(m.users))
		for i, u := range m.users {
			labels[i] = formatUserLine(u)
		}
		m.list.SetItems(labels)
		return m, nil
	case userSavedMsg:
		m.saving = false
		m.view = usersViewList
		m.resetForm()
		m.loading = true
		return m, m.loadUsers
	case userDeletedMsg:
		m.loading = true
		return m, m.loadUsers
	case passwordResetMsg:
		return m, toast(fmt.Sprintf("Password reset for %s", msg.username), toastSuccess)
	case dialogClearedMsg:
		m.confirmDelete.HandleCleared(msg)
		m.confirmReset.HandleCleared(msg)
		return m, nil
	case errMsg:
		m.loading = false
		m.saving = false
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.confirmDelete.IsOpen():
			return m.handleDeleteKeys(msg)
		case m.confirmReset.IsOpen():
			return m.handleResetKeys(msg)
		case m.view == usersViewAdd:
			return m.handleFormKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

func (m UsersModel) handleListKeys(msg tea.KeyMsg) (UsersModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isKey(msg, "n"):
		m.resetForm()
		m.view = usersViewAdd
	case isKey(msg, "d"):
		if idx := m.list.Selected(); idx < len(m.users) {
			m.confirmDelete.Open(m.users[idx])
		}
	case isKey(msg, "p"):
		if idx := m.list.Selected(); idx < len(m.users) {
			m.confirmReset.Open(m.users[idx])
		}
	case isSpace(msg):
		// Toggle active state in place.
		if idx := m.list.Selected(); idx < len(m.users) {
			u := m.users[idx]
			active := !u.IsActive
			return m, func() tea.Msg {
				if _, err := m.client.UpdateUser(u.ID, api.UpdateUserInput{IsActive: &active}); err != nil {
					return errMsg{err}
				}
				return userDeletedMsg{}
			}
		}
	}
	return m, nil
}

func (m UsersModel) handleDeleteKeys(msg tea.KeyMsg) (UsersModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		u := m.confirmDelete.Payload()
		closeCmd := m.confirmDelete.Close()
		if u == nil {
			return m, closeCmd
		}
		id := u.ID
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if err := m.client.DeleteUser(id); err != nil {
				return errMsg{err}
			}
			return userDeletedMsg{}
		})
	case isKey(msg, "n"), isBack(msg):
		return m, m.confirmDelete.Close()
	}
	return m, nil
}

func (m UsersModel) handleResetKeys(msg tea.KeyMsg) (UsersModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		u := m.confirmReset.Payload()
		closeCmd := m.confirmReset.Close()
		if u == nil {
			return m, closeCmd
		}
		id := u.ID
		username := u.Username
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if err := m.client.ResetPassword(id); err != nil {
				return errMsg{err}
			}
			return passwordResetMsg{username}
		})
	case isKey(msg, "n"), isBack(msg):
		return m, m.confirmReset.Close()
	}
	return m, nil
}

// --- Add form ---

func (m *UsersModel) resetForm() {
	m.fields = newUserFields()
	m.focus = 0
	m.roleIdx = 0
	m.saving = false
	m.formErr = ""
}

func (m UsersModel) handleFormKeys(msg tea.KeyMsg) (UsersModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch {
	case isDown(msg):
		m.focus = (m.focus + 1) % userFieldCount
	case isUp(msg):
		m.focus = (m.focus - 1 + userFieldCount) % userFieldCount
	case isKey(msg, "ctrl+s"):
		return m.saveForm()
	case isBack(msg):
		m.resetForm()
		m.view = usersViewList
	case isKey(msg, "backspace"):
		if m.focus != userFieldRole {
			m.fields[m.focus].value = dropLastRune(m.fields[m.focus].value)
		}
	default:
		if m.focus == userFieldRole {
			if isKey(msg, "left", "right") || isSpace(msg) {
				m.roleIdx = (m.roleIdx + 1) % len(roleOptions)
			}
		} else {
			m.fields[m.focus].value = appendRune(m.fields[m.focus].value, msg.String())
		}
	}
	return m, nil
}

func (m UsersModel) saveForm() (UsersModel, tea.Cmd) {
	username := strings.TrimSpace(m.fields[userFieldUsername].value)
	email := strings.TrimSpace(m.fields[userFieldEmail].value)
	password := m.fields[userFieldPassword].value
	if username == "" || email == "" || password == "" {
		m.formErr = "Username, email and password are required"
		return m, nil
	}
	input := api.CreateUserInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     roleOptions[m.roleIdx],
	}
	m.saving = true
	return m, func() tea.Msg {
		if _, err := m.client.CreateUser(input); err != nil {
			return errMsg{err}
		}
		return userSavedMsg{}
	}
}

// --- View ---

func (m UsersModel) View() string {
	if m.confirmDelete.IsOpen() {
		u := m.confirmDelete.Payload()
		body := "Delete this user?"
		if u != nil {
			body = fmt.Sprintf("Delete user %q?", u.Username)
		}
		return components.Indent(components.ConfirmDialog("Delete User", body), 1)
	}
	if m.confirmReset.IsOpen() {
		u := m.confirmReset.Payload()
		body := "Reset this user's password?"
		if u != nil {
			body = fmt.Sprintf("Reset the password for %q? They get a temporary one by mail.", u.Username)
		}
		return components.Indent(components.ConfirmDialog("Reset Password", body), 1)
	}
	if m.view == usersViewAdd {
		return components.Indent(m.renderForm(), 1)
	}
	if m.loading {
		return components.Indent(MutedStyle.Render("Loading users..."), 1)
	}
	if len(m.users) == 0 {
		return components.Indent(components.Box(MutedStyle.Render("No users."), m.width), 1)
	}
	return components.Indent(components.TitledBox("Users", m.list.Render(2), m.width), 1)
}

func (m UsersModel) renderForm() string {
	if m.saving {
		return MutedStyle.Render("Saving...")
	}
	var b strings.Builder
	for i, f := range m.fields {
		value := f.value
		switch i {
		case userFieldRole:
			value = roleOptions[m.roleIdx]
		case userFieldPassword:
			if value != "" {
				value = strings.Repeat("*", len(value))
			}
		}
		if i == m.focus {
			b.WriteString(SelectedStyle.Render("> " + f.label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  " + value))
			if i != userFieldRole {
				b.WriteString(AccentStyle.Render("█"))
			}
		} else {
			b.WriteString(MutedStyle.Render("  " + f.label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  " + orDash(value)))
		}
		if i < userFieldCount-1 {
			b.WriteString("\n\n")
		}
	}
	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.formErr, m.width))
	}
	return components.TitledBox("New User", b.String(), m.width)
}

func (m UsersModel) loadUsers() tea.Msg {
	items, err := m.client.ListUsers()
	if err != nil {
		return errMsg{err}
	}
	return usersLoadedMsg{items}
}

func formatUserLine(u api.User) string {
	state := "active"
	if !u.IsActive {
		state = "disabled"
	}
	return fmt.Sprintf("%s · %s · %s · %s", u.Username, u.Email, u.Role, state)
}
