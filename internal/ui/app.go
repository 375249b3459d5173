package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/config"
	"github.com/harshakreox/ghostqa-cli/internal/logging"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabDashboard = 0
	tabProjects  = 1
	tabCases     = 2
	tabReleases  = 3
	tabUsers     = 4
	tabSettings  = 5
	tabCount     = 6
)

var tabNames = []string{"Dashboard", "Projects", "Cases", "Releases", "Users", "Settings"}

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

// toastMsg is how screens ask the app for a transient status line.
type toastMsg struct {
	level string
	text  string
}

const (
	toastInfo    = "info"
	toastSuccess = "success"
	toastWarning = "warning"
)

func toast(text, level string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{level: level, text: text}
	}
}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	client *api.Client
	config *config.Config

	tab    int
	tabNav bool
	width  int
	height int

	err         string
	helpOpen    bool
	quitConfirm bool
	toast       *appToast

	dashboard DashboardModel
	projects  ProjectsModel
	cases     CasesModel
	releases  ReleasesModel
	users     UsersModel
	settings  SettingsModel
}

// NewApp creates the root application model.
func NewApp(client *api.Client, cfg *config.Config) App {
	return App{
		client:    client,
		config:    cfg,
		tab:       tabDashboard,
		tabNav:    true,
		dashboard: NewDashboardModel(client),
		projects:  NewProjectsModel(client),
		cases:     NewCasesModel(client),
		releases:  NewReleasesModel(client),
		users:     NewUsersModel(client),
		settings:  NewSettingsModel(client, cfg),
	}
}

func (a App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.width = msg.Width
		a.dashboard.height = msg.Height
		a.projects.width = msg.Width
		a.projects.height = msg.Height
		a.cases.width = msg.Width
		a.cases.height = msg.Height
		a.releases.width = msg.Width
		a.releases.height = msg.Height
		a.users.width = msg.Width
		a.users.height = msg.Height
		a.settings.width = msg.Width
		a.settings.height = msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		logging.Error("ui", msg.err)
		var cmd tea.Cmd
		a, cmd = a.updateActiveTab(msg)
		return a, cmd
	case toastMsg:
		return a, a.setToast(msg.level, msg.text)
	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		// Text-entry modes own the keyboard; only ctrl+c stays global.
		if a.textEntryActive() && !isKey(msg, "ctrl+c") {
			var cmd tea.Cmd
			a, cmd = a.updateActiveTab(msg)
			return a, cmd
		}

		// Global keys
		if isKey(msg, "?") {
			a.helpOpen = true
			return a, nil
		}
		if isQuit(msg) {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}

		if idx, ok := tabIndexForKey(msg.String()); ok {
			return a.switchTab(idx)
		}

		// Arrow tab navigation until the user enters content with Down
		if a.tabNav {
			if isKey(msg, "left") {
				return a.switchTab((a.tab - 1 + tabCount) % tabCount)
			}
			if isKey(msg, "right") {
				return a.switchTab((a.tab + 1) % tabCount)
			}
			if isDown(msg) {
				a.tabNav = false
				return a, nil
			}
			a.tabNav = false
		} else if isUp(msg) && a.canExitToTabNav() {
			a.tabNav = true
			return a, nil
		}
	}

	var cmd tea.Cmd
	a, cmd = a.updateActiveTab(msg)
	toastCmd := a.toastCmdForMsg(msg)
	if toastCmd != nil && cmd != nil {
		return a, tea.Batch(cmd, toastCmd)
	}
	if toastCmd != nil {
		return a, toastCmd
	}
	return a, cmd
}

func (a App) updateActiveTab(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.tab {
	case tabDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case tabProjects:
		a.projects, cmd = a.projects.Update(msg)
	case tabCases:
		a.cases, cmd = a.cases.Update(msg)
	case tabReleases:
		a.releases, cmd = a.releases.Update(msg)
	case tabUsers:
		a.users, cmd = a.users.Update(msg)
	case tabSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch a.tab {
	case tabDashboard:
		content = a.dashboard.View()
	case tabProjects:
		content = a.projects.View()
	case tabCases:
		content = a.cases.View()
	case tabReleases:
		content = a.releases.View()
	case tabUsers:
		content = a.users.View()
	case tabSettings:
		content = a.settings.View()
	}
	content = centerBlockUniform(content, a.width)

	if a.quitConfirm {
		content = centerBlockUniform(components.ConfirmDialog("Quit", "You have unsaved changes. Quit anyway?"), a.width)
	} else if a.helpOpen {
		content = centerBlockUniform(a.renderHelp(), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n\n%s%s", banner, tabs, content, hints, feedback)
}

// --- Tabs ---

func (a *App) switchTab(newTab int) (App, tea.Cmd) {
	if newTab == tabUsers && !a.isAdmin() {
		return *a, a.setToast(toastWarning, "The Users tab needs an admin session.")
	}
	oldTab := a.tab
	a.tab = newTab
	if oldTab != newTab {
		return *a, a.initTab(newTab)
	}
	return *a, nil
}

func (a App) isAdmin() bool {
	return a.config != nil && a.config.Role == "admin"
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == tabUsers && !a.isAdmin() {
			continue
		}
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) initTab(tab int) tea.Cmd {
	switch tab {
	case tabDashboard:
		return a.dashboard.Init()
	case tabProjects:
		return a.projects.Init()
	case tabCases:
		return a.cases.Init()
	case tabReleases:
		return a.releases.Init()
	case tabUsers:
		return a.users.Init()
	case tabSettings:
		return a.settings.Init()
	}
	return nil
}

func tabIndexForKey(key string) (int, bool) {
	switch key {
	case "1":
		return tabDashboard, true
	case "2":
		return tabProjects, true
	case "3":
		return tabCases, true
	case "4":
		return tabReleases, true
	case "5":
		return tabUsers, true
	case "6":
		return tabSettings, true
	}
	return 0, false
}

// textEntryActive reports whether the active tab is capturing typed runes,
// in a form, a search buffer, or the server URL editor. While it is true,
// global hotkeys must not intercept keys.
func (a App) textEntryActive() bool {
	switch a.tab {
	case tabProjects:
		return a.projects.searching || a.projects.view == projectsViewAdd || a.projects.view == projectsViewEdit
	case tabCases:
		return a.cases.searching || a.cases.input != casesInputNone
	case tabUsers:
		return a.users.view == usersViewAdd
	case tabSettings:
		return a.settings.editing
	}
	return false
}

// hasUnsaved reports whether an edit surface is open somewhere, so quitting
// asks first.
func (a App) hasUnsaved() bool {
	switch a.tab {
	case tabProjects:
		return a.projects.view == projectsViewAdd || a.projects.view == projectsViewEdit
	case tabCases:
		return a.cases.input != casesInputNone
	case tabUsers:
		return a.users.view == usersViewAdd
	case tabSettings:
		return a.settings.editing
	}
	return false
}

func (a App) canExitToTabNav() bool {
	switch a.tab {
	case tabProjects:
		if a.projects.view != projectsViewList || a.projects.searching || a.projects.confirmDelete.IsOpen() {
			return false
		}
		return a.projects.list == nil || a.projects.list.Selected() == 0
	case tabCases:
		if a.cases.view != casesViewProjects || a.cases.searching {
			return false
		}
		return a.cases.projectList == nil || a.cases.projectList.Selected() == 0
	case tabReleases:
		if a.releases.detail != nil {
			return false
		}
		return a.releases.list == nil || a.releases.list.Selected() == 0
	case tabUsers:
		if a.users.view != usersViewList || a.users.confirmDelete.IsOpen() || a.users.confirmReset.IsOpen() {
			return false
		}
		return a.users.list == nil || a.users.list.Selected() == 0
	case tabSettings:
		return !a.settings.editing
	}
	return true
}

// --- Toasts ---

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	text := a.toast.text
	switch a.toast.level {
	case toastSuccess:
		title = "Success"
		text = SuccessStyle.Render(text)
	case toastWarning:
		title = "Warning"
		text = WarningStyle.Render(text)
	}
	return components.TitledBox(title, text, a.width)
}

func (a *App) toastCmdForMsg(msg tea.Msg) tea.Cmd {
	var level, text string
	switch msg.(type) {
	case projectCreatedMsg:
		level, text = toastSuccess, "Project created."
	case projectUpdatedMsg:
		level, text = toastSuccess, "Project updated."
	case projectDeletedMsg:
		level, text = toastSuccess, "Project deleted."
	case folderSavedMsg:
		level, text = toastSuccess, "Folder saved."
	case folderDeletedMsg:
		level, text = toastSuccess, "Folder deleted."
	case itemSavedMsg:
		level, text = toastSuccess, "Saved."
	case itemDeletedMsg:
		level, text = toastSuccess, "Deleted."
	case itemMovedMsg:
		level, text = toastSuccess, "Moved."
	case userSavedMsg:
		level, text = toastSuccess, "User saved."
	case userDeletedMsg:
		level, text = toastSuccess, "User updated."
	}
	if text == "" {
		return nil
	}
	return a.setToast(level, text)
}

// --- Help ---

func (a App) renderHelp() string {
	sections := []string{
		HeaderStyle.Render("Navigation"),
		NormalStyle.Render("  1-6        switch tabs"),
		NormalStyle.Render("  ←/→        move between tabs (from the tab bar)"),
		NormalStyle.Render("  ↑/↓        move within a list"),
		NormalStyle.Render("  enter      open the selected entry"),
		NormalStyle.Render("  esc        back / cancel"),
		"",
		HeaderStyle.Render("Cases"),
		NormalStyle.Render("  /          filter by name or description"),
		NormalStyle.Render("  tab        cycle category"),
		NormalStyle.Render("  n/f/r/d    new item / new folder / rename / delete"),
		NormalStyle.Render("  m/x        move / export the selected item"),
		NormalStyle.Render("  R          reload"),
		"",
		HeaderStyle.Render("Everywhere"),
		NormalStyle.Render("  ?          toggle this help"),
		NormalStyle.Render("  q          quit"),
	}
	return components.TitledBox("Help", strings.Join(sections, "\n"), a.width)
}

// --- Status bar ---

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{components.Hint("esc", "Back")}
	}
	return a.statusHintsForTab()
}

func (a App) statusHintsForTab() []string {
	base := []string{
		components.Hint("1-6", "Tabs"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
	switch a.tab {
	case tabProjects:
		if a.projects.searching {
			return []string{
				components.Hint("enter", "Done"),
				components.Hint("esc", "Clear"),
			}
		}
		switch a.projects.view {
		case projectsViewAdd, projectsViewEdit:
			return []string{
				components.Hint("↑/↓", "Fields"),
				components.Hint("ctrl+s", "Save"),
				components.Hint("esc", "Cancel"),
			}
		case projectsViewDetail:
			return append(base,
				components.Hint("e", "Edit"),
				components.Hint("d", "Delete"),
				components.Hint("esc", "Back"),
			)
		}
		return append(base,
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Open"),
			components.Hint("n", "New"),
			components.Hint("/", "Search"),
		)
	case tabCases:
		if a.cases.input != casesInputNone {
			return []string{
				components.Hint("enter", "Save"),
				components.Hint("esc", "Cancel"),
			}
		}
		if a.cases.searching {
			return []string{
				components.Hint("enter", "Done"),
				components.Hint("esc", "Clear"),
			}
		}
		switch a.cases.view {
		case casesViewItemDetail:
			return append(base,
				components.Hint("x", "Export"),
				components.Hint("d", "Delete"),
				components.Hint("esc", "Back"),
			)
		case casesViewBrowser:
			return append(base,
				components.Hint("enter", "Open"),
				components.Hint("tab", "Category"),
				components.Hint("n", "New"),
				components.Hint("f", "Folder"),
				components.Hint("m", "Move"),
				components.Hint("x", "Export"),
				components.Hint("/", "Search"),
			)
		}
		return append(base,
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Pick"),
		)
	case tabReleases:
		if a.releases.detail != nil {
			return append(base, components.Hint("esc", "Back"))
		}
		return append(base,
			components.Hint("↑/↓", "Scroll"),
			components.Hint("enter", "Details"),
		)
	case tabUsers:
		if a.users.view == usersViewAdd {
			return []string{
				components.Hint("↑/↓", "Fields"),
				components.Hint("ctrl+s", "Save"),
				components.Hint("esc", "Cancel"),
			}
		}
		return append(base,
			components.Hint("n", "New"),
			components.Hint("space", "Toggle"),
			components.Hint("p", "Reset Password"),
			components.Hint("d", "Delete"),
		)
	case tabSettings:
		if a.settings.editing {
			return []string{
				components.Hint("enter", "Save"),
				components.Hint("esc", "Cancel"),
			}
		}
		return append(base,
			components.Hint("e", "Edit Server"),
			components.Hint("c", "Check Health"),
		)
	}
	return append(base, components.Hint("↑/↓", "Scroll"))
}

// --- Layout helpers ---

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
