package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/filter"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type projectsLoadedMsg struct{ items []api.Project }
type projectCreatedMsg struct{}
type projectUpdatedMsg struct{}
type projectDeletedMsg struct{}

type projectsView int

const (
	projectsViewList projectsView = iota
	projectsViewDetail
	projectsViewAdd
	projectsViewEdit
)

const (
	projectFieldName = iota
	projectFieldDescription
	projectFieldBaseURL
	projectFieldTestUser
	projectFieldTestPass
	projectFieldFramework
	projectFieldCount
)

var frameworkOptions = []string{"selenium", "playwright", "cypress", "rest-assured"}

// --- Projects Model ---

type ProjectsModel struct {
	client   *api.Client
	allItems []api.Project
	items    []api.Project
	list     *components.List
	loading  bool
	detail   *api.Project

	searching bool
	searchBuf string
	view      projectsView

	confirmDelete dialog[api.Project]

	// add/edit form
	fields       []formField
	focus        int
	frameworkIdx int
	saving       bool
	formErr      string

	width  int
	height int
}

func NewProjectsModel(client *api.Client) ProjectsModel {
	return ProjectsModel{
		client:        client,
		list:          components.NewList(15),
		view:          projectsViewList,
		loading:       true,
		confirmDelete: newDialog[api.Project]("projects:delete"),
		fields:        newProjectFields(),
	}
}

func newProjectFields() []formField {
	return []formField{
		{label: "Name"},
		{label: "Description"},
		{label: "Base URL"},
		{label: "Test Username"},
		{label: "Test Password"},
		{label: "Primary Framework"},
	}
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadProjects
}

func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		m.allItems = msg.items
		m.applySearch()
		return m, nil
	case projectCreatedMsg, projectUpdatedMsg:
		m.saving = false
		m.view = projectsViewList
		m.resetForm()
		m.loading = true
		return m, m.loadProjects
	case projectDeletedMsg:
		m.detail = nil
		m.view = projectsViewList
		m.loading = true
		return m, m.loadProjects
	case dialogClearedMsg:
		m.confirmDelete.HandleCleared(msg)
		return m, nil
	case errMsg:
		m.loading = false
		m.saving = false
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete.IsOpen() {
			return m.handleConfirmDeleteKeys(msg)
		}
		switch m.view {
		case projectsViewAdd, projectsViewEdit:
			return m.handleFormKeys(msg)
		case projectsViewDetail:
			return m.handleDetailKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

func (m ProjectsModel) View() string {
	if m.confirmDelete.IsOpen() {
		p := m.confirmDelete.Payload()
		body := "Delete this project?"
		if p != nil {
			body = fmt.Sprintf("Delete project %q and all its test artifacts?", p.Name)
		}
		return components.Indent(components.ConfirmDialog("Delete Project", body), 1)
	}
	var body string
	switch m.view {
	case projectsViewAdd:
		body = m.renderForm("New Project")
	case projectsViewEdit:
		body = m.renderForm("Edit Project")
	case projectsViewDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}
	return components.Indent(body, 1)
}

// --- List ---

func (m ProjectsModel) renderList() string {
	if m.loading {
		return MutedStyle.Render("Loading projects...")
	}
	if len(m.items) == 0 {
		return components.Box(MutedStyle.Render("No projects found. Press n to create one."), m.width)
	}
	rows := m.list.Render(2)
	countLine := fmt.Sprintf("%d total", len(m.items))
	if strings.TrimSpace(m.searchBuf) != "" {
		countLine = fmt.Sprintf("%s · search: %s", countLine, strings.TrimSpace(m.searchBuf))
	}
	content := MutedStyle.Render(countLine) + "\n\n" + rows
	return components.TitledBox("Projects", content, m.width)
}

func (m ProjectsModel) handleListKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	if m.searching {
		switch {
		case isEnter(msg):
			m.searching = false
		case isBack(msg):
			m.searching = false
			m.searchBuf = ""
			m.applySearch()
		case isKey(msg, "backspace"):
			m.searchBuf = dropLastRune(m.searchBuf)
			m.applySearch()
		default:
			m.searchBuf = appendRune(m.searchBuf, msg.String())
			m.applySearch()
		}
		return m, nil
	}
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isEnter(msg):
		if idx := m.list.Selected(); idx < len(m.items) {
			item := m.items[idx]
			m.detail = &item
			m.view = projectsViewDetail
		}
	case isKey(msg, "n"):
		m.resetForm()
		m.view = projectsViewAdd
	case isKey(msg, "/"):
		m.searching = true
	case isBack(msg):
		if m.searchBuf != "" {
			m.searchBuf = ""
			m.applySearch()
		}
	}
	return m, nil
}

func (m *ProjectsModel) applySearch() {
	query := strings.TrimSpace(m.searchBuf)
	if query == "" {
		m.items = m.allItems
	} else {
		matched := make([]api.Project, 0, len(m.allItems))
		for _, p := range m.allItems {
			if filter.Match(p.Name, p.Description, query) {
				matched = append(matched, p)
			}
		}
		m.items = matched
	}
	labels := make([]string, len(m.items))
	for i, p := range m.items {
		labels[i] = formatProjectLine(p)
	}
	m.list.SetItems(labels)
}

// --- Detail ---

func (m ProjectsModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	p := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: p.ID},
		{Label: "Name", Value: p.Name},
		{Label: "Base URL", Value: orDash(p.BaseURL)},
		{Label: "Test User", Value: orDash(p.TestUser)},
		{Label: "Frameworks", Value: orDash(strings.Join(p.UIConfig.SelectedFrameworks, ", "))},
		{Label: "Primary", Value: orDash(p.UIConfig.PrimaryFramework)},
		{Label: "Created", Value: relativeAge(p.CreatedAt)},
	}
	sections := []string{components.Table("Project", rows, m.width)}
	if strings.TrimSpace(p.Description) != "" {
		sections = append(sections, components.TitledBox("Description", NormalStyle.Render(p.Description), m.width))
	}
	return strings.Join(sections, "\n\n")
}

func (m ProjectsModel) handleDetailKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = projectsViewList
	case isKey(msg, "e"):
		m.startEdit()
		m.view = projectsViewEdit
	case isKey(msg, "d"):
		if m.detail != nil {
			m.confirmDelete.Open(*m.detail)
		}
	}
	return m, nil
}

func (m ProjectsModel) handleConfirmDeleteKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		p := m.confirmDelete.Payload()
		closeCmd := m.confirmDelete.Close()
		if p == nil {
			return m, closeCmd
		}
		id := p.ID
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if err := m.client.DeleteProject(id); err != nil {
				return errMsg{err}
			}
			return projectDeletedMsg{}
		})
	case isKey(msg, "n"), isBack(msg):
		return m, m.confirmDelete.Close()
	}
	return m, nil
}

// --- Add / Edit Form ---

func (m *ProjectsModel) resetForm() {
	m.fields = newProjectFields()
	m.focus = 0
	m.frameworkIdx = 0
	m.saving = false
	m.formErr = ""
}

func (m *ProjectsModel) startEdit() {
	if m.detail == nil {
		return
	}
	m.resetForm()
	m.fields[projectFieldName].value = m.detail.Name
	m.fields[projectFieldDescription].value = m.detail.Description
	m.fields[projectFieldBaseURL].value = m.detail.BaseURL
	m.fields[projectFieldTestUser].value = m.detail.TestUser
	m.fields[projectFieldTestPass].value = m.detail.TestPass
	m.frameworkIdx = statusIndex(frameworkOptions, m.detail.UIConfig.PrimaryFramework)
}

func (m ProjectsModel) handleFormKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch {
	case isDown(msg):
		m.focus = (m.focus + 1) % projectFieldCount
	case isUp(msg):
		m.focus = (m.focus - 1 + projectFieldCount) % projectFieldCount
	case isKey(msg, "ctrl+s"):
		return m.saveForm()
	case isBack(msg):
		m.resetForm()
		if m.view == projectsViewEdit {
			m.view = projectsViewDetail
		} else {
			m.view = projectsViewList
		}
	case isKey(msg, "backspace"):
		if m.focus != projectFieldFramework {
			f := &m.fields[m.focus]
			f.value = dropLastRune(f.value)
		}
	default:
		if m.focus == projectFieldFramework {
			switch {
			case isKey(msg, "left"):
				m.frameworkIdx = (m.frameworkIdx - 1 + len(frameworkOptions)) % len(frameworkOptions)
			case isKey(msg, "right"), isSpace(msg):
				m.frameworkIdx = (m.frameworkIdx + 1) % len(frameworkOptions)
			}
		} else {
			m.fields[m.focus].value = appendRune(m.fields[m.focus].value, msg.String())
		}
	}
	return m, nil
}

func (m ProjectsModel) renderForm(title string) string {
	if m.saving {
		return MutedStyle.Render("Saving...")
	}
	var b strings.Builder
	for i, f := range m.fields {
		value := f.value
		if i == projectFieldFramework {
			value = frameworkOptions[m.frameworkIdx]
		}
		if i == projectFieldTestPass && value != "" {
			value = strings.Repeat("*", len(value))
		}
		if i == m.focus {
			b.WriteString(SelectedStyle.Render("> " + f.label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  " + value))
			if i != projectFieldFramework {
				b.WriteString(AccentStyle.Render("█"))
			}
		} else {
			b.WriteString(MutedStyle.Render("  " + f.label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  " + orDash(value)))
		}
		if i < projectFieldCount-1 {
			b.WriteString("\n\n")
		}
	}
	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.formErr, m.width))
	}
	return components.TitledBox(title, b.String(), m.width)
}

func (m ProjectsModel) saveForm() (ProjectsModel, tea.Cmd) {
	name := strings.TrimSpace(m.fields[projectFieldName].value)
	if name == "" {
		m.formErr = "Name is required"
		return m, nil
	}
	desc := strings.TrimSpace(m.fields[projectFieldDescription].value)
	baseURL := strings.TrimSpace(m.fields[projectFieldBaseURL].value)
	testUser := strings.TrimSpace(m.fields[projectFieldTestUser].value)
	testPass := m.fields[projectFieldTestPass].value
	uiConfig := api.UIConfig{
		SelectedFrameworks: []string{frameworkOptions[m.frameworkIdx]},
		PrimaryFramework:   frameworkOptions[m.frameworkIdx],
	}

	m.saving = true
	if m.view == projectsViewEdit && m.detail != nil {
		id := m.detail.ID
		input := api.UpdateProjectInput{
			Name:        &name,
			Description: &desc,
			BaseURL:     &baseURL,
			TestUser:    &testUser,
			TestPass:    &testPass,
			UIConfig:    &uiConfig,
		}
		return m, func() tea.Msg {
			if _, err := m.client.UpdateProject(id, input); err != nil {
				return errMsg{err}
			}
			return projectUpdatedMsg{}
		}
	}

	input := api.CreateProjectInput{
		Name:        name,
		Description: desc,
		BaseURL:     baseURL,
		TestUser:    testUser,
		TestPass:    testPass,
		UIConfig:    &uiConfig,
	}
	return m, func() tea.Msg {
		if _, err := m.client.CreateProject(input); err != nil {
			return errMsg{err}
		}
		return projectCreatedMsg{}
	}
}

// --- Helpers ---

func (m ProjectsModel) loadProjects() tea.Msg {
	items, err := m.client.ListProjects()
	if err != nil {
		return errMsg{err}
	}
	return projectsLoadedMsg{items}
}

func formatProjectLine(p api.Project) string {
	line := p.Name
	if p.UIConfig.PrimaryFramework != "" {
		line = fmt.Sprintf("%s · %s", line, p.UIConfig.PrimaryFramework)
	}
	return fmt.Sprintf("%s · %s", line, relativeAge(p.CreatedAt))
}
