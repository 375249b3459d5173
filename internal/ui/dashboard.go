package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type dashboardProjectsMsg struct{ items []api.Project }
type dashboardReportsMsg struct{ items []api.Report }

// --- Dashboard Model ---

// DashboardModel shows aggregate run results alongside recent projects.
// Projects and reports load as independent commands with no ordering
// between them; each loaded flag flips when its response lands.
type DashboardModel struct {
	client *api.Client

	projects []api.Project
	reports  []api.Report

	projectsLoaded bool
	reportsLoaded  bool

	width  int
	height int
}

func NewDashboardModel(client *api.Client) DashboardModel {
	return DashboardModel{client: client}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadProjects, m.loadReports)
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardProjectsMsg:
		m.projectsLoaded = true
		m.projects = msg.items
		return m, nil
	case dashboardReportsMsg:
		m.reportsLoaded = true
		m.reports = msg.items
		return m, nil
	case errMsg:
		// Keep whatever loaded; the app shows the error.
		m.projectsLoaded = true
		m.reportsLoaded = true
		return m, nil
	}
	return m, nil
}

func (m DashboardModel) View() string {
	if !m.projectsLoaded || !m.reportsLoaded {
		return components.Indent(MutedStyle.Render("Loading dashboard..."), 1)
	}

	var sections []string

	passed, failed, skipped := 0, 0, 0
	for _, r := range m.reports {
		passed += r.Passed
		failed += r.Failed
		skipped += r.Skipped
	}
	rows := []components.TableRow{
		{Label: "Projects", Value: fmt.Sprintf("%d", len(m.projects))},
		{Label: "Passed", Value: fmt.Sprintf("%d", passed)},
		{Label: "Failed", Value: fmt.Sprintf("%d", failed)},
		{Label: "Skipped", Value: fmt.Sprintf("%d", skipped)},
	}
	sections = append(sections, components.Table("Test Results", rows, m.width))

	if len(m.projects) > 0 {
		var b strings.Builder
		limit := len(m.projects)
		if limit > 8 {
			limit = 8
		}
		for i := 0; i < limit; i++ {
			p := m.projects[i]
			line := fmt.Sprintf("%s · %s", p.Name, relativeAge(p.CreatedAt))
			b.WriteString(NormalStyle.Render("  " + line))
			if i < limit-1 {
				b.WriteString("\n")
			}
		}
		sections = append(sections, components.TitledBox("Recent Projects", b.String(), m.width))
	}

	if len(m.reports) > 0 {
		var b strings.Builder
		for i, r := range m.reports {
			failedPart := fmt.Sprintf("%d failed", r.Failed)
			if r.Failed > 0 {
				failedPart = ErrorStyle.Render(failedPart)
			}
			line := fmt.Sprintf("%s · %d passed · %s", r.ProjectName, r.Passed, failedPart)
			if r.LastRunAt != nil {
				line = fmt.Sprintf("%s · %s", line, relativeAge(*r.LastRunAt))
			}
			b.WriteString(NormalStyle.Render("  " + line))
			if i < len(m.reports)-1 {
				b.WriteString("\n")
			}
		}
		sections = append(sections, components.TitledBox("Reports", b.String(), m.width))
	}

	return components.Indent(strings.Join(sections, "\n\n"), 1)
}

// --- Helpers ---

func (m DashboardModel) loadProjects() tea.Msg {
	items, err := m.client.ListProjects()
	if err != nil {
		return errMsg{err}
	}
	return dashboardProjectsMsg{items}
}

func (m DashboardModel) loadReports() tea.Msg {
	items, err := m.client.ListReports()
	if err != nil {
		return errMsg{err}
	}
	return dashboardReportsMsg{items}
}
