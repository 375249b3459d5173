package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type releasesLoadedMsg struct{ items []api.Release }
type releaseProjectsMsg struct{ items []api.Project }

// --- Releases Model ---

// ReleasesModel lists releases with their environments and run totals.
// Releases and projects load in parallel; project names resolve release
// project IDs once both arrive.
type ReleasesModel struct {
	client *api.Client

	releases []api.Release
	projects map[string]string

	releasesLoaded bool
	projectsLoaded bool

	list   *components.List
	detail *api.Release

	width  int
	height int
}

func NewReleasesModel(client *api.Client) ReleasesModel {
	return ReleasesModel{
		client:   client,
		projects: map[string]string{},
		list:     components.NewList(15),
	}
}

func (m ReleasesModel) Init() tea.Cmd {
	return tea.Batch(m.loadReleases, m.loadProjects)
}

func (m ReleasesModel) Update(msg tea.Msg) (ReleasesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case releasesLoadedMsg:
		m.releasesLoaded = true
		m.releases = msg.items
		labels := make([]string, len(m.releases))
		for i, r := range m.releases {
			labels[i] = formatReleaseLine(r)
		}
		m.list.SetItems(labels)
		return m, nil
	case releaseProjectsMsg:
		m.projectsLoaded = true
		for _, p := range msg.items {
			m.projects[p.ID] = p.Name
		}
		return m, nil
	case errMsg:
		m.releasesLoaded = true
		m.projectsLoaded = true
		return m, nil
	case tea.KeyMsg:
		switch {
		case isDown(msg):
			m.list.Down()
		case isUp(msg):
			m.list.Up()
		case isEnter(msg):
			if idx := m.list.Selected(); idx < len(m.releases) {
				r := m.releases[idx]
				m.detail = &r
			}
		case isBack(msg):
			m.detail = nil
		}
	}
	return m, nil
}

func (m ReleasesModel) View() string {
	if !m.releasesLoaded || !m.projectsLoaded {
		return components.Indent(MutedStyle.Render("Loading releases..."), 1)
	}
	if m.detail != nil {
		return components.Indent(m.renderDetail(), 1)
	}
	if len(m.releases) == 0 {
		return components.Indent(components.Box(MutedStyle.Render("No releases yet."), m.width), 1)
	}
	return components.Indent(components.TitledBox("Releases", m.list.Render(2), m.width), 1)
}

func (m ReleasesModel) renderDetail() string {
	r := m.detail
	names := make([]string, 0, len(r.ProjectIDs))
	for _, id := range r.ProjectIDs {
		if name, ok := m.projects[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, shortID(id))
		}
	}
	rows := []components.TableRow{
		{Label: "Name", Value: r.Name},
		{Label: "Status", Value: orDash(r.Status)},
		{Label: "Environments", Value: orDash(strings.Join(r.Environments, ", "))},
		{Label: "Projects", Value: orDash(strings.Join(names, ", "))},
		{Label: "Passed", Value: fmt.Sprintf("%d", r.Passed)},
		{Label: "Failed", Value: fmt.Sprintf("%d", r.Failed)},
		{Label: "Created", Value: relativeAge(r.CreatedAt)},
	}
	return components.Table("Release", rows, m.width)
}

func (m ReleasesModel) loadReleases() tea.Msg {
	items, err := m.client.ListReleases()
	if err != nil {
		return errMsg{err}
	}
	return releasesLoadedMsg{items}
}

func (m ReleasesModel) loadProjects() tea.Msg {
	items, err := m.client.ListProjects()
	if err != nil {
		return errMsg{err}
	}
	return releaseProjectsMsg{items}
}

func formatReleaseLine(r api.Release) string {
	line := r.Name
	if r.Status != "" {
		line = fmt.Sprintf("%s · %s", line, r.Status)
	}
	total := r.Passed + r.Failed
	if total > 0 {
		line = fmt.Sprintf("%s · %d/%d passed", line, r.Passed, total)
	}
	return line
}
