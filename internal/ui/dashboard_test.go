package ui

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshakreox/ghostqa-cli/internal/api"
)

func TestDashboardJoinsResponsesInEitherOrder(t *testing.T) {
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})

	projects := []api.Project{{ID: "p1", Name: "Checkout", CreatedAt: time.Now()}}
	reports := []api.Report{{ProjectID: "p1", ProjectName: "Checkout", Passed: 5, Failed: 1}}

	// Reports first, then projects.
	m := NewDashboardModel(client)
	m, _ = m.Update(dashboardReportsMsg{reports})
	assert.False(t, m.projectsLoaded)
	m, _ = m.Update(dashboardProjectsMsg{projects})
	assert.True(t, m.projectsLoaded && m.reportsLoaded)
	first := m.View()

	// Projects first, then reports.
	m2 := NewDashboardModel(client)
	m2, _ = m2.Update(dashboardProjectsMsg{projects})
	m2, _ = m2.Update(dashboardReportsMsg{reports})
	second := m2.View()

	assert.Equal(t, first, second, "arrival order must not change the render")
}

func TestDashboardErrorKeepsLastKnownData(t *testing.T) {
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})
	m := NewDashboardModel(client)
	m, _ = m.Update(dashboardProjectsMsg{[]api.Project{{ID: "p1", Name: "Checkout"}}})

	m, _ = m.Update(errMsg{assert.AnError})
	require.Len(t, m.projects, 1)
	assert.True(t, m.projectsLoaded)
	assert.True(t, m.reportsLoaded)
}
