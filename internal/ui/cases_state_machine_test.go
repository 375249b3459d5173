package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/category"
)

func testCasesClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *api.Client) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, api.NewClient(srv.URL, "test-token")
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func strPtr(s string) *string { return &s }

func browserFixture(t *testing.T) CasesModel {
	t.Helper()
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})
	m := NewCasesModel(client)
	m.project = &api.Project{ID: "p1", Name: "Checkout"}
	m.view = casesViewBrowser
	m.loadSeq = 1

	folders := []api.Folder{
		{ID: "f1", Name: "Auth"},
		{ID: "f2", Name: "Login", ParentFolderID: strPtr("f1")},
	}
	items := []api.Item{
		{ID: "i1", Name: "uncategorized case", Category: category.ActionBased},
		{ID: "i2", Name: "login happy path", FolderID: strPtr("f2"), Category: category.ActionBased},
	}
	m, _ = m.Update(casesFoldersMsg{seq: 1, folders: folders})
	m, _ = m.Update(casesItemsMsg{seq: 1, items: items})
	require.True(t, m.foldersLoaded)
	require.True(t, m.itemsLoaded)
	return m
}

func TestCasesDropsStaleResponses(t *testing.T) {
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})
	m := NewCasesModel(client)
	m.project = &api.Project{ID: "p1"}
	m.view = casesViewBrowser
	m.loadSeq = 2 // a newer reload is already in flight

	m, _ = m.Update(casesItemsMsg{seq: 1, items: []api.Item{{ID: "stale"}}})
	assert.False(t, m.itemsLoaded)
	assert.Empty(t, m.items)

	m, _ = m.Update(casesItemsMsg{seq: 2, items: []api.Item{{ID: "fresh"}}})
	assert.True(t, m.itemsLoaded)
	require.Len(t, m.items, 1)
	assert.Equal(t, "fresh", m.items[0].ID)
}

func TestCasesLoadErrorKeepsEarlierData(t *testing.T) {
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})
	m := NewCasesModel(client)
	m.project = &api.Project{ID: "p1"}
	m.view = casesViewBrowser
	m.loadSeq = 1

	m, _ = m.Update(casesFoldersMsg{seq: 1, folders: []api.Folder{{ID: "f1", Name: "Auth"}}})
	m, _ = m.Update(casesLoadErrMsg{seq: 1, err: assert.AnError})

	assert.True(t, m.foldersLoaded)
	assert.True(t, m.itemsLoaded)
	assert.NotEmpty(t, m.loadErr)
	require.Len(t, m.folders, 1)
}

func TestCasesBrowserListsFoldersBeforeItems(t *testing.T) {
	m := browserFixture(t)

	require.Len(t, m.entries, 2) // root: folder Auth + uncategorized item
	assert.NotNil(t, m.entries[0].folder)
	assert.Equal(t, "Auth", m.entries[0].folder.Name)
	assert.NotNil(t, m.entries[1].item)
	assert.Equal(t, "i1", m.entries[1].item.ID)
}

func TestCasesDrillInAndOut(t *testing.T) {
	m := browserFixture(t)

	// Enter the Auth folder.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "f1", m.folderID)
	require.Len(t, m.crumbs, 1)
	assert.Equal(t, "Auth", m.crumbs[0].Name)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "Login", m.entries[0].folder.Name)

	// Enter Login: breadcrumb grows, the nested item shows.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "f2", m.folderID)
	require.Len(t, m.crumbs, 2)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "i2", m.entries[0].item.ID)

	// Esc steps back to the parent, then the root.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "f1", m.folderID)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.folderID)
	assert.Empty(t, m.crumbs)
}

func TestCasesSearchFiltersItemsNotFolders(t *testing.T) {
	m := browserFixture(t)

	m, _ = m.Update(keyRunes("/"))
	assert.True(t, m.searching)
	m, _ = m.Update(keyRunes("z"))
	m, _ = m.Update(keyRunes("z"))

	// Folders stay visible; no item matches "zz".
	require.Len(t, m.entries, 1)
	assert.NotNil(t, m.entries[0].folder)

	// Esc clears the query and restores the listing.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searching)
	assert.Equal(t, "", m.searchBuf)
	assert.Len(t, m.entries, 2)
}

func TestCasesCorruptHierarchyFallsBackToRoot(t *testing.T) {
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {})
	m := NewCasesModel(client)
	m.project = &api.Project{ID: "p1"}
	m.view = casesViewBrowser
	m.folderID = "ghost"
	m.loadSeq = 1

	m, _ = m.Update(casesFoldersMsg{seq: 1, folders: []api.Folder{{ID: "f1", Name: "Auth"}}})
	m, _ = m.Update(casesItemsMsg{seq: 1, items: nil})

	assert.Equal(t, "", m.folderID)
	assert.NotEmpty(t, m.loadErr)
	require.Len(t, m.entries, 1)
}

func TestCasesCategoryCycleResetsPosition(t *testing.T) {
	m := browserFixture(t)
	m.folderID = "f1"

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, category.Gherkin, m.cat)
	assert.Equal(t, "", m.folderID)
	assert.NotNil(t, cmd, "category switch triggers a reload")
	assert.Equal(t, 2, m.loadSeq)
}

func TestCasesDeleteConfirmRoundtrip(t *testing.T) {
	deleted := false
	_, client := testCasesClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/api/test-cases/i1" {
			deleted = true
		}
		w.Write([]byte(`{"data": {}}`))
	})
	m := NewCasesModel(client)
	m.project = &api.Project{ID: "p1"}
	m.view = casesViewBrowser
	m.loadSeq = 1
	m, _ = m.Update(casesFoldersMsg{seq: 1, folders: nil})
	m, _ = m.Update(casesItemsMsg{seq: 1, items: []api.Item{{ID: "i1", Name: "case", Category: category.ActionBased}}})

	m, _ = m.Update(keyRunes("d"))
	require.True(t, m.confirmItemDelete.IsOpen())

	m, cmd := m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.confirmItemDelete.IsOpen())

	runBatch(t, cmd)
	assert.True(t, deleted)
}

func TestCasesNewFolderRequiresName(t *testing.T) {
	m := browserFixture(t)

	m, _ = m.Update(keyRunes("f"))
	assert.Equal(t, casesInputNewFolder, m.input)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "empty name does not submit")
	assert.Equal(t, casesInputNewFolder, m.input)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, casesInputNone, m.input)
}

// runBatch executes a command tree, following batches, and feeds nothing
// back into the model. Used when a test only cares about side effects.
func runBatch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runBatch(t, c)
		}
	}
}
