package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/category"
	"github.com/harshakreox/ghostqa-cli/internal/filter"
	"github.com/harshakreox/ghostqa-cli/internal/logging"
	"github.com/harshakreox/ghostqa-cli/internal/tree"
	"github.com/harshakreox/ghostqa-cli/internal/ui/components"
)

// --- Messages ---

type casesProjectsMsg struct{ items []api.Project }

// Folder and item loads carry the sequence they were issued under so a
// response from an abandoned reload (project or category switched while
// the request was in flight) is dropped instead of clobbering the view.
type casesFoldersMsg struct {
	seq     int
	folders []api.Folder
}

type casesItemsMsg struct {
	seq   int
	items []api.Item
}

type casesLoadErrMsg struct {
	seq int
	err error
}

type folderSavedMsg struct{}
type folderDeletedMsg struct{}
type itemSavedMsg struct{}
type itemDeletedMsg struct{}
type itemMovedMsg struct{}
type itemExportedMsg struct{ filename string }

type casesView int

const (
	casesViewProjects casesView = iota
	casesViewBrowser
	casesViewItemDetail
)

type casesInput int

const (
	casesInputNone casesInput = iota
	casesInputNewFolder
	casesInputRenameFolder
	casesInputNewItem
	casesInputRenameItem
)

// browserEntry is one row of the combined folder-then-item listing.
type browserEntry struct {
	folder *api.Folder
	item   *api.Item
}

// --- Cases Model ---

type CasesModel struct {
	client *api.Client

	projects    []api.Project
	projectList *components.List
	project     *api.Project

	cat      category.Category
	folderID string

	loadSeq       int
	folders       []api.Folder
	items         []api.Item
	foldersLoaded bool
	itemsLoaded   bool
	loadErr       string

	view      casesView
	entries   []browserEntry
	crumbs    []api.Folder
	list      *components.List
	searching bool
	searchBuf string

	input    casesInput
	inputBuf string

	detail *api.Item

	confirmFolderDelete dialog[api.Folder]
	confirmItemDelete   dialog[api.Item]
	movePicker          dialog[api.Item]
	exportPicker        dialog[api.Item]
	pickerIdx           int
	renameTarget        string

	width  int
	height int
}

func NewCasesModel(client *api.Client) CasesModel {
	return CasesModel{
		client:              client,
		projectList:         components.NewList(15),
		list:                components.NewList(15),
		cat:                 category.ActionBased,
		view:                casesViewProjects,
		confirmFolderDelete: newDialog[api.Folder]("cases:folder-delete"),
		confirmItemDelete:   newDialog[api.Item]("cases:item-delete"),
		movePicker:          newDialog[api.Item]("cases:move"),
		exportPicker:        newDialog[api.Item]("cases:export"),
	}
}

func (m CasesModel) Init() tea.Cmd {
	return m.loadProjects
}

func (m CasesModel) Update(msg tea.Msg) (CasesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case casesProjectsMsg:
		m.projects = msg.items
		labels := make([]string, len(m.projects))
		for i, p := range m.projects {
			labels[i] = formatProjectLine(p)
		}
		m.projectList.SetItems(labels)
		return m, nil

	case casesFoldersMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.folders = msg.folders
		m.foldersLoaded = true
		m.rebuildEntries()
		return m, nil

	case casesItemsMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.items = msg.items
		m.itemsLoaded = true
		m.rebuildEntries()
		return m, nil

	case casesLoadErrMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		// Keep whatever loaded before the failure on screen.
		m.foldersLoaded = true
		m.itemsLoaded = true
		m.loadErr = msg.err.Error()
		m.rebuildEntries()
		return m, nil

	case itemDeletedMsg:
		m.detail = nil
		if m.view == casesViewItemDetail {
			m.view = casesViewBrowser
		}
		return m, m.reload()

	case folderSavedMsg, folderDeletedMsg, itemSavedMsg, itemMovedMsg:
		return m, m.reload()

	case itemExportedMsg:
		return m, toast(fmt.Sprintf("Exported %s", msg.filename), toastSuccess)

	case dialogClearedMsg:
		m.confirmFolderDelete.HandleCleared(msg)
		m.confirmItemDelete.HandleCleared(msg)
		m.movePicker.HandleCleared(msg)
		m.exportPicker.HandleCleared(msg)
		return m, nil

	case errMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m CasesModel) handleKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case m.confirmFolderDelete.IsOpen():
		return m.handleFolderDeleteKeys(msg)
	case m.confirmItemDelete.IsOpen():
		return m.handleItemDeleteKeys(msg)
	case m.movePicker.IsOpen():
		return m.handleMoveKeys(msg)
	case m.exportPicker.IsOpen():
		return m.handleExportKeys(msg)
	case m.input != casesInputNone:
		return m.handleInputKeys(msg)
	}
	switch m.view {
	case casesViewItemDetail:
		return m.handleDetailKeys(msg)
	case casesViewBrowser:
		return m.handleBrowserKeys(msg)
	default:
		return m.handleProjectKeys(msg)
	}
}

// --- Project picker ---

func (m CasesModel) handleProjectKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.projectList.Down()
	case isUp(msg):
		m.projectList.Up()
	case isEnter(msg):
		if idx := m.projectList.Selected(); idx < len(m.projects) {
			p := m.projects[idx]
			m.project = &p
			m.view = casesViewBrowser
			m.folderID = ""
			m.searchBuf = ""
			return m, m.reload()
		}
	}
	return m, nil
}

// --- Browser ---

func (m *CasesModel) reload() tea.Cmd {
	if m.project == nil {
		return nil
	}
	m.loadSeq++
	m.foldersLoaded = false
	m.itemsLoaded = false
	m.loadErr = ""
	seq := m.loadSeq
	projectID := m.project.ID
	cat := m.cat
	// Folders and items load in parallel and may land in either order;
	// the view renders once both flags flip.
	return tea.Batch(
		func() tea.Msg {
			folders, err := m.client.ListFolders(projectID, cat)
			if err != nil {
				return casesLoadErrMsg{seq, err}
			}
			return casesFoldersMsg{seq, folders}
		},
		func() tea.Msg {
			items, err := m.client.ListItems(projectID, cat)
			if err != nil {
				return casesLoadErrMsg{seq, err}
			}
			return casesItemsMsg{seq, items}
		},
	)
}

func (m *CasesModel) rebuildEntries() {
	v, err := tree.Resolve(m.folders, m.items, m.folderID)
	if err != nil {
		// A broken parent chain means the current position is unusable;
		// fall back to the root, which always resolves.
		logging.Warn("cases.resolve", err.Error())
		m.folderID = ""
		m.loadErr = err.Error()
		v, _ = tree.Resolve(m.folders, m.items, "")
	}
	m.crumbs = v.Path

	visible := filter.Items(v.Items, strings.TrimSpace(m.searchBuf))
	m.entries = m.entries[:0]
	for i := range v.Subfolders {
		m.entries = append(m.entries, browserEntry{folder: &v.Subfolders[i]})
	}
	for i := range visible {
		m.entries = append(m.entries, browserEntry{item: &visible[i]})
	}

	labels := make([]string, len(m.entries))
	for i, e := range m.entries {
		if e.folder != nil {
			labels[i] = "[+] " + e.folder.Name
		} else {
			labels[i] = "    " + e.item.Name
		}
	}
	m.list.SetItems(labels)
}

func (m CasesModel) handleBrowserKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	if m.searching {
		switch {
		case isEnter(msg):
			m.searching = false
		case isBack(msg):
			m.searching = false
			m.searchBuf = ""
			m.rebuildEntries()
		case isKey(msg, "backspace"):
			m.searchBuf = dropLastRune(m.searchBuf)
			m.rebuildEntries()
		default:
			m.searchBuf = appendRune(m.searchBuf, msg.String())
			m.rebuildEntries()
		}
		return m, nil
	}
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isEnter(msg):
		if e, ok := m.selectedEntry(); ok {
			if e.folder != nil {
				m.folderID = e.folder.ID
				m.searchBuf = ""
				m.rebuildEntries()
			} else {
				item := *e.item
				m.detail = &item
				m.view = casesViewItemDetail
			}
		}
	case isKey(msg, "tab"):
		m.cat = nextCategory(m.cat)
		m.folderID = ""
		m.searchBuf = ""
		return m, m.reload()
	case isKey(msg, "n"):
		m.input = casesInputNewItem
		m.inputBuf = ""
	case isKey(msg, "f"):
		m.input = casesInputNewFolder
		m.inputBuf = ""
	case isKey(msg, "r"):
		if e, ok := m.selectedEntry(); ok {
			m.inputBuf = ""
			if e.folder != nil {
				m.input = casesInputRenameFolder
				m.renameTarget = e.folder.ID
				m.inputBuf = e.folder.Name
			} else {
				m.input = casesInputRenameItem
				m.renameTarget = e.item.ID
				m.inputBuf = e.item.Name
			}
		}
	case isKey(msg, "d"):
		if e, ok := m.selectedEntry(); ok {
			if e.folder != nil {
				m.confirmFolderDelete.Open(*e.folder)
			} else {
				m.confirmItemDelete.Open(*e.item)
			}
		}
	case isKey(msg, "m"):
		if e, ok := m.selectedEntry(); ok && e.item != nil {
			m.pickerIdx = 0
			m.movePicker.Open(*e.item)
		}
	case isKey(msg, "x"):
		if e, ok := m.selectedEntry(); ok && e.item != nil {
			m.pickerIdx = 0
			m.exportPicker.Open(*e.item)
		}
	case isKey(msg, "R"):
		return m, m.reload()
	case isKey(msg, "/"):
		m.searching = true
	case isBack(msg):
		switch {
		case m.searchBuf != "":
			m.searchBuf = ""
			m.rebuildEntries()
		case m.folderID != "":
			// Step out to the parent folder.
			if len(m.crumbs) >= 2 {
				m.folderID = m.crumbs[len(m.crumbs)-2].ID
			} else {
				m.folderID = ""
			}
			m.rebuildEntries()
		default:
			m.project = nil
			m.view = casesViewProjects
		}
	}
	return m, nil
}

func (m CasesModel) selectedEntry() (browserEntry, bool) {
	idx := m.list.Selected()
	if idx >= len(m.entries) {
		return browserEntry{}, false
	}
	return m.entries[idx], true
}

// --- Text input (new/rename folder, new/rename item) ---

func (m CasesModel) handleInputKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.input = casesInputNone
		m.inputBuf = ""
	case isKey(msg, "backspace"):
		m.inputBuf = dropLastRune(m.inputBuf)
	case isEnter(msg):
		name := strings.TrimSpace(m.inputBuf)
		if name == "" {
			return m, nil
		}
		input := m.input
		m.input = casesInputNone
		m.inputBuf = ""
		return m, m.submitInput(input, name)
	default:
		m.inputBuf = appendRune(m.inputBuf, msg.String())
	}
	return m, nil
}

func (m CasesModel) submitInput(input casesInput, name string) tea.Cmd {
	projectID := m.project.ID
	cat := m.cat
	switch input {
	case casesInputNewFolder:
		var parent *string
		if m.folderID != "" {
			id := m.folderID
			parent = &id
		}
		return func() tea.Msg {
			if _, err := m.client.CreateFolder(projectID, cat, api.CreateFolderInput{Name: name, ParentFolderID: parent}); err != nil {
				return errMsg{err}
			}
			return folderSavedMsg{}
		}
	case casesInputRenameFolder:
		id := m.renameTarget
		return func() tea.Msg {
			if _, err := m.client.UpdateFolder(id, api.UpdateFolderInput{Name: &name}); err != nil {
				return errMsg{err}
			}
			return folderSavedMsg{}
		}
	case casesInputNewItem:
		var folderID *string
		if m.folderID != "" {
			id := m.folderID
			folderID = &id
		}
		return func() tea.Msg {
			if _, err := m.client.CreateItem(projectID, cat, api.CreateItemInput{Name: name, FolderID: folderID}); err != nil {
				return errMsg{err}
			}
			return itemSavedMsg{}
		}
	case casesInputRenameItem:
		id := m.renameTarget
		return func() tea.Msg {
			if _, err := m.client.UpdateItem(cat, id, api.UpdateItemInput{Name: &name}); err != nil {
				return errMsg{err}
			}
			return itemSavedMsg{}
		}
	}
	return nil
}

// --- Delete confirms ---

func (m CasesModel) handleFolderDeleteKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		f := m.confirmFolderDelete.Payload()
		closeCmd := m.confirmFolderDelete.Close()
		if f == nil {
			return m, closeCmd
		}
		id := f.ID
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if err := m.client.DeleteFolder(id); err != nil {
				return errMsg{err}
			}
			return folderDeletedMsg{}
		})
	case isKey(msg, "n"), isBack(msg):
		return m, m.confirmFolderDelete.Close()
	}
	return m, nil
}

func (m CasesModel) handleItemDeleteKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		it := m.confirmItemDelete.Payload()
		closeCmd := m.confirmItemDelete.Close()
		if it == nil {
			return m, closeCmd
		}
		cat := m.cat
		id := it.ID
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if err := m.client.DeleteItem(cat, id); err != nil {
				return errMsg{err}
			}
			return itemDeletedMsg{}
		})
	case isKey(msg, "n"), isBack(msg):
		return m, m.confirmItemDelete.Close()
	}
	return m, nil
}

// --- Move picker ---

// moveTargets lists the root plus every folder of the active category.
func (m CasesModel) moveTargets() []string {
	targets := make([]string, 0, len(m.folders)+1)
	targets = append(targets, "(root)")
	for _, f := range m.folders {
		targets = append(targets, f.Name)
	}
	return targets
}

func (m CasesModel) handleMoveKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	targets := m.moveTargets()
	switch {
	case isDown(msg):
		m.pickerIdx = (m.pickerIdx + 1) % len(targets)
	case isUp(msg):
		m.pickerIdx = (m.pickerIdx - 1 + len(targets)) % len(targets)
	case isEnter(msg):
		it := m.movePicker.Payload()
		closeCmd := m.movePicker.Close()
		if it == nil {
			return m, closeCmd
		}
		var folderID *string
		if m.pickerIdx > 0 {
			id := m.folders[m.pickerIdx-1].ID
			folderID = &id
		}
		cat := m.cat
		itemID := it.ID
		return m, tea.Batch(closeCmd, func() tea.Msg {
			if _, err := m.client.MoveItem(cat, itemID, folderID); err != nil {
				return errMsg{err}
			}
			return itemMovedMsg{}
		})
	case isBack(msg):
		return m, m.movePicker.Close()
	}
	return m, nil
}

// --- Export picker ---

func (m CasesModel) handleExportKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	formats := m.cat.ExportFormats()
	switch {
	case isDown(msg):
		m.pickerIdx = (m.pickerIdx + 1) % len(formats)
	case isUp(msg):
		m.pickerIdx = (m.pickerIdx - 1 + len(formats)) % len(formats)
	case isEnter(msg):
		it := m.exportPicker.Payload()
		closeCmd := m.exportPicker.Close()
		if it == nil {
			return m, closeCmd
		}
		format := formats[m.pickerIdx]
		cat := m.cat
		itemID := it.ID
		itemName := it.Name
		return m, tea.Batch(closeCmd, func() tea.Msg {
			data, err := m.client.ExportItem(cat, itemID, format)
			if err != nil {
				return errMsg{err}
			}
			filename := category.ExportFilename(itemName, format)
			if err := os.WriteFile(filename, data, 0o644); err != nil {
				return errMsg{fmt.Errorf("write export: %w", err)}
			}
			return itemExportedMsg{filename}
		})
	case isBack(msg):
		return m, m.exportPicker.Close()
	}
	return m, nil
}

// --- Item detail ---

func (m CasesModel) handleDetailKeys(msg tea.KeyMsg) (CasesModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = casesViewBrowser
	case isKey(msg, "x"):
		if m.detail != nil {
			m.pickerIdx = 0
			m.exportPicker.Open(*m.detail)
		}
	case isKey(msg, "d"):
		if m.detail != nil {
			m.confirmItemDelete.Open(*m.detail)
		}
	}
	return m, nil
}

// --- View ---

func (m CasesModel) View() string {
	switch {
	case m.confirmFolderDelete.IsOpen():
		f := m.confirmFolderDelete.Payload()
		body := "Delete this folder?"
		if f != nil {
			body = fmt.Sprintf("Delete folder %q? Its contents move up to the parent.", f.Name)
		}
		return components.Indent(components.ConfirmDialog("Delete Folder", body), 1)
	case m.confirmItemDelete.IsOpen():
		it := m.confirmItemDelete.Payload()
		body := fmt.Sprintf("Delete this %s?", strings.ToLower(m.cat.Label()))
		if it != nil {
			body = fmt.Sprintf("Delete %q? This cannot be undone.", it.Name)
		}
		return components.Indent(components.ConfirmDialog("Delete", body), 1)
	case m.movePicker.IsOpen():
		return components.Indent(components.PickerDialog("Move To", m.moveTargets(), m.pickerIdx), 1)
	case m.exportPicker.IsOpen():
		formats := m.cat.ExportFormats()
		itemName := ""
		if it := m.exportPicker.Payload(); it != nil {
			itemName = it.Name
		}
		labels := make([]string, len(formats))
		for i, f := range formats {
			labels[i] = string(f)
			if itemName != "" {
				labels[i] = fmt.Sprintf("%s · %s", f, category.ExportFilename(itemName, f))
			}
		}
		return components.Indent(components.PickerDialog("Export As", labels, m.pickerIdx), 1)
	}
	switch m.input {
	case casesInputNewFolder:
		return components.Indent(components.InputDialog("New Folder", m.inputBuf), 1)
	case casesInputRenameFolder:
		return components.Indent(components.InputDialog("Rename Folder", m.inputBuf), 1)
	case casesInputNewItem:
		return components.Indent(components.InputDialog("New "+m.cat.Label(), m.inputBuf), 1)
	case casesInputRenameItem:
		return components.Indent(components.InputDialog("Rename", m.inputBuf), 1)
	}
	var body string
	switch m.view {
	case casesViewItemDetail:
		body = m.renderDetail()
	case casesViewBrowser:
		body = m.renderBrowser()
	default:
		body = m.renderProjects()
	}
	return components.Indent(body, 1)
}

func (m CasesModel) renderProjects() string {
	if len(m.projects) == 0 {
		return components.Box(MutedStyle.Render("No projects. Create one in the Projects tab first."), m.width)
	}
	return components.TitledBox("Pick a Project", m.projectList.Render(2), m.width)
}

func (m CasesModel) renderBrowser() string {
	if !m.foldersLoaded || !m.itemsLoaded {
		return MutedStyle.Render("Loading...")
	}

	var header strings.Builder
	for _, c := range category.All() {
		label := c.Label()
		if c == m.cat {
			header.WriteString(TabActiveStyle.Render(" " + label + " "))
		} else {
			header.WriteString(MutedStyle.Render(" " + label + " "))
		}
	}

	crumb := "/"
	for _, f := range m.crumbs {
		crumb += f.Name + "/"
	}
	pathLine := AccentStyle.Render(crumb)
	if strings.TrimSpace(m.searchBuf) != "" {
		pathLine += MutedStyle.Render("  search: " + strings.TrimSpace(m.searchBuf))
	}

	rows := m.list.Render(0)
	if len(m.entries) == 0 {
		rows = MutedStyle.Render("  (empty)")
	}

	sections := []string{
		header.String(),
		components.TitledBox(m.project.Name, pathLine+"\n\n"+rows, m.width),
	}
	if m.loadErr != "" {
		sections = append(sections, components.ErrorBox("Load Error", m.loadErr, m.width))
	}
	return strings.Join(sections, "\n")
}

func (m CasesModel) renderDetail() string {
	if m.detail == nil {
		return m.renderBrowser()
	}
	it := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: it.ID},
		{Label: "Name", Value: it.Name},
		{Label: "Category", Value: m.cat.Label()},
		{Label: "Created", Value: relativeAge(it.CreatedAt)},
	}
	sections := []string{components.Table(m.cat.Label(), rows, m.width)}
	if strings.TrimSpace(it.Description) != "" {
		sections = append(sections, components.TitledBox("Description", NormalStyle.Render(it.Description), m.width))
	}
	if body := renderItemPayload(it); body != "" {
		sections = append(sections, components.TitledBox("Contents", body, m.width))
	}
	return strings.Join(sections, "\n\n")
}

func renderItemPayload(it *api.Item) string {
	var b strings.Builder
	switch {
	case len(it.Actions) > 0:
		for i, a := range it.Actions {
			line := fmt.Sprintf("%d. %s", a.Order, a.Type)
			if a.Selector != "" {
				line += " " + a.Selector
			}
			if a.Value != "" {
				line += " = " + a.Value
			}
			b.WriteString(NormalStyle.Render(line))
			if i < len(it.Actions)-1 {
				b.WriteString("\n")
			}
		}
	case len(it.Scenarios) > 0:
		for i, s := range it.Scenarios {
			b.WriteString(AccentStyle.Render("Scenario: " + s.Name))
			for _, step := range s.Steps {
				b.WriteString("\n" + NormalStyle.Render("  "+step))
			}
			if i < len(it.Scenarios)-1 {
				b.WriteString("\n")
			}
		}
	case len(it.TestCases) > 0:
		for i, tc := range it.TestCases {
			line := tc.Name
			if tc.Priority != "" {
				line += " [" + tc.Priority + "]"
			}
			b.WriteString(NormalStyle.Render(line))
			if i < len(it.TestCases)-1 {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// --- Helpers ---

func (m CasesModel) loadProjects() tea.Msg {
	items, err := m.client.ListProjects()
	if err != nil {
		return errMsg{err}
	}
	return casesProjectsMsg{items}
}

func nextCategory(c category.Category) category.Category {
	all := category.All()
	for i, cat := range all {
		if cat == c {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
