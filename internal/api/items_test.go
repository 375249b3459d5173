package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshakreox/ghostqa-cli/internal/category"
)

func TestListItemsPerCategoryPath(t *testing.T) {
	tests := []struct {
		cat  category.Category
		path string
	}{
		{category.ActionBased, "/api/projects/p1/test-cases"},
		{category.Gherkin, "/api/projects/p1/gherkin-features"},
		{category.Traditional, "/api/projects/p1/traditional-suites"},
	}
	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				w.Write(jsonResponse([]map[string]any{
					{"id": "i1", "name": "Login works", "folder_id": nil},
				}))
			})

			items, err := client.ListItems("p1", tt.cat)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.cat, items[0].Category, "items carry the category they were fetched as")
		})
	}
}

func TestListItemsRejectsUnknownCategory(t *testing.T) {
	requested := false
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	_, err := client.ListItems("p1", category.Category("suites"))
	require.ErrorIs(t, err, category.ErrInvalidCategory)
	assert.False(t, requested)
}

func TestGetItemDecodesPayload(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gherkin-features/i1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{
			"id":   "i1",
			"name": "Login Flow",
			"scenarios": []map[string]any{
				{"name": "valid credentials", "steps": []string{"Given a user", "When they log in", "Then they see the dashboard"}},
			},
		}))
	})

	item, err := client.GetItem(category.Gherkin, "i1")
	require.NoError(t, err)
	require.Len(t, item.Scenarios, 1)
	assert.Len(t, item.Scenarios[0].Steps, 3)
}

func TestCreateItemInFolder(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/p1/test-cases", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Add to cart", body["name"])
		assert.Equal(t, "f1", body["folder_id"])
		w.Write(jsonResponse(map[string]any{"id": "i2", "name": "Add to cart", "folder_id": "f1"}))
	})

	folderID := "f1"
	item, err := client.CreateItem("p1", category.ActionBased, CreateItemInput{
		Name:     "Add to cart",
		FolderID: &folderID,
	})
	require.NoError(t, err)
	assert.Equal(t, "i2", item.ID)
}

func TestMoveItemToFolder(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/traditional-suites/i1/move", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "f2", body["folder_id"])
		w.Write(jsonResponse(map[string]any{"id": "i1", "folder_id": "f2"}))
	})

	folderID := "f2"
	item, err := client.MoveItem(category.Traditional, "i1", &folderID)
	require.NoError(t, err)
	require.NotNil(t, item.FolderID)
	assert.Equal(t, "f2", *item.FolderID)
}

func TestMoveItemToRoot(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Nil(t, body["folder_id"])
		w.Write(jsonResponse(map[string]any{"id": "i1", "folder_id": nil}))
	})

	item, err := client.MoveItem(category.ActionBased, "i1", nil)
	require.NoError(t, err)
	assert.Nil(t, item.FolderID)
}

func TestExportItemReturnsRawBody(t *testing.T) {
	feature := "Feature: Login\n  Scenario: valid credentials\n"
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gherkin-features/i1/export", r.URL.Path)
		assert.Equal(t, "feature", r.URL.Query().Get("format"))
		w.Write([]byte(feature))
	})

	data, err := client.ExportItem(category.Gherkin, "i1", category.FormatFeature)
	require.NoError(t, err)
	assert.Equal(t, feature, string(data))
}

func TestExportItemUnsupportedFormat(t *testing.T) {
	requested := false
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	_, err := client.ExportItem(category.Gherkin, "i1", category.FormatCSV)
	require.Error(t, err)
	assert.False(t, requested)
}

func TestDeleteItem(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/test-cases/i1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{}))
	})

	require.NoError(t, client.DeleteItem(category.ActionBased, "i1"))
}
