package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"id": "p1", "name": "Checkout"},
			{"id": "p2", "name": "Onboarding"},
		}))
	})

	projects, err := client.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Checkout", projects[0].Name)
}

func TestGetProject(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projects/p1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{
			"id":   "p1",
			"name": "Checkout",
			"ui_config": map[string]any{
				"selected_frameworks": []string{"selenium"},
				"primary_framework":   "selenium",
			},
		}))
	})

	p, err := client.GetProject("p1")
	require.NoError(t, err)
	assert.Equal(t, "Checkout", p.Name)
	assert.Equal(t, "selenium", p.UIConfig.PrimaryFramework)
}

func TestCreateProject(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Checkout", body["name"])
		assert.Equal(t, "https://shop.example.com", body["base_url"])
		w.Write(jsonResponse(map[string]any{"id": "p1", "name": "Checkout"}))
	})

	p, err := client.CreateProject(CreateProjectInput{
		Name:    "Checkout",
		BaseURL: "https://shop.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestUpdateProjectSendsOnlySetFields(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/projects/p1", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Checkout v2", body["name"])
		_, hasDesc := body["description"]
		assert.False(t, hasDesc)
		w.Write(jsonResponse(map[string]any{"id": "p1", "name": "Checkout v2"}))
	})

	name := "Checkout v2"
	p, err := client.UpdateProject("p1", UpdateProjectInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Checkout v2", p.Name)
}

func TestDeleteProject(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/projects/p1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{}))
	})

	require.NoError(t, client.DeleteProject("p1"))
}
