package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/users", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"id": "u1", "username": "alex", "email": "alex@example.com", "role": "admin", "is_active": true},
		}))
	})

	users, err := client.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsActive)
}

func TestCreateUser(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/users", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sam", body["username"])
		assert.Equal(t, "user", body["role"])
		w.Write(jsonResponse(map[string]any{"id": "u2", "username": "sam", "role": "user"}))
	})

	u, err := client.CreateUser(CreateUserInput{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "s3cret",
		Role:     "user",
	})
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
}

func TestUpdateUserToggleActive(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/auth/users/u1", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["is_active"])
		_, hasRole := body["role"]
		assert.False(t, hasRole)
		w.Write(jsonResponse(map[string]any{"id": "u1", "is_active": false}))
	})

	active := false
	u, err := client.UpdateUser("u1", UpdateUserInput{IsActive: &active})
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestDeleteUser(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/auth/users/u1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{}))
	})

	require.NoError(t, client.DeleteUser("u1"))
}

func TestResetPassword(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/users/u1/reset-password", r.URL.Path)
		w.Write(jsonResponse(map[string]any{}))
	})

	require.NoError(t, client.ResetPassword("u1"))
}

func TestListReleases(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/releases", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"id": "r1", "name": "2026.08", "environments": []string{"staging", "prod"}, "project_ids": []string{"p1"}, "passed": 40, "failed": 2},
		}))
	})

	releases, err := client.ListReleases()
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, []string{"staging", "prod"}, releases[0].Environments)
}

func TestListReports(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reports", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"project_id": "p1", "project_name": "Checkout", "passed": 10, "failed": 1, "skipped": 3},
		}))
	})

	reports, err := client.ListReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 3, reports[0].Skipped)
}
