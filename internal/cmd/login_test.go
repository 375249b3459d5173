package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshakreox/ghostqa-cli/internal/config"
)

func TestRunInteractiveLoginSavesConfig(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"data": {"token": "gq_fresh", "username": "alex", "role": "admin"}}`))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("alex\nhunter2\n"), &out, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "logged in as alex")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "gq_fresh", cfg.Token)
	assert.Equal(t, "admin", cfg.Role)
	assert.Equal(t, srv.URL, cfg.ServerURL)
}

func TestRunInteractiveLoginRequiresUsername(t *testing.T) {
	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("\n"), &out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestRunInteractiveLoginRequiresPassword(t *testing.T) {
	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("alex\n\n"), &out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestRunInteractiveLoginBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"code": "UNAUTHORIZED", "message": "bad credentials"}}`))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("alex\nwrong\n"), &out, srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}
