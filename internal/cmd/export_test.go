package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/category"
)

func TestRunExportWritesDerivedFilename(t *testing.T) {
	feature := "Feature: Login\n  Scenario: valid credentials\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/gherkin-features/i1":
			w.Write([]byte(`{"data": {"id": "i1", "name": "Login Flow"}}`))
		case "/api/gherkin-features/i1/export":
			assert.Equal(t, "feature", r.URL.Query().Get("format"))
			w.Write([]byte(feature))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	t.Chdir(t.TempDir())

	client := api.NewClient(srv.URL, "gq_testtoken")
	var out bytes.Buffer
	err := RunExport(client, &out, "gherkin", "i1", "feature")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Login_Flow.feature")

	data, err := os.ReadFile(filepath.Join(".", "Login_Flow.feature"))
	require.NoError(t, err)
	assert.Equal(t, feature, string(data))
}

func TestRunExportRejectsUnknownCategory(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "gq_testtoken")
	var out bytes.Buffer
	err := RunExport(client, &out, "suites", "i1", "json")
	require.ErrorIs(t, err, category.ErrInvalidCategory)
	assert.False(t, requested, "no request before the tag validates")
}

func TestRunExportRejectsUnsupportedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/traditional-suites/i1" {
			w.Write([]byte(`{"data": {"id": "i1", "name": "Smoke Suite"}}`))
			return
		}
		t.Errorf("unexpected request %s", r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "gq_testtoken")
	var out bytes.Buffer
	err := RunExport(client, &out, "traditional", "i1", "feature")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export")
}
