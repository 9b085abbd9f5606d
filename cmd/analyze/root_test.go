package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/site-analyzer/internal/delivery/http/response"
)

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Acme Co</title><link rel="icon" href="/f.ico"></head>
			<body><a href="https://instagram.com/acme">Instagram</a></body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testOptions() *options {
	return &options{timeout: 2 * time.Second, userAgent: "test-agent", logLevel: "error"}
}

func TestRunAnalyze_Tables(t *testing.T) {
	srv := newPageServer(t)
	var out bytes.Buffer

	require.NoError(t, runAnalyze(context.Background(), &out, testOptions(), srv.URL))

	got := out.String()
	assert.Contains(t, got, "Acme Co")
	assert.Contains(t, got, "https://instagram.com/acme")
	assert.Contains(t, got, "Website has a favicon")
	assert.Contains(t, got, "Summary: ")
}

func TestRunAnalyze_JSON(t *testing.T) {
	srv := newPageServer(t)
	opts := testOptions()
	opts.jsonOutput = true
	var out bytes.Buffer

	require.NoError(t, runAnalyze(context.Background(), &out, opts, srv.URL))

	var resp response.ReportResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "Acme Co", resp.Extraction.TitleOrEmpty())
	assert.Equal(t, []string{"https://instagram.com/acme"}, resp.Extraction.SocialMediaLinks)
	assert.Empty(t, resp.Analysis.RedFlags)
}

func TestRunAnalyze_FetchFailureIsNotACommandError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	var out bytes.Buffer

	require.NoError(t, runAnalyze(context.Background(), &out, testOptions(), srv.URL))

	assert.Contains(t, out.String(), "Red flag")
	assert.Contains(t, out.String(), "could not be performed")
}

func TestRunAnalyze_InvalidURL(t *testing.T) {
	err := runAnalyze(context.Background(), &bytes.Buffer{}, testOptions(), "acme.example")
	assert.Error(t, err)
}

func TestRootCmd_RequiresOneArgument(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
