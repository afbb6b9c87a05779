package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/lunar-api/internal/api"
	"github.com/zapponejosh/lunar-api/internal/calendar"
	"github.com/zapponejosh/lunar-api/internal/catalog"
	"github.com/zapponejosh/lunar-api/internal/config"
)

func TestRunner_AgainstServer(t *testing.T) {
	resolver, err := catalog.Default().Resolver(calendar.DefaultHook)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{MaxRangeDays: 90}
	srv := httptest.NewServer(api.NewRouter(api.NewHandlers(resolver, cfg), log))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL+"/", &out, false)
	ok := runner.Run()

	assert.True(t, ok, out.String())
	assert.Equal(t, len(checks), runner.successCount)
	assert.Contains(t, out.String(), "Failed: 0")
}

func TestRunner_ReportsFailures(t *testing.T) {
	// A server without festivals fails the festival checks.
	empty, err := calendar.NewFestivalList(true)
	require.NoError(t, err)
	emptyLunar, err := calendar.NewFestivalList(false)
	require.NoError(t, err)
	resolver, err := calendar.NewResolver(calendar.NewMatcher(nil), empty, emptyLunar)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(api.NewRouter(api.NewHandlers(resolver, &config.Config{MaxRangeDays: 90}), log))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, &out, false)
	assert.False(t, runner.Run())
	assert.Positive(t, runner.errorCount)
	assert.Contains(t, out.String(), "Failures:")
}
