package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Server Tests
// =============================================================================

func testConfig(dsn string) *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: time.Second,
		},
		Database: DatabaseConfig{DSN: dsn},
		Metrics:  MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServer_ServesAPI(t *testing.T) {
	srv, err := NewServer(testConfig(":memory:"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { srv.store.Close() })

	for _, path := range []string{"/health", "/ready", "/metrics", "/api/v1/customers"} {
		w := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewServer_CreatesDatabaseDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "garden.db")

	srv, err := NewServer(testConfig(dsn), discardLogger())
	require.NoError(t, err)
	require.NoError(t, srv.Shutdown(context.Background()))

	assert.FileExists(t, dsn)
}

func TestNewServer_DatabaseError(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be opened as a database file
	_, err := NewServer(testConfig(dir), discardLogger())

	var sErr *ServerError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, ExitDatabaseError, sErr.ExitCode)
	assert.Equal(t, "NewServer", sErr.Op)
}

func TestServer_StartStopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(testConfig(":memory:"), discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestEnsureDatabaseDir(t *testing.T) {
	assert.NoError(t, ensureDatabaseDir(":memory:"))
	assert.NoError(t, ensureDatabaseDir("file:garden?mode=memory"))

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, ensureDatabaseDir(filepath.Join(dir, "garden.db")+"?_busy_timeout=5000"))
	assert.DirExists(t, dir)
}

// =============================================================================
// Server Error Tests
// =============================================================================

func TestServerError(t *testing.T) {
	inner := errors.New("address in use")
	err := &ServerError{Op: "Start", Err: inner, ExitCode: ExitHTTPServerError}

	assert.Equal(t, "Start: address in use", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestExitCode(t *testing.T) {
	logger := discardLogger()

	assert.Equal(t, ExitDatabaseError,
		exitCode(logger, "failed", &ServerError{Op: "NewServer", Err: errors.New("x"), ExitCode: ExitDatabaseError}))
	assert.Equal(t, ExitConfigError, exitCode(logger, "failed", errors.New("plain")))
}
