package probe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mittwald/writeprobe/internal/config"
	"github.com/mittwald/writeprobe/pkg/writeprobe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, probes ...config.Probe) *Handler {
	t.Helper()

	h, err := NewProbeHandler(&config.Ignition{Probes: probes}, 0)
	require.NoError(t, err)
	return h
}

func TestWriteProbeExecMatchesExpectation(t *testing.T) {
	dir := t.TempDir()

	writable := NewWriteProbe(&config.Probe{Name: "ok", Target: filepath.Join(dir, "ok", "probe")})
	assert.NoError(t, writable.Exec())

	mismatch := NewWriteProbe(&config.Probe{Name: "leaky", Target: filepath.Join(dir, "leaky"), Expect: config.ExpectDenied})
	err := mismatch.Exec()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected denied, got success")
}

func TestRunAllReportsEveryProbe(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	h := newTestHandler(t,
		config.Probe{Name: "tmp", Target: filepath.Join(dir, "tmp", "probe"), Expect: config.ExpectWritable},
		config.Probe{Name: "broken", Target: filepath.Join(blocker, "probe"), Expect: config.ExpectWritable},
		config.Probe{Name: "dir", Target: dir, Expect: config.ExpectDenied},
	)

	results, err := h.RunAll()
	require.Error(t, err)
	require.Len(t, results, 3)

	assert.True(t, results["tmp"].OK)
	assert.Equal(t, writeprobe.KindSuccess, results["tmp"].Kind)

	assert.False(t, results["broken"].OK)
	assert.Equal(t, writeprobe.KindUnclassified, results["broken"].Kind)
	assert.Equal(t, writeprobe.ExitFailed, results["broken"].Code)

	assert.False(t, results["dir"].OK)
	assert.Equal(t, writeprobe.KindFailed, results["dir"].Kind)

	assert.Contains(t, err.Error(), `probe "broken"`)
	assert.Contains(t, err.Error(), `probe "dir"`)
	assert.NotContains(t, err.Error(), `probe "tmp"`)
}

func TestHandleStatusOK(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, config.Probe{Name: "tmp", Target: filepath.Join(dir, "probe")})

	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Contains(t, response.Probes, "tmp")
	assert.True(t, response.Probes["tmp"].OK)
	assert.Equal(t, filepath.Join(dir, "probe"), response.Probes["tmp"].Target)
}

func TestHandleStatusUnavailable(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, config.Probe{Name: "dir", Target: dir})

	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Probes["dir"].OK)
	assert.Equal(t, writeprobe.ExitFailed, response.Probes["dir"].Code)
}

func TestNewProbeHandlerRejectsEmptyTarget(t *testing.T) {
	_, err := NewProbeHandler(&config.Ignition{Probes: []config.Probe{{Name: "empty"}}}, 0)
	assert.Error(t, err)
}
