package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("project-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "project-server", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("settings")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("project-client", path)
	l.Warn().Str("project_id", "local-1").Msg("local write failed")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, raw)
	assert.Equal(t, "project-client", entry["role"])
	assert.Equal(t, "local-1", entry["project_id"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	// каталог вместо файла — открыть на запись нельзя
	l := NewClientLogger("project-client", t.TempDir())
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "abc").Logger()}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(context.Background()))

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("from request")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req-value", entry["req-key"])
}

func TestEnsureContext(t *testing.T) {
	var first, second bytes.Buffer
	l1 := &Logger{zerolog.New(&first)}
	l2 := &Logger{zerolog.New(&second)}

	ctx := l1.EnsureContext(context.Background())
	ctx = l2.EnsureContext(ctx)

	FromContext(ctx).Info().Msg("kept")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}
