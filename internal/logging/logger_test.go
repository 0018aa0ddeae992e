package logging_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/logging"
	"github.com/katalvlaran/gridkit/pathfind"
	"github.com/katalvlaran/gridkit/position"
)

// records decodes a JSON log stream into one map per line.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "nope"})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)

	_, err = logging.New(logging.Config{Level: "info", Format: "logfmt"})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "warn", Format: "json", Output: &buf, Component: "cli"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "n", 3)

	recs := records(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0]["msg"])
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.Equal(t, "cli", recs[0]["component"])
	assert.EqualValues(t, 3, recs[0]["n"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "info", Output: &buf})
	require.NoError(t, err)
	logger.Info("hello", "who", "grid")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "who=grid")
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.NotNil(t, cfg.Output)
}

func TestLogGrid(t *testing.T) {
	g := grid.FromLines([]string{"#S.", "..E"})

	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)
	logging.LogGrid(context.Background(), logger, "map", g)

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	for y, rec := range recs {
		assert.Equal(t, "map", rec["msg"])
		assert.EqualValues(t, y, rec["row"])
		assert.Equal(t, g.Lines()[y], rec["cells"])
	}

	// above debug nothing is rendered
	buf.Reset()
	quiet, err := logging.New(logging.Config{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)
	logging.LogGrid(context.Background(), quiet, "map", g)
	assert.Zero(t, buf.Len())
}

func TestRoundLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Output: &buf})
	require.NoError(t, err)

	g := grid.New(4, 1, '.')
	res, err := pathfind.ShortestLengths(g, position.New(0, 0, position.East), position.Key{X: 3, Y: 0}, '.',
		pathfind.WithOnRound(logging.RoundLogger(context.Background(), logger)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, res.Rounds)
	assert.Contains(t, lines[0], "round=1")
	assert.Contains(t, lines[0], "live=1")
}
