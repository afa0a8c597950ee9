package logging_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/seqkit/internal/config"
	"github.com/charmingruby/seqkit/internal/logging"
)

func TestNewWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, zerolog.InfoLevel)
	logger.Debug().Msg("hidden")
	logger.Info().Int("count", 3).Msg("collected")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "collected", line["message"])
	assert.Equal(t, "seqx", line["app"])
	assert.InDelta(t, 3, line["count"], 0)
}

func TestFromConfigAutoOnPipeIsJSON(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	logger := logging.FromConfig(config.Log{Level: "warn", Format: "auto"}, w)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Warn().Msg("piped")
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestFromConfigPanicsOnBadLevel(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { logging.FromConfig(config.Log{Level: "loud", Format: "json"}, os.Stderr) })
}
