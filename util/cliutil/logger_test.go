package cliutil

import (
	"bytes"
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(slog.LevelError, ParseLevel("error"))
	assert.Equal(slog.LevelInfo, ParseLevel("info"))
	assert.Equal(slog.LevelInfo, ParseLevel(""))
	assert.Equal(slog.LevelInfo, ParseLevel("verbose"))
}

func TestConfigLogger(t *testing.T) {
	assert := assert.New(t)

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", "warn", "")
	cctx := cli.NewContext(cli.NewApp(), set, nil)

	var buf bytes.Buffer
	logger := ConfigLogger(cctx, &buf)
	defer slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	logger.Info("hidden")
	logger.Warn("shown", "value", 7)
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), "shown")
	assert.Contains(buf.String(), "value=7")
}
