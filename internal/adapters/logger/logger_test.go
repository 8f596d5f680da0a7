package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/keel/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("build finished") },
			goldenName: "info_basic",
		},
		{
			name:       "info with args",
			log:        func(lg *logger.Logger) { lg.Info("copying content", "path", "src/Mod/App/content/app.txt") },
			goldenName: "info_args",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("ignoring corrupt cache entry", "key", "content/Mod.Lib") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug is hidden by default",
			log:        func(lg *logger.Logger) { lg.Debug("fingerprint differs") },
			goldenName: "debug_hidden",
		},
		{
			name: "debug after SetLevel",
			log: func(lg *logger.Logger) {
				lg.SetLevel(slog.LevelDebug)
				lg.Debug("fingerprint differs", "builder", "[Mod.Lib/content]")
			},
			goldenName: "debug_enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("disk full"),
			goldenName: "error_standard",
		},
		{
			name: "wrapped chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("disk full"), "failed to store build outputs"),
				"key", "content/Mod.Lib",
			),
			goldenName: "error_chain",
		},
		{
			name: "joined errors",
			err: zerr.Wrap(
				errors.Join(errors.New("first failure"), errors.New("second failure")),
				"build execution failed",
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("build finished", "builders", 3)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"msg":"build finished"`)
	assert.Contains(t, buf.String(), `"builders":3`)

	buf.Reset()
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to store build outputs"))
	assert.Contains(t, buf.String(), `"error":"failed to store build outputs: disk full"`)

	buf.Reset()
	lg.Error(zerr.With(zerr.Wrap(errors.New("locked"), "failed to open file"), "path", "bin/app.exe"))
	assert.Contains(t, buf.String(), `"error":"failed to open file: locked"`)
	assert.NotContains(t, buf.String(), `"error":{`)

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("pretty again")
	assert.Equal(t, "pretty again\n", buf.String())
}
