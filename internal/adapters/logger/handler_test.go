package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/keel/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		groups     []string
		attrs      []slog.Attr
		goldenName string
	}{
		{
			name:       "handler attributes",
			attrs:      []slog.Attr{slog.String("run", "42"), slog.Int("builders", 3)},
			goldenName: "handler_attrs",
		},
		{
			name:       "nested group attribute",
			attrs:      []slog.Attr{slog.Group("outer", slog.Group("inner", slog.String("k", "v")))},
			goldenName: "handler_attrs_group",
		},
		{
			name:       "nested groups",
			groups:     []string{"a", "b"},
			attrs:      []slog.Attr{slog.String("key", "val")},
			goldenName: "handler_group_nested",
		},
		{
			name:       "empty group name",
			groups:     []string{""},
			attrs:      []slog.Attr{slog.String("key", "val")},
			goldenName: "handler_group_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			var handler slog.Handler = logger.NewPrettyHandler(buf, nil)
			for _, g := range tt.groups {
				handler = handler.WithGroup(g)
			}
			handler = handler.WithAttrs(tt.attrs)

			slog.New(handler).Info("message")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: level})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))

	level.Set(slog.LevelDebug)
	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug), "the handler follows its level var")
}
