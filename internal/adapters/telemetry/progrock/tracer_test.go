package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vito "github.com/vito/progrock"
	"go.trai.ch/keel/internal/adapters/telemetry/progrock"
	"go.trai.ch/keel/internal/core/ports"
)

func TestTracer_RecordsVertices(t *testing.T) {
	tape := vito.NewTape()
	tracer := progrock.NewTracer(tape)
	ctx := context.Background()

	_, lib := tracer.Start(ctx, "[Mod.Lib/content]", ports.WithAttribute("keel.builder", "content"))
	_, err := lib.Write([]byte("copying lib.dll\n"))
	require.NoError(t, err)
	lib.MarkCached()
	lib.End()

	_, app := tracer.Start(ctx, "[Mod.App/content]")
	app.RecordError(errors.New("boom"))
	app.End()

	vertices := tape.Vertices()
	require.Len(t, vertices, 2)
	assert.Equal(t, "[Mod.Lib/content]", vertices[0].Name)
	assert.True(t, vertices[0].Cached)
	assert.NotNil(t, vertices[0].Completed)
	assert.Nil(t, vertices[0].Error)

	require.NotNil(t, vertices[1].Error)
	assert.Equal(t, "boom", *vertices[1].Error)

	summary, ok := tracer.Summary()
	require.True(t, ok)
	assert.Equal(t, progrock.Summary{Total: 2, Cached: 1, Errored: 1}, summary)

	require.NoError(t, tracer.Close())
}

func TestTracer_SummaryNeedsTape(t *testing.T) {
	tracer := progrock.NewTracer(vito.Discard{})

	_, ok := tracer.Summary()
	assert.False(t, ok)
	require.NoError(t, tracer.Close())
}
