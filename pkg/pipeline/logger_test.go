package pipeline_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-lut/pkg/pipeline"
)

// Not parallel: the logger is package state.
func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	pipeline.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer pipeline.SetLogger(nil)

	pipe := pipeline.New(3, 3, pipeline.PipelineName("logged"))
	pipe.Append(pipeline.NewXYZToLab())
	requirePanicsWith(t, pipeline.ErrChannelMismatch, func() { pipe.Append(pipeline.NewIdentity(1)) })

	out := buf.String()
	assert.Contains(t, out, "pipeline: allocated")
	assert.Contains(t, out, "name=logged")
	assert.Contains(t, out, `stage="xyz to lab"`)
	assert.Contains(t, out, "level=ERROR")

	buf.Reset()
	pipe.EvalFloat([]float32{0.1, 0.2, 0.3}, make([]float32, 3))
	assert.Empty(t, buf.String())

	pipeline.SetLogger(nil)
	assert.False(t, pipeline.Logger().Enabled(context.Background(), slog.LevelError))
}
